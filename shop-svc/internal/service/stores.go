package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/settings"
)

// Santiago centre.
const (
	DefaultLatitude  = -33.4489
	DefaultLongitude = -70.6693
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type ZoneService struct {
	repo ZoneRepository
}

func NewZoneService(repo ZoneRepository) *ZoneService {
	return &ZoneService{repo: repo}
}

func validateZone(z *domain.DeliveryZone) error {
	if strings.TrimSpace(z.Name) == "" {
		return invalid("zone name is required")
	}
	if z.DeliveryPrice < 0 {
		return invalid("delivery price must not be negative")
	}
	return nil
}

func (s *ZoneService) ListActive() ([]domain.DeliveryZone, error) {
	return s.repo.ListZones(true)
}

func (s *ZoneService) ListAll() ([]domain.DeliveryZone, error) {
	return s.repo.ListZones(false)
}

func (s *ZoneService) Create(z *domain.DeliveryZone) error {
	if err := validateZone(z); err != nil {
		return err
	}
	return s.repo.CreateZone(z)
}

func (s *ZoneService) Update(z *domain.DeliveryZone) error {
	if err := validateZone(z); err != nil {
		return err
	}
	return affected(s.repo.UpdateZone(z))
}

func (s *ZoneService) SetActive(id int, active bool) error {
	return affected(s.repo.SetZoneActive(id, active))
}

type LocationService struct {
	repo LocationRepository
}

func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

func prepareLocation(l *domain.StoreLocation) error {
	required := []struct{ field, value string }{
		{"name", l.Name},
		{"address", l.Address},
		{"commune", l.Commune},
		{"phone", l.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid("location %s is required", r.field)
		}
	}
	if l.Latitude == 0 && l.Longitude == 0 {
		l.Latitude = DefaultLatitude
		l.Longitude = DefaultLongitude
	}
	return nil
}

func (s *LocationService) ListActive() ([]domain.StoreLocation, error) {
	return s.repo.ListLocations(true)
}

func (s *LocationService) ListAll() ([]domain.StoreLocation, error) {
	return s.repo.ListLocations(false)
}

func (s *LocationService) Create(l *domain.StoreLocation) error {
	if err := prepareLocation(l); err != nil {
		return err
	}
	return s.repo.CreateLocation(l)
}

func (s *LocationService) Update(l *domain.StoreLocation) error {
	if err := prepareLocation(l); err != nil {
		return err
	}
	return s.repo.UpdateLocation(l)
}

func (s *LocationService) Delete(id int) error {
	return affected(s.repo.DeleteLocation(id))
}

func (s *LocationService) SetActive(id int, active bool) error {
	return affected(s.repo.SetLocationActive(id, active))
}

// ConfigService edits the key/value table and tells every instance to reload.
type ConfigService struct {
	repo     ConfigRepository
	provider SettingsProvider
}

func NewConfigService(repo ConfigRepository, provider SettingsProvider) *ConfigService {
	return &ConfigService{repo: repo, provider: provider}
}

func (s *ConfigService) List() ([]domain.ConfigEntry, error) {
	return s.repo.ListConfigurations()
}

func (s *ConfigService) Upsert(ctx context.Context, e *domain.ConfigEntry) error {
	e.Key = strings.TrimSpace(e.Key)
	if e.Key == "" {
		return invalid("configuration key is required")
	}
	if err := s.repo.UpsertConfiguration(e); err != nil {
		return err
	}
	s.provider.Invalidate(ctx)
	return nil
}

func (s *ConfigService) Delete(ctx context.Context, key string) error {
	if err := affected(s.repo.DeleteConfiguration(key)); err != nil {
		return err
	}
	s.provider.Invalidate(ctx)
	return nil
}

func (s *ConfigService) Settings(ctx context.Context) settings.StoreSettings {
	return s.provider.Get(ctx)
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

type AuthService struct {
	repo   AdminRepository
	tokens TokenIssuer
	verify func(hash, password string) bool
}

func NewAuthService(repo AdminRepository, tokens TokenIssuer, verify func(hash, password string) bool) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, verify: verify}
}

func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.GetAdminByUsername(username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.verify(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expires, Username: user.Username}, nil
}
