package main

import (
	"testing"

	"alianza-shop/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
		wantUser string
	}{
		{name: "hashes password", username: "admin", password: "carniceria123", wantUser: "admin"},
		{name: "short password", username: "admin", password: "123", wantErr: true},
		{name: "no admin requested", username: "", password: "", wantUser: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			admin, err := adminFromFlags(testCase.username, "admin@alianza.cl", testCase.password)

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantUser, admin.Username)
			if testCase.wantUser != "" {
				assert.NotEqual(t, testCase.password, admin.PasswordHash)
				assert.True(t, auth.CheckPassword(admin.PasswordHash, testCase.password))
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	seed, _, _ := root.Find([]string{"seed"})
	assert.NotNil(t, seed.Flags().Lookup("admin-password"))
}
