package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(content string) ([]byte, error)
}

// DefaultQRGenerator renders 256px PNG codes at medium recovery.
type DefaultQRGenerator struct{}

func (g DefaultQRGenerator) Generate(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, 256)
}
