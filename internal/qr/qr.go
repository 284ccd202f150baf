package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MaxSize     = 1024
	MinSize     = 64
)

// PNG renders the given content (a fan ID) as a QR code PNG.
func PNG(content string, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		size = DefaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
