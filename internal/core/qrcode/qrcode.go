// Package qrcode renders QR codes for printing on product packaging.
package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	qr "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// ErrEmptyContent is returned when there is nothing to encode
var ErrEmptyContent = errors.New("qr content is empty")

// PNG encodes content as a square PNG of size pixels. Out of range sizes are
// clamped.
func PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	img, err := qr.New(content, qr.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Image(clampSize(size))); err != nil {
		return nil, fmt.Errorf("failed to encode QR png: %w", err)
	}
	return buf.Bytes(), nil
}

func clampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}
