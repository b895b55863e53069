package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	data, err := PNG("ecoscan:product:1", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestPNGEmpty(t *testing.T) {
	_, err := PNG("", 128)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultSize},
		{-5, DefaultSize},
		{10, MinSize},
		{300, 300},
		{5000, MaxSize},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampSize(tt.in))
	}
}
