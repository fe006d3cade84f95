// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/brush/surface"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#fff", "#ffffffff"},
		{"f00", "#ff0000ff"},
		{"#0f08", "#00ff0088"},
		{"#336699", "#336699ff"},
		{"#33669980", "#33669980"},
		{"#ABCDEF", "#abcdefff"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#ggg", "#-12", "#123456789"} {
		_, err := ParseHex(in)
		assert.Error(t, err, "ParseHex(%q)", in)
	}
	assert.Equal(t, Black, Hex("nope"))
	assert.Equal(t, White, Hex("#fff"))
}

func TestColorConversion(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, Red.Color())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, RGBA{R: 2, G: 1.5, B: 1, A: 1}.Color(), "components are clamped")

	c := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	assert.Equal(t, 1.0, c.R)
	assert.InDelta(t, 128.0/255, c.A, 1e-9)
	assert.Equal(t, Transparent, FromColor(color.Transparent))
}

func TestColorPaint(t *testing.T) {
	assert.Equal(t, surface.Paint{R: 0, G: 0, B: 1, A: 0.5}, Blue.paint(0.5))
	assert.Equal(t, surface.Paint{R: 1, G: 0, B: 0, A: 0}, Red.paint(math.NaN()))
	assert.Equal(t, surface.Paint{R: 1, G: 1, B: 1, A: 1}, White.paint(3))
}
