package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

const swatchSize = 24

// parseHexColor parses "#RRGGBB"
func parseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 || s == hex {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// swatchDataURI renders a solid square of the given color as a PNG data URI
func swatchDataURI(hex string) (template.URL, error) {
	c, err := parseHexColor(hex)
	if err != nil {
		return "", err
	}

	img := imaging.New(swatchSize, swatchSize, c)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode swatch: %w", err)
	}

	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
