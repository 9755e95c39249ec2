package wheel

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrBadColor = errors.New("wheel: bad color")

// DefaultSlices is the wheel shown when no slices file is configured.
func DefaultSlices() []Slice {
	return []Slice{
		{"foo", SteelBlue},
		{"bar", Red},
		{"baz", Green},
		{"foo", SteelBlue},
		{"bar", Red},
		{"bar", Red},
		{"baz", Green},
		{"foo", SteelBlue},
		{"bar", Red},
		{"baz", Green},
	}
}

// ParseSlices reads one slice per line in the form "label" or
// "label,#rrggbb". Blank lines and lines starting with '#' are ignored.
// Slices without a color are given one from the palette.
func ParseSlices(r io.Reader) ([]Slice, error) {
	var (
		slices  []Slice
		colored []bool
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		label, hex, hasColor := strings.Cut(line, ",")
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("line %d: empty label", lineNo)
		}

		s := Slice{Label: label}
		if hasColor {
			c, err := ParseHexColor(strings.TrimSpace(hex))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			s.Color = c
		}
		slices = append(slices, s)
		colored = append(colored, hasColor)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read slices: %w", err)
	}
	if len(slices) == 0 {
		return nil, ErrNoSlices
	}

	for i := range slices {
		if !colored[i] {
			slices[i].Color = PaletteColor(i, len(slices))
		}
	}
	return slices, nil
}

// LoadSlices reads a slices file from disk.
func LoadSlices(path string) ([]Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	slices, err := ParseSlices(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return slices, nil
}

// ParseHexColor parses "#rrggbb" (the '#' is optional) into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
