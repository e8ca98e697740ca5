package life

import (
	"strings"
	"unicode/utf8"

	"termgol/pkg/core"
)

// CellImage is a pattern of live points relative to its top-left corner plus
// its bounding size.
type CellImage struct {
	Points []core.Point
	Size   core.Size
}

// ParseCellImage reads a text pattern, one row per line. Spaces and dots are
// dead cells, every other rune is alive.
func ParseCellImage(text string) CellImage {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return CellImage{}
	}

	var img CellImage
	lines := strings.Split(text, "\n")
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n > img.Size.W {
			img.Size.W = n
		}
		x := 0
		for _, r := range line {
			if r != ' ' && r != '.' {
				img.Points = append(img.Points, core.Pt(x, y))
			}
			x++
		}
	}
	img.Size.H = len(lines)
	return img
}

// Soup fills a w*h block with live cells at density 1/2.
func Soup(w, h int, rng core.Rand) CellImage {
	img := CellImage{Size: core.Size{W: w, H: h}.Clamp()}
	row := make([]uint8, img.Size.W)
	for y := 0; y < img.Size.H; y++ {
		core.FillBinary(rng, row)
		for x, v := range row {
			if v == 1 {
				img.Points = append(img.Points, core.Pt(x, y))
			}
		}
	}
	return img
}
