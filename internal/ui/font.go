// internal/ui/font.go
package ui

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace загружает TTF-шрифт с диска. При любой ошибке возвращается
// basicfont, чтобы интерфейс остался читаемым без ассетов.
func LoadFontFace(path string, size float64) font.Face {
	face, err := loadTTF(path, size)
	if err != nil {
		log.Printf("ui: font %s unavailable, using basicfont: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}

func loadTTF(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build face: %w", err)
	}
	return face, nil
}
