package testfiles

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/anitschke/go-hydrus/types"
)

// TestFile is a small generated image used for upload tests.
type TestFile struct {
	Name string
	Data []byte
}

func (f TestFile) Hash() types.Hash {
	return types.HashOf(f.Data)
}

// WriteTo writes the file in to dir and returns its full path.
func (f TestFile) WriteTo(dir string) (string, error) {
	fullPath := filepath.Join(dir, f.Name)
	if err := os.WriteFile(fullPath, f.Data, 0o600); err != nil {
		return "", err
	}
	return fullPath, nil
}

// PNGs generates count distinct PNG images. Each one is a black column with a
// single white pixel at a different height, so every image has its own hash.
func PNGs(count int) ([]TestFile, error) {
	size := image.Rectangle{
		Max: image.Point{1, max(count, 1)},
	}
	palette := color.Palette{color.Black, color.White}

	files := make([]TestFile, 0, count)
	for i := 0; i < count; i++ {
		img := image.NewPaletted(size, palette)
		img.Set(0, i, color.White)
		var b bytes.Buffer
		if err := png.Encode(&b, img); err != nil {
			return nil, err
		}
		files = append(files, TestFile{
			Name: strconv.Itoa(i) + ".png",
			Data: b.Bytes(),
		})
	}
	return files, nil
}
