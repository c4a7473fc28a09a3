// Package assets loads the bulb images and the zap sound from disk.
// Any file that is missing is replaced with a generated one so the game
// always runs; files that exist but cannot be decoded are errors.
package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultDir is the asset directory used when --assets is not given.
const DefaultDir = "./assets"

// File names looked up in the asset directory.
const (
	BulbOffFile = "bulb_off.png"
	BulbOnFile  = "bulb_on.png"
	ZapFile     = "zap.wav"
)

// Bulb images are always delivered at this size.
const (
	BulbWidth  = 80
	BulbHeight = 120
)

// Assets holds everything the window frontend draws or plays.
type Assets struct {
	BulbOff image.Image
	BulbOn  image.Image
	Zap     []byte // 16-bit little-endian stereo PCM at SampleRate

	// Missing lists the files that were generated instead of loaded.
	Missing []string
}

// Load reads the assets from dir.
func Load(dir string) (*Assets, error) {
	a := &Assets{}

	var err error
	if a.BulbOff, err = a.image(dir, BulbOffFile, false); err != nil {
		return nil, err
	}
	if a.BulbOn, err = a.image(dir, BulbOnFile, true); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(dir, ZapFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.Missing = append(a.Missing, ZapFile)
		a.Zap = GenerateZap(1)
	case err != nil:
		return nil, fmt.Errorf("assets: open %s: %w", ZapFile, err)
	default:
		defer f.Close()
		if a.Zap, err = DecodeWAV(f); err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", ZapFile, err)
		}
	}

	return a, nil
}

// Generated returns a fully generated asset set.
func Generated() *Assets {
	return &Assets{
		BulbOff: GenerateBulb(false),
		BulbOn:  GenerateBulb(true),
		Zap:     GenerateZap(1),
		Missing: []string{BulbOffFile, BulbOnFile, ZapFile},
	}
}

func (a *Assets) image(dir, name string, on bool) (image.Image, error) {
	img, err := LoadImage(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		a.Missing = append(a.Missing, name)
		return GenerateBulb(on), nil
	}
	if err != nil {
		return nil, err
	}
	return ScaleTo(img, BulbWidth, BulbHeight), nil
}
