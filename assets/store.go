package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rocktung/gfx"
	"golang.org/x/image/draw"
)

// ErrAssetMissing is wrapped into load errors for files that could not be
// found or decoded.
var ErrAssetMissing = errors.New("asset missing")

// Fallback describes the placeholder drawn when an asset is missing.
type Fallback struct {
	Color color.NRGBA
	// Outline > 0 draws only a border of that width on a transparent
	// background instead of a solid fill.
	Outline int
	// W and H size the placeholder when the caller does not scale.
	W, H int
}

// Store loads, scales and caches images. Lookups try the embedded tree, then
// the optional disk directory, then fall back to a placeholder.
type Store struct {
	embedded fs.FS
	dir      string
	logger   *log.Logger

	sources map[string]*gfx.Image
	scaled  map[scaledKey]*gfx.Image
	warned  map[string]bool
}

type scaledKey struct {
	key  string
	w, h int
}

// NewStore creates a store. dir may be empty.
func NewStore(embedded fs.FS, dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		embedded: embedded,
		dir:      dir,
		logger:   logger,
		sources:  map[string]*gfx.Image{},
		scaled:   map[scaledKey]*gfx.Image{},
		warned:   map[string]bool{},
	}
}

// Load decodes path without scaling.
func (s *Store) Load(path string) (*gfx.Image, error) {
	clean := cleanAssetPath(path)
	if img, ok := s.sources[clean]; ok {
		return img, nil
	}
	b, err := s.read(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w: %v", clean, ErrAssetMissing, err)
	}
	src, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w: %v", clean, ErrAssetMissing, err)
	}
	img := gfx.NewImage(clean, src)
	s.sources[clean] = img
	return img, nil
}

// Source returns the unscaled image at path, or a placeholder of fb's size.
func (s *Store) Source(path string, fb Fallback) *gfx.Image {
	img, err := s.Load(path)
	if err == nil {
		return img
	}
	s.warn(path, err)
	w, h := fb.W, fb.H
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	return s.placeholder(cleanAssetPath(path), w, h, fb)
}

// Image returns path scaled to exactly w x h.
func (s *Store) Image(path string, w, h int, fb Fallback) *gfx.Image {
	img, err := s.Load(path)
	if err != nil {
		s.warn(path, err)
		return s.placeholder(cleanAssetPath(path), w, h, fb)
	}
	return s.Scale(img, w, h)
}

// Frames loads a numbered sequence such as walkleft0.png..walkleft5.png.
// Missing frames are skipped; an empty result yields a single placeholder.
func (s *Store) Frames(pattern string, count, w, h int, fb Fallback) []*gfx.Image {
	frames := make([]*gfx.Image, 0, count)
	for i := range count {
		path := fmt.Sprintf(pattern, i)
		img, err := s.Load(path)
		if err != nil {
			s.warn(path, err)
			continue
		}
		frames = append(frames, s.Scale(img, w, h))
	}
	if len(frames) == 0 {
		frames = append(frames, s.placeholder(fmt.Sprintf(pattern, 0), w, h, fb))
	}
	return frames
}

// Scale resizes img to w x h. Results are cached by source key and size.
func (s *Store) Scale(img *gfx.Image, w, h int) *gfx.Image {
	if img == nil {
		return nil
	}
	w = max(1, w)
	h = max(1, h)
	if iw, ih := img.Size(); iw == w && ih == h {
		return img
	}
	k := scaledKey{key: img.Key, w: w, h: h}
	if cached, ok := s.scaled[k]; ok {
		return cached
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if img.Placeholder {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img.Src, img.Src.Bounds(), draw.Src, nil)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img.Src, img.Src.Bounds(), draw.Src, nil)
	}
	out := gfx.NewImage(img.Key, dst)
	out.Placeholder = img.Placeholder
	s.scaled[k] = out
	return out
}

func (s *Store) read(clean string) ([]byte, error) {
	if s.embedded != nil {
		if b, err := fs.ReadFile(s.embedded, clean); err == nil {
			return b, nil
		}
	}
	if s.dir == "" {
		return nil, fs.ErrNotExist
	}
	return os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(clean)))
}

func (s *Store) warn(path string, err error) {
	clean := cleanAssetPath(path)
	if s.warned[clean] {
		return
	}
	s.warned[clean] = true
	s.logger.Warn("asset missing, using placeholder", "path", clean, "err", err)
}

func (s *Store) placeholder(key string, w, h int, fb Fallback) *gfx.Image {
	w = max(1, w)
	h = max(1, h)
	k := scaledKey{key: "placeholder:" + key, w: w, h: h}
	if cached, ok := s.scaled[k]; ok {
		return cached
	}
	img := gfx.NewImage(k.key, Placeholder(w, h, fb))
	img.Placeholder = true
	s.scaled[k] = img
	return img
}

// Placeholder renders fb at w x h.
func Placeholder(w, h int, fb Fallback) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	col := fb.Color
	if col.A == 0 {
		col.A = 255
	}
	if fb.Outline <= 0 {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
		return dst
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < fb.Outline || y < fb.Outline || x >= w-fb.Outline || y >= h-fb.Outline {
				dst.SetNRGBA(x, y, col)
			}
		}
	}
	return dst
}
