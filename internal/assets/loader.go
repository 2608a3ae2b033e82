// Package assets loads the image resources used to draw the game.
//
// A terminal cannot show bitmaps, so a loaded image is reduced to a Texture: its
// pixel size and average color. Loading never fails hard: a missing or malformed
// file is logged and yields a nil *Texture, which renderers skip.
//
// The stock images are compiled into the binary. A file on disk under the
// loader's directory takes precedence over the built-in copy.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG resources are accepted alongside BMP
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp" // Registers the BMP decoder with image.Decode

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/core"
)

// Texture is a loaded image handle.
type Texture struct {
	Path   string
	Format string // "bmp" or "png"
	Width  int
	Height int
	Tint   core.Color // Average color of all pixels
}

// Set holds one texture per drawable layer. Any field may be nil.
type Set struct {
	Background *Texture
	Bar        *Texture
	Enemy      *Texture
	Player     *Texture
}

//go:embed resources/*.bmp
var builtin embed.FS

// Loader reads image files relative to a base directory, falling back to the
// built-in resources for relative names that are missing on disk.
type Loader struct {
	dir      string
	fallback fs.FS
	logger   *log.Logger
}

// NewLoader creates a loader rooted at dir. A nil logger discards messages.
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(nopWriter{})
	}
	return &Loader{dir: dir, fallback: builtin, logger: logger}
}

// Load reads and decodes one image. It returns nil if the file is missing or
// cannot be decoded; the failure is logged as a warning.
func (l *Loader) Load(name string) *Texture {
	p := name
	if !filepath.IsAbs(p) {
		p = filepath.Join(l.dir, name)
	}

	tex, err := decodeFile(p)
	if errors.Is(err, fs.ErrNotExist) && !filepath.IsAbs(name) && l.fallback != nil {
		fsName := path.Clean(filepath.ToSlash(name))
		p = "builtin:" + fsName
		tex, err = decodeFS(l.fallback, fsName)
	}
	if err != nil {
		l.logger.Warn("could not load texture", "path", p, "error", err)
		return nil
	}

	l.logger.Debug("loaded texture", "path", p, "format", tex.Format,
		"size", fmt.Sprintf("%dx%d", tex.Width, tex.Height), "tint", tex.Tint.Hex())
	return tex
}

// LoadSet loads every texture named in the asset config.
func (l *Loader) LoadSet(a config.Assets) Set {
	return Set{
		Background: l.Load(a.Background),
		Bar:        l.Load(a.Bar),
		Enemy:      l.Load(a.Enemy),
		Player:     l.Load(a.Player),
	}
}

// decodeFile opens and decodes a file on disk into a Texture.
func decodeFile(file string) (*Texture, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", file, err)
	}
	defer f.Close()
	return decode(f, file)
}

// decodeFS is decodeFile for a file inside fsys.
func decodeFS(fsys fs.FS, name string) (*Texture, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open builtin %s: %w", name, err)
	}
	defer f.Close()
	return decode(f, "builtin:"+name)
}

// decode reads an image from r; src names it in errors and in the Texture.
func decode(r io.Reader, src string) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", src, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("assets: %s has no pixels", src)
	}

	return &Texture{
		Path:   src,
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
		Tint:   averageColor(img),
	}, nil
}

// averageColor returns the mean of all pixels, ignoring alpha.
func averageColor(img image.Image) core.Color {
	b := img.Bounds()
	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			bl += uint64(pb >> 8)
			n++
		}
	}
	return core.RGB(uint8(r/n), uint8(g/n), uint8(bl/n))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
