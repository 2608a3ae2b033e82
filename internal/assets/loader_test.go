package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/image/bmp"

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/core"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writeBMP(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode() failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoadBMP(t *testing.T) {
	dir := t.TempDir()
	writeBMP(t, filepath.Join(dir, "enemy.bmp"), solidImage(20, 20, color.RGBA{200, 40, 40, 255}))

	tex := NewLoader(dir, nil).Load("enemy.bmp")
	if tex == nil {
		t.Fatal("Load() returned nil for a valid BMP")
	}
	if tex.Format != "bmp" {
		t.Errorf("Format = %q, expected bmp", tex.Format)
	}
	if tex.Width != 20 || tex.Height != 20 {
		t.Errorf("size = %dx%d, expected 20x20", tex.Width, tex.Height)
	}
	if tex.Tint != core.RGB(200, 40, 40) {
		t.Errorf("Tint = %s, expected #c82828", tex.Tint.Hex())
	}
}

func TestLoadPNGAverageColor(t *testing.T) {
	dir := t.TempDir()
	img := solidImage(2, 1, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{200, 100, 50, 255})

	f, err := os.Create(filepath.Join(dir, "player.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tex := NewLoader(dir, nil).Load("player.png")
	if tex == nil {
		t.Fatal("Load() returned nil for a valid PNG")
	}
	if tex.Tint != core.RGB(100, 50, 25) {
		t.Errorf("Tint = %s, expected #643219", tex.Tint.Hex())
	}
}

func TestLoadMissingFileIsNilAndLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	tex := NewLoader(t.TempDir(), logger).Load("nope.bmp")
	if tex != nil {
		t.Errorf("Load() = %+v, expected nil", tex)
	}
	if !strings.Contains(buf.String(), "could not load texture") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestLoadMalformedFileIsNil(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bar.bmp"), []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	if tex := NewLoader(dir, nil).Load("bar.bmp"); tex != nil {
		t.Errorf("Load() = %+v, expected nil", tex)
	}
}

func TestLoadSetPartial(t *testing.T) {
	dir := t.TempDir()
	writeBMP(t, filepath.Join(dir, "bar.bmp"), solidImage(4, 4, color.RGBA{128, 128, 128, 255}))

	set := NewLoader(dir, nil).LoadSet(config.Assets{
		Background: "background.bmp",
		Bar:        "bar.bmp",
		Enemy:      "enemy.bmp",
		Player:     "player.bmp",
	})

	if set.Bar == nil {
		t.Error("Bar texture should load")
	}
	if set.Background != nil || set.Enemy != nil || set.Player != nil {
		t.Error("missing textures should be nil")
	}
}

func TestBuiltinResourcesLoad(t *testing.T) {
	// Nothing on disk: every stock image comes from the binary
	set := NewLoader(t.TempDir(), nil).LoadSet(config.Default().Assets)

	for name, tex := range map[string]*Texture{
		"background": set.Background,
		"bar":        set.Bar,
		"enemy":      set.Enemy,
		"player":     set.Player,
	} {
		if tex == nil {
			t.Errorf("builtin %s texture did not load", name)
			continue
		}
		if tex.Format != "bmp" || !strings.HasPrefix(tex.Path, "builtin:resources/") {
			t.Errorf("%s texture = %+v, expected a builtin bmp", name, tex)
		}
	}
}

func TestDiskResourceOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "resources"), 0o755); err != nil {
		t.Fatal(err)
	}
	enemyPath := filepath.Join(dir, "resources", "enemy.bmp")
	writeBMP(t, enemyPath, solidImage(20, 20, color.RGBA{1, 2, 3, 255}))

	set := NewLoader(dir, nil).LoadSet(config.Default().Assets)

	if set.Enemy == nil || set.Enemy.Path != enemyPath || set.Enemy.Tint != core.RGB(1, 2, 3) {
		t.Errorf("Enemy = %+v, expected the file on disk", set.Enemy)
	}
	if set.Player == nil || !strings.HasPrefix(set.Player.Path, "builtin:") {
		t.Errorf("Player = %+v, expected the builtin copy", set.Player)
	}
}

func TestMalformedDiskResourceDoesNotFallBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "resources"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "resources", "bar.bmp"), []byte("junk"), 0o600); err != nil {
		t.Fatal(err)
	}

	if tex := NewLoader(dir, nil).Load("resources/bar.bmp"); tex != nil {
		t.Errorf("Load() = %+v, expected nil for a broken override", tex)
	}
}
