package shooter

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine/collision"
	"github.com/vovakirdan/space-attackers/internal/engine/render"
)

// Size is a sprite's footprint in world pixels.
type Size struct {
	W, H int
}

// explosionFrames is the length of the explosion animation.
const explosionFrames = 20

type art struct {
	name    string
	size    Size
	color   core.Color
	unicode [][]string
	ascii   [][]string
}

var (
	playerUnicode = [][]string{
		{" ▲   ", "◢██◣ ", " ▀   "},
		{"  ▲  ", " ◢██◣", "  ▀▀ "},
		{"  ▲  ", "◢███◣", " ▀ ▀ "},
		{"  ▲  ", "◢██◣ ", " ▀▀  "},
		{"   ▲ ", " ◢██◣", "   ▀ "},
	}
	playerASCII = [][]string{
		{" A   ", "</#> ", " '   "},
		{"  A  ", " </#>", "  '' "},
		{"  A  ", "</#\\>", " ' ' "},
		{"  A  ", "</#> ", " ''  "},
		{"   A ", " </#>", "   ' "},
	}
	enemyUnicode = [][]string{{"▀▄█▄█▄▀", "  ▀█▀  "}}
	enemyASCII   = [][]string{{"\\=[O]=/", "  \\V/  "}}
)

var sprites = map[int]art{
	SpritePlayer:          {"player", Size{42, 62}, core.ColorBrightCyan, playerUnicode, playerASCII},
	SpritePlayerHit:       {"player-hit", Size{42, 62}, core.ColorBrightWhite, playerUnicode, playerASCII},
	SpriteEnemyGreen:      {"enemy-green", Size{59, 43}, core.ColorBrightGreen, enemyUnicode, enemyASCII},
	SpriteEnemyGreenHit:   {"enemy-green-hit", Size{59, 43}, core.ColorBrightWhite, enemyUnicode, enemyASCII},
	SpriteEnemyRed:        {"enemy-red", Size{59, 43}, core.ColorBrightRed, enemyUnicode, enemyASCII},
	SpriteEnemyRedHit:     {"enemy-red-hit", Size{59, 43}, core.ColorBrightWhite, enemyUnicode, enemyASCII},
	SpritePlayerBullet:    {"player-bullet", Size{5, 15}, core.ColorBrightYellow, [][]string{{"│"}}, [][]string{{"|"}}},
	SpriteGuidedBullet:    {"guided-bullet", Size{11, 11}, core.ColorBrightMagenta, [][]string{{"◆"}}, [][]string{{"*"}}},
	SpriteEnemyBulletSlow: {"enemy-bullet-slow", Size{9, 9}, core.ColorOrange, [][]string{{"•"}}, [][]string{{"o"}}},
	SpriteEnemyBulletFast: {"enemy-bullet-fast", Size{5, 11}, core.ColorRed, [][]string{{"╏"}}, [][]string{{"!"}}},
	SpriteExplosion:       {"explosion", Size{64, 64}, core.ColorOrange, blastFrames("█▓▒░·"), blastFrames("#%*+.")},
}

// SpriteSize returns the world footprint of a sprite.
func SpriteSize(id int) Size {
	return sprites[id].size
}

// blastFrames draws an expanding ring that thins out as it grows.
// glyphs go from dense to sparse.
func blastFrames(glyphs string) [][]string {
	g := []rune(glyphs)
	const cols, rows = 8, 3
	frames := make([][]string, explosionFrames)
	for f := range frames {
		t := float64(f) / float64(explosionFrames-1)
		radius := 0.3 + 1.1*t
		glyph := g[min(int(t*float64(len(g))), len(g)-1)]
		lines := make([]string, rows)
		for y := 0; y < rows; y++ {
			line := make([]rune, cols)
			for x := 0; x < cols; x++ {
				dx := (float64(x) + 0.5 - cols/2.0) / (cols / 2.0)
				dy := (float64(y) + 0.5 - rows/2.0) / (rows / 2.0)
				d := math.Hypot(dx, dy)
				if d <= radius && d >= radius-0.7 {
					line[x] = glyph
				} else {
					line[x] = ' '
				}
			}
			lines[y] = string(line)
		}
		frames[f] = lines
	}
	return frames
}

// NewSheet builds the sprite sheet for a charset, "unicode" or "ascii".
// Unknown charsets fall back to unicode.
func NewSheet(charset string) *render.Sheet {
	sh := render.NewSheet()
	for id, a := range sprites {
		frames := a.unicode
		if charset == "ascii" {
			frames = a.ascii
		}
		sh.Add(id, render.Sprite{Name: a.name, Frames: frames, Color: a.color})
	}
	return sh
}

// Masks holds pixel masks for pixel-exact collision, keyed by sprite and
// frame. A nil *Masks disables pixel tests.
type Masks struct {
	m map[[2]int]*collision.Mask
}

// maskKey is the colour treated as transparent in mask images.
var maskKey = &color.RGBA{R: 255, G: 0, B: 255, A: 255}

// LoadMasks builds masks for every collidable sprite. Images named
// "<sprite>.bmp" or "<sprite>.png" in dir override the masks derived from
// the character art; frame n > 0 of an animated sprite looks for
// "<sprite>-<n>". A missing dir is not an error, a corrupt image is.
func LoadMasks(dir string) (*Masks, error) {
	ms := &Masks{m: make(map[[2]int]*collision.Mask)}
	for id, a := range sprites {
		if id == SpriteExplosion {
			continue
		}
		for f, rows := range a.unicode {
			m, err := loadMaskFile(dir, a.name, f)
			if err != nil {
				return nil, err
			}
			if m == nil {
				m = collision.FromRows(rows)
			}
			ms.m[[2]int{id, f}] = m.Scale(a.size.W, a.size.H)
		}
	}
	return ms, nil
}

func loadMaskFile(dir, name string, frame int) (*collision.Mask, error) {
	if dir == "" {
		return nil, nil
	}
	base := name
	if frame > 0 {
		base = fmt.Sprintf("%s-%d", name, frame)
	}
	for _, ext := range []string{".bmp", ".png"} {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("shooter: cannot stat mask %s: %w", path, err)
		}
		return collision.Load(path, maskKey)
	}
	return nil, nil
}

// Get returns the mask for a sprite frame, or nil.
func (ms *Masks) Get(sprite, frame int) *collision.Mask {
	if ms == nil {
		return nil
	}
	if m, ok := ms.m[[2]int{sprite, frame}]; ok {
		return m
	}
	return ms.m[[2]int{sprite, 0}]
}
