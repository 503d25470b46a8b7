// Package bigchar renders Japanese words as large block art using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontSize is the point size glyphs are rasterized at before scaling down.
const fontSize = 64

var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/opentype/ipafont-gothic/ipag.ttf",
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msgothic.ttc",
	"C:\\Windows\\Fonts\\YuGothR.ttc",
}

var (
	loadOnce   sync.Once
	loadedFace font.Face
)

func face() font.Face {
	loadOnce.Do(func() {
		if p := os.Getenv("KATSUYOU_FONT"); p != "" {
			fontPaths = append([]string{p}, fontPaths...)
		}
		for _, path := range fontPaths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if f, err := ParseFace(data); err == nil {
				loadedFace = f
				return
			}
		}
	})
	return loadedFace
}

// ParseFace builds a face from font data: an OpenType collection, a single
// OpenType font, or failing those a TrueType font read by freetype.
func ParseFace(data []byte) (font.Face, error) {
	opts := &opentype.FaceOptions{Size: fontSize, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if f, err := opentype.NewFace(fnt, opts); err == nil {
				return f, nil
			}
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		if f, err := opentype.NewFace(fnt, opts); err == nil {
			return f, nil
		}
	}

	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: fontSize, DPI: 72, Hinting: font.HintingFull}), nil
}

// Render draws word with f into a cols x rows grid of half-block cells.
func Render(f font.Face, word string, cols, rows int) string {
	if word == "" || f == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	bounds, advance := font.BoundString(f, word)
	glyphWidth := advance.Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := max(glyphWidth+padding*2, fontSize)
	srcHeight := max(glyphHeight+padding*2, fontSize)

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P((srcWidth-glyphWidth)/2, srcHeight-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(word)

	// Each cell holds two vertical pixels.
	scaled := scaleDown(src, cols, rows*2)
	return toHalfBlocks(scaled, cols, rows)
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sy1 := int(float64(dx)*xRatio), int(float64(dy)*yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

// threshold is the brightness above which a half cell is drawn.
const threshold = 40

func toHalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable reports whether a CJK font was found.
func IsAvailable() bool {
	return face() != nil
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// GetCached renders word with the system font, caching by word and size.
func GetCached(word string, cols, rows int) string {
	f := face()
	if f == nil {
		return ""
	}

	key := fmt.Sprintf("%s/%dx%d", word, cols, rows)
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached, ok := cache[key]; ok {
		return cached
	}
	rendered := Render(f, word, cols, rows)
	cache[key] = rendered
	return rendered
}
