// Package placeholder renders gradient JPEG placeholders for gallery thumbnails.
package placeholder

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width   = 800
	Height  = 600
	Quality = 85

	titleScale    = 6
	categoryScale = 2
)

// Spec describes one placeholder image
type Spec struct {
	Filename string
	From     color.RGBA
	To       color.RGBA
	Text     string // may contain "\n"
	Category string
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// Defaults are the placeholders referenced by the sample gallery document
var Defaults = []Spec{
	{"photo1.jpg", rgb(255, 107, 53), rgb(255, 143, 107), "Creative\nDesign", "Photo"},
	{"photo2.jpg", rgb(74, 144, 226), rgb(123, 179, 255), "UI/UX\nShowcase", "Photo"},
	{"photo3.jpg", rgb(80, 200, 120), rgb(126, 255, 161), "Brand\nIdentity", "Photo"},
	{"design1.jpg", rgb(155, 89, 182), rgb(195, 155, 211), "Logo\nDesign", "Design"},
	{"design2.jpg", rgb(231, 76, 60), rgb(241, 148, 138), "Web\nInterface", "Design"},
	{"design3.jpg", rgb(243, 156, 18), rgb(248, 196, 113), "Mobile\nApp UI", "Design"},
	{"video-thumb1.jpg", rgb(52, 73, 94), rgb(93, 109, 126), "Project\nDemo", "Video"},
	{"video-thumb2.jpg", rgb(22, 160, 133), rgb(72, 201, 176), "Coding\nTutorial", "Video"},
	{"video-thumb3.jpg", rgb(211, 84, 0), rgb(230, 126, 34), "YouTube\nVideo", "Video"},
}

// Render draws the placeholder: vertical gradient, two decorative circles,
// centered title with a drop shadow and the category in the lower-left corner.
func Render(spec Spec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	gradient(img, spec.From, spec.To)

	drawCircle(img, image.Pt(Width-50, 50), 150, color.NRGBA{R: 255, G: 255, B: 255, A: 30})
	drawCircle(img, image.Pt(50, Height-50), 150, color.NRGBA{A: 20})

	lines := strings.Split(spec.Text, "\n")
	lineHeight := basicfont.Face7x13.Height * titleScale
	top := (Height-lineHeight*len(lines))/2 - 30
	for i, line := range lines {
		w := textWidth(line) * titleScale
		x := (Width - w) / 2
		y := top + i*lineHeight
		drawText(img, line, image.Pt(x+3, y+3), titleScale, color.NRGBA{A: 128})
		drawText(img, line, image.Pt(x, y), titleScale, color.White)
	}

	drawText(img, strings.ToUpper(spec.Category), image.Pt(30, Height-60), categoryScale,
		color.NRGBA{R: 255, G: 255, B: 255, A: 200})
	return img
}

// Encode writes the placeholder as JPEG
func Encode(w io.Writer, spec Spec) error {
	return jpeg.Encode(w, Render(spec), &jpeg.Options{Quality: Quality})
}

// WriteAll renders every spec into dir, creating it when missing.
// It keeps going after a failure and returns the paths written plus the first error.
func WriteAll(dir string, specs []Spec) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	var firstErr error
	for _, spec := range specs {
		path := filepath.Join(dir, spec.Filename)
		if err := writeFile(path, spec); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to generate %s: %w", spec.Filename, err)
			}
			continue
		}
		written = append(written, path)
	}
	return written, firstErr
}

func writeFile(path string, spec Spec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, spec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func gradient(img *image.RGBA, from, to color.RGBA) {
	b := img.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		c := color.RGBA{
			R: lerp(from.R, to.R, y, h),
			G: lerp(from.G, to.G, y, h),
			B: lerp(from.B, to.B, y, h),
			A: 0xFF,
		}
		draw.Draw(img, image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, step, steps int) uint8 {
	return uint8(int(a) + (int(b)-int(a))*step/steps)
}

// circle is an alpha mask for a filled disc
type circle struct {
	center image.Point
	radius int
}

func (c *circle) ColorModel() color.Model { return color.AlphaModel }

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(c.center.X-c.radius, c.center.Y-c.radius, c.center.X+c.radius, c.center.Y+c.radius)
}

func (c *circle) At(x, y int) color.Color {
	dx, dy := x-c.center.X, y-c.center.Y
	if dx*dx+dy*dy <= c.radius*c.radius {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

func drawCircle(dst draw.Image, center image.Point, radius int, fill color.Color) {
	mask := &circle{center: center, radius: radius}
	draw.DrawMask(dst, mask.Bounds(), image.NewUniform(fill), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// drawText renders s with the bitmap face at 1x and scales it up onto dst at pt
func drawText(dst draw.Image, s string, pt image.Point, scale int, c color.Color) {
	face := basicfont.Face7x13
	w := textWidth(s)
	if w == 0 {
		return
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	target := image.Rect(pt.X, pt.Y, pt.X+w*scale, pt.Y+face.Height*scale)
	draw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}
