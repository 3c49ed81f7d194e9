package summary

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Width of the rendered image in pixels.
	Width = 800
	// Height of the rendered image in pixels.
	Height = 600
	// TopCount is the number of ranked countries shown.
	TopCount = 5
)

var (
	colorDarkBlue  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	colorLightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	colorGray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Ranked is one entry of the top-GDP list.
type Ranked struct {
	Name string
	GDP  decimal.Decimal
}

// Summary is the data drawn onto the image.
type Summary struct {
	TotalCount      int64
	Top             []Ranked
	LastRefreshedAt time.Time
}

// Renderer draws summaries as PNG images.
// It is safe for concurrent use; faces are created per render.
type Renderer struct {
	regular *opentype.Font
	bold    *opentype.Font
	italic  *opentype.Font
}

// NewRenderer parses the embedded Go fonts.
func NewRenderer() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	italic, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse italic font: %w", err)
	}
	return &Renderer{regular: regular, bold: bold, italic: italic}, nil
}

// Lines returns the text lines of the image, top to bottom.
func Lines(s Summary) []string {
	lines := []string{
		"Country Currency Summary",
		fmt.Sprintf("Total Countries: %d", s.TotalCount),
		"Top 5 Countries by Estimated GDP:",
	}
	for i, r := range s.Top {
		lines = append(lines, fmt.Sprintf("%d. %s: $%s", i+1, r.Name, FormatGDP(r.GDP)))
	}
	if len(s.Top) < TopCount {
		lines = append(lines, fmt.Sprintf("(Only %d countries with valid GDP data)", len(s.Top)))
	}
	lines = append(lines, fmt.Sprintf("Last Refreshed: %s UTC", s.LastRefreshedAt.UTC().Format(time.DateTime)))
	return lines
}

// FormatGDP renders an amount with thousands separators and two decimals.
func FormatGDP(d decimal.Decimal) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Render draws s and returns the PNG encoded image.
func (r *Renderer) Render(s Summary) ([]byte, error) {
	faces, err := r.newFaces()
	if err != nil {
		return nil, err
	}
	defer faces.close()

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	strokeRect(img, image.Rect(10, 10, Width-10, Height-10), 3, colorDarkBlue)

	lines := Lines(s)
	drawText(img, faces.title, colorDarkBlue, 50, 70, lines[0])
	hline(img, 50, Width-50, 90, 2, colorLightGray)
	drawText(img, faces.total, color.Black, 50, 140, lines[1])
	drawText(img, faces.header, colorDarkBlue, 50, 200, lines[2])

	y := 245
	for _, line := range lines[3 : 3+len(s.Top)] {
		drawText(img, faces.entry, color.Black, 70, y, line)
		y += 45
	}
	if len(s.Top) < TopCount {
		drawText(img, faces.note, colorGray, 70, y, lines[3+len(s.Top)])
	}

	hline(img, 50, Width-50, Height-100, 2, colorLightGray)
	drawText(img, faces.stamp, colorGray, 50, Height-50, lines[len(lines)-1])

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

type faceSet struct {
	title, total, header, entry, note, stamp font.Face
}

func (f *faceSet) close() {
	for _, face := range []font.Face{f.title, f.total, f.header, f.entry, f.note, f.stamp} {
		if face != nil {
			_ = face.Close()
		}
	}
}

func (r *Renderer) newFaces() (*faceSet, error) {
	fs := &faceSet{}
	specs := []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&fs.title, r.bold, 40},
		{&fs.total, r.bold, 26},
		{&fs.header, r.bold, 28},
		{&fs.entry, r.regular, 22},
		{&fs.note, r.italic, 18},
		{&fs.stamp, r.italic, 20},
	}
	for _, spec := range specs {
		face, err := opentype.NewFace(spec.font, &opentype.FaceOptions{
			Size:    spec.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fs.close()
			return nil, fmt.Errorf("failed to create font face: %w", err)
		}
		*spec.dst = face
	}
	return fs, nil
}

func drawText(dst draw.Image, face font.Face, c color.Color, x, y int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func hline(dst draw.Image, x0, x1, y, thickness int, c color.Color) {
	half := thickness / 2
	draw.Draw(dst, image.Rect(x0, y-half, x1, y-half+thickness), image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(dst draw.Image, r image.Rectangle, thickness int, c color.Color) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness),
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y),
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}
