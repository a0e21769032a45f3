// Package charts renders the exploratory figures of the passenger table
// with gonum/plot: every builder returns a Figure that is drawn once,
// encoded to a file and then dropped.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/titanic-eda/internal/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrEmptyGroup is returned when a panel would have nothing to draw.
var ErrEmptyGroup = errors.New("no values to plot")

// Formats accepted by Encode and Save.
var Formats = []string{"png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff"}

const (
	titleHeight   = 0.5 * vg.Inch
	colorBarWidth = 1.1 * vg.Inch
)

// Figure is a grid of panels with an optional super title and colour bar.
type Figure struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// Panels is row-major; every row has the same length.
	Panels [][]*plot.Plot
	// ColorBar is drawn in a strip along the right edge.
	ColorBar *plot.Plot
	// Notes carry row counts and similar facts for diagnostics.
	Notes []string
}

// Rows and Cols give the panel grid shape.
func (f *Figure) Rows() int { return len(f.Panels) }

func (f *Figure) Cols() int {
	if len(f.Panels) == 0 {
		return 0
	}
	return len(f.Panels[0])
}

// Draw lays the figure out on dc.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.Title != "" {
		pt := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(6)}
		dc.FillText(titleStyle(), pt, f.Title)
		dc = draw.Crop(dc, 0, 0, 0, -titleHeight)
	}
	if f.ColorBar != nil {
		width := dc.Max.X - dc.Min.X
		f.ColorBar.Draw(draw.Crop(dc, width-colorBarWidth, 0, 0, 0))
		dc = draw.Crop(dc, 0, -colorBarWidth, 0, 0)
	}
	if f.Rows() == 0 || f.Cols() == 0 {
		return
	}
	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadX:      4 * vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align(f.Panels, tiles, dc)
	for j, row := range f.Panels {
		for i, p := range row {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}

// Encode renders the figure in the given format and writes it to w.
func (f *Figure) Encode(w io.Writer, format string) error {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	f.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Save encodes the figure by the extension of path and writes it atomically.
func (f *Figure) Save(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("save %s: missing file extension", path)
	}
	var buf bytes.Buffer
	if err := f.Encode(&buf, format); err != nil {
		return err
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

// ValidFormat reports whether format is an accepted image extension.
func ValidFormat(format string) bool {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func titleStyle() text.Style {
	sty := plot.New().Title.TextStyle
	sty.Font.Size = vg.Points(14)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop
	return sty
}

// newPanel returns a titled plot with grid lines behind the data.
func newPanel(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 220}
	grid.Horizontal.Color = color.Gray{Y: 220}
	p.Add(grid)
	return p
}

// paletteColor is the i-th series colour with the given alpha.
func paletteColor(i int, alpha uint8) color.Color {
	r, g, b, _ := plotutil.Color(i).RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
