// Package plot draws the force factor profile of a piece in the terminal.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/OpenRCT2/OpenRCT2-sub002/stats"
	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// Profile is the plot data for one piece. Series holds the vertical and
// lateral factors followed by their fitted trends, all at the same progress
// values.
type Profile struct {
	Type     track.ElemType
	Progress []int16
	Series   [][]float64
	Labels   []string
	Fits     [2]stats.Relation
}

var axes = [2]stats.Axis{stats.AxisVertical, stats.AxisLateral}

// NewProfile samples t every step. The step is shortened when the piece is
// too short for two samples.
func NewProfile(t track.ElemType, step int16) (Profile, error) {
	d := track.GetDescriptor(t)
	if !t.Valid() {
		return Profile{}, fmt.Errorf("profile: %w: %s", track.ErrUnknownElemType, t)
	}
	if step <= 0 || step > d.PieceLength/2 {
		step = d.PieceLength / 2
	}
	if step <= 0 {
		step = 1
	}
	samples := stats.Samples(t, step)
	p := Profile{
		Type:     t,
		Progress: make([]int16, len(samples)),
		Series:   make([][]float64, 4),
	}
	for i := range p.Series {
		p.Series[i] = make([]float64, len(samples))
	}
	for i, axis := range axes {
		fit, err := stats.Fit(samples, axis)
		if err != nil {
			return Profile{}, fmt.Errorf("profile %s: %w", t, err)
		}
		p.Fits[i] = fit
		for j, s := range samples {
			p.Series[i][j] = float64(s.Value(axis))
			p.Series[i+2][j] = fit.Evaluate(float64(s.Progress))
		}
		p.Labels = append(p.Labels, axis.String())
	}
	for _, axis := range axes {
		p.Labels = append(p.Labels, axis.String()+" trend")
	}
	for j, s := range samples {
		p.Progress[j] = s.Progress
	}
	return p, nil
}

// Describe is the caption shown next to the plot.
func (p Profile) Describe() string {
	d := track.GetDescriptor(p.Type)
	b := new(strings.Builder)
	fmt.Fprintf(b, "%s (%s)\n", p.Type, d.Definition.Group)
	fmt.Fprintf(b, "length %d, %d samples\n", d.PieceLength, len(p.Progress))
	fmt.Fprintf(b, "vertical: %s\n", d.VerticalKind)
	fmt.Fprintf(b, "lateral: %s\n", d.LateralKind)
	for i, axis := range axes {
		fmt.Fprintf(b, "%s trend: %s\n", axis, formatRelation(p.Fits[i]))
	}
	return b.String()
}

func formatRelation(r stats.Relation) string {
	if len(r.Coeffs) == 0 {
		return "0"
	}
	terms := make([]string, 0, len(r.Coeffs))
	for i, c := range r.Coeffs {
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%.3g", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%.3gx", c))
		default:
			terms = append(terms, fmt.Sprintf("%.3gx^%d", c, i))
		}
	}
	return strings.Join(terms, " + ")
}

// shifted returns the series moved up so that none is negative, and the
// amount they were moved by. Plots only draw upwards from zero.
func (p Profile) shifted() ([][]float64, float64) {
	min := 0.0
	for _, s := range p.Series {
		for _, v := range s {
			min = math.Min(min, v)
		}
	}
	res := make([][]float64, len(p.Series))
	for i, s := range p.Series {
		res[i] = make([]float64, len(s))
		for j, v := range s {
			res[i][j] = v - min
		}
	}
	return res, -min
}

// Widgets lays the profile out in a width by height area.
func (p Profile) Widgets(width, height int) (*widgets.Plot, *widgets.Paragraph) {
	caption := widgets.NewParagraph()
	caption.Title = "piece"
	caption.Text = p.Describe()
	caption.SetRect(0, 0, width, 8)

	plot := widgets.NewPlot()
	data, offset := p.shifted()
	plot.Title = strings.Join(p.Labels, ", ")
	if offset != 0 {
		plot.Title += fmt.Sprintf(" (offset %g)", offset)
	}
	plot.Data = data
	plot.MaxVal = 1
	for _, s := range data {
		for _, v := range s {
			plot.MaxVal = math.Max(plot.MaxVal, v)
		}
	}
	plot.DataLabels = p.Labels
	plot.LineColors = []ui.Color{ui.ColorGreen, ui.ColorYellow, ui.ColorBlue, ui.ColorMagenta}
	plot.AxesColor = ui.ColorWhite
	plot.Marker = widgets.MarkerBraille
	plot.SetRect(0, 8, width, height)
	return plot, caption
}

// Show draws the profile of t until q or Ctrl-C is pressed.
func Show(t track.ElemType, step int16) error {
	p, err := NewProfile(t, step)
	if err != nil {
		return err
	}
	err = ui.Init()
	if err != nil {
		return fmt.Errorf("termui init: %s", err)
	}
	defer ui.Close()

	render := func() {
		w, h := ui.TerminalDimensions()
		plot, caption := p.Widgets(w, h)
		ui.Clear()
		ui.Render(caption, plot)
	}
	render()
	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Resize>":
			render()
		}
	}
	return nil
}
