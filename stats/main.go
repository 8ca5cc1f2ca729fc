// Package stats estimates the forces riders feel on a design without moving
// a train: every piece is evaluated at a fixed speed.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/openacid/slimarray/polyfit"
)

// baseline is 1 g in the 16.16 fixed point the factors are divided into.
const baseline = 0xA0000

// GForces is in hundredths of a g; 100 is what a rider feels standing still.
type GForces struct {
	Vertical int32 `json:"vertical"`
	Lateral  int32 `json:"lateral"`
}

// At returns the forces on d at progress for a train moving at velocity
// (16.16 fixed point). Gravity is taken from the piece's starting pitch and
// roll.
func At(d *track.Descriptor, progress int16, velocity int32) GForces {
	def := d.Definition
	pitch := def.PitchStart.Degrees() * math.Pi / 180
	roll := def.RollStart.Degrees() * math.Pi / 180
	vertical := int64(math.Round(baseline * math.Cos(pitch) * math.Cos(roll)))
	var lateral int64

	speed := int64(velocity)
	if speed < 0 {
		speed = -speed
	}
	if f := d.VerticalFactor(progress); f != 0 {
		vertical += speed * 98 / int64(f)
	}
	if f := d.LateralFactor(progress); f != 0 {
		lateral += speed * 98 / int64(f)
	}
	return GForces{
		Vertical: int32(vertical * 10 >> 16),
		Lateral:  int32(lateral * 10 >> 16),
	}
}

// Sample is the raw factor pair of a piece at one progress value.
type Sample struct {
	Progress int16 `json:"progress"`
	Vertical int32 `json:"vertical"`
	Lateral  int32 `json:"lateral"`
}

// Samples evaluates both factors of t from 0 up to its piece length.
func Samples(t track.ElemType, step int16) []Sample {
	if step <= 0 {
		step = 1
	}
	d := track.GetDescriptor(t)
	res := make([]Sample, 0, int(d.PieceLength/step)+1)
	for p := int16(0); p < d.PieceLength; p += step {
		res = append(res, Sample{
			Progress: p,
			Vertical: d.VerticalFactor(p),
			Lateral:  d.LateralFactor(p),
		})
	}
	return res
}

// Summary holds the extremes of a run of pieces. The *Piece fields index
// into the pieces passed to Analyze.
type Summary struct {
	MaxVertical      int32 `json:"max-vertical"`
	MaxVerticalPiece int   `json:"max-vertical-piece"`
	MinVertical      int32 `json:"min-vertical"`
	MinVerticalPiece int   `json:"min-vertical-piece"`
	MaxLateral       int32 `json:"max-lateral"`
	MaxLateralPiece  int   `json:"max-lateral-piece"`
	Samples          int   `json:"samples"`
}

// Analyze evaluates every progress value of every piece at velocity. The
// lateral extreme is by magnitude.
func Analyze(pieces []track.ElemType, velocity int32) Summary {
	s := Summary{
		MaxVertical:      math.MinInt32,
		MinVertical:      math.MaxInt32,
		MaxVerticalPiece: -1,
		MinVerticalPiece: -1,
		MaxLateralPiece:  -1,
	}
	for i, t := range pieces {
		d := track.GetDescriptor(t)
		for p := int16(0); p < d.PieceLength; p++ {
			g := At(d, p, velocity)
			s.Samples++
			if g.Vertical > s.MaxVertical {
				s.MaxVertical, s.MaxVerticalPiece = g.Vertical, i
			}
			if g.Vertical < s.MinVertical {
				s.MinVertical, s.MinVerticalPiece = g.Vertical, i
			}
			lateral := g.Lateral
			if lateral < 0 {
				lateral = -lateral
			}
			if lateral > s.MaxLateral || s.MaxLateralPiece == -1 {
				s.MaxLateral, s.MaxLateralPiece = lateral, i
			}
		}
	}
	if s.Samples == 0 {
		return Summary{MaxVerticalPiece: -1, MinVerticalPiece: -1, MaxLateralPiece: -1}
	}
	return s
}

type Axis int

const (
	AxisVertical Axis = iota
	AxisLateral
)

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisLateral:
		return "lateral"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (s Sample) Value(a Axis) int32 {
	if a == AxisLateral {
		return s.Lateral
	}
	return s.Vertical
}

var ErrNoSamples = errors.New("no samples")

// Relation is a polynomial in progress.
type Relation struct {
	// Coeffs are lowest order first: y = Coeffs[0] + Coeffs[1]*x + ...
	Coeffs []float64 `json:"coeffs"`
}

// Fit fits a quadratic (or lower, when there are too few samples) to the
// axis factor of samples.
func Fit(samples []Sample, axis Axis) (Relation, error) {
	if len(samples) == 0 {
		return Relation{}, ErrNoSamples
	}
	if len(samples) == 1 {
		return Relation{Coeffs: []float64{float64(samples[0].Value(axis))}}, nil
	}
	degree := 2
	if len(samples) == 2 {
		degree = 1
	}
	fit := polyfit.NewFit(nil, nil, degree)
	for _, s := range samples {
		fit.Add(float64(s.Progress), float64(s.Value(axis)))
	}
	return Relation{Coeffs: fit.Solve()}, nil
}

func (r Relation) Evaluate(x float64) float64 {
	y := 0.0
	for i := len(r.Coeffs) - 1; i >= 0; i-- {
		y = y*x + r.Coeffs[i]
	}
	return y
}

// SolveForX finds the progress in [min, max] at which the relation reaches
// y. For quadratics with two roots in range the lower one is returned.
func (r Relation) SolveForX(y, min, max float64) (x float64, ok bool) {
	inRange := func(x float64) bool { return x >= min && x <= max }
	switch len(r.Coeffs) {
	case 0, 1:
		return 0, false
	case 2:
		if r.Coeffs[1] == 0 {
			return 0, false
		}
		x := (y - r.Coeffs[0]) / r.Coeffs[1]
		return x, inRange(x)
	case 3:
		a := r.Coeffs[2]
		b := r.Coeffs[1]
		c := r.Coeffs[0] - y
		if a == 0 {
			return Relation{Coeffs: r.Coeffs[:2]}.SolveForX(y, min, max)
		}
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, false
		}
		// Citardauq form, stable for nearly linear fits where a is tiny.
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		if q == 0 {
			return 0, inRange(0)
		}
		xa := q / a
		xb := c / q
		switch {
		case inRange(xa) && inRange(xb):
			return math.Min(xa, xb), true
		case inRange(xa):
			return xa, true
		case inRange(xb):
			return xb, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}
