package plot

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/OpenRCT2/OpenRCT2-sub002/stats"
	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/go-cmp/cmp"
)

func TestNewProfile(t *testing.T) {
	p, err := NewProfile(track.Watersplash, 32)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int16{0, 32, 64, 96, 128, 160}, p.Progress); diff != "" {
		t.Fatalf("progress (-want +got):\n%s", diff)
	}
	if len(p.Series) != 4 {
		t.Fatalf("%d series", len(p.Series))
	}
	if diff := cmp.Diff([]float64{-150, 150, 0, 150, -150, -150}, p.Series[0]); diff != "" {
		t.Fatalf("vertical (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 0, 0, 0, 0, 0}, p.Series[1]); diff != "" {
		t.Fatalf("lateral (-want +got):\n%s", diff)
	}
	for j, x := range p.Progress {
		if got, want := p.Series[2][j], p.Fits[0].Evaluate(float64(x)); got != want {
			t.Fatalf("trend at %d: %f, want %f", x, got, want)
		}
	}
	if diff := cmp.Diff([]string{"vertical", "lateral", "vertical trend", "lateral trend"}, p.Labels); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
}

func TestNewProfileStep(t *testing.T) {
	for _, step := range []int16{0, -3, math.MaxInt16} {
		p, err := NewProfile(track.Flat, step)
		if err != nil {
			t.Fatal(err)
		}
		if len(p.Progress) != 2 {
			t.Fatalf("step %d: %d samples", step, len(p.Progress))
		}
	}
	_, err := NewProfile(track.ElemTypeCount, 1)
	if !errors.Is(err, track.ErrUnknownElemType) {
		t.Fatalf("got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	p, err := NewProfile(track.LeftQuarterTurn5Tiles, 4)
	if err != nil {
		t.Fatal(err)
	}
	s := p.Describe()
	for _, want := range []string{"LeftQuarterTurn5Tiles", "length 124", "lateral: const-98"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q missing from:\n%s", want, s)
		}
	}
	if got := formatRelation(stats.Relation{Coeffs: []float64{1, 2, 3}}); got != "1 + 2x + 3x^2" {
		t.Errorf("formatRelation: %s", got)
	}
}

func TestWidgets(t *testing.T) {
	p, err := NewProfile(track.HalfLoopUp, 8)
	if err != nil {
		t.Fatal(err)
	}
	plot, caption := p.Widgets(80, 24)
	if len(plot.Data) != 4 || len(plot.LineColors) != len(plot.Data) {
		t.Fatalf("plot: %d series, %d colors", len(plot.Data), len(plot.LineColors))
	}
	for i, s := range plot.Data {
		for j, v := range s {
			if v < 0 || v > plot.MaxVal {
				t.Fatalf("series %d point %d: %f outside [0, %f]", i, j, v, plot.MaxVal)
			}
		}
	}
	if caption.Text != p.Describe() {
		t.Fatal("caption does not describe the profile")
	}
}
