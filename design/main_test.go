package design

import (
	_ "embed"
	"encoding/json"
	"errors"
	"testing"

	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

//go:embed testdata/loop.json
var loopJSON []byte

func loadLoop(t *testing.T) *Design {
	t.Helper()
	var d Design
	err := json.Unmarshal(loopJSON, &d)
	if err != nil {
		t.Fatal(err)
	}
	return &d
}

func TestDecode(t *testing.T) {
	d := loadLoop(t)
	want := &Design{
		ID:   uuid.MustParse("6f1c2b0e-3d5a-4f6e-9a47-1c2d3e4f5a6b"),
		Name: "Loop and splash",
		Pieces: []track.ElemType{
			track.BeginStation,
			track.FlatToUp25,
			track.Up25,
			track.LeftVerticalLoop,
			track.Down25ToFlat,
			track.LeftQuarterTurn5Tiles,
			track.Watersplash,
			track.EndStation,
		},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	err := loadLoop(t).Validate()
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		pieces []track.ElemType
		want   error
	}{
		{"empty", nil, ErrEmpty},
		{"unknown", []track.ElemType{track.Flat, track.ElemTypeCount}, track.ErrUnknownElemType},
		{"pitch", []track.ElemType{track.Flat, track.Up25}, ErrDiscontinuous},
		{"roll", []track.ElemType{track.FlatToLeftBank, track.Flat}, ErrDiscontinuous},
		{"inverted", []track.ElemType{track.HalfLoopUp, track.Flat}, ErrDiscontinuous},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := New(tc.name, tc.pieces...).Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	ok := New("banked", track.FlatToLeftBank, track.LeftBank, track.LeftBankToFlat)
	if err := ok.Validate(); err != nil {
		t.Fatal(err)
	}
	halfLoops := New("half loops", track.Up25, track.HalfLoopUp, track.HalfLoopDown, track.Down25)
	if err := halfLoops.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestMustNew(t *testing.T) {
	d := MustNew("flat", track.Flat, track.Flat)
	if d.ID == (uuid.UUID{}) {
		t.Fatal("no ID assigned")
	}
	if d2 := MustNew("flat", track.Flat); d2.ID == d.ID {
		t.Fatal("IDs not unique")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew("bad", track.Flat, track.Up60)
}

func TestMetrics(t *testing.T) {
	d := loadLoop(t)
	if got := d.Length(); got != 772 {
		t.Errorf("length: got %d", got)
	}
	if got := d.Price(100); got != 2174 {
		t.Errorf("price: got %d", got)
	}
	if got := d.Footprint(); got != 24 {
		t.Errorf("footprint: got %d", got)
	}
	if got := d.Inversions(); got != 1 {
		t.Errorf("inversions: got %d", got)
	}
}

func TestMirror(t *testing.T) {
	d := loadLoop(t)
	m := d.Mirror()
	if m.ID != d.ID {
		t.Fatal("mirror changed the ID")
	}
	if m.Pieces[3] != track.RightVerticalLoop || m.Pieces[5] != track.RightQuarterTurn5Tiles {
		t.Fatalf("mirror pieces: %v", m.Pieces)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if m.Length() != d.Length() || m.Footprint() != d.Footprint() || m.Price(100) != d.Price(100) {
		t.Fatal("mirror changed metrics")
	}
	if diff := cmp.Diff(d.Pieces, m.Mirror().Pieces); diff != "" {
		t.Fatalf("mirror twice (-want +got):\n%s", diff)
	}
	if d.Pieces[3] != track.LeftVerticalLoop {
		t.Fatal("mirror modified the original")
	}
}
