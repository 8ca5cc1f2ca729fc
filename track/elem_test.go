package track

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElemTypeNames(t *testing.T) {
	seen := map[string]ElemType{}
	for i := ElemType(0); i < ElemTypeCount; i++ {
		name := i.String()
		if name == "" {
			t.Fatalf("%d: empty name", i)
		}
		if prev, ok := seen[name]; ok {
			t.Fatalf("%d and %d share name %s", prev, i, name)
		}
		seen[name] = i
		got, err := ParseElemType(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != i {
			t.Fatalf("parse %s: got %d, want %d", name, got, i)
		}
	}
}

func TestElemTypeString(t *testing.T) {
	cases := map[ElemType]string{
		Flat:                    "Flat",
		LeftVerticalLoop:        "LeftVerticalLoop",
		FlyerHalfLoopInvertedUp: "FlyerHalfLoopInvertedUp",
		DiagBooster:             "DiagBooster",
		ElemTypeNone:            "None",
		ElemTypeCount:           "ElemType(297)",
		ElemTypeCount + 1:       "ElemType(298)",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d: got %s, want %s", uint16(typ), got, want)
		}
	}
}

func TestParseElemTypeUnknown(t *testing.T) {
	_, err := ParseElemType("LeftQuarterTurn7Tiles")
	if !errors.Is(err, ErrUnknownElemType) {
		t.Fatalf("got %v, want ErrUnknownElemType", err)
	}
	got, err := ParseElemType("None")
	if err != nil || got != ElemTypeNone {
		t.Fatalf("None: got %v, %v", got, err)
	}
}

func TestElemTypeJSON(t *testing.T) {
	type piece struct {
		Type ElemType `json:"type"`
		Alt  ElemType `json:"alt"`
	}
	in := piece{Type: HalfLoopUp, Alt: ElemTypeNone}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"HalfLoopUp","alt":"None"}` {
		t.Fatalf("marshal: got %s", data)
	}
	var out piece
	err = json.Unmarshal(data, &out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}

	err = json.Unmarshal([]byte(`{"type":"Spaghetti"}`), &out)
	if !errors.Is(err, ErrUnknownElemType) {
		t.Fatalf("got %v, want ErrUnknownElemType", err)
	}
	_, err = json.Marshal(piece{Type: ElemTypeCount})
	if err == nil {
		t.Fatal("expected error marshalling an invalid type")
	}
}

func TestMustParseElemTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseElemType("nope")
}

func TestFlagsNames(t *testing.T) {
	f := FlagUp | FlagAllowLiftHill | FlagBanked
	want := []string{"up", "allow-lift-hill", "banked"}
	if diff := cmp.Diff(want, f.Names()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if got := f.String(); got != "up|allow-lift-hill|banked" {
		t.Fatalf("string: got %s", got)
	}
	if !f.Has(FlagUp | FlagBanked) {
		t.Fatal("Has(up|banked) = false")
	}
	if f.Has(FlagUp | FlagDown) {
		t.Fatal("Has(up|down) = true")
	}
	if len(flagNames) != 18 {
		t.Fatalf("%d flag names", len(flagNames))
	}
}
