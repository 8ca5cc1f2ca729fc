package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenRCT2/OpenRCT2-sub002/config"
	"github.com/OpenRCT2/OpenRCT2-sub002/design"
	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/uuid"
)

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"nope"}, {"show"}, {"stats", "a", "b"}, {"plot"}, {"list", "-nope"}, {"list", "extra"}} {
		err := run(config.Default(), args)
		if !errors.Is(err, errUsage) {
			t.Errorf("%q: got %v", args, err)
		}
	}
}

func TestRun(t *testing.T) {
	conf := config.Default()
	conf.DBPath = filepath.Join(t.TempDir(), "designs.db")

	store, err := design.OpenStore(conf.DBPath)
	if err != nil {
		t.Fatal(err)
	}
	d := design.MustNew("Station", track.BeginStation, track.EndStation)
	err = store.Put(d)
	if err != nil {
		t.Fatal(err)
	}
	err = store.Close()
	if err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{{"list"}, {"show", "LeftVerticalLoop"}, {"stats", d.ID.String()}} {
		err := run(conf, args)
		if err != nil {
			t.Errorf("%q: %s", args, err)
		}
	}

	err = run(conf, []string{"show", "Bogus"})
	if !errors.Is(err, track.ErrUnknownElemType) {
		t.Errorf("show unknown: got %v", err)
	}
	err = run(conf, []string{"stats", uuid.NewString()})
	if !errors.Is(err, design.ErrNotFound) {
		t.Errorf("stats missing: got %v", err)
	}
	err = run(conf, []string{"stats", "not-a-uuid"})
	if err == nil {
		t.Error("stats with a bad ID succeeded")
	}
}

func TestList(t *testing.T) {
	rows := func(t *testing.T, args ...string) []string {
		t.Helper()
		var out bytes.Buffer
		err := list(&out, args)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		return lines[1:]
	}

	all := rows(t)
	if len(all) != int(track.ElemTypeCount) {
		t.Fatalf("%d rows, want %d", len(all), track.ElemTypeCount)
	}

	turns := rows(t, "-turns")
	want := track.Filter((*track.Descriptor).IsTurn)
	if len(turns) != len(want) || len(turns) >= len(all) {
		t.Fatalf("%d turns, want %d", len(turns), len(want))
	}
	for i, row := range turns {
		fields := strings.Fields(row)
		if len(fields) < 2 || fields[1] != want[i].Type.String() {
			t.Fatalf("row %d is %q, want %s", i, row, want[i].Type)
		}
	}
}
