package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenRCT2/OpenRCT2-sub002/design"
	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestMain2(t *testing.T) {
	dbPath = filepath.Join(t.TempDir(), "designs.db")
	id := uuid.New()

	mode = "list"
	var out bytes.Buffer
	err := main2(nil, &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("empty database lists %q", out.String())
	}

	mode = "write"
	designID = id.String()
	err = main2(strings.NewReader(`{"name":"Hill","pieces":["BeginStation","FlatToUp25","Up25ToFlat","EndStation"]}`), io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	mode = "read"
	out.Reset()
	err = main2(nil, &out)
	if err != nil {
		t.Fatal(err)
	}
	var got design.Design
	err = json.Unmarshal(out.Bytes(), &got)
	if err != nil {
		t.Fatalf("%s: %s", err, out.Bytes())
	}
	want := design.Design{
		ID:     id,
		Name:   "Hill",
		Pieces: []track.ElemType{track.BeginStation, track.FlatToUp25, track.Up25ToFlat, track.EndStation},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("read (-want +got):\n%s", diff)
	}

	t.Run("replace", func(t *testing.T) {
		mode = "write"
		designID = id.String()
		err := main2(strings.NewReader(`{"name":"Station","pieces":["BeginStation","EndStation"]}`), io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		mode = "list"
		var out bytes.Buffer
		err = main2(nil, &out)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(fmt.Sprintf("%s\tStation\t2 pieces\n", id), out.String()); diff != "" {
			t.Fatalf("list (-want +got):\n%s", diff)
		}
	})

	t.Run("new ID", func(t *testing.T) {
		mode = "write"
		designID = ""
		err := main2(strings.NewReader(`{"name":"Flat","pieces":["BeginStation","Flat","EndStation"]}`), io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		mode = "list"
		var out bytes.Buffer
		err = main2(nil, &out)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("list: %q", out.String())
		}
	})

	t.Run("errors", func(t *testing.T) {
		mode = "read"
		designID = uuid.NewString()
		err := main2(nil, io.Discard)
		if !errors.Is(err, design.ErrNotFound) {
			t.Errorf("read missing: got %v", err)
		}
		designID = "not-a-uuid"
		err = main2(nil, io.Discard)
		if err == nil {
			t.Error("read with a bad ID succeeded")
		}

		mode = "write"
		designID = ""
		err = main2(strings.NewReader(`{`), io.Discard)
		if err == nil {
			t.Error("write of bad JSON succeeded")
		}
		err = main2(strings.NewReader(`{"name":"Broken","pieces":["Flat","Up60"]}`), io.Discard)
		if !errors.Is(err, design.ErrDiscontinuous) {
			t.Errorf("write of broken design: got %v", err)
		}

		mode = "nope"
		err = main2(nil, io.Discard)
		if err == nil {
			t.Error("unknown mode succeeded")
		}
	})
}
