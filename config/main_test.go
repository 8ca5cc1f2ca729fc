package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	err := Default().Validate()
	if err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("testdata/kiseki.json")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.DBPath = "/var/lib/kiseki/designs.db"
	want.RideCost = 250
	want.Velocity = 0xA0000
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown-key", `{"db": "x"}`},
		{"syntax", `{"db-path": `},
		{"wrong-type", `{"ride-cost": "cheap"}`},
		{"empty-db-path", `{"db-path": ""}`},
		{"negative-cost", `{"ride-cost": -1}`},
		{"zero-step", `{"sample-step": 0}`},
	}
	dir := t.TempDir()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".json")
			err := os.WriteFile(path, []byte(tc.data), 0o600)
			if err != nil {
				t.Fatal(err)
			}
			_, err = Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}

	_, err := Load(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: got %v", err)
	}
}
