package design

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStore(t *testing.T) {
	s := openTestStore(t, ":memory:")
	defer s.Close()

	loop := loadLoop(t)
	flat := MustNew("Aaa flat", track.BeginStation, track.Flat, track.EndStation)
	for _, d := range []*Design{loop, flat} {
		err := s.Put(d)
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Get(loop.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(loop, got); diff != "" {
		t.Fatalf("get (-want +got):\n%s", diff)
	}

	list, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*Design{flat, loop}, list); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}

	err = s.Delete(flat.ID)
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Get(flat.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted: got %v", err)
	}
	err = s.Delete(flat.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete twice: got %v", err)
	}
}

func TestStoreRejectsInvalid(t *testing.T) {
	s := openTestStore(t, ":memory:")
	defer s.Close()

	err := s.Put(New("broken", track.Flat, track.Up25))
	if !errors.Is(err, ErrDiscontinuous) {
		t.Fatalf("got %v", err)
	}
	err = s.Put(&Design{Name: "no id", Pieces: []track.ElemType{track.Flat}})
	if err == nil {
		t.Fatal("expected error for a design without an ID")
	}
	list, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("%d designs stored", len(list))
	}
}

func TestStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "designs.db")
	loop := loadLoop(t)

	s := openTestStore(t, path)
	err := s.Put(loop)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Close()
	if err != nil {
		t.Fatal(err)
	}

	s = openTestStore(t, path)
	defer s.Close()
	got, err := s.Get(loop.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(loop, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := openTestStore(t, ":memory:")
	defer s.Close()

	c := make(chan Change, 4)
	s.Subscribe("test", c)
	loop := loadLoop(t)
	err := s.Put(loop)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Delete(loop.ID)
	if err != nil {
		t.Fatal(err)
	}
	s.Unsubscribe(c)
	err = s.Put(loop)
	if err != nil {
		t.Fatal(err)
	}

	want := []Change{
		{Type: ChangePut, ID: loop.ID, Design: loop},
		{Type: ChangeDelete, ID: loop.ID},
	}
	for i, w := range want {
		select {
		case got := <-c:
			if diff := cmp.Diff(w, got); diff != "" {
				t.Fatalf("change %d (-want +got):\n%s", i, diff)
			}
		case <-time.After(time.Second):
			t.Fatalf("change %d not delivered", i)
		}
	}
	select {
	case got := <-c:
		t.Fatalf("change after unsubscribe: %+v", got)
	default:
	}
}

func TestParseKey(t *testing.T) {
	id := uuid.New()
	got, ok := parseKey(key(id))
	if !ok || got != id {
		t.Fatalf("got %s, %t", got, ok)
	}
	for _, k := range []string{"design:nope:data", "form:" + id.String() + ":data", "design:" + id.String()} {
		if _, ok := parseKey(k); ok {
			t.Errorf("%s parsed", k)
		}
	}
}
