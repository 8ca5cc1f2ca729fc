package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/OpenRCT2/OpenRCT2-sub002/design"
	"github.com/OpenRCT2/OpenRCT2-sub002/stats"
	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

const testVelocity = 0x50000

func newTestServer(t *testing.T) (*design.Store, *httptest.Server) {
	t.Helper()
	store, err := design.OpenStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s := New(store, Conf{RideCost: 100, Velocity: testVelocity, SampleStep: 32})
	ts := httptest.NewServer(s)
	t.Cleanup(func() {
		ts.Close()
		s.Close()
		store.Close()
	})
	return store, ts
}

func get(t *testing.T, url string, wantCode int) []byte {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != wantCode {
		t.Fatalf("GET %s: status %d, want %d: %s", url, resp.StatusCode, wantCode, body)
	}
	return body
}

func decode(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	err := json.Unmarshal(data, v)
	if err != nil {
		t.Fatalf("%s: %s", err, data)
	}
}

func postDesign(t *testing.T, ts *httptest.Server, body string, wantCode int) *design.Design {
	t.Helper()
	resp, err := http.Post(ts.URL+"/designs", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != wantCode {
		t.Fatalf("status %d, want %d: %s", resp.StatusCode, wantCode, data)
	}
	if wantCode != http.StatusCreated {
		return nil
	}
	var d design.Design
	decode(t, data, &d)
	return &d
}

func TestIndex(t *testing.T) {
	store, ts := newTestServer(t)
	err := store.Put(design.MustNew("Station only", track.BeginStation, track.EndStation))
	if err != nil {
		t.Fatal(err)
	}
	body := string(get(t, ts.URL+"/", http.StatusOK))
	for _, want := range []string{"Station only", "LeftQuarterTurn5Tiles", "water-splash", "turn-left"} {
		if !strings.Contains(body, want) {
			t.Errorf("index does not mention %q", want)
		}
	}
	get(t, ts.URL+"/nope", http.StatusNotFound)
}

func TestElements(t *testing.T) {
	_, ts := newTestServer(t)

	var all []Element
	decode(t, get(t, ts.URL+"/elements", http.StatusOK), &all)
	if len(all) != int(track.ElemTypeCount) {
		t.Fatalf("%d elements", len(all))
	}
	for i, e := range all {
		if e.Index != i || e.Type != track.ElemType(i) {
			t.Fatalf("element %d is %s (%d)", i, e.Type, e.Index)
		}
		if e.Samples != nil {
			t.Fatalf("%s: samples without asking", e.Type)
		}
	}
	flat := all[track.Flat]
	if flat.Price != 100 || flat.Mirror != track.Flat || flat.Alternative != track.ElemTypeNone {
		t.Fatalf("flat: %+v", flat)
	}

	var e Element
	decode(t, get(t, ts.URL+"/elements/Watersplash", http.StatusOK), &e)
	if e.Vertical != "water-splash" || e.Lateral != "zero" {
		t.Fatalf("kinds: %s, %s", e.Vertical, e.Lateral)
	}
	if diff := cmp.Diff(stats.Samples(track.Watersplash, 32), e.Samples); diff != "" {
		t.Fatalf("samples (-want +got):\n%s", diff)
	}

	decode(t, get(t, ts.URL+"/elements/LeftQuarterTurn5Tiles", http.StatusOK), &e)
	if e.Mirror != track.RightQuarterTurn5Tiles || e.Lateral != "const-98" {
		t.Fatalf("turn: %+v", e)
	}

	var turns []Element
	decode(t, get(t, ts.URL+"/elements?turns", http.StatusOK), &turns)
	if len(turns) == 0 || len(turns) >= len(all) {
		t.Fatalf("%d turns of %d elements", len(turns), len(all))
	}
	for _, e := range turns {
		if !track.GetDescriptor(e.Type).IsTurn() {
			t.Fatalf("%s is not a turn", e.Type)
		}
	}

	for _, name := range []string{"Bogus", "None", ""} {
		get(t, ts.URL+"/elements/"+name, http.StatusNotFound)
	}
}

func TestDesigns(t *testing.T) {
	_, ts := newTestServer(t)

	var list []*design.Design
	decode(t, get(t, ts.URL+"/designs", http.StatusOK), &list)
	if len(list) != 0 {
		t.Fatalf("list: %v", list)
	}

	d := postDesign(t, ts, `{"name":"Hill","pieces":["BeginStation","FlatToUp25","Up25ToFlat","EndStation"]}`, http.StatusCreated)
	if d.ID == (uuid.UUID{}) {
		t.Fatal("no ID assigned")
	}
	postDesign(t, ts, `{"name":"Broken","pieces":["Flat","Up60"]}`, http.StatusBadRequest)
	postDesign(t, ts, `{"name":"Unknown","pieces":["Nope"]}`, http.StatusBadRequest)
	postDesign(t, ts, `{`, http.StatusBadRequest)

	var got design.Design
	decode(t, get(t, ts.URL+"/designs/"+d.ID.String(), http.StatusOK), &got)
	if diff := cmp.Diff(d, &got); diff != "" {
		t.Fatalf("get (-want +got):\n%s", diff)
	}

	var st DesignStats
	decode(t, get(t, ts.URL+"/designs/"+d.ID.String()+"/stats", http.StatusOK), &st)
	want := DesignStats{
		ID:         d.ID,
		Velocity:   testVelocity,
		Length:     d.Length(),
		Price:      d.Price(100),
		Footprint:  d.Footprint(),
		Inversions: 0,
		Summary:    stats.Analyze(d.Pieces, testVelocity),
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Fatalf("stats (-want +got):\n%s", diff)
	}

	get(t, ts.URL+"/designs/not-a-uuid", http.StatusBadRequest)
	get(t, ts.URL+"/designs/"+uuid.NewString(), http.StatusNotFound)
	get(t, ts.URL+"/designs/"+d.ID.String()+"/nope", http.StatusNotFound)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/designs/"+d.ID.String(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, code := range []int{http.StatusNoContent, http.StatusNotFound} {
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != code {
			t.Fatalf("delete: status %d, want %d", resp.StatusCode, code)
		}
	}
	get(t, ts.URL+"/designs/"+d.ID.String(), http.StatusNotFound)

	req, err = http.NewRequest(http.MethodPut, ts.URL+"/designs", bytes.NewReader(nil))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("put: status %d", resp.StatusCode)
	}
}

func TestEvents(t *testing.T) {
	_, ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events?stream="+DesignsStream, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	d := postDesign(t, ts, `{"name":"Flat","pieces":["BeginStation","Flat","EndStation"]}`, http.StatusCreated)

	var name string
	var e Event
	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "event: ") {
			name = strings.TrimPrefix(line, "event: ")
		}
		if strings.HasPrefix(line, "data: ") {
			decode(t, []byte(strings.TrimPrefix(line, "data: ")), &e)
			break
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if name != "put" || e.Type != "put" || e.ID != d.ID {
		t.Fatalf("event %q: %+v", name, e)
	}
	if e.Design == nil || e.Summary == nil {
		t.Fatalf("event without design or summary: %+v", e)
	}
	if diff := cmp.Diff(stats.Analyze(d.Pieces, testVelocity), *e.Summary); diff != "" {
		t.Fatalf("summary (-want +got):\n%s", diff)
	}

	get(t, ts.URL+"/events?stream=nope", http.StatusInternalServerError)
}

func TestCloseTwice(t *testing.T) {
	store, err := design.OpenStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	s := New(store, Conf{RideCost: 100, Velocity: testVelocity})
	s.Close()
	s.Close()

	// the store keeps working once the server has stopped forwarding
	err = store.Put(design.MustNew("After close", track.BeginStation, track.EndStation))
	if err != nil {
		t.Fatal(err)
	}
}
