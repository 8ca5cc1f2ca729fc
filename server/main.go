// Package server serves the element catalog and stored designs over HTTP,
// with a Server-Sent Events stream of design changes.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/OpenRCT2/OpenRCT2-sub002/design"
	"github.com/OpenRCT2/OpenRCT2-sub002/stats"
	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/uuid"
	"github.com/r3labs/sse/v2"
	"go.uber.org/zap"
)

//go:embed index.html
var templates embed.FS

var tmpl = template.Must(template.New("index").Funcs(sprig.FuncMap()).ParseFS(templates, "*.html"))

// DesignsStream is the SSE stream carrying design changes.
const DesignsStream = "designs"

type Conf struct {
	RideCost int32
	// Velocity is used for every force estimate (16.16 fixed point).
	Velocity   int32
	SampleStep int16
}

type Server struct {
	store  *design.Store
	conf   Conf
	sm     *http.ServeMux
	events *sse.Server

	done      chan struct{}
	closeOnce sync.Once
}

// New returns a server reading from and writing to store. Close stops the
// event forwarding; it does not close store. Close may be called more than
// once.
func New(store *design.Store, conf Conf) *Server {
	if conf.SampleStep <= 0 {
		conf.SampleStep = 1
	}
	s := &Server{
		store:  store,
		conf:   conf,
		sm:     http.NewServeMux(),
		events: sse.New(),
		done:   make(chan struct{}),
	}
	s.events.AutoReplay = false
	s.events.CreateStream(DesignsStream)
	s.sm.HandleFunc("/", s.handleIndex)
	s.sm.HandleFunc("/elements", s.handleElements)
	s.sm.HandleFunc("/elements/", s.handleElement)
	s.sm.HandleFunc("/designs", s.handleDesigns)
	s.sm.HandleFunc("/designs/", s.handleDesign)
	s.sm.Handle("/events", s.events)

	ch := make(chan design.Change)
	s.store.Subscribe("server", ch)
	go s.forward(ch)
	return s
}

func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.sm.ServeHTTP(w, r)
}

// Event is the data of every message on DesignsStream.
type Event struct {
	Type    string         `json:"type"`
	ID      uuid.UUID      `json:"id"`
	Design  *design.Design `json:"design,omitempty"`
	Summary *stats.Summary `json:"summary,omitempty"`
}

func (s *Server) forward(ch chan design.Change) {
	defer s.events.Close()
	defer s.store.Unsubscribe(ch)
	for {
		select {
		case <-s.done:
			return
		case c := <-ch:
			e := Event{Type: c.Type.String(), ID: c.ID, Design: c.Design}
			if c.Design != nil {
				summary := stats.Analyze(c.Design.Pieces, s.conf.Velocity)
				e.Summary = &summary
			}
			data, err := json.Marshal(e)
			if err != nil {
				zap.S().Errorw("marshal event failed", "id", c.ID, "err", err)
				continue
			}
			ok := s.events.TryPublish(DesignsStream, &sse.Event{
				Event: []byte(e.Type),
				Data:  data,
			})
			zap.S().Debugw("published design change", "type", e.Type, "id", c.ID, "ok", ok)
		}
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	designs, err := s.store.List()
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = tmpl.ExecuteTemplate(w, "index", map[string]interface{}{
		"elements": track.All(),
		"designs":  designs,
		"rideCost": s.conf.RideCost,
		"velocity": s.conf.Velocity,
		"now":      time.Now().Format(time.RFC3339),
	})
	if err != nil {
		zap.S().Errorw("render index failed", "err", err)
	}
}

// Element is the JSON form of a track.Descriptor.
type Element struct {
	Type          track.ElemType             `json:"type"`
	Index         int                        `json:"index"`
	Coordinates   track.Coordinates          `json:"coordinates"`
	PieceLength   int16                      `json:"piece-length"`
	PriceModifier int32                      `json:"price-modifier"`
	Price         int32                      `json:"price"`
	Flags         []string                   `json:"flags"`
	Next          string                     `json:"next"`
	Previous      string                     `json:"previous"`
	Mirror        track.ElemType             `json:"mirror"`
	Alternative   track.ElemType             `json:"alternative"`
	Group         string                     `json:"group"`
	PitchStart    string                     `json:"pitch-start"`
	PitchEnd      string                     `json:"pitch-end"`
	RollStart     string                     `json:"roll-start"`
	RollEnd       string                     `json:"roll-end"`
	Spin          string                     `json:"spin"`
	Sequences     []track.SequenceDescriptor `json:"sequences"`
	Vertical      string                     `json:"vertical"`
	Lateral       string                     `json:"lateral"`
	Samples       []stats.Sample             `json:"samples,omitempty"`
}

func (s *Server) element(d *track.Descriptor, samples bool) Element {
	e := Element{
		Type:          d.Type,
		Index:         int(d.Type),
		Coordinates:   d.Coordinates,
		PieceLength:   d.PieceLength,
		PriceModifier: d.PriceModifier,
		Price:         d.Price(s.conf.RideCost),
		Flags:         d.Flags.Names(),
		Next:          d.CurveChain.Next.String(),
		Previous:      d.CurveChain.Previous.String(),
		Mirror:        d.MirrorElement,
		Alternative:   d.AlternativeType,
		Group:         d.Definition.Group.String(),
		PitchStart:    d.Definition.PitchStart.String(),
		PitchEnd:      d.Definition.PitchEnd.String(),
		RollStart:     d.Definition.RollStart.String(),
		RollEnd:       d.Definition.RollEnd.String(),
		Spin:          d.SpinFunction.String(),
		Sequences:     d.Sequences,
		Vertical:      d.VerticalKind.String(),
		Lateral:       d.LateralKind.String(),
	}
	if samples {
		e.Samples = stats.Samples(d.Type, s.conf.SampleStep)
	}
	return e
}

func (s *Server) handleElements(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	descs := track.All()
	if q.Has("turns") {
		descs = track.Filter((*track.Descriptor).IsTurn)
	}
	res := make([]Element, len(descs))
	for i, d := range descs {
		res[i] = s.element(d, q.Has("samples"))
	}
	s.writeJSON(w, r, res)
}

func (s *Server) handleElement(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/elements/")
	t, err := track.ParseElemType(name)
	if err != nil || !t.Valid() {
		s.fail(w, r, http.StatusNotFound, track.ErrUnknownElemType)
		return
	}
	s.writeJSON(w, r, s.element(track.GetDescriptor(t), true))
}

func (s *Server) handleDesigns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		designs, err := s.store.List()
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, err)
			return
		}
		if designs == nil {
			designs = []*design.Design{}
		}
		s.writeJSON(w, r, designs)
	case http.MethodPost:
		var d design.Design
		err := json.NewDecoder(r.Body).Decode(&d)
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		if d.ID == (uuid.UUID{}) {
			d.ID = uuid.New()
		}
		err = s.store.Put(&d)
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		s.writeJSONStatus(w, r, http.StatusCreated, &d)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// DesignStats is the response of /designs/{id}/stats.
type DesignStats struct {
	ID         uuid.UUID     `json:"id"`
	Velocity   int32         `json:"velocity"`
	Length     int           `json:"length"`
	Price      int64         `json:"price"`
	Footprint  int           `json:"footprint"`
	Inversions int           `json:"inversions"`
	Summary    stats.Summary `json:"summary"`
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/designs/")
	rawID, sub, _ := strings.Cut(rest, "/")
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	switch {
	case sub == "" && r.Method == http.MethodDelete:
		err = s.store.Delete(id)
		if err != nil {
			s.fail(w, r, statusOf(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	case sub == "" || sub == "stats":
		if !allow(w, r, http.MethodGet) {
			return
		}
	default:
		http.NotFound(w, r)
		return
	}
	d, err := s.store.Get(id)
	if err != nil {
		s.fail(w, r, statusOf(err), err)
		return
	}
	if sub == "" {
		s.writeJSON(w, r, d)
		return
	}
	s.writeJSON(w, r, DesignStats{
		ID:         d.ID,
		Velocity:   s.conf.Velocity,
		Length:     d.Length(),
		Price:      d.Price(s.conf.RideCost),
		Footprint:  d.Footprint(),
		Inversions: d.Inversions(),
		Summary:    stats.Analyze(d.Pieces, s.conf.Velocity),
	})
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

func statusOf(err error) int {
	if errors.Is(err, design.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	zap.S().Infow("request failed", "method", r.Method, "path", r.URL.Path, "code", code, "err", err)
	http.Error(w, err.Error(), code)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	s.writeJSONStatus(w, r, http.StatusOK, v)
}

func (s *Server) writeJSONStatus(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		zap.S().Errorw("write response failed", "path", r.URL.Path, "err", err)
	}
}
