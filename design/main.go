// Package design models a coaster layout as an ordered run of track
// elements, and stores layouts in a buntdb database.
package design

import (
	"errors"
	"fmt"

	"github.com/OpenRCT2/OpenRCT2-sub002/track"
	"github.com/google/uuid"
)

var (
	ErrEmpty         = errors.New("design has no pieces")
	ErrDiscontinuous = errors.New("pieces do not connect")
	ErrNotFound      = errors.New("design not found")
)

type Design struct {
	ID     uuid.UUID        `json:"id"`
	Name   string           `json:"name"`
	Pieces []track.ElemType `json:"pieces"`
}

// New returns a design with a fresh ID. The pieces are not validated.
func New(name string, pieces ...track.ElemType) *Design {
	return &Design{
		ID:     uuid.New(),
		Name:   name,
		Pieces: pieces,
	}
}

// MustNew is New followed by Validate, panicking on an invalid design.
func MustNew(name string, pieces ...track.ElemType) *Design {
	d := New(name, pieces...)
	err := d.Validate()
	if err != nil {
		panic(fmt.Sprintf("design %s: %s", name, err))
	}
	return d
}

// Validate checks that every piece exists and that each piece starts with the
// pitch and roll the previous one ends with.
func (d *Design) Validate() error {
	if len(d.Pieces) == 0 {
		return ErrEmpty
	}
	for i, p := range d.Pieces {
		if !p.Valid() {
			return fmt.Errorf("piece %d: %w: %s", i, track.ErrUnknownElemType, p)
		}
	}
	for i := 1; i < len(d.Pieces); i++ {
		prev := track.GetDescriptor(d.Pieces[i-1]).Definition
		cur := track.GetDescriptor(d.Pieces[i]).Definition
		if prev.PitchEnd != cur.PitchStart || prev.RollEnd != cur.RollStart {
			return fmt.Errorf("piece %d (%s, ends %s/%s) to %d (%s, starts %s/%s): %w",
				i-1, d.Pieces[i-1], prev.PitchEnd, prev.RollEnd,
				i, d.Pieces[i], cur.PitchStart, cur.RollStart,
				ErrDiscontinuous)
		}
	}
	return nil
}

// Mirror returns a new design with every piece swapped for its mirror
// element. The ID is kept so the two can be compared.
func (d *Design) Mirror() *Design {
	pieces := make([]track.ElemType, len(d.Pieces))
	for i, p := range d.Pieces {
		pieces[i] = track.GetDescriptor(p).MirrorElement
	}
	return &Design{
		ID:     d.ID,
		Name:   d.Name + " (mirrored)",
		Pieces: pieces,
	}
}

func (d *Design) Clone() *Design {
	pieces := make([]track.ElemType, len(d.Pieces))
	copy(pieces, d.Pieces)
	return &Design{
		ID:     d.ID,
		Name:   d.Name,
		Pieces: pieces,
	}
}

func (d *Design) Descriptors() []*track.Descriptor {
	res := make([]*track.Descriptor, len(d.Pieces))
	for i, p := range d.Pieces {
		res[i] = track.GetDescriptor(p)
	}
	return res
}

// Length is the total nominal distance of the design.
func (d *Design) Length() int {
	sum := 0
	for _, desc := range d.Descriptors() {
		sum += int(desc.PieceLength)
	}
	return sum
}

// Price is the construction cost for a ride whose base piece cost is
// rideCost.
func (d *Design) Price(rideCost int32) int64 {
	var sum int64
	for _, desc := range d.Descriptors() {
		sum += int64(desc.Price(rideCost))
	}
	return sum
}

// Footprint is the number of tiles the design occupies, counting overlaps
// twice.
func (d *Design) Footprint() int {
	sum := 0
	for _, desc := range d.Descriptors() {
		sum += desc.TileCount()
	}
	return sum
}

func (d *Design) Inversions() int {
	n := 0
	for _, desc := range d.Descriptors() {
		if desc.HasFlag(track.FlagNormalToInversion) {
			n++
		}
	}
	return n
}
