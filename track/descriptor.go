package track

import (
	"sync"

	"github.com/OpenRCT2/OpenRCT2-sub002/track/force"
	"golang.org/x/exp/slices"
)

// Descriptor is the complete static record of one element type.
type Descriptor struct {
	Type            ElemType
	Coordinates     Coordinates
	PieceLength     int16
	PriceModifier   int32
	Flags           Flags
	CurveChain      CurveChain
	MirrorElement   ElemType
	AlternativeType ElemType
	Definition      Definition
	SpinFunction    SpinFunction
	Sequences       []SequenceDescriptor

	VerticalKind   force.Kind
	LateralKind    force.Kind
	VerticalFactor force.Func
	LateralFactor  force.Func
}

// Mirror returns the descriptor of the mirrored element.
func (d *Descriptor) Mirror() *Descriptor {
	return GetDescriptor(d.MirrorElement)
}

func (d *Descriptor) HasFlag(f Flags) bool {
	return d.Flags.Has(f)
}

func (d *Descriptor) IsTurn() bool {
	return d.Flags&(FlagTurnLeft|FlagTurnRight) != 0
}

// Price scales rideCost by the element's price modifier.
func (d *Descriptor) Price(rideCost int32) int32 {
	return int32((int64(rideCost) * int64(d.PriceModifier)) >> 16)
}

func (d *Descriptor) TileCount() int {
	return len(d.Sequences)
}

// HasAlternative reports whether the element has a covered (or uncovered)
// counterpart.
func (d *Descriptor) HasAlternative() bool {
	return d.AlternativeType != ElemTypeNone
}

var (
	descriptorsOnce sync.Once
	descriptors     [ElemTypeCount]Descriptor
)

func buildDescriptors() {
	for i := range descriptors {
		t := ElemType(i)
		vk, lk := VerticalKind(t), LateralKind(t)
		descriptors[i] = Descriptor{
			Type:            t,
			Coordinates:     coordinatesTable[i],
			PieceLength:     pieceLengthTable[i],
			PriceModifier:   priceTable[i],
			Flags:           flagsTable[i],
			CurveChain:      curveChainTable[i],
			MirrorElement:   mirrorTable[i],
			AlternativeType: alternativeTable[i],
			Definition:      definitionTable[i],
			SpinFunction:    spinTable[i],
			Sequences:       slices.Clone(sequenceTable[i]),
			VerticalKind:    vk,
			LateralKind:     lk,
			VerticalFactor:  vk.Func(),
			LateralFactor:   lk.Func(),
		}
	}
}

// GetDescriptor returns the descriptor for t. Values outside the enumeration
// get the Flat descriptor. The returned descriptor must not be modified.
func GetDescriptor(t ElemType) *Descriptor {
	descriptorsOnce.Do(buildDescriptors)
	if !t.Valid() {
		return &descriptors[Flat]
	}
	return &descriptors[t]
}

// GetDescriptorByIndex is GetDescriptor for raw integers, e.g. values read
// from a saved file.
func GetDescriptorByIndex(i int) *Descriptor {
	if i < 0 || i >= int(ElemTypeCount) {
		return GetDescriptor(Flat)
	}
	return GetDescriptor(ElemType(i))
}

// All returns every descriptor in enumeration order.
func All() []*Descriptor {
	descriptorsOnce.Do(buildDescriptors)
	res := make([]*Descriptor, len(descriptors))
	for i := range descriptors {
		res[i] = &descriptors[i]
	}
	return res
}

// Filter returns the descriptors for which keep returns true.
func Filter(keep func(*Descriptor) bool) []*Descriptor {
	res := All()
	return slices.DeleteFunc(res, func(d *Descriptor) bool { return !keep(d) })
}
