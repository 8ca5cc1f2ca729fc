package track

import (
	"sync"
	"testing"

	"github.com/OpenRCT2/OpenRCT2-sub002/track/force"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCatalogComplete(t *testing.T) {
	all := All()
	if len(all) != int(ElemTypeCount) {
		t.Fatalf("%d descriptors, want %d", len(all), ElemTypeCount)
	}
	for i, d := range all {
		if d.Type != ElemType(i) {
			t.Fatalf("descriptor %d has type %s", i, d.Type)
		}
		if d.PieceLength <= 0 {
			t.Errorf("%s: piece length %d", d.Type, d.PieceLength)
		}
		if d.PriceModifier <= 0 {
			t.Errorf("%s: price modifier %d", d.Type, d.PriceModifier)
		}
		if d.VerticalFactor == nil || d.LateralFactor == nil {
			t.Errorf("%s: nil factor", d.Type)
		}
		if !d.MirrorElement.Valid() {
			t.Errorf("%s: mirror %s", d.Type, d.MirrorElement)
		}
		if d.AlternativeType != ElemTypeNone && !d.AlternativeType.Valid() {
			t.Errorf("%s: alternative %s", d.Type, d.AlternativeType)
		}
		if d.Definition.Group >= groupCount {
			t.Errorf("%s: group %s", d.Type, d.Definition.Group)
		}
	}
}

func TestSequences(t *testing.T) {
	for _, d := range All() {
		if d.TileCount() == 0 {
			t.Fatalf("%s: no sequences", d.Type)
		}
		origin := d.Sequences[0]
		if origin.Clearance.X != 0 || origin.Clearance.Y != 0 {
			t.Errorf("%s: first tile at (%d, %d)", d.Type, origin.Clearance.X, origin.Clearance.Y)
		}
		if origin.Flags&SequenceOrigin == 0 {
			t.Errorf("%s: first tile is not the origin", d.Type)
		}
		for i, s := range d.Sequences[1:] {
			if s.Flags&SequenceOrigin != 0 {
				t.Errorf("%s: tile %d is also an origin", d.Type, i+1)
			}
			if s.Clearance.QuarterTile&^0b1111 != 0 {
				t.Errorf("%s: tile %d quarter tile %b", d.Type, i+1, s.Clearance.QuarterTile)
			}
			if s.BlockedSegments&^SegmentsAll != 0 {
				t.Errorf("%s: tile %d segments %x", d.Type, i+1, s.BlockedSegments)
			}
		}
	}
}

func TestSequencesCopied(t *testing.T) {
	for _, d := range All() {
		table := sequenceTable[d.Type]
		if &d.Sequences[0] == &table[0] {
			t.Fatalf("%s: sequences share the table's storage", d.Type)
		}
		if diff := cmp.Diff(table, d.Sequences); diff != "" {
			t.Fatalf("%s (-table +descriptor):\n%s", d.Type, diff)
		}
	}

	d := GetDescriptor(LeftQuarterTurn3Tiles)
	saved := d.Sequences[0]
	t.Cleanup(func() { d.Sequences[0] = saved })
	d.Sequences[0].Clearance.QuarterTile = 0
	if got := sequenceTable[LeftQuarterTurn3Tiles][0].Clearance.QuarterTile; got != 0b0111 {
		t.Fatalf("table changed with the descriptor: %04b", got)
	}
}

func TestMirror(t *testing.T) {
	for _, d := range All() {
		m := d.Mirror()
		if m.Mirror() != d {
			t.Fatalf("%s: mirror of mirror is %s", d.Type, m.Mirror().Type)
		}
		if d.HasFlag(FlagTurnLeft) != m.HasFlag(FlagTurnRight) {
			t.Errorf("%s/%s: turn flags %s, %s", d.Type, m.Type, d.Flags, m.Flags)
		}
		if d.Definition.PitchStart != m.Definition.PitchStart || d.Definition.PitchEnd != m.Definition.PitchEnd {
			t.Errorf("%s/%s: pitch differs", d.Type, m.Type)
		}
		if d.Definition.RollStart.Mirror() != m.Definition.RollStart || d.Definition.RollEnd.Mirror() != m.Definition.RollEnd {
			t.Errorf("%s/%s: roll not mirrored", d.Type, m.Type)
		}
		if d.PieceLength != m.PieceLength || d.TileCount() != m.TileCount() {
			t.Errorf("%s/%s: length or footprint differs", d.Type, m.Type)
		}
	}
}

// mirrorQuarterTile reflects a quarter tile mask across the x axis.
func mirrorQuarterTile(q uint8) uint8 {
	return (q&0b0101)<<1 | (q&0b1010)>>1
}

func quarterTileSegments(q uint8) uint16 {
	if q == 0b1111 {
		return SegmentsAll
	}
	var res uint16
	if q&0b0001 != 0 {
		res |= SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide
	}
	if q&0b0010 != 0 {
		res |= SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide
	}
	if q&0b0100 != 0 {
		res |= SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide
	}
	if q&0b1000 != 0 {
		res |= SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide
	}
	return res
}

func TestSequenceSegments(t *testing.T) {
	for _, d := range All() {
		for i, s := range d.Sequences {
			if s.Clearance.QuarterTile == 0 {
				t.Errorf("%s: tile %d occupies no quarter", d.Type, i)
			}
			if want := quarterTileSegments(s.Clearance.QuarterTile); s.BlockedSegments != want {
				t.Errorf("%s: tile %d (%04b) segments %x, want %x", d.Type, i, s.Clearance.QuarterTile, s.BlockedSegments, want)
			}
		}
	}
}

// TestMirrorSequences checks that a mirrored element's tiles are the
// reflection of the original's, with reflected quarter tiles.
func TestMirrorSequences(t *testing.T) {
	reflected := 0
	for _, d := range All() {
		m := d.Mirror()
		if m == d {
			continue
		}
		if len(m.Sequences) != len(d.Sequences) {
			t.Errorf("%s/%s: %d tiles, mirror %d", d.Type, m.Type, len(d.Sequences), len(m.Sequences))
			continue
		}
		same, flipped := true, true
		for i, s := range d.Sequences {
			ms := m.Sequences[i].Clearance
			if ms.X != s.Clearance.X || ms.Y != s.Clearance.Y {
				same = false
			}
			if ms.X != s.Clearance.X || ms.Y != -s.Clearance.Y {
				flipped = false
			}
		}
		for i, s := range d.Sequences {
			q, mq := s.Clearance.QuarterTile, m.Sequences[i].Clearance.QuarterTile
			switch {
			case flipped:
				if mq != mirrorQuarterTile(q) {
					t.Errorf("%s/%s: tile %d quarter tile %04b, mirror %04b", d.Type, m.Type, i, q, mq)
				}
			case same:
				if mq != q {
					t.Errorf("%s/%s: tile %d quarter tile %04b, mirror %04b", d.Type, m.Type, i, q, mq)
				}
			default:
				t.Errorf("%s/%s: tile %d at (%d, %d), mirror at (%d, %d)", d.Type, m.Type, i,
					s.Clearance.X, s.Clearance.Y, m.Sequences[i].Clearance.X, m.Sequences[i].Clearance.Y)
			}
		}
		if flipped && !same {
			reflected++
		}
	}
	if reflected == 0 {
		t.Fatal("no reflected elements")
	}

	for _, typ := range []ElemType{LeftQuarterTurn3Tiles, LeftQuarterTurn5Tiles, SBendLeft, LeftEighthToDiag, LeftHalfBankedHelixUpSmall} {
		partial := false
		for _, s := range GetDescriptor(typ).Sequences {
			if s.Clearance.QuarterTile != 0b1111 {
				partial = true
			}
		}
		if !partial {
			t.Errorf("%s occupies every quarter of every tile", typ)
		}
	}
}

func TestAlternative(t *testing.T) {
	n := 0
	for _, d := range All() {
		if !d.HasAlternative() {
			continue
		}
		n++
		alt := GetDescriptor(d.AlternativeType)
		if alt.AlternativeType != d.Type {
			t.Errorf("%s -> %s -> %s", d.Type, alt.Type, alt.AlternativeType)
		}
		if diff := cmp.Diff(d.Coordinates, alt.Coordinates); diff != "" {
			t.Errorf("%s/%s coordinates (-plain +covered):\n%s", d.Type, alt.Type, diff)
		}
	}
	if n != 38 {
		t.Fatalf("%d elements with alternatives, want 38", n)
	}
}

func TestCurveChainLinks(t *testing.T) {
	for _, d := range All() {
		for _, l := range []ChainLink{d.CurveChain.Next, d.CurveChain.Previous} {
			if l.IsPiece && !l.Piece.Valid() {
				t.Errorf("%s: link %s", d.Type, l)
			}
		}
	}
	d := GetDescriptor(HalfLoopUp)
	if d.CurveChain.Next != pieceLink(HalfLoopDown) {
		t.Fatalf("HalfLoopUp next: %s", d.CurveChain.Next)
	}
}

func TestGetDescriptorFallback(t *testing.T) {
	flat := GetDescriptor(Flat)
	for _, typ := range []ElemType{ElemTypeCount, ElemTypeCount + 100, ElemTypeNone} {
		if got := GetDescriptor(typ); got != flat {
			t.Errorf("%d: got %s, want Flat", uint16(typ), got.Type)
		}
	}
	for _, i := range []int{-1, -1000, int(ElemTypeCount), 1 << 20} {
		if got := GetDescriptorByIndex(i); got != flat {
			t.Errorf("%d: got %s, want Flat", i, got.Type)
		}
	}
	if got := GetDescriptorByIndex(int(Watersplash)); got.Type != Watersplash {
		t.Fatalf("by index: got %s", got.Type)
	}
}

// TestSpotCheck compares descriptors with literal table rows.
func TestSpotCheck(t *testing.T) {
	ignore := cmpopts.IgnoreFields(Descriptor{}, "VerticalFactor", "LateralFactor")
	cases := []Descriptor{
		{
			Type:            Flat,
			Coordinates:     Coordinates{0, 0, 0, 0, 0, 0},
			PieceLength:     32,
			PriceModifier:   65536,
			Flags:           FlagAllowLiftHill,
			MirrorElement:   Flat,
			AlternativeType: FlatCovered,
			Definition:      Definition{GroupFlat, PitchNone, PitchNone, RollNone, RollNone, 0},
			SpinFunction:    SpinNone,
			Sequences: []SequenceDescriptor{
				{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
			},
			VerticalKind: force.KindZero,
			LateralKind:  force.KindZero,
		},
		{
			Type:            LeftQuarterTurn5Tiles,
			Coordinates:     Coordinates{0, 3, 0, 0, -64, -64},
			PieceLength:     124,
			PriceModifier:   257359,
			Flags:           FlagTurnLeft,
			CurveChain:      CurveChain{Next: curveLink(CurveLeft), Previous: curveLink(CurveLeft)},
			MirrorElement:   RightQuarterTurn5Tiles,
			AlternativeType: LeftQuarterTurn5TilesCovered,
			Definition:      Definition{GroupCurve, PitchNone, PitchNone, RollNone, RollNone, 0},
			SpinFunction:    SpinL8,
			Sequences: []SequenceDescriptor{
				{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentsAll &^ SegmentLeftCorner},
				{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
				{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
				{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
				{SequenceClearance{-32, -64, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
				{SequenceClearance{-64, -32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
				{SequenceClearance{-64, -64, 0, 16, 0b0111}, 0, SegmentsAll &^ SegmentLeftCorner},
			},
			VerticalKind: force.KindZero,
			LateralKind:  force.KindConst98,
		},
		{
			Type:            LeftQuarterTurn3Tiles,
			Coordinates:     Coordinates{0, 3, 0, 0, -32, -32},
			PieceLength:     75,
			PriceModifier:   154415,
			Flags:           FlagTurnLeft,
			CurveChain:      CurveChain{Next: curveLink(CurveLeftSmall), Previous: curveLink(CurveLeftSmall)},
			MirrorElement:   RightQuarterTurn3Tiles,
			AlternativeType: LeftQuarterTurn3TilesCovered,
			Definition:      Definition{GroupCurveSmall, PitchNone, PitchNone, RollNone, RollNone, 0},
			SpinFunction:    SpinL7,
			Sequences: []SequenceDescriptor{
				{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentsAll &^ SegmentLeftCorner},
				{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
				{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
				{SequenceClearance{-32, -32, 0, 16, 0b0111}, 0, SegmentsAll &^ SegmentLeftCorner},
			},
			VerticalKind: force.KindZero,
			LateralKind:  force.KindConst59,
		},
	}
	for _, want := range cases {
		t.Run(want.Type.String(), func(t *testing.T) {
			got := GetDescriptor(want.Type)
			if diff := cmp.Diff(want, *got, ignore); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}

	halfLoop := GetDescriptor(HalfLoopUp)
	if halfLoop.PieceLength != 156 || halfLoop.PriceModifier != 294912 {
		t.Errorf("HalfLoopUp: length %d, price %d", halfLoop.PieceLength, halfLoop.PriceModifier)
	}
	if !halfLoop.HasFlag(FlagUp | FlagNormalToInversion) {
		t.Errorf("HalfLoopUp flags: %s", halfLoop.Flags)
	}
	if halfLoop.Definition.RollEnd != RollUpsideDown {
		t.Errorf("HalfLoopUp roll end: %s", halfLoop.Definition.RollEnd)
	}
	diag := GetDescriptor(DiagFlat)
	if !diag.Coordinates.IsDiagonalBegin() || !diag.Coordinates.IsDiagonalEnd() {
		t.Errorf("DiagFlat coordinates: %+v", diag.Coordinates)
	}
	if got := GetDescriptor(Up25).Coordinates.Rise(); got != 16 {
		t.Errorf("Up25 rise: %d", got)
	}
	if got := GetDescriptor(BeginStation).Sequences[0].Flags; got != SequenceOrigin|SequenceConnectsToPath {
		t.Errorf("BeginStation sequence flags: %s", got)
	}
}

func TestPrice(t *testing.T) {
	cases := []struct {
		typ      ElemType
		rideCost int32
		want     int32
	}{
		{Flat, 100, 100},
		{Up25, 100, 121},
		{BeginStation, 100, 150},
		{LeftVerticalLoop, 40, 300},
	}
	for _, tc := range cases {
		if got := GetDescriptor(tc.typ).Price(tc.rideCost); got != tc.want {
			t.Errorf("%s(%d): got %d, want %d", tc.typ, tc.rideCost, got, tc.want)
		}
	}
}

func TestFilter(t *testing.T) {
	turns := Filter((*Descriptor).IsTurn)
	if len(turns) == 0 {
		t.Fatal("no turns")
	}
	for _, d := range turns {
		if !d.HasFlag(FlagTurnLeft) && !d.HasFlag(FlagTurnRight) {
			t.Fatalf("%s is not a turn", d.Type)
		}
	}
	if len(All()) != int(ElemTypeCount) {
		t.Fatal("Filter modified the catalog")
	}
}

func TestConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	results := make([][]*Descriptor, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := make([]*Descriptor, 0, ElemTypeCount)
			for typ := ElemType(0); typ < ElemTypeCount; typ++ {
				d := GetDescriptor(typ)
				d.VerticalFactor(0)
				res = append(res, d)
			}
			results[i] = res
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		for j := range results[0] {
			if results[i][j] != results[0][j] {
				t.Fatalf("goroutine %d saw a different descriptor for %s", i, ElemType(j))
			}
		}
	}
}
