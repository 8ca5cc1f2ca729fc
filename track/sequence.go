package track

import "strings"

// SequenceClearance is the footprint of one tile of an element, relative to
// the element's origin tile.
type SequenceClearance struct {
	X, Y, Z    int16
	ClearanceZ uint8
	// QuarterTile is a 4-bit mask of the occupied quarters of the tile.
	// Bits 0 to 3 are the +x+y, +x-y, -x-y and -x+y quarters.
	QuarterTile uint8
}

type SequenceFlags uint8

const (
	SequenceOrigin SequenceFlags = 1 << iota
	SequenceConnectsToPath
	SequenceDisallowDoors
)

func (f SequenceFlags) String() string {
	var names []string
	if f&SequenceOrigin != 0 {
		names = append(names, "origin")
	}
	if f&SequenceConnectsToPath != 0 {
		names = append(names, "connects-to-path")
	}
	if f&SequenceDisallowDoors != 0 {
		names = append(names, "disallow-doors")
	}
	return strings.Join(names, "|")
}

// Segment bits name the nine support segments of a tile.
const (
	SegmentTopCorner uint16 = 1 << iota
	SegmentRightCorner
	SegmentBottomCorner
	SegmentLeftCorner
	SegmentCentre
	SegmentTopLeftSide
	SegmentTopRightSide
	SegmentBottomLeftSide
	SegmentBottomRightSide

	SegmentsAll uint16 = 0x1FF
)

// SequenceDescriptor is one tile of an element.
type SequenceDescriptor struct {
	Clearance       SequenceClearance
	Flags           SequenceFlags
	BlockedSegments uint16
}

// sequenceTable lists the tiles of each element, origin first.
var sequenceTable = [ElemTypeCount][]SequenceDescriptor{
	Flat: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	EndStation: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin | SequenceConnectsToPath, SegmentsAll},
	},
	BeginStation: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin | SequenceConnectsToPath, SegmentsAll},
	},
	MiddleStation: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin | SequenceConnectsToPath, SegmentsAll},
	},
	Up25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25ToUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up60ToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToDown60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down60ToDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftQuarterTurn5Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 16, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn5Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 0, 16, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	FlatToLeftBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToRightBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankToFlat: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankToFlat: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	BankedLeftQuarterTurn5Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 16, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	BankedRightQuarterTurn5Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 0, 16, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftBankToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25ToLeftBank: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25ToRightBank: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankToDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankToDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToLeftBank: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToRightBank: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftQuarterTurn5TilesUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 43, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 53, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 64, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn5TilesUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 43, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 53, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 64, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterTurn5TilesDown25: {
		{SequenceClearance{0, 0, 64, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 53, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 43, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 21, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 11, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn5TilesDown25: {
		{SequenceClearance{0, 0, 64, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 53, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 43, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	SBendLeft: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 0, 16, 0b1101}, 0, SegmentTopCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	SBendRight: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b1110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftVerticalLoop: {
		{SequenceClearance{0, 0, 0, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 56, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, -32, 152, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, -32, 0, 48, 0b1111}, 0, SegmentsAll},
	},
	RightVerticalLoop: {
		{SequenceClearance{0, 0, 0, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 56, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 32, 152, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 0, 48, 0b1111}, 0, SegmentsAll},
	},
	LeftQuarterTurn3Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn3Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftBankedQuarterTurn3Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightBankedQuarterTurn3Tiles: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterTurn3TilesUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn3TilesUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterTurn3TilesDown25: {
		{SequenceClearance{0, 0, 32, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 21, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn3TilesDown25: {
		{SequenceClearance{0, 0, 32, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterTurn1Tile: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightQuarterTurn1Tile: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftTwistDownToUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightTwistDownToUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	LeftTwistUpToDown: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightTwistUpToDown: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	HalfLoopUp: {
		{SequenceClearance{0, 0, 0, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 152, 48, 0b1111}, 0, SegmentsAll},
	},
	HalfLoopDown: {
		{SequenceClearance{0, 0, 152, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 48, 0b1111}, 0, SegmentsAll},
	},
	LeftCorkscrewUp: {
		{SequenceClearance{0, 0, 0, 40, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 40, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightCorkscrewUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 40, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftCorkscrewDown: {
		{SequenceClearance{0, 0, 32, 40, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 40, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightCorkscrewDown: {
		{SequenceClearance{0, 0, 32, 40, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 40, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	FlatToUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up60ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToDown60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down60ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	TowerBase: {
		{SequenceClearance{0, 0, 0, 96, 0b1111}, SequenceOrigin | SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{32, 32, 12, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{32, 0, 24, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{0, 32, 36, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{-32, -32, 48, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{0, -32, 60, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{-32, 0, 72, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{32, -32, 84, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{-32, 32, 96, 96, 0b1111}, SequenceDisallowDoors, SegmentsAll},
	},
	TowerSection: {
		{SequenceClearance{0, 0, 0, 32, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatCovered: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up60Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToUp25Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25ToUp60Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up60ToUp25Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25ToFlatCovered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down60Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToDown25Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToDown60Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down60ToDown25Covered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToFlatCovered: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftQuarterTurn5TilesCovered: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 16, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn5TilesCovered: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 0, 16, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	SBendLeftCovered: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 0, 16, 0b1101}, 0, SegmentTopCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	SBendRightCovered: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b1110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterTurn3TilesCovered: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn3TilesCovered: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftHalfBankedHelixUpSmall: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 2, 24, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 4, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -64, 6, 24, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{0, -64, 8, 24, 0b1111}, 0, SegmentsAll},
	},
	RightHalfBankedHelixUpSmall: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 2, 24, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 32, 4, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 6, 24, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 64, 8, 24, 0b1111}, 0, SegmentsAll},
	},
	LeftHalfBankedHelixDownSmall: {
		{SequenceClearance{0, 0, 8, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 6, 24, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 4, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -64, 2, 24, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{0, -64, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	RightHalfBankedHelixDownSmall: {
		{SequenceClearance{0, 0, 8, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 6, 24, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 32, 4, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 2, 24, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 64, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	LeftHalfBankedHelixUpLarge: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 3, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 5, 24, 0b1101}, 0, SegmentTopCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -64, 8, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -96, 11, 24, 0b1110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -128, 13, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{0, -128, 16, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightHalfBankedHelixUpLarge: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 3, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 5, 24, 0b1110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 8, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 96, 11, 24, 0b1101}, 0, SegmentTopCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 128, 13, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{0, 128, 16, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftHalfBankedHelixDownLarge: {
		{SequenceClearance{0, 0, 16, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 13, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 11, 24, 0b1101}, 0, SegmentTopCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -64, 8, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -96, 5, 24, 0b1110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -128, 3, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{0, -128, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightHalfBankedHelixDownLarge: {
		{SequenceClearance{0, 0, 16, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 13, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 11, 24, 0b1110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 8, 24, 0b1100}, 0, SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 96, 5, 24, 0b1101}, 0, SegmentTopCorner | SegmentBottomCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 128, 3, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{0, 128, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterTurn1TileUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightQuarterTurn1TileUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftQuarterTurn1TileDown60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightQuarterTurn1TileDown60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Brakes: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Booster: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Maze: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftQuarterBankedHelixLargeUp: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 3, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 8, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 13, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 16, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterBankedHelixLargeUp: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 3, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 8, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 13, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 16, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterBankedHelixLargeDown: {
		{SequenceClearance{0, 0, 16, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 13, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 8, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 5, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 3, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterBankedHelixLargeDown: {
		{SequenceClearance{0, 0, 16, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 13, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 8, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 3, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterHelixLargeUp: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 3, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 8, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 13, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 16, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterHelixLargeUp: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 3, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 8, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 13, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 16, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterHelixLargeDown: {
		{SequenceClearance{0, 0, 16, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 13, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 8, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 5, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 3, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterHelixLargeDown: {
		{SequenceClearance{0, 0, 16, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 13, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 8, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 3, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	Up25LeftBanked: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25RightBanked: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Waterfall: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Rapids: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	OnRidePhoto: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25LeftBanked: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25RightBanked: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Watersplash: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin | SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 16, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 16, 0b1111}, SequenceDisallowDoors, SegmentsAll},
		{SequenceClearance{-128, 0, 0, 16, 0b1111}, SequenceDisallowDoors, SegmentsAll},
	},
	FlatToUp60LongBase: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 19, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 37, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 56, 24, 0b1111}, 0, SegmentsAll},
	},
	Up60ToFlatLongBase: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 19, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 37, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 56, 24, 0b1111}, 0, SegmentsAll},
	},
	Whirlpool: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down60ToFlatLongBase: {
		{SequenceClearance{0, 0, 56, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 37, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 19, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	FlatToDown60LongBase: {
		{SequenceClearance{0, 0, 56, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 37, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 19, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	CableLiftHill: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 32, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 64, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 96, 24, 0b1111}, 0, SegmentsAll},
	},
	ReverseFreefallSlope: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 19, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 37, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 56, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-128, 0, 75, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-160, 0, 93, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-192, 0, 112, 24, 0b1111}, 0, SegmentsAll},
	},
	ReverseFreefallVertical: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up90: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down90: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up60ToUp90: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down90ToDown60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up90ToUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down60ToDown90: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	BrakeForDrop: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftEighthToDiag: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -64, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, -32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	RightEighthToDiag: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 64, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	LeftEighthToOrthogonal: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -64, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, -32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	RightEighthToOrthogonal: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 64, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	LeftEighthBankToDiag: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -64, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, -32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	RightEighthBankToDiag: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 64, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	LeftEighthBankToOrthogonal: {
		{SequenceClearance{0, 0, 0, 16, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0110}, 0, SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 16, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -64, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, -32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	RightEighthBankToOrthogonal: {
		{SequenceClearance{0, 0, 0, 16, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b1001}, 0, SegmentTopCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 64, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 0, 16, 0b0011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagFlat: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 32, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 64, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 96, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagFlatToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 16, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp25ToUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 16, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 32, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 48, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp60ToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 16, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 32, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 48, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp25ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 16, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown25: {
		{SequenceClearance{0, 0, 32, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown60: {
		{SequenceClearance{0, 0, 96, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 64, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 32, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagFlatToDown25: {
		{SequenceClearance{0, 0, 16, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown25ToDown60: {
		{SequenceClearance{0, 0, 48, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 32, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown60ToDown25: {
		{SequenceClearance{0, 0, 48, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 32, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown25ToFlat: {
		{SequenceClearance{0, 0, 16, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagFlatToUp60: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp60ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagFlatToDown60: {
		{SequenceClearance{0, 0, 32, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown60ToFlat: {
		{SequenceClearance{0, 0, 32, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagFlatToLeftBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagFlatToRightBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagLeftBankToFlat: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagRightBankToFlat: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagLeftBankToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 16, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagRightBankToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 16, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp25ToLeftBank: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 16, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagUp25ToRightBank: {
		{SequenceClearance{0, 0, 0, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 5, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 16, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagLeftBankToDown25: {
		{SequenceClearance{0, 0, 16, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagRightBankToDown25: {
		{SequenceClearance{0, 0, 16, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown25ToLeftBank: {
		{SequenceClearance{0, 0, 16, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagDown25ToRightBank: {
		{SequenceClearance{0, 0, 16, 24, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 5, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagLeftBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagRightBank: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	LogFlumeReverser: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	SpinningTunnel: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBarrelRollUpToDown: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightBarrelRollUpToDown: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	LeftBarrelRollDownToUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightBarrelRollDownToUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	LeftBankToLeftQuarterTurn3TilesUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightBankToRightQuarterTurn3TilesUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftQuarterTurn3TilesDown25ToLeftBank: {
		{SequenceClearance{0, 0, 32, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 21, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightQuarterTurn3TilesDown25ToRightBank: {
		{SequenceClearance{0, 0, 32, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	PoweredLift: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftLargeHalfLoopUp: {
		{SequenceClearance{0, 0, 0, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, -32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 280, 64, 0b1111}, 0, SegmentsAll},
	},
	RightLargeHalfLoopUp: {
		{SequenceClearance{0, 0, 0, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 280, 64, 0b1111}, 0, SegmentsAll},
	},
	RightLargeHalfLoopDown: {
		{SequenceClearance{0, 0, 280, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 32, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 64, 0b1111}, 0, SegmentsAll},
	},
	LeftLargeHalfLoopDown: {
		{SequenceClearance{0, 0, 280, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, -32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, -32, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, -32, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 0, 64, 0b1111}, 0, SegmentsAll},
	},
	LeftFlyerTwistUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightFlyerTwistUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	LeftFlyerTwistDown: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightFlyerTwistDown: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	FlyerHalfLoopUninvertedUp: {
		{SequenceClearance{0, 0, 0, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 152, 48, 0b1111}, 0, SegmentsAll},
	},
	FlyerHalfLoopInvertedDown: {
		{SequenceClearance{0, 0, 152, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 48, 0b1111}, 0, SegmentsAll},
	},
	LeftFlyerCorkscrewUp: {
		{SequenceClearance{0, 0, 0, 40, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 40, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightFlyerCorkscrewUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 40, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftFlyerCorkscrewDown: {
		{SequenceClearance{0, 0, 32, 40, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 40, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightFlyerCorkscrewDown: {
		{SequenceClearance{0, 0, 32, 40, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 16, 40, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 40, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	HeartLineTransferUp: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 8, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 24, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 32, 24, 0b1111}, 0, SegmentsAll},
	},
	HeartLineTransferDown: {
		{SequenceClearance{0, 0, 32, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 24, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 8, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	LeftHeartLineRoll: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-128, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-160, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightHeartLineRoll: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-128, 0, 0, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-160, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	MinigolfHoleA: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	MinigolfHoleB: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	MinigolfHoleC: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	MinigolfHoleD: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, -32, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	MinigolfHoleE: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	MultiDimInvertedFlatToDown90QuarterLoop: {
		{SequenceClearance{0, 0, 96, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 48, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	Up90ToInvertedFlatQuarterLoop: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 48, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 96, 24, 0b1111}, 0, SegmentsAll},
	},
	InvertedFlatToDown90QuarterLoop: {
		{SequenceClearance{0, 0, 96, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 48, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	LeftCurvedLiftHill: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightCurvedLiftHill: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftReverser: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, -32, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	RightReverser: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 0, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	AirThrustTopCap: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 32, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 0, 32, 16, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 0, 0, 16, 0b1111}, 0, SegmentsAll},
	},
	AirThrustVerticalDown: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	AirThrustVerticalDownToLevel: {
		{SequenceClearance{0, 0, 112, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 90, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 67, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 45, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-128, 0, 22, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-160, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	BlockBrakes: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedQuarterTurn3TileUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightBankedQuarterTurn3TileUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftBankedQuarterTurn3TileDown25: {
		{SequenceClearance{0, 0, 32, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 21, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightBankedQuarterTurn3TileDown25: {
		{SequenceClearance{0, 0, 32, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftBankedQuarterTurn5TileUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 11, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 43, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 53, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 64, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightBankedQuarterTurn5TileUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 11, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 21, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 43, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 53, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 64, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftBankedQuarterTurn5TileDown25: {
		{SequenceClearance{0, 0, 64, 24, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, -32, 53, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, 0, 43, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 32, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-32, -64, 21, 24, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 11, 24, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 24, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightBankedQuarterTurn5TileDown25: {
		{SequenceClearance{0, 0, 64, 24, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{0, 32, 53, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 43, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 32, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 64, 21, 24, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 11, 24, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 0, 24, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	Up25ToLeftBankedUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Up25ToRightBankedUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedUp25ToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedUp25ToUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToLeftBankedDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	Down25ToRightBankedDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedDown25ToDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedDown25ToDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedFlatToLeftBankedUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedFlatToRightBankedUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedUp25ToLeftBankedFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedUp25ToRightBankedFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedFlatToLeftBankedDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedFlatToRightBankedDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedDown25ToLeftBankedFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedDown25ToRightBankedFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToLeftBankedUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToRightBankedUp25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedUp25ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedUp25ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToLeftBankedDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatToRightBankedDown25: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftBankedDown25ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	RightBankedDown25ToFlat: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	LeftQuarterTurn1TileUp90: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 16, 24, 0b1111}, 0, SegmentsAll},
	},
	RightQuarterTurn1TileUp90: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 16, 24, 0b1111}, 0, SegmentsAll},
	},
	LeftQuarterTurn1TileDown90: {
		{SequenceClearance{0, 0, 16, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	RightQuarterTurn1TileDown90: {
		{SequenceClearance{0, 0, 16, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	MultiDimUp90ToInvertedFlatQuarterLoop: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 48, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 96, 24, 0b1111}, 0, SegmentsAll},
	},
	MultiDimFlatToDown90QuarterLoop: {
		{SequenceClearance{0, 0, 96, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 48, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 0, 0, 24, 0b1111}, 0, SegmentsAll},
	},
	MultiDimInvertedUp90ToFlatQuarterLoop: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 0, 48, 24, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 96, 24, 0b1111}, 0, SegmentsAll},
	},
	RotationControlToggle: {
		{SequenceClearance{0, 0, 0, 16, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatTrack1x4A: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	FlatTrack2x2: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	FlatTrack4x4: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 64, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 64, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 64, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 64, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 96, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 96, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 96, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 96, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	FlatTrack2x4: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 32, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	FlatTrack1x5: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-128, 0, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	FlatTrack1x1A: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatTrack1x4B: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	FlatTrack1x1B: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	FlatTrack1x4C: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	FlatTrack3x3: {
		{SequenceClearance{0, 0, 0, 0, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 64, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 64, 0, 0, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 64, 0, 0, 0b1111}, 0, SegmentsAll},
	},
	LeftLargeCorkscrewUp: {
		{SequenceClearance{0, 0, 0, 48, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 8, 48, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 24, 48, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 40, 48, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 56, 48, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 64, 48, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightLargeCorkscrewUp: {
		{SequenceClearance{0, 0, 0, 48, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 8, 48, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 24, 48, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 40, 48, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 56, 48, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 64, 64, 48, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftLargeCorkscrewDown: {
		{SequenceClearance{0, 0, 64, 48, 0b0111}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 56, 48, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-32, -32, 40, 48, 0b1000}, 0, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{-64, -32, 24, 48, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 8, 48, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, -64, 0, 48, 0b0111}, 0, SegmentTopCorner | SegmentRightCorner | SegmentBottomCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	RightLargeCorkscrewDown: {
		{SequenceClearance{0, 0, 64, 48, 0b1011}, SequenceOrigin, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 56, 48, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 40, 48, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 32, 24, 48, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-64, 64, 8, 48, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-64, 64, 0, 48, 0b1011}, 0, SegmentTopCorner | SegmentRightCorner | SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide | SegmentBottomLeftSide | SegmentBottomRightSide},
	},
	LeftMediumHalfLoopUp: {
		{SequenceClearance{0, 0, 0, 56, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 72, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 152, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 216, 56, 0b1111}, 0, SegmentsAll},
	},
	RightMediumHalfLoopUp: {
		{SequenceClearance{0, 0, 0, 56, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 72, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 152, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 216, 56, 0b1111}, 0, SegmentsAll},
	},
	LeftMediumHalfLoopDown: {
		{SequenceClearance{0, 0, 216, 56, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, -32, 152, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, -32, 72, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 16, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 0, 56, 0b1111}, 0, SegmentsAll},
	},
	RightMediumHalfLoopDown: {
		{SequenceClearance{0, 0, 216, 56, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{0, 32, 152, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 72, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 16, 56, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 56, 0b1111}, 0, SegmentsAll},
	},
	LeftZeroGRollUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 32, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 56, 40, 0b1111}, 0, SegmentsAll},
	},
	RightZeroGRollUp: {
		{SequenceClearance{0, 0, 0, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 32, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 56, 40, 0b1111}, 0, SegmentsAll},
	},
	LeftZeroGRollDown: {
		{SequenceClearance{0, 0, 56, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 32, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	RightZeroGRollDown: {
		{SequenceClearance{0, 0, 56, 40, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 32, 40, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 0, 40, 0b1111}, 0, SegmentsAll},
	},
	LeftLargeZeroGRollUp: {
		{SequenceClearance{0, 0, 0, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 152, 48, 0b1111}, 0, SegmentsAll},
	},
	RightLargeZeroGRollUp: {
		{SequenceClearance{0, 0, 0, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 152, 48, 0b1111}, 0, SegmentsAll},
	},
	LeftLargeZeroGRollDown: {
		{SequenceClearance{0, 0, 152, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 48, 0b1111}, 0, SegmentsAll},
	},
	RightLargeZeroGRollDown: {
		{SequenceClearance{0, 0, 152, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 120, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 0, 48, 0b1111}, 0, SegmentsAll},
	},
	LeftFlyerLargeHalfLoopUninvertedUp: {
		{SequenceClearance{0, 0, 0, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, -32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 280, 64, 0b1111}, 0, SegmentsAll},
	},
	RightFlyerLargeHalfLoopUninvertedUp: {
		{SequenceClearance{0, 0, 0, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 280, 64, 0b1111}, 0, SegmentsAll},
	},
	LeftFlyerLargeHalfLoopInvertedDown: {
		{SequenceClearance{0, 0, 280, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, -32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, -32, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, -32, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 0, 64, 0b1111}, 0, SegmentsAll},
	},
	RightFlyerLargeHalfLoopInvertedDown: {
		{SequenceClearance{0, 0, 280, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 32, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 64, 0b1111}, 0, SegmentsAll},
	},
	LeftFlyerLargeHalfLoopInvertedUp: {
		{SequenceClearance{0, 0, 0, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, -32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 280, 64, 0b1111}, 0, SegmentsAll},
	},
	RightFlyerLargeHalfLoopInvertedUp: {
		{SequenceClearance{0, 0, 0, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 0, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-96, 32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 280, 64, 0b1111}, 0, SegmentsAll},
	},
	LeftFlyerLargeHalfLoopUninvertedDown: {
		{SequenceClearance{0, 0, 280, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, -32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, -32, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, -32, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, -32, 0, 64, 0b1111}, 0, SegmentsAll},
	},
	RightFlyerLargeHalfLoopUninvertedDown: {
		{SequenceClearance{0, 0, 280, 64, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 248, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{32, 32, 184, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 32, 104, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 32, 48, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 16, 64, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 32, 0, 64, 0b1111}, 0, SegmentsAll},
	},
	FlyerHalfLoopInvertedUp: {
		{SequenceClearance{0, 0, 0, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{-32, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-64, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 152, 48, 0b1111}, 0, SegmentsAll},
	},
	FlyerHalfLoopUninvertedDown: {
		{SequenceClearance{0, 0, 152, 48, 0b1111}, SequenceOrigin, SegmentsAll},
		{SequenceClearance{32, 0, 64, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{0, 0, 16, 48, 0b1111}, 0, SegmentsAll},
		{SequenceClearance{-32, 0, 0, 48, 0b1111}, 0, SegmentsAll},
	},
	DiagBrakes: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	DiagBlockBrakes: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
	Down25Brakes: {
		{SequenceClearance{0, 0, 0, 24, 0b1111}, SequenceOrigin, SegmentsAll},
	},
	DiagBooster: {
		{SequenceClearance{0, 0, 0, 16, 0b1000}, SequenceOrigin, SegmentLeftCorner | SegmentCentre | SegmentTopLeftSide | SegmentBottomLeftSide},
		{SequenceClearance{0, 32, 0, 16, 0b0100}, 0, SegmentBottomCorner | SegmentCentre | SegmentBottomLeftSide | SegmentBottomRightSide},
		{SequenceClearance{-32, 0, 0, 16, 0b0001}, 0, SegmentTopCorner | SegmentCentre | SegmentTopLeftSide | SegmentTopRightSide},
		{SequenceClearance{-32, 32, 0, 16, 0b0010}, 0, SegmentRightCorner | SegmentCentre | SegmentTopRightSide | SegmentBottomRightSide},
	},
}
