// Package force holds the per-element G-force evaluators.
//
// An evaluator maps progress through an element (0 up to the element's piece
// length) to a lateral or vertical factor. Callers turn a factor into an
// acceleration by dividing the squared speed by it, so larger factors mean
// gentler forces, zero means "no contribution" and the sign selects the
// direction.
package force

import "fmt"

// Func is a force evaluator. Evaluators are pure and total: every progress
// value has a result, though only the element's own range is meaningful.
type Func func(progress int16) int32

// Const returns an evaluator that ignores progress.
func Const(c int32) Func {
	return func(int16) int32 { return c }
}

// Zero is the evaluator of every element that contributes no force on an
// axis.
func Zero(int16) int32 { return 0 }

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// VerticalLoop is symmetric around the top of the loop at progress 155.
func VerticalLoop(progress int16) int32 {
	return abs32(int32(progress)-155)/2 + 28
}

func HalfLoopUp(progress int16) int32 {
	return (155-int32(progress))/2 + 28
}

func HalfLoopDown(progress int16) int32 {
	return int32(progress)/2 + 28
}

func MediumHalfLoopUp(progress int16) int32 {
	return (244-int32(progress))/4 + 47
}

func MediumHalfLoopDown(progress int16) int32 {
	return int32(progress)/4 + 47
}

func LargeHalfLoopUp(progress int16) int32 {
	return (311-int32(progress))/4 + 46
}

func LargeHalfLoopDown(progress int16) int32 {
	return int32(progress)/4 + 46
}

func Up90QuarterLoop(progress int16) int32 {
	return (137-int32(progress))/4 + 55
}

func Down90QuarterLoop(progress int16) int32 {
	return int32(progress)/4 + 55
}

func LargeCorkscrewUp(progress int16) int32 {
	return 174 - int32(progress)
}

func LargeCorkscrewDown(progress int16) int32 {
	return int32(progress) - 17
}

// LargeZeroGRollUp only pulls over the last part of the element.
func LargeZeroGRollUp(progress int16) int32 {
	if progress > 114 {
		return 371 - 2*int32(progress)
	}
	return 0
}

// LargeZeroGRollDown only pulls over the first part of the element.
func LargeZeroGRollDown(progress int16) int32 {
	if progress < 38 {
		return 67 + 2*int32(progress)
	}
	return 0
}

func LargeZeroGRollUpLeft(progress int16) int32 {
	return 387 - 2*int32(progress)
}

func LargeZeroGRollUpRight(progress int16) int32 {
	return -LargeZeroGRollUpLeft(progress)
}

func LargeZeroGRollDownLeft(progress int16) int32 {
	return 5 + 2*int32(progress)
}

func LargeZeroGRollDownRight(progress int16) int32 {
	return -LargeZeroGRollDownLeft(progress)
}

func ZeroGRollUpLeft(progress int16) int32 {
	return 98 - int32(progress)
}

func ZeroGRollUpRight(progress int16) int32 {
	return -ZeroGRollUpLeft(progress)
}

func ZeroGRollDownLeft(progress int16) int32 {
	return int32(progress) + 3
}

func ZeroGRollDownRight(progress int16) int32 {
	return -ZeroGRollDownLeft(progress)
}

// band returns the 32-unit band progress falls in, clamped to 4.
func band(progress int16) int {
	switch {
	case progress < 32:
		return 0
	case progress < 64:
		return 1
	case progress < 96:
		return 2
	case progress < 128:
		return 3
	default:
		return 4
	}
}

var (
	waterSplashBands       = [5]int32{-150, 150, 0, 150, -150}
	heartLineTransferBands = [5]int32{103, -103, 0, 103, -103}
)

// WaterSplash dips into the water and climbs back out.
func WaterSplash(progress int16) int32 {
	return waterSplashBands[band(progress)]
}

func HeartLineTransferUp(progress int16) int32 {
	return heartLineTransferBands[band(progress)]
}

func HeartLineTransferDown(progress int16) int32 {
	return -heartLineTransferBands[band(progress)]
}

// SBendLeft swings left for the first half of the element and right for the
// rest.
func SBendLeft(progress int16) int32 {
	if progress < 48 {
		return 98
	}
	return -98
}

func SBendRight(progress int16) int32 {
	return -SBendLeft(progress)
}

// Kind names an evaluator so dispatch results can be compared and
// serialized. Func values themselves are not comparable.
type Kind uint8

const (
	KindZero Kind = iota

	KindConst98
	KindConstNeg98
	KindConst59
	KindConstNeg59
	KindConst45
	KindConstNeg45
	KindConst137
	KindConstNeg137

	KindConst103
	KindConstNeg103
	KindConst82
	KindConstNeg82
	KindConst56
	KindConstNeg56
	KindConst160
	KindConstNeg160
	KindConst110
	KindConstNeg110
	KindConstNeg65
	KindConst113
	KindConstNeg113
	KindConst95
	KindConstNeg95
	KindConst60
	KindConstNeg60
	KindConst52

	KindVerticalLoop
	KindHalfLoopUp
	KindHalfLoopDown
	KindMediumHalfLoopUp
	KindMediumHalfLoopDown
	KindLargeHalfLoopUp
	KindLargeHalfLoopDown
	KindUp90QuarterLoop
	KindDown90QuarterLoop
	KindLargeCorkscrewUp
	KindLargeCorkscrewDown
	KindLargeZeroGRollUp
	KindLargeZeroGRollDown
	KindLargeZeroGRollUpLeft
	KindLargeZeroGRollUpRight
	KindLargeZeroGRollDownLeft
	KindLargeZeroGRollDownRight
	KindZeroGRollUpLeft
	KindZeroGRollUpRight
	KindZeroGRollDownLeft
	KindZeroGRollDownRight
	KindWaterSplash
	KindHeartLineTransferUp
	KindHeartLineTransferDown
	KindSBendLeft
	KindSBendRight

	kindCount
)

type kindInfo struct {
	name string
	fn   Func
	// constant is set for evaluators built with Const.
	constant *int32
}

func constInfo(name string, c int32) kindInfo {
	return kindInfo{name: name, fn: Const(c), constant: &c}
}

var kinds = [kindCount]kindInfo{
	KindZero: {name: "zero", fn: Zero, constant: new(int32)},

	KindConst98:     constInfo("const-98", 98),
	KindConstNeg98:  constInfo("const-neg-98", -98),
	KindConst59:     constInfo("const-59", 59),
	KindConstNeg59:  constInfo("const-neg-59", -59),
	KindConst45:     constInfo("const-45", 45),
	KindConstNeg45:  constInfo("const-neg-45", -45),
	KindConst137:    constInfo("const-137", 137),
	KindConstNeg137: constInfo("const-neg-137", -137),

	KindConst103:    constInfo("const-103", 103),
	KindConstNeg103: constInfo("const-neg-103", -103),
	KindConst82:     constInfo("const-82", 82),
	KindConstNeg82:  constInfo("const-neg-82", -82),
	KindConst56:     constInfo("const-56", 56),
	KindConstNeg56:  constInfo("const-neg-56", -56),
	KindConst160:    constInfo("const-160", 160),
	KindConstNeg160: constInfo("const-neg-160", -160),
	KindConst110:    constInfo("const-110", 110),
	KindConstNeg110: constInfo("const-neg-110", -110),
	KindConstNeg65:  constInfo("const-neg-65", -65),
	KindConst113:    constInfo("const-113", 113),
	KindConstNeg113: constInfo("const-neg-113", -113),
	KindConst95:     constInfo("const-95", 95),
	KindConstNeg95:  constInfo("const-neg-95", -95),
	KindConst60:     constInfo("const-60", 60),
	KindConstNeg60:  constInfo("const-neg-60", -60),
	KindConst52:     constInfo("const-52", 52),

	KindVerticalLoop:            {name: "vertical-loop", fn: VerticalLoop},
	KindHalfLoopUp:              {name: "half-loop-up", fn: HalfLoopUp},
	KindHalfLoopDown:            {name: "half-loop-down", fn: HalfLoopDown},
	KindMediumHalfLoopUp:        {name: "medium-half-loop-up", fn: MediumHalfLoopUp},
	KindMediumHalfLoopDown:      {name: "medium-half-loop-down", fn: MediumHalfLoopDown},
	KindLargeHalfLoopUp:         {name: "large-half-loop-up", fn: LargeHalfLoopUp},
	KindLargeHalfLoopDown:       {name: "large-half-loop-down", fn: LargeHalfLoopDown},
	KindUp90QuarterLoop:         {name: "up90-quarter-loop", fn: Up90QuarterLoop},
	KindDown90QuarterLoop:       {name: "down90-quarter-loop", fn: Down90QuarterLoop},
	KindLargeCorkscrewUp:        {name: "large-corkscrew-up", fn: LargeCorkscrewUp},
	KindLargeCorkscrewDown:      {name: "large-corkscrew-down", fn: LargeCorkscrewDown},
	KindLargeZeroGRollUp:        {name: "large-zero-g-roll-up", fn: LargeZeroGRollUp},
	KindLargeZeroGRollDown:      {name: "large-zero-g-roll-down", fn: LargeZeroGRollDown},
	KindLargeZeroGRollUpLeft:    {name: "large-zero-g-roll-up-left", fn: LargeZeroGRollUpLeft},
	KindLargeZeroGRollUpRight:   {name: "large-zero-g-roll-up-right", fn: LargeZeroGRollUpRight},
	KindLargeZeroGRollDownLeft:  {name: "large-zero-g-roll-down-left", fn: LargeZeroGRollDownLeft},
	KindLargeZeroGRollDownRight: {name: "large-zero-g-roll-down-right", fn: LargeZeroGRollDownRight},
	KindZeroGRollUpLeft:         {name: "zero-g-roll-up-left", fn: ZeroGRollUpLeft},
	KindZeroGRollUpRight:        {name: "zero-g-roll-up-right", fn: ZeroGRollUpRight},
	KindZeroGRollDownLeft:       {name: "zero-g-roll-down-left", fn: ZeroGRollDownLeft},
	KindZeroGRollDownRight:      {name: "zero-g-roll-down-right", fn: ZeroGRollDownRight},
	KindWaterSplash:             {name: "water-splash", fn: WaterSplash},
	KindHeartLineTransferUp:     {name: "heart-line-transfer-up", fn: HeartLineTransferUp},
	KindHeartLineTransferDown:   {name: "heart-line-transfer-down", fn: HeartLineTransferDown},
	KindSBendLeft:               {name: "s-bend-left", fn: SBendLeft},
	KindSBendRight:              {name: "s-bend-right", fn: SBendRight},
}

// Kinds returns every evaluator kind in declaration order.
func Kinds() []Kind {
	res := make([]Kind, kindCount)
	for i := range res {
		res[i] = Kind(i)
	}
	return res
}

func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Func returns the evaluator k names. Unknown kinds evaluate to Zero.
func (k Kind) Func() Func {
	if !k.Valid() {
		return Zero
	}
	return kinds[k].fn
}

// Constant reports the value of a progress-independent evaluator.
func (k Kind) Constant() (int32, bool) {
	if !k.Valid() || kinds[k].constant == nil {
		return 0, false
	}
	return *kinds[k].constant, true
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal %s: unknown kind", k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, info := range kinds {
		if info.name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}
