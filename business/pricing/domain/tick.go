package domain

// Tick bounds shared by the concentrated-liquidity versions.
const (
	MinTick int32 = -887272
	MaxTick int32 = 887272
)

// TickRange is a half-open [Lower, Upper) position boundary pair.
type TickRange struct {
	Lower int32
	Upper int32
}

// RoundMode selects how a tick is snapped to a spacing multiple.
type RoundMode int

const (
	RoundDown RoundMode = iota
	RoundUp
	RoundNearest
)

// RoundTickToSpacing snaps tick to a multiple of spacing and clamps the
// result to [MinTick, MaxTick]. A non-positive spacing returns the tick
// unchanged (clamped).
func RoundTickToSpacing(tick, spacing int32, mode RoundMode) int32 {
	if spacing <= 0 {
		return clampTick(tick)
	}

	t, s := int64(tick), int64(spacing)
	var rounded int64
	switch mode {
	case RoundUp:
		rounded = ceilDiv(t, s) * s
	case RoundNearest:
		down := floorDiv(t, s) * s
		up := down + s
		if t-down < up-t {
			rounded = down
		} else {
			rounded = up
		}
	default: // RoundDown
		rounded = floorDiv(t, s) * s
	}

	return clampTick(int32(rounded))
}

// FullRangeTicks returns the widest usable range: the smallest and
// largest multiples of spacing inside the tick bounds.
func FullRangeTicks(spacing int32) TickRange {
	if spacing <= 0 {
		return TickRange{Lower: MinTick, Upper: MaxTick}
	}
	s := int64(spacing)
	return TickRange{
		Lower: int32(ceilDiv(int64(MinTick), s) * s),
		Upper: int32(floorDiv(int64(MaxTick), s) * s),
	}
}

// TickSpacingTable maps static fee tiers to tick spacings, with a
// deployment-configurable spacing for the dynamic-fee sentinel.
type TickSpacingTable struct {
	overrides      map[uint32]int32
	dynamicSpacing int32
}

// defaultSpacings is the standard static tier table.
var defaultSpacings = map[uint32]int32{
	100:   1,
	500:   10,
	3000:  60,
	10000: 200,
}

// defaultStaticSpacing applies to unrecognized static tiers.
const defaultStaticSpacing int32 = 60

// NewTickSpacingTable builds a table from per-deployment overrides.
// overrides may be nil; dynamicSpacing must be positive (commonly 200,
// but ecosystems differ, so it is never baked in).
func NewTickSpacingTable(overrides map[uint32]int32, dynamicSpacing int32) TickSpacingTable {
	merged := make(map[uint32]int32, len(defaultSpacings)+len(overrides))
	for fee, spacing := range defaultSpacings {
		merged[fee] = spacing
	}
	for fee, spacing := range overrides {
		if spacing > 0 {
			merged[fee] = spacing
		}
	}
	if dynamicSpacing <= 0 {
		dynamicSpacing = 200
	}
	return TickSpacingTable{overrides: merged, dynamicSpacing: dynamicSpacing}
}

// DefaultTickSpacingTable returns the table with no overrides.
func DefaultTickSpacingTable() TickSpacingTable {
	return NewTickSpacingTable(nil, 200)
}

// SpacingForFee resolves the tick spacing for a fee tier. Dynamic-fee
// pools get the configured dynamic spacing; unknown static tiers fall
// back to the default spacing.
func (t TickSpacingTable) SpacingForFee(fee uint32) int32 {
	if fee == DynamicFeeFlag {
		return t.dynamicSpacing
	}
	if spacing, ok := t.overrides[fee]; ok {
		return spacing
	}
	return defaultStaticSpacing
}

func clampTick(tick int32) int32 {
	if tick < MinTick {
		return MinTick
	}
	if tick > MaxTick {
		return MaxTick
	}
	return tick
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ceilDiv is integer division rounding toward positive infinity.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
