package picker

import (
	"github.com/nguyenhuutu2898/admin-console-pro/internal/datetime"
)

// Range is the external representation of a start/end pair. Either side may
// be nil for absent.
type Range struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// MergeRange coalesces per field: current's field when set, else fallback's,
// else nil. It is the only reconciliation path between a caller-supplied
// range and the last known one, so an edit to one side can never revert the
// other to the fallback.
func MergeRange(current, fallback *Range) Range {
	merged := Range{}
	if current != nil && current.Start != nil {
		merged.Start = current.Start
	} else if fallback != nil && fallback.Start != nil {
		merged.Start = fallback.Start
	}
	if current != nil && current.End != nil {
		merged.End = current.End
	} else if fallback != nil && fallback.End != nil {
		merged.End = fallback.End
	}
	return merged
}

// RangeOptions configure a RangePicker.
type RangeOptions struct {
	// Value puts the range in controlled mode when non-nil at construction.
	Value *Range
	// DefaultValue backfills fields the value (or user) has not set yet.
	DefaultValue *Range
	// WithTime applies to both sides.
	WithTime bool
	// OnChange receives the whole range on every edit to either side.
	OnChange func(value Range)
}

// RangePicker composes two single-value pickers into one start/end range
// without letting an edit to one side clobber the other.
type RangePicker struct {
	conv     *datetime.Converter
	mode     Mode
	withTime bool
	onChange func(Range)

	internal Range
	external *Range
	fallback *Range

	start *Picker
	end   *Picker
}

// NewRange builds a range picker. Controlled mode applies iff opts.Value is
// non-nil at construction; a default value alone stays uncontrolled and is
// still merged reactively.
func NewRange(conv *datetime.Converter, opts RangeOptions) *RangePicker {
	rp := &RangePicker{
		conv:     conv,
		withTime: opts.WithTime,
		onChange: opts.OnChange,
		external: opts.Value,
		fallback: opts.DefaultValue,
	}
	if opts.Value != nil {
		rp.mode = Controlled
	}
	rp.internal = MergeRange(opts.Value, opts.DefaultValue)
	rp.rebuildSides()
	return rp
}

// rebuildSides reseeds the two side pickers from the visible range. Each
// side runs controlled against its half of the range so display parts always
// derive from the canonical value.
func (rp *RangePicker) rebuildSides() {
	visible := rp.Value()
	rp.start = New(rp.conv, Options{
		Value:    &visible.Start,
		WithTime: rp.withTime,
		OnChange: rp.handleStart,
	})
	rp.end = New(rp.conv, Options{
		Value:    &visible.End,
		WithTime: rp.withTime,
		OnChange: rp.handleEnd,
	})
}

// Mode reports whether the range is controlled or uncontrolled.
func (rp *RangePicker) Mode() Mode {
	return rp.mode
}

// Value returns the currently visible range: the merged external value in
// controlled mode, internal state otherwise.
func (rp *RangePicker) Value() Range {
	if rp.mode == Controlled {
		return MergeRange(rp.external, rp.fallback)
	}
	return rp.internal
}

// StartParts returns the display parts of the start side.
func (rp *RangePicker) StartParts() datetime.Parts {
	return rp.start.Parts()
}

// EndParts returns the display parts of the end side.
func (rp *RangePicker) EndParts() datetime.Parts {
	return rp.end.Parts()
}

// Reconcile applies an external value/default change. In controlled mode the
// visible range is recomputed from the new value; uncontrolled, a default
// update re-merges against current state to pick up newly available fallback
// fields without discarding what the user already set.
func (rp *RangePicker) Reconcile(value, defaultValue *Range) {
	rp.fallback = defaultValue
	if rp.mode == Controlled {
		rp.external = value
		rp.internal = MergeRange(value, defaultValue)
	} else if defaultValue != nil {
		rp.internal = MergeRange(&rp.internal, defaultValue)
	}
	rp.rebuildSides()
}

// SetStartDate edits the start side's date field.
func (rp *RangePicker) SetStartDate(date string) { rp.start.SetDate(date) }

// SetStartHour edits the start side's hour selector.
func (rp *RangePicker) SetStartHour(hour string) { rp.start.SetHour(hour) }

// SetStartMinute edits the start side's minute selector.
func (rp *RangePicker) SetStartMinute(minute string) { rp.start.SetMinute(minute) }

// SetEndDate edits the end side's date field.
func (rp *RangePicker) SetEndDate(date string) { rp.end.SetDate(date) }

// SetEndHour edits the end side's hour selector.
func (rp *RangePicker) SetEndHour(hour string) { rp.end.SetHour(hour) }

// SetEndMinute edits the end side's minute selector.
func (rp *RangePicker) SetEndMinute(minute string) { rp.end.SetMinute(minute) }

func (rp *RangePicker) handleStart(value *string) {
	current := rp.Value()
	rp.update(Range{Start: value, End: current.End})
}

func (rp *RangePicker) handleEnd(value *string) {
	current := rp.Value()
	rp.update(Range{Start: current.Start, End: value})
}

// update commits a new range: internal state moves only in uncontrolled
// mode, the external onChange always fires.
func (rp *RangePicker) update(next Range) {
	if rp.mode != Controlled {
		rp.internal = next
	}
	if rp.onChange != nil {
		rp.onChange(next)
	}
}
