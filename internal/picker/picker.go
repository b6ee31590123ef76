// Package picker implements the state reconciliation behind the console's
// date and date-range inputs: a picker owns (or mirrors) display parts for a
// date plus optional hour/minute, and emits a canonical external value on
// every committed edit.
package picker

import (
	"github.com/nguyenhuutu2898/admin-console-pro/internal/datetime"
)

// Mode says who owns the current value. Resolved once at construction and
// never re-derived from argument presence afterwards.
type Mode int

const (
	// Uncontrolled pickers own their display state, seeded from a default.
	Uncontrolled Mode = iota
	// Controlled pickers mirror a caller-supplied value; display parts are
	// recomputed from it on every external change.
	Controlled
)

// Options configure a Picker.
type Options struct {
	// Value puts the picker in controlled mode when non-nil at construction.
	// The pointee may itself be nil for "controlled, currently empty".
	Value **string
	// DefaultValue seeds uncontrolled state and backfills controlled parses.
	DefaultValue *string
	// WithTime tracks hour/minute; edits then emit the full canonical local
	// ISO string instead of a bare date.
	WithTime bool
	// OnChange receives the external value on every committed edit: nil for
	// cleared, a bare YYYY-MM-DD when WithTime is false, the composed local
	// ISO string otherwise.
	OnChange func(value *string)
}

// Picker keeps one date (and optional time-of-day) synchronized between an
// external string value and internal display parts.
type Picker struct {
	conv     *datetime.Converter
	mode     Mode
	withTime bool
	onChange func(*string)
	parts    datetime.Parts
}

// New builds a picker. Controlled mode applies iff opts.Value is non-nil; a
// default value alone leaves the picker uncontrolled.
func New(conv *datetime.Converter, opts Options) *Picker {
	p := &Picker{
		conv:     conv,
		withTime: opts.WithTime,
		onChange: opts.OnChange,
	}
	if opts.Value != nil {
		p.mode = Controlled
		p.parts = initialParts(conv, *opts.Value, opts.DefaultValue)
	} else {
		p.mode = Uncontrolled
		p.parts = initialParts(conv, nil, opts.DefaultValue)
	}
	return p
}

func initialParts(conv *datetime.Converter, value, fallback *string) datetime.Parts {
	candidate := value
	if candidate == nil {
		candidate = fallback
	}
	if candidate == nil {
		return emptyParts()
	}
	parsed, ok := conv.ParseLocalDateTime(*candidate)
	if !ok {
		return emptyParts()
	}
	if parsed.Hour == "" {
		parsed.Hour = "00"
	}
	if parsed.Minute == "" {
		parsed.Minute = "00"
	}
	return parsed
}

func emptyParts() datetime.Parts {
	return datetime.Parts{Date: "", Hour: "00", Minute: "00"}
}

// Mode reports whether the picker is controlled or uncontrolled.
func (p *Picker) Mode() Mode {
	return p.mode
}

// Parts returns the current display parts.
func (p *Picker) Parts() datetime.Parts {
	return p.parts
}

// TimeEnabled reports whether hour/minute edits are meaningful right now.
// Time inputs have nothing to anchor to without a date.
func (p *Picker) TimeEnabled() bool {
	return p.withTime && p.parts.Date != ""
}

// SetValue reconciles an externally supplied value. Only meaningful in
// controlled mode: display parts are fully recomputed from the new value
// (and default), never left to drift.
func (p *Picker) SetValue(value, defaultValue *string) {
	if p.mode != Controlled {
		return
	}
	p.parts = initialParts(p.conv, value, defaultValue)
}

// SetDate applies a date-field edit. The display part updates immediately;
// the emitted value is nil for a cleared date, the bare date when time is
// not tracked, otherwise the composed local ISO string. Composition failure
// suppresses the emission.
func (p *Picker) SetDate(date string) {
	p.parts.Date = date

	if date == "" {
		p.emit(nil)
		return
	}

	if !p.withTime {
		p.emit(&date)
		return
	}

	if composed, ok := p.conv.FormatPartsToLocalISOString(date, p.parts.Hour, p.parts.Minute); ok {
		p.emit(&composed)
	}
}

// SetHour applies an hour-selector edit. Without an anchor date the edit is
// recorded locally and nothing is emitted.
func (p *Picker) SetHour(hour string) {
	prevDate := p.parts.Date
	p.parts.Hour = hour

	if prevDate == "" {
		return
	}
	if composed, ok := p.conv.FormatPartsToLocalISOString(prevDate, hour, p.parts.Minute); ok {
		p.emit(&composed)
	}
}

// SetMinute applies a minute-selector edit, symmetric with SetHour.
func (p *Picker) SetMinute(minute string) {
	prevDate := p.parts.Date
	p.parts.Minute = minute

	if prevDate == "" {
		return
	}
	if composed, ok := p.conv.FormatPartsToLocalISOString(prevDate, p.parts.Hour, minute); ok {
		p.emit(&composed)
	}
}

func (p *Picker) emit(value *string) {
	if p.onChange != nil {
		p.onChange(value)
	}
}
