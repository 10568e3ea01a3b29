package face

import "github.com/tinytelemetry/digitface/internal/model"

// DigitTileState is a value copy of one tile, as seen by the decider.
type DigitTileState struct {
	Slot    model.DigitSlot
	Value   int
	Resting bool
}

// Decision is the outcome of one rollover pass. All arrays are indexed by
// model.DigitSlot.
type Decision struct {
	Values  [model.SlotCount]int
	Changed [model.SlotCount]bool

	// Diverged marks slots whose new value differs from the previous one
	// even though the cascade did not reach them. Informational only.
	Diverged [model.SlotCount]bool
}

// Any reports whether at least one slot changed.
func (d Decision) Any() bool {
	for _, c := range d.Changed {
		if c {
			return true
		}
	}
	return false
}

// DisplayHour converts a 0-23 hour into the hour shown on the face.
func DisplayHour(hour int, twelveHour bool) int {
	if !twelveHour {
		return hour
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return hour
}

// Digits splits a reading into the four displayed digits.
func Digits(reading model.ClockReading, twelveHour bool) [model.SlotCount]int {
	h := DisplayHour(reading.Hour, twelveHour)
	var v [model.SlotCount]int
	v[model.HourTens] = h / 10
	v[model.HourOnes] = h % 10
	v[model.MinuteTens] = reading.Minute / 10
	v[model.MinuteOnes] = reading.Minute % 10
	return v
}

// Decide computes the new digit values for reading and which tiles need a
// transition.
//
// The minute ones digit always changes. Each more significant digit is only
// reached when the digit below it changed and wrapped to 0. This is a carry
// heuristic, not a comparison against previous: a digit whose value moved
// without the carry reaching it is left alone and reported in Diverged.
//
// In twelve-hour mode the 12 -> 1 rollover is forced through to the hour tens
// digit, since the hour ones digit lands on 1 rather than 0.
func Decide(previous [model.SlotCount]DigitTileState, reading model.ClockReading, twelveHour bool) Decision {
	d := Decision{Values: Digits(reading, twelveHour)}

	for _, slot := range model.CascadeOrder {
		d.Changed[slot] = true
		if d.Values[slot] != 0 {
			break
		}
	}

	if twelveHour && d.Changed[model.HourOnes] &&
		d.Values[model.HourOnes] == 1 && d.Values[model.HourTens] != 1 {
		d.Changed[model.HourTens] = true
	}

	for _, slot := range model.Slots {
		if !d.Changed[slot] && d.Values[slot] != previous[slot].Value {
			d.Diverged[slot] = true
		}
	}
	return d
}
