package cronexpr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const labelWidth = 14

// Expression is a fully expanded schedule expression. The zero value is
// empty; Parse is the only way to build a populated one and nothing
// mutates it afterwards.
type Expression struct {
	values  [len(Fields)][]int
	sources [len(Fields)]string
	command string
}

// Field returns a copy of the values of the field at index i (see
// MinuteIndex and friends), or nil when i is not a field position.
func (e Expression) Field(i int) []int {
	if i < 0 || i >= len(e.values) {
		return nil
	}
	return slices.Clone(e.values[i])
}

// Source returns the field expression the values at index i were expanded
// from, or an empty string when i is not a field position.
func (e Expression) Source(i int) string {
	if i < 0 || i >= len(e.sources) {
		return ""
	}
	return e.sources[i]
}

func (e Expression) Minute() []int     { return e.Field(MinuteIndex) }
func (e Expression) Hour() []int       { return e.Field(HourIndex) }
func (e Expression) DayOfMonth() []int { return e.Field(DayOfMonthIndex) }
func (e Expression) Month() []int      { return e.Field(MonthIndex) }
func (e Expression) DayOfWeek() []int  { return e.Field(DayOfWeekIndex) }
func (e Expression) Command() string   { return e.command }

// String renders the expression as one line per field followed by the
// command, labels padded to a fixed column:
//
//	minute        0 15 30 45
//	hour          0
//	day of month  1 15
//	month         1 2 3 4 5 6 7 8 9 10 11 12
//	day of week   1 2 3 4 5
//	command       /usr/bin/find
func (e Expression) String() string {
	var b strings.Builder
	for i, f := range Fields {
		fmt.Fprintf(&b, "%-*s%s\n", labelWidth, f.Label, FormatValues(e.values[i]))
	}
	fmt.Fprintf(&b, "%-*s%s\n", labelWidth, "command", e.command)
	return b.String()
}

// FormatValues joins values with single spaces.
func FormatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
