// Package cronexpr expands five-field schedule expressions into the
// explicit integer values each field denotes.
package cronexpr

// Field describes one schedule position and the inclusive range of values
// it accepts.
type Field struct {
	Name  string // used in error messages
	Label string // used when rendering an Expression
	Min   int
	Max   int
}

// Field positions within an expression.
const (
	MinuteIndex = iota
	HourIndex
	DayOfMonthIndex
	MonthIndex
	DayOfWeekIndex
)

// commandIndex is the position of the command token, after the fields.
const commandIndex = len(Fields)

// Fields lists the schedule fields in the order they appear in an
// expression.
var Fields = [5]Field{
	{Name: "minute", Label: "minute", Min: 0, Max: 59},
	{Name: "hour", Label: "hour", Min: 0, Max: 23},
	{Name: "day_of_month", Label: "day of month", Min: 1, Max: 31},
	{Name: "month", Label: "month", Min: 1, Max: 12},
	{Name: "day_of_week", Label: "day of week", Min: 0, Max: 6},
}

// Contains reports whether v lies within the field's bounds.
func (f Field) Contains(v int) bool {
	return v >= f.Min && v <= f.Max
}
