package cronexpr

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Numeric literals are limited to one or two digits by every pattern, so
// three-digit values fall through to errNoMatch.
var (
	wildcardPattern = regexp.MustCompile(`^\*$`)
	dashPattern     = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
	commaPattern    = regexp.MustCompile(`^\d{1,2}(?:,\d{1,2})*$`)
	intervalPattern = regexp.MustCompile(`^(\*|\d{1,2}-\d{1,2})/(\d{1,2})$`)
)

var errZeroStep = errors.New("step must be greater than zero")

// rule pairs a field-expression shape with the function that expands it.
// expand receives the submatches of pattern.
type rule struct {
	name    string
	pattern *regexp.Regexp
	expand  func(m []string, f Field) ([]int, error)
}

// rules are tried in order and the first matching pattern wins. The
// interval rule expands its base with the wildcard and dash forms, so
// those two must stay ahead of it.
var rules = []rule{
	{name: "wildcard", pattern: wildcardPattern, expand: expandWildcard},
	{name: "dash", pattern: dashPattern, expand: expandDash},
	{name: "comma", pattern: commaPattern, expand: expandComma},
	{name: "interval", pattern: intervalPattern, expand: expandInterval},
}

// Expand converts a single field expression into the values it denotes
// within f's bounds.
//
// Supported forms, tried in this order:
//
//	*        every value of the field
//	A-B      every value from A to B inclusive (empty when A > B)
//	A,B,C    exactly the listed values, in the listed order
//	*/S      values of the base divisible by S
//	A-B/S
//
// Every produced value is checked against the field's bounds; the first
// value outside them fails the whole expression.
func Expand(token string, f Field) ([]int, error) {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		return r.expand(m, f)
	}
	return nil, errNoMatch
}

func expandWildcard(_ []string, f Field) ([]int, error) {
	return rangeClosed(f.Min, f.Max), nil
}

func expandDash(m []string, f Field) ([]int, error) {
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, err
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, err
	}
	values := rangeClosed(lo, hi)
	if err := checkRange(values, f); err != nil {
		return nil, err
	}
	return values, nil
}

func expandComma(m []string, f Field) ([]int, error) {
	parts := strings.Split(m[0], ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := checkRange(values, f); err != nil {
		return nil, err
	}
	return values, nil
}

// expandInterval keeps the base values that are multiples of the step.
// The filter does not offset from the start of the base: 10-20/3 yields
// 12 15 18.
func expandInterval(m []string, f Field) ([]int, error) {
	base, err := expandBase(m[1], f)
	if err != nil {
		return nil, err
	}
	step, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, errZeroStep
	}

	values := make([]int, 0, len(base)/step+1)
	for _, v := range base {
		if v%step == 0 {
			values = append(values, v)
		}
	}
	if err := checkRange(values, f); err != nil {
		return nil, err
	}
	return values, nil
}

// expandBase expands the part of an interval before the slash. It only
// accepts the wildcard and dash forms.
func expandBase(base string, f Field) ([]int, error) {
	if m := wildcardPattern.FindStringSubmatch(base); m != nil {
		return expandWildcard(m, f)
	}
	if m := dashPattern.FindStringSubmatch(base); m != nil {
		return expandDash(m, f)
	}
	return nil, errNoMatch
}

func checkRange(values []int, f Field) error {
	for _, v := range values {
		if !f.Contains(v) {
			return errOutOfRange
		}
	}
	return nil
}

func rangeClosed(lo, hi int) []int {
	if lo > hi {
		return []int{}
	}
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	return values
}

// Form returns the name of the form token would be expanded as, or an
// empty string when it matches none.
func Form(token string) string {
	for _, r := range rules {
		if r.pattern.MatchString(token) {
			return r.name
		}
	}
	return ""
}
