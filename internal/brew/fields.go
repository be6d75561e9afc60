package brew

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is the input-boundary constraint of a numeric field.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Numeric field constraints
var (
	DoseRange      = Range{Min: 0, Max: 50, Step: 0.5}
	WaterRange     = Range{Min: 0, Max: 1000, Step: 10}
	TempRange      = Range{Min: 70, Max: 100, Step: 1}
	DripRange      = Range{Min: 1, Max: 10, Step: 1}
	TotalTimeRange = Range{Min: 0, Max: 1200, Step: 1}
	RatingRange    = Range{Min: 1, Max: 5, Step: 1}
)

// Text field limits
const (
	MaxBeanNameLen = 120
	MaxRoasterLen  = 120
	MaxNotesLen    = 1000
)

// Clamp pins v into the range
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// ClampInt pins v into the range
func (r Range) ClampInt(v int) int {
	return int(r.Clamp(float64(v)))
}

// StepFloat moves v by n steps and clamps the result
func (r Range) StepFloat(v float64, n int) float64 {
	return r.Clamp(v + float64(n)*r.Step)
}

// StepInt moves v by n steps and clamps the result
func (r Range) StepInt(v int, n int) int {
	return int(r.StepFloat(float64(v), n))
}

// ParseFloat reads user input and clamps it; unparseable text is rejected.
func (r Range) ParseFloat(input string) (float64, error) {
	input = strings.TrimSpace(input)
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", input)
	}
	return r.Clamp(v), nil
}

// ParseInt reads user input and clamps it; unparseable text is rejected.
func (r Range) ParseInt(input string) (int, error) {
	input = strings.TrimSpace(input)
	v, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", input)
	}
	return r.ClampInt(v), nil
}

// Truncate cuts s to at most n runes
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
