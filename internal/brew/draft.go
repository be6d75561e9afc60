package brew

import "time"

// Draft holds the current value of every form field.
type Draft struct {
	BrewDate   time.Time
	BeanName   string
	Roaster    string
	RoastLevel *string
	Method     *string
	GrindSize  *string
	DoseG      float64
	WaterML    int
	WaterTempC int
	DripCount  int
	Rating     int
	Notes      string

	// TotalTimeOverride is set when the time field was edited by hand.
	TotalTimeOverride *int
}

// Defaults returns the initial draft for a brew made today.
func Defaults(today time.Time) Draft {
	return Draft{
		BrewDate:   DateOf(today),
		RoastLevel: ChoiceAt(RoastLevel, 2),
		Method:     nil,
		GrindSize:  ChoiceAt(GrindSize, 3),
		DoseG:      15.0,
		WaterML:    230,
		WaterTempC: 93,
		DripCount:  1,
		Rating:     4,
	}
}

// DateOf truncates t to midnight in its own location
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Equal reports whether two drafts hold the same values
func (d Draft) Equal(other Draft) bool {
	return d.BrewDate.Equal(other.BrewDate) &&
		d.BeanName == other.BeanName &&
		d.Roaster == other.Roaster &&
		equalPtr(d.RoastLevel, other.RoastLevel) &&
		equalPtr(d.Method, other.Method) &&
		equalPtr(d.GrindSize, other.GrindSize) &&
		d.DoseG == other.DoseG &&
		d.WaterML == other.WaterML &&
		d.WaterTempC == other.WaterTempC &&
		d.DripCount == other.DripCount &&
		d.Rating == other.Rating &&
		d.Notes == other.Notes &&
		equalPtr(d.TotalTimeOverride, other.TotalTimeOverride)
}

// TotalTime resolves the submitted duration: manual override, then the
// finalized timer value, then zero.
func (d Draft) TotalTime(elapsed *int) int {
	switch {
	case d.TotalTimeOverride != nil:
		return TotalTimeRange.ClampInt(*d.TotalTimeOverride)
	case elapsed != nil:
		return TotalTimeRange.ClampInt(*elapsed)
	default:
		return 0
	}
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
