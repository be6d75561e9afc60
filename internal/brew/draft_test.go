package brew

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsMatchForm(t *testing.T) {
	d := Defaults(time.Date(2025, 4, 10, 15, 4, 5, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), d.BrewDate)
	assert.Equal(t, "中煎り", Display(d.RoastLevel))
	assert.Equal(t, Unselected, Display(d.Method))
	assert.Equal(t, "中細挽き", Display(d.GrindSize))
	assert.Equal(t, 15.0, d.DoseG)
	assert.Equal(t, 230, d.WaterML)
	assert.Equal(t, 93, d.WaterTempC)
	assert.Equal(t, 4, d.Rating)
	assert.Nil(t, d.TotalTimeOverride)
}

func TestDraftEqual(t *testing.T) {
	now := time.Now()
	a := Defaults(now)
	b := Defaults(now)
	assert.True(t, a.Equal(b))

	b.Method = ChoiceAt(Method, 1)
	assert.False(t, a.Equal(b))

	b = Defaults(now)
	override := 30
	b.TotalTimeOverride = &override
	assert.False(t, a.Equal(b))
}
