package brew

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeParseFloatClamps(t *testing.T) {
	v, err := DoseRange.ParseFloat("72.5")
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)

	v, err = DoseRange.ParseFloat(" 18 ")
	require.NoError(t, err)
	assert.Equal(t, 18.0, v)
}

func TestRangeParseRejectsGarbage(t *testing.T) {
	_, err := DoseRange.ParseFloat("lots")
	assert.Error(t, err)

	_, err = WaterRange.ParseInt("12.5")
	assert.Error(t, err)

	_, err = DoseRange.ParseFloat("NaN")
	assert.Error(t, err)
}

func TestRangeStep(t *testing.T) {
	assert.Equal(t, 15.5, DoseRange.StepFloat(15, 1))
	assert.Equal(t, 0.0, DoseRange.StepFloat(0.2, -1))
	assert.Equal(t, 1000, WaterRange.StepInt(995, 1))
	assert.Equal(t, 5, RatingRange.StepInt(5, 1))
	assert.Equal(t, 70, TempRange.StepInt(71, -3))
}

func TestChoicesSentinelFirst(t *testing.T) {
	for _, kind := range []ChoiceKind{RoastLevel, Method, GrindSize} {
		options := Choices(kind)
		require.NotEmpty(t, options)
		assert.Equal(t, Unselected, options[0], kind.String())
	}
}

func TestChoiceAtWrapsAround(t *testing.T) {
	n := len(Choices(Method))
	assert.Nil(t, ChoiceAt(Method, n))
	assert.Equal(t, "その他", *ChoiceAt(Method, -1))
}

func TestChoiceIndexRoundTrip(t *testing.T) {
	for i, option := range Choices(GrindSize) {
		assert.Equal(t, i, ChoiceIndex(GrindSize, ChoiceValue(GrindSize, option)))
	}
	unknown := "instant"
	assert.Equal(t, 0, ChoiceIndex(GrindSize, &unknown))
}

func TestChoiceValueRejectsUnknownDisplay(t *testing.T) {
	assert.Nil(t, ChoiceValue(RoastLevel, "burnt"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "エチオ", Truncate("エチオピア", 3))
	assert.Equal(t, "abc", Truncate("abc", 10))
}
