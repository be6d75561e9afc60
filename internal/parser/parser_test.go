package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/brewlog/internal/brew"
)

var now = time.Date(2025, 5, 20, 8, 15, 0, 0, time.Local)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseBrewDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"", day(2025, 5, 20)},
		{"today", day(2025, 5, 20)},
		{"Yesterday", day(2025, 5, 19)},
		{"3 days ago", day(2025, 5, 17)},
		{"1 day ago", day(2025, 5, 19)},
		{"2d", day(2025, 5, 18)},
		{"2025-05-01", day(2025, 5, 1)},
		{"2024-02-29", day(2024, 2, 29)},
		{"01/05/2025", day(2025, 5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBrewDate(tt.input, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseBrewDateRejects(t *testing.T) {
	for _, input := range []string{
		"tomorrow",
		"2025-05-21",
		"31/02/2025",
		"2025-13-01",
		"20.05.2025",
		"next week",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseBrewDate(input, now)
			assert.Error(t, err)
		})
	}
}

func TestFormatBrewDate(t *testing.T) {
	assert.Equal(t, "2025-05-20 (today)", FormatBrewDate(day(2025, 5, 20), now))
	assert.Equal(t, "2025-05-19 (yesterday)", FormatBrewDate(day(2025, 5, 19), now))
	assert.Equal(t, "2025-05-15 (5 days ago)", FormatBrewDate(day(2025, 5, 15), now))
	assert.Equal(t, "2025-04-01", FormatBrewDate(day(2025, 4, 1), now))
}

func TestNormalizeChoice(t *testing.T) {
	tests := []struct {
		kind  brew.ChoiceKind
		input string
		want  *string
	}{
		{brew.Method, "v60", ptr("V60ドリッパー")},
		{brew.Method, "AeroPress", ptr("エアロプレス")},
		{brew.Method, "フレンチプレス", ptr("フレンチプレス")},
		{brew.Method, "none", nil},
		{brew.Method, "", nil},
		{brew.Method, brew.Unselected, nil},
		{brew.RoastLevel, "medium", ptr("中煎り")},
		{brew.RoastLevel, "medium-dark", ptr("中深煎り")},
		{brew.GrindSize, "medium", ptr("中挽き")},
		{brew.GrindSize, "Coarse", ptr("粗挽き")},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.input, func(t *testing.T) {
			got, err := NormalizeChoice(tt.kind, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NormalizeChoice(brew.Method, "siphon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v60")
}

func TestParseQuickLog(t *testing.T) {
	result := ParseQuickLog("Ethiopia Natural @Glitch_Coffee 18g 250ml 92c v60 +5 3:05 x2 light grind:fine on:yesterday", now)

	assert.Empty(t, result.Errors)
	assert.Equal(t, "Ethiopia Natural", result.BeanName)
	assert.Equal(t, "Glitch Coffee", result.Roaster)
	assert.Equal(t, ptr("V60ドリッパー"), result.Method)
	assert.Equal(t, ptr("浅煎り"), result.RoastLevel)
	assert.Equal(t, ptr("細挽き"), result.GrindSize)
	require.NotNil(t, result.DoseG)
	assert.Equal(t, 18.0, *result.DoseG)
	assert.Equal(t, ptr(250), result.WaterML)
	assert.Equal(t, ptr(92), result.WaterTempC)
	assert.Equal(t, ptr(185), result.TotalTimeSec)
	assert.Equal(t, ptr(5), result.Rating)
	assert.Equal(t, ptr(2), result.DripCount)
	require.NotNil(t, result.BrewDate)
	assert.True(t, day(2025, 5, 19).Equal(*result.BrewDate))
}

func TestParseQuickLogSeconds(t *testing.T) {
	result := ParseQuickLog("Kenya 47s 15.5g", now)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Kenya", result.BeanName)
	assert.Equal(t, ptr(47), result.TotalTimeSec)
	assert.Equal(t, 15.5, *result.DoseG)
}

func TestParseQuickLogCollectsErrors(t *testing.T) {
	result := ParseQuickLog("Kenya +9 60g 40c on:tomorrow method:siphon", now)

	assert.Len(t, result.Errors, 5)
	assert.Equal(t, "Kenya", result.BeanName)
	assert.Nil(t, result.Rating)
	assert.Nil(t, result.DoseG)
	assert.Nil(t, result.WaterTempC)
	assert.Nil(t, result.BrewDate)
	assert.Nil(t, result.Method)
}

func TestParsedBrewApply(t *testing.T) {
	draft := brew.Defaults(now)
	ParseQuickLog("Kenya @Onibus aero 20g 4:00", now).Apply(&draft)

	assert.Equal(t, "Kenya", draft.BeanName)
	assert.Equal(t, "Onibus", draft.Roaster)
	assert.Equal(t, ptr("エアロプレス"), draft.Method)
	assert.Equal(t, 20.0, draft.DoseG)
	assert.Equal(t, ptr(240), draft.TotalTimeOverride)
	assert.Equal(t, 240, draft.TotalTime(nil))

	// untouched fields keep their defaults
	defaults := brew.Defaults(now)
	assert.Equal(t, defaults.WaterML, draft.WaterML)
	assert.Equal(t, defaults.Rating, draft.Rating)
	assert.Equal(t, defaults.GrindSize, draft.GrindSize)
}

func ptr[T any](v T) *T {
	return &v
}
