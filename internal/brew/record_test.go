package brew

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestBuildRecordMapsSentinelChoicesToNil(t *testing.T) {
	draft := Defaults(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))
	draft.RoastLevel = ChoiceValue(RoastLevel, Unselected)
	draft.Method = ChoiceValue(Method, Unselected)
	draft.GrindSize = ChoiceValue(GrindSize, Unselected)

	record, err := BuildRecord(draft, nil, "user-1")
	require.NoError(t, err)

	assert.Nil(t, record.RoastLevel)
	assert.Nil(t, record.Method)
	assert.Nil(t, record.GrindSize)
}

func TestBuildRecordScenarioV60(t *testing.T) {
	draft := Defaults(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	draft.BeanName = "Ethiopia Natural"
	draft.RoastLevel = nil
	draft.Method = strPtr("V60ドリッパー")
	draft.DoseG = 18.0
	draft.WaterML = 250
	draft.WaterTempC = 92
	draft.Rating = 5

	record, err := BuildRecord(draft, nil, "user-1")
	require.NoError(t, err)

	assert.Nil(t, record.RoastLevel)
	require.NotNil(t, record.Method)
	assert.Equal(t, "V60ドリッパー", *record.Method)
	assert.Equal(t, 18.0, record.DoseG)
	require.NotNil(t, record.WaterML)
	assert.Equal(t, 250, *record.WaterML)
	require.NotNil(t, record.WaterTempC)
	assert.Equal(t, 92, *record.WaterTempC)
	assert.Equal(t, 5, record.Rating)
}

func TestBuildRecordKeepsNumericTypes(t *testing.T) {
	draft := Defaults(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))

	record, err := BuildRecord(draft, nil, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 15.0, record.DoseG)
	require.NotNil(t, record.WaterML)
	assert.Equal(t, 230, *record.WaterML)
	assert.Equal(t, 93, *record.WaterTempC)
	assert.Equal(t, 1, record.DripCount)
	assert.Equal(t, 4, record.Rating)
}

func TestBuildRecordBrewedAtIsMidnight(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	draft := Defaults(time.Date(2025, 6, 1, 22, 45, 13, 0, loc))

	record, err := BuildRecord(draft, nil, "user-1")
	require.NoError(t, err)

	assert.True(t, record.BrewedAt.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, loc)), "got %s", record.BrewedAt)
}

func TestBuildRecordBlankTextBecomesNil(t *testing.T) {
	draft := Defaults(time.Now())
	draft.BeanName = "  Kenya AA  "
	draft.Roaster = "   "
	draft.Notes = "\n"

	record, err := BuildRecord(draft, nil, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Kenya AA", record.BeanName)
	assert.Nil(t, record.Roaster)
	assert.Nil(t, record.Notes)
}

func TestBuildRecordZeroWaterIsNil(t *testing.T) {
	draft := Defaults(time.Now())
	draft.WaterML = 0

	record, err := BuildRecord(draft, nil, "user-1")
	require.NoError(t, err)
	assert.Nil(t, record.WaterML)
}

func TestBuildRecordTotalTimeResolution(t *testing.T) {
	tests := []struct {
		name     string
		override *int
		elapsed  *int
		want     int
	}{
		{name: "nothing measured", want: 0},
		{name: "timer value", elapsed: intPtr(47), want: 47},
		{name: "override wins", override: intPtr(60), elapsed: intPtr(47), want: 60},
		{name: "override clamped", override: intPtr(5000), want: 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Defaults(time.Now())
			draft.TotalTimeOverride = tt.override

			record, err := BuildRecord(draft, tt.elapsed, "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.TotalTimeSec)
		})
	}
}

func TestBuildRecordRequiresUser(t *testing.T) {
	_, err := BuildRecord(Defaults(time.Now()), nil, " ")
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestBuildRecordClampsOutOfRangeValues(t *testing.T) {
	draft := Defaults(time.Now())
	draft.DoseG = 80
	draft.WaterTempC = 40
	draft.Rating = 9
	draft.DripCount = 0

	record, err := BuildRecord(draft, nil, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 50.0, record.DoseG)
	assert.Equal(t, 70, *record.WaterTempC)
	assert.Equal(t, 5, record.Rating)
	assert.Equal(t, 1, record.DripCount)
}
