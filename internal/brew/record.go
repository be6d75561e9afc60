package brew

import (
	"errors"
	"strings"

	"github.com/balkashynov/brewlog/internal/models"
)

// ErrMissingUser is returned when a record is built without an owner
var ErrMissingUser = errors.New("user id is required")

// BuildRecord turns a draft into the row handed to the gateway. Values are
// clamped again here since the CLI path has no input widgets.
func BuildRecord(d Draft, elapsed *int, userID string) (models.Brew, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return models.Brew{}, ErrMissingUser
	}

	record := models.Brew{
		UserID:       userID,
		BrewedAt:     DateOf(d.BrewDate),
		BeanName:     Truncate(strings.TrimSpace(d.BeanName), MaxBeanNameLen),
		Roaster:      optionalText(d.Roaster, MaxRoasterLen),
		RoastLevel:   normalizeChoice(RoastLevel, d.RoastLevel),
		Method:       normalizeChoice(Method, d.Method),
		GrindSize:    normalizeChoice(GrindSize, d.GrindSize),
		DoseG:        DoseRange.Clamp(d.DoseG),
		DripCount:    DripRange.ClampInt(d.DripCount),
		TotalTimeSec: d.TotalTime(elapsed),
		Rating:       RatingRange.ClampInt(d.Rating),
		Notes:        optionalText(d.Notes, MaxNotesLen),
	}

	if water := WaterRange.ClampInt(d.WaterML); water != 0 {
		record.WaterML = &water
	}
	temp := TempRange.ClampInt(d.WaterTempC)
	record.WaterTempC = &temp

	return record, nil
}

func optionalText(s string, limit int) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = Truncate(s, limit)
	return &s
}

func normalizeChoice(kind ChoiceKind, value *string) *string {
	if value == nil {
		return nil
	}
	return ChoiceValue(kind, *value)
}
