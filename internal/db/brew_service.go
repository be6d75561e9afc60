package db

import (
	"context"
	"fmt"

	"github.com/balkashynov/brewlog/internal/brew"
	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

// Insert stores one brew row for user
func (d *Database) Insert(ctx context.Context, user models.User, record models.Brew) (models.Brew, error) {
	if user.ID == "" || record.UserID != user.ID {
		return models.Brew{}, fmt.Errorf("insert brew: %w", brew.ErrMissingUser)
	}
	if err := checkRanges(record); err != nil {
		return models.Brew{}, err
	}

	record.ID = 0
	if err := d.db.WithContext(ctx).Create(&record).Error; err != nil {
		return models.Brew{}, fmt.Errorf("insert brew: %w", err)
	}

	d.log.Debug("brew inserted", "id", record.ID, "user", user.ID)
	return record, nil
}

// checkRanges mirrors the CHECK constraints of the postgres schema
func checkRanges(b models.Brew) error {
	inRange := func(v float64, r brew.Range) bool { return v >= r.Min && v <= r.Max }

	var field string
	switch {
	case !inRange(b.DoseG, brew.DoseRange):
		field = "dose_g"
	case b.WaterML != nil && !inRange(float64(*b.WaterML), brew.WaterRange):
		field = "water_ml"
	case b.WaterTempC != nil && !inRange(float64(*b.WaterTempC), brew.TempRange):
		field = "water_temp_c"
	case !inRange(float64(b.DripCount), brew.DripRange):
		field = "drip_count"
	case !inRange(float64(b.TotalTimeSec), brew.TotalTimeRange):
		field = "total_time_sec"
	case !inRange(float64(b.Rating), brew.RatingRange):
		field = "rating"
	default:
		return nil
	}
	return fmt.Errorf("insert brew: %s out of range: %w", field, gateway.ErrConstraint)
}
