package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

// brewPayload is the insert body; id and created_at are left to the table
type brewPayload struct {
	UserID       string  `json:"user_id"`
	BrewedAt     string  `json:"brewed_at"`
	BeanName     string  `json:"bean_name"`
	Roaster      *string `json:"roaster"`
	RoastLevel   *string `json:"roast_level"`
	Method       *string `json:"method"`
	GrindSize    *string `json:"grind_size"`
	DoseG        float64 `json:"dose_g"`
	WaterML      *int    `json:"water_ml"`
	WaterTempC   *int    `json:"water_temp_c"`
	DripCount    int     `json:"drip_count"`
	TotalTimeSec int     `json:"total_time_sec"`
	Rating       int     `json:"rating"`
	Notes        *string `json:"notes"`
}

func newBrewPayload(b models.Brew) brewPayload {
	return brewPayload{
		UserID:       b.UserID,
		BrewedAt:     b.BrewedAt.Format(time.RFC3339),
		BeanName:     b.BeanName,
		Roaster:      b.Roaster,
		RoastLevel:   b.RoastLevel,
		Method:       b.Method,
		GrindSize:    b.GrindSize,
		DoseG:        b.DoseG,
		WaterML:      b.WaterML,
		WaterTempC:   b.WaterTempC,
		DripCount:    b.DripCount,
		TotalTimeSec: b.TotalTimeSec,
		Rating:       b.Rating,
		Notes:        b.Notes,
	}
}

// Insert appends one row to the brews table as the signed-in user
func (c *Client) Insert(ctx context.Context, user models.User, record models.Brew) (models.Brew, error) {
	if user.AccessToken == "" {
		return models.Brew{}, errors.New("insert brew: no access token, sign in again")
	}

	var rows []models.Brew
	err := c.do(ctx, http.MethodPost, "/rest/v1/brews", user.AccessToken,
		map[string]string{"Prefer": "return=representation"},
		[]brewPayload{newBrewPayload(record)}, &rows)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && strings.HasPrefix(apiErr.Code, "23") {
			return models.Brew{}, fmt.Errorf("insert brew: %s: %w", apiErr.Message, gateway.ErrConstraint)
		}
		return models.Brew{}, fmt.Errorf("insert brew: %w", err)
	}

	if len(rows) == 0 {
		// Row-level security can hide the representation; the insert still happened
		c.log.Warn("insert returned no representation", "user", user.ID)
		return record, nil
	}
	return rows[0], nil
}
