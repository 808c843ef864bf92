package core

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntcast/internal/types"
)

func TestValidateStruct(t *testing.T) {
	v := NewValidator(slog.New(slog.NewTextHandler(io.Discard, nil)))

	type request struct {
		SpeciesID  string  `json:"species_id" validate:"required"`
		LocationID string  `json:"location_id" validate:"required"`
		Sightings  int     `json:"sightings" validate:"min=0"`
		Score      float64 `json:"score" validate:"min=0,max=100"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		require.NoError(t, v.ValidateStruct(request{
			SpeciesID:  "moose",
			LocationID: "pittsburg",
			Score:      88.5,
		}))
	})

	t.Run("failures report json field names", func(t *testing.T) {
		err := v.ValidateStruct(request{Score: 150})
		require.Error(t, err)

		appErr, ok := err.(*types.AppError)
		require.True(t, ok)
		assert.Equal(t, types.ErrCodeValidationMissingField, appErr.Code)
		assert.Contains(t, appErr.Details, "species_id")
		assert.Contains(t, appErr.Details, "location_id")
		assert.Contains(t, appErr.Details, "score")
		assert.Equal(t, "is required", appErr.Details["species_id"])
		assert.Equal(t, "must be at most 100", appErr.Details["score"])
	})

	t.Run("non-struct input is an internal error", func(t *testing.T) {
		err := v.ValidateStruct("not a struct")
		require.Error(t, err)
		appErr, ok := err.(*types.AppError)
		require.True(t, ok)
		assert.Equal(t, types.ErrCodeInternalUnexpected, appErr.Code)
	})
}
