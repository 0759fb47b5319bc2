package store

import (
	"context"
	"testing"

	"github.com/simhub/apiserver/types"
	"github.com/stretchr/testify/require"
)

func newHardwareStore(t *testing.T) *HardwareStore {
	t.Helper()
	hardware := NewHardwareStore(newTestKV())
	require.NoError(t, hardware.Initialize(context.Background()))
	return hardware
}

func TestHardwareCreateDefaults(t *testing.T) {
	ctx := context.Background()
	hardware := newHardwareStore(t)

	created, err := hardware.Create(ctx, types.Hardware{
		Name:        "Compact 3DOF Seat",
		Description: "Entry-level motion seat for driving rigs.",
		Category:    "Driving Simulator Cockpits",
		Price:       1800,
		Condition:   "New",
		Rating:      4.2,
		Reviews:     9,
	})
	require.NoError(t, err)

	require.NotEmpty(t, created.ID)
	require.False(t, created.PostedDate.IsZero())
	require.Zero(t, created.Rating)
	require.Zero(t, created.Reviews)
	require.Empty(t, created.UserReviews)
}

func TestHardwareUpdatePatch(t *testing.T) {
	ctx := context.Background()
	hardware := newHardwareStore(t)

	availability := "Sold out until June"
	condition := "Used - Good"
	updated, err := hardware.Update(ctx, "hw2", types.HardwarePatch{
		Availability: &availability,
		Condition:    &condition,
	})
	require.NoError(t, err)
	require.Equal(t, "Sold out until June", updated.Availability)
	require.Equal(t, "Used - Good", updated.Condition)
	require.Equal(t, 250.0, updated.Price)

	_, err = hardware.Update(ctx, "nope", types.HardwarePatch{Condition: &condition})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHardwareFilterPriceRange(t *testing.T) {
	hardware := newHardwareStore(t)

	// seed prices: 15000 and 250
	filtered := hardware.Filter(types.HardwareFilter{MaxPrice: "1000"})
	require.Len(t, filtered, 1)
	require.Equal(t, "hw2", filtered[0].ID)
}

func TestHardwareFilterCategoryAndFeatures(t *testing.T) {
	hardware := newHardwareStore(t)

	byCategory := hardware.Filter(types.HardwareFilter{Category: "VR Motion Platforms"})
	require.Len(t, byCategory, 1)
	require.Equal(t, "hw1", byCategory[0].ID)

	// both seed items carry "VR Ready"
	require.Len(t, hardware.Filter(types.HardwareFilter{Features: []string{"VR Ready"}}), 2)

	byFeatures := hardware.Filter(types.HardwareFilter{Features: []string{"VR Ready", "Modular Design"}})
	require.Len(t, byFeatures, 1)
	require.Equal(t, "hw1", byFeatures[0].ID)
}

func TestHardwareFilterSearch(t *testing.T) {
	hardware := newHardwareStore(t)

	filtered := hardware.Filter(types.HardwareFilter{Search: "GLOVES"})
	require.Len(t, filtered, 1)
	require.Equal(t, "hw2", filtered[0].ID)
}
