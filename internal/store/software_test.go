package store

import (
	"context"
	"testing"

	"github.com/simhub/apiserver/types"
	"github.com/stretchr/testify/require"
)

func newSoftwareStore(t *testing.T) *SoftwareStore {
	t.Helper()
	software := NewSoftwareStore(newTestKV())
	require.NoError(t, software.Initialize(context.Background()))
	return software
}

func TestSoftwareCreateDefaults(t *testing.T) {
	ctx := context.Background()
	software := newSoftwareStore(t)

	created, err := software.Create(ctx, types.Software{
		Name:        "TerrainForge",
		Description: "Procedural terrain generation for driving scenarios.",
		Category:    "Scenario Generation Tools",
		Price:       499,
		Licensing:   "Perpetual",
		Features:    []string{"API for Integration"},
		Rating:      5, // client-supplied stats must not survive
		Reviews:     42,
	})
	require.NoError(t, err)

	require.NotEmpty(t, created.ID)
	require.False(t, created.PostedDate.IsZero())
	require.Zero(t, created.Rating)
	require.Zero(t, created.Reviews)
	require.Empty(t, created.UserReviews)

	got, err := software.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestSoftwareUpdatePatch(t *testing.T) {
	ctx := context.Background()
	software := newSoftwareStore(t)

	price := 3499.0
	updated, err := software.Update(ctx, "sw1", types.SoftwarePatch{Price: &price})
	require.NoError(t, err)
	require.Equal(t, 3499.0, updated.Price)
	require.Equal(t, "AeroSim Pro X", updated.Name)
	require.Equal(t, 15, updated.Reviews)
}

func TestSoftwareFilterPriceRange(t *testing.T) {
	software := newSoftwareStore(t)

	// seed prices: 2999 and 0
	filtered := software.Filter(types.SoftwareFilter{MinPrice: "1000"})
	require.Len(t, filtered, 1)
	require.Equal(t, "sw1", filtered[0].ID)

	// an unparsable bound does not constrain
	require.Len(t, software.Filter(types.SoftwareFilter{MinPrice: "cheap"}), 2)
}

func TestSoftwareFilterCategoryAndFeatures(t *testing.T) {
	software := newSoftwareStore(t)

	byCategory := software.Filter(types.SoftwareFilter{Category: "Medical Simulation"})
	require.Len(t, byCategory, 1)
	require.Equal(t, "sw2", byCategory[0].ID)

	require.Len(t, software.Filter(types.SoftwareFilter{Category: "All"}), 2)

	byFeatures := software.Filter(types.SoftwareFilter{Features: []string{"Haptic Feedback Compatibility", "Multi-user Support"}})
	require.Len(t, byFeatures, 1)
	require.Equal(t, "sw2", byFeatures[0].ID)
}

func TestSoftwareFilterSearch(t *testing.T) {
	software := newSoftwareStore(t)

	filtered := software.Filter(types.SoftwareFilter{Search: "aerosim"})
	require.Len(t, filtered, 1)
	require.Equal(t, "sw1", filtered[0].ID)

	// matches descriptions too
	filtered = software.Filter(types.SoftwareFilter{Search: "surgical"})
	require.Len(t, filtered, 1)
	require.Equal(t, "sw2", filtered[0].ID)
}
