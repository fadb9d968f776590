package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyroberto/roblox/pkg/catalog"
	"github.com/soyroberto/roblox/pkg/seed"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.Nil(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	components := seed.Components()
	steps := seed.Steps()

	seeded, err := s.SeedIfEmpty(ctx, components, steps)
	require.Nil(t, err)
	assert.True(t, seeded)

	loaded, err := s.LoadComponents(ctx)
	require.Nil(t, err)
	require.Equal(t, len(components), len(loaded))

	// Load order follows step_order regardless of insert order.
	for i := 1; i < len(loaded); i++ {
		assert.LessOrEqual(t, loaded[i-1].StepOrder, loaded[i].StepOrder)
	}

	// Full payload survives the round trip.
	assert.Equal(t, components[0].ID, loaded[0].ID)
	assert.Equal(t, components[0].Name, loaded[0].Name)
	assert.Equal(t, components[0].Technologies, loaded[0].Technologies)
	assert.Equal(t, components[0].Connections, loaded[0].Connections)
	assert.Equal(t, components[0].Position, loaded[0].Position)

	loadedSteps, err := s.LoadSteps(ctx)
	require.Nil(t, err)
	require.Equal(t, len(steps), len(loadedSteps))
	assert.Equal(t, 1, loadedSteps[0].StepNumber)
	assert.Equal(t, steps[0].Title, loadedSteps[0].Title)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first := seed.Components()
	seeded, err := s.SeedIfEmpty(ctx, first, seed.Steps())
	require.Nil(t, err)
	assert.True(t, seeded)

	// A second seed with fresh IDs must not replace the stored documents.
	seeded, err = s.SeedIfEmpty(ctx, seed.Components(), seed.Steps())
	require.Nil(t, err)
	assert.False(t, seeded)

	loaded, err := s.LoadComponents(ctx)
	require.Nil(t, err)
	require.Equal(t, len(first), len(loaded))
	assert.Equal(t, first[0].ID, loaded[0].ID)
}

func TestLoadEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	components, err := s.LoadComponents(ctx)
	require.Nil(t, err)
	assert.Empty(t, components)

	steps, err := s.LoadSteps(ctx)
	require.Nil(t, err)
	assert.Empty(t, steps)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("mongodb", "whatever")
	assert.NotNil(t, err)
}

func TestMetricsSurviveJSONStorage(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	comp := catalog.ArchitectureComponent{
		ID:   "c-test",
		Name: "Test",
		Type: catalog.Cache,
		CapacityMetrics: catalog.Metrics{
			"hit_ratio": 95,
			"tier":      "L2",
		},
		StepOrder: 1,
	}
	_, err := s.SeedIfEmpty(ctx, []catalog.ArchitectureComponent{comp}, nil)
	require.Nil(t, err)

	loaded, err := s.LoadComponents(ctx)
	require.Nil(t, err)
	require.Equal(t, 1, len(loaded))
	// JSON turns numbers into float64; the metrics fold handles both.
	assert.Equal(t, float64(95), loaded[0].CapacityMetrics["hit_ratio"])
	assert.Equal(t, "L2", loaded[0].CapacityMetrics["tier"])
}
