package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyroberto/roblox/internal/logger"
	"github.com/soyroberto/roblox/pkg/catalog"
)

// countingLoader records how often the underlying store is hit.
type countingLoader struct {
	components []catalog.ArchitectureComponent
	steps      []catalog.JourneyStep
	calls      int
}

func (l *countingLoader) LoadComponents(ctx context.Context) ([]catalog.ArchitectureComponent, error) {
	l.calls++
	return l.components, nil
}

func (l *countingLoader) LoadSteps(ctx context.Context) ([]catalog.JourneyStep, error) {
	l.calls++
	return l.steps, nil
}

func testCache(t *testing.T) (*CachedLoader, *countingLoader, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	source := &countingLoader{
		components: []catalog.ArchitectureComponent{
			{ID: "c-lb", Name: "LB", Type: catalog.LoadBalancer, StepOrder: 1},
		},
		steps: []catalog.JourneyStep{
			{ID: "s1", StepNumber: 1, Title: "First"},
		},
	}
	return NewCachedLoader(source, client, time.Minute, logger.Default), source, mr
}

func TestCacheMissThenHit(t *testing.T) {
	ctx := context.Background()
	cached, source, _ := testCache(t)

	first, err := cached.LoadComponents(ctx)
	require.Nil(t, err)
	assert.Equal(t, 1, len(first))
	assert.Equal(t, 1, source.calls)

	second, err := cached.LoadComponents(ctx)
	require.Nil(t, err)
	assert.Equal(t, first, second)
	// Second read was served from the cache.
	assert.Equal(t, 1, source.calls)
}

func TestCacheStepsIndependentOfComponents(t *testing.T) {
	ctx := context.Background()
	cached, source, _ := testCache(t)

	_, err := cached.LoadComponents(ctx)
	require.Nil(t, err)
	steps, err := cached.LoadSteps(ctx)
	require.Nil(t, err)
	assert.Equal(t, "First", steps[0].Title)
	assert.Equal(t, 2, source.calls)
}

func TestCacheEntriesExpire(t *testing.T) {
	ctx := context.Background()
	cached, source, mr := testCache(t)

	_, err := cached.LoadComponents(ctx)
	require.Nil(t, err)
	assert.True(t, mr.Exists(componentsKey))

	mr.FastForward(2 * time.Minute)

	_, err = cached.LoadComponents(ctx)
	require.Nil(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	cached, source, mr := testCache(t)

	_, err := cached.LoadComponents(ctx)
	require.Nil(t, err)
	_, err = cached.LoadSteps(ctx)
	require.Nil(t, err)

	require.Nil(t, cached.Invalidate(ctx))
	assert.False(t, mr.Exists(componentsKey))
	assert.False(t, mr.Exists(stepsKey))

	_, err = cached.LoadComponents(ctx)
	require.Nil(t, err)
	assert.Equal(t, 3, source.calls)
}

func TestCacheCorruptEntryBehavesAsMiss(t *testing.T) {
	ctx := context.Background()
	cached, source, mr := testCache(t)

	require.Nil(t, mr.Set(componentsKey, "not json"))

	components, err := cached.LoadComponents(ctx)
	require.Nil(t, err)
	assert.Equal(t, 1, len(components))
	assert.Equal(t, 1, source.calls)
}
