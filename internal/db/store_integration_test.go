//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

func connectTestStore(t *testing.T) *Store {
	t.Helper()
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	store, err := Connect(context.Background(), databaseURL)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func TestSaveAndGetProfile(t *testing.T) {
	store := connectTestStore(t)
	ctx := context.Background()
	resumeID := uuid.New()

	profile := &types.ResumeProfile{
		ResumeID:   resumeID,
		Skills:     []string{"Python", "Django"},
		Profession: "technology",
		Level:      types.LevelMiddle,
	}
	require.NoError(t, store.SaveProfile(ctx, resumeID, "test.1", profile))

	got, err := store.GetProfile(ctx, resumeID, "test.1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.Skills, got.Skills)

	// A different taxonomy version is a cache miss.
	miss, err := store.GetProfile(ctx, resumeID, "test.2")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestSaveProfile_Upsert(t *testing.T) {
	store := connectTestStore(t)
	ctx := context.Background()
	resumeID := uuid.New()

	first := &types.ResumeProfile{Skills: []string{"Python"}, Profession: "technology"}
	require.NoError(t, store.SaveProfile(ctx, resumeID, "test.1", first))

	second := &types.ResumeProfile{Skills: []string{"Python", "Go"}, Profession: "technology"}
	require.NoError(t, store.SaveProfile(ctx, resumeID, "test.1", second))

	got, err := store.GetProfile(ctx, resumeID, "test.1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.Skills, got.Skills)
}

func TestSaveAndGetMatch(t *testing.T) {
	store := connectTestStore(t)
	ctx := context.Background()
	resumeID, jobID := uuid.New(), uuid.New()

	result := &types.MatchResult{
		JobID:      jobID,
		JobTitle:   "Backend Developer",
		MatchScore: 74,
	}
	require.NoError(t, store.SaveMatch(ctx, resumeID, jobID, "test.1", result))

	got, err := store.GetMatch(ctx, resumeID, jobID, "test.1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 74.0, got.MatchScore)

	miss, err := store.GetMatch(ctx, resumeID, uuid.New(), "test.1")
	require.NoError(t, err)
	assert.Nil(t, miss)
}
