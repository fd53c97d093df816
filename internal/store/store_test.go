package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBlobRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := openTestStore(t).Blobs()

	_, ok, err := blobs.Get(ctx, "pathfinder_profile")
	require.NoError(t, err)
	assert.False(t, ok, "fresh store has no blob")

	require.NoError(t, blobs.Put(ctx, "pathfinder_profile", `{"name":"Ana"}`))

	payload, ok, err := blobs.Get(ctx, "pathfinder_profile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"Ana"}`, payload)
}

func TestBlobPutReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	blobs := openTestStore(t).Blobs()

	require.NoError(t, blobs.Put(ctx, "k", "first"))
	require.NoError(t, blobs.Put(ctx, "k", "second"))

	payload, ok, err := blobs.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", payload)
}

func TestBlobDelete(t *testing.T) {
	ctx := context.Background()
	blobs := openTestStore(t).Blobs()

	require.NoError(t, blobs.Put(ctx, "k", "v"))
	require.NoError(t, blobs.Delete(ctx, "k"))

	_, ok, err := blobs.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, blobs.Delete(ctx, "k"))
}

func TestEventAppendAndQuery(t *testing.T) {
	ctx := context.Background()
	events := openTestStore(t).Events()

	require.NoError(t, events.AppendLLMRequest(ctx, LLMEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "mentor-chat",
		InputTokens: 120, OutputTokens: 80, LatencyMs: 420, Success: true,
	}))
	require.NoError(t, events.AppendLLMRequest(ctx, LLMEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "mentor-chat",
		LatencyMs: 95, Success: false, ErrorMessage: "rate limited",
	}))
	require.NoError(t, events.AppendLLMRequest(ctx, LLMEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "career-discovery",
		InputTokens: 60, OutputTokens: 200, LatencyMs: 800, Success: true,
	}))

	recent, err := events.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "career-discovery", recent[0].Purpose, "newest first")

	usage, err := events.UsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, "career-discovery", usage[0].Purpose)
	assert.Equal(t, 2, usage[1].Requests)
	assert.Equal(t, 1, usage[1].Failures)
	assert.Equal(t, 120, usage[1].InputTokens)
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Blobs().Put(context.Background(), "k", "v"))
	require.NoError(t, s.Close())

	// Reopening migrates again without clobbering data.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	payload, ok, err := s2.Blobs().Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", payload)
}
