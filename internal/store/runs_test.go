package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/msgc/internal/testutil"
)

func TestRecordRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run, err := s.RecordRun(ctx, createTestRun("out.go",
		RunMessage{Name: "TestMessage", Frequency: "Low", Number: 0xffff0001},
		RunMessage{Name: "PacketAck", Frequency: "Fixed", Number: 0xfffffffb},
	))
	require.NoError(t, err)

	id, err := uuid.Parse(run.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, int64(1), run.Seq)
	assert.Equal(t, 2, run.MessageCount)
	assert.False(t, run.CreatedAt.IsZero())

	second, err := s.RecordRun(ctx, createTestRun("out.go"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Seq)
	assert.NotEqual(t, run.ID, second.ID)
}

func TestLatestRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, ok, err := s.LatestRun(ctx, "out.go")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.RecordRun(ctx, createTestRun("out.go", RunMessage{Name: "Old", Frequency: "High", Number: 0x01000000}))
	require.NoError(t, err)
	want := createTestRun("out.go", RunMessage{Name: "New", Frequency: "Medium", Number: 0xff020000})
	want.OutputHash = "newer"
	_, err = s.RecordRun(ctx, want)
	require.NoError(t, err)
	_, err = s.RecordRun(ctx, createTestRun("other.go"))
	require.NoError(t, err)

	got, ok, err := s.LatestRun(ctx, "out.go")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "newer", got.OutputHash)
	assert.Equal(t, int64(2), got.Seq)
	assert.Equal(t, []RunMessage{{Name: "New", Frequency: "Medium", Number: 0xff020000}}, got.Messages)
}

func TestListRuns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)

	for _, out := range []string{"a.go", "b.go", "c.go"} {
		_, err := s.RecordRun(ctx, createTestRun(out))
		require.NoError(t, err)
	}

	runs, err = s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "c.go", runs[0].OutputPath)
	assert.Equal(t, "a.go", runs[2].OutputPath)
	assert.Nil(t, runs[0].Messages)

	runs, err = s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRunMessagesOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	msgs := []RunMessage{
		{Name: "Zeta", Frequency: "Low", Number: 0xffff0002},
		{Name: "Alpha", Frequency: "Low", Number: 0xffff0001},
	}
	run, err := s.RecordRun(ctx, createTestRun("out.go", msgs...))
	require.NoError(t, err)

	got, err := s.RunMessages(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, msgs, got)

	none, err := s.RunMessages(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecordRun_DeterministicSources(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewStepClock(start, time.Second)

	s, err := Open(filepath.Join(t.TempDir(), "test.db"),
		WithIDGenerator(testutil.NewSequenceIDs("gen")),
		WithClock(clock.Now),
	)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	first, err := s.RecordRun(ctx, createTestRun("out.go"))
	require.NoError(t, err)
	second, err := s.RecordRun(ctx, createTestRun("out.go"))
	require.NoError(t, err)

	assert.Equal(t, "gen-1", first.ID)
	assert.Equal(t, "gen-2", second.ID)

	latest, ok, err := s.LatestRun(ctx, "out.go")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "gen-2", latest.ID)
	assert.True(t, start.Add(time.Second).Equal(latest.CreatedAt))
}
