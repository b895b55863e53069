package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveJob(t *testing.T) {
	s := NewScheduler()

	require.NoError(t, s.AddJob("sweep", "@every 10m", func() {}))
	require.NoError(t, s.AddJob("report", "0 0 * * * *", func() {}))
	assert.Equal(t, []string{"report", "sweep"}, s.Jobs())

	// replacing keeps one entry
	require.NoError(t, s.AddJob("sweep", "@every 5m", func() {}))
	assert.Len(t, s.Jobs(), 2)

	s.RemoveJob("sweep")
	assert.Equal(t, []string{"report"}, s.Jobs())
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	s := NewScheduler()

	err := s.AddJob("bad", "every now and then", func() {})
	assert.Error(t, err)
	assert.Empty(t, s.Jobs())
}

func TestJobRuns(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	require.NoError(t, s.AddJob("tick", "@every 1s", func() { runs.Add(1) }))
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}
