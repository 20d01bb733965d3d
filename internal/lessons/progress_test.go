package lessons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenhand-backend/internal/models"
	"goldenhand-backend/internal/services"
)

func TestProgressUpdateAndSummary(t *testing.T) {
	gen, st := newTestGenerator(t)
	ctx := context.Background()
	math, err := gen.CreateLesson(ctx, "Mathematics", "Fractions", 5, "beginner")
	require.NoError(t, err)
	science, err := gen.CreateLesson(ctx, "Science", "Cells", 7, "beginner")
	require.NoError(t, err)

	tracker := NewProgressTracker(st)
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	started, err := tracker.Update(ctx, "u1", math.Lesson.ID, models.ProgressInProgress, 140)
	require.NoError(t, err)
	assert.Equal(t, 100.0, started.ProgressPercentage)
	assert.Nil(t, started.CompletedAt)

	done, err := tracker.Update(ctx, "u1", math.Lesson.ID, models.ProgressCompleted, 100)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	firstCompletion := *done.CompletedAt

	redo, err := tracker.Update(ctx, "u1", math.Lesson.ID, models.ProgressCompleted, 100)
	require.NoError(t, err)
	assert.True(t, firstCompletion.Equal(*redo.CompletedAt))

	_, err = tracker.Update(ctx, "u1", science.Lesson.ID, models.ProgressInProgress, -5)
	require.NoError(t, err)

	summary, err := tracker.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalLessons)
	assert.Equal(t, 1, summary.CompletedLessons)
	assert.Equal(t, 1, summary.InProgressLessons)
	assert.InDelta(t, 50.0, summary.AverageProgress, 1e-9)
	require.Contains(t, summary.BySubject, "Mathematics")
	assert.Equal(t, 1, summary.BySubject["Mathematics"].Completed)
	require.Contains(t, summary.ByGrade, 7)
	assert.Equal(t, 1, summary.ByGrade[7].InProgress)

	empty, err := tracker.Summary(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalLessons)
	assert.Zero(t, empty.AverageProgress)
}

func TestProgressUpdateRejectsBadInput(t *testing.T) {
	gen, st := newTestGenerator(t)
	ctx := context.Background()
	lesson, err := gen.CreateLesson(ctx, "Mathematics", "Fractions", 5, "beginner")
	require.NoError(t, err)
	tracker := NewProgressTracker(st)

	_, err = tracker.Update(ctx, "u1", lesson.Lesson.ID, "paused", 10)
	var serviceErr services.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, 400, serviceErr.Status)

	_, err = tracker.Update(ctx, "u1", "missing", models.ProgressInProgress, 10)
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, 404, serviceErr.Status)
}
