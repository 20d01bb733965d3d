package lessons

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenhand-backend/internal/models"
	"goldenhand-backend/internal/store"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type cacheFixture struct {
	cache    *CacheManager
	store    *store.Store
	clock    *testClock
	lessonID string
}

func newCacheFixture(t *testing.T) cacheFixture {
	t.Helper()
	gen, st := newTestGenerator(t)
	record, err := gen.CreateLesson(context.Background(), "Mathematics", "Fractions", 6, "intermediate")
	require.NoError(t, err)

	cache, err := NewCacheManager(st, filepath.Join(t.TempDir(), "lesson_cache"), time.Hour, nil)
	require.NoError(t, err)
	clock := &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cache.now = clock.Now
	return cacheFixture{cache: cache, store: st, clock: clock, lessonID: record.Lesson.ID}
}

func (f cacheFixture) file() string {
	return filepath.Join(f.cache.Dir(), "lesson_"+f.lessonID+".json")
}

func TestCacheLessonMatchesStore(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()

	view, err := f.cache.CacheLesson(ctx, f.lessonID)
	require.NoError(t, err)
	require.NotNil(t, view)

	cached := f.cache.GetCachedLesson(f.lessonID)
	require.NotNil(t, cached)
	record, err := f.store.LoadLesson(ctx, f.lessonID)
	require.NoError(t, err)

	assert.Equal(t, record.Lesson.Title, cached.Title)
	assert.Len(t, cached.Sections, len(record.Sections))
	assert.Len(t, cached.Activities, len(record.Activities))
	assert.Len(t, cached.Resources, len(record.Resources))
	assert.Equal(t, "Mathematics", cached.Subject.Name)
	require.NotNil(t, cached.Topic)
	assert.Equal(t, "Fractions", cached.Topic.Name)
	assert.NotEmpty(t, cached.LearningObjectives)
	assert.NotEmpty(t, cached.EntrepreneurshipConnection["description"])
	assert.Equal(t, "exercise", cached.Activities[0].Content["activity_type"])
	for idx, section := range cached.Sections {
		assert.Equal(t, idx, section.Order)
	}
	assert.FileExists(t, f.file())
}

func TestCacheFreshnessWindow(t *testing.T) {
	f := newCacheFixture(t)
	_, err := f.cache.CacheLesson(context.Background(), f.lessonID)
	require.NoError(t, err)

	f.clock.Advance(time.Hour - time.Second)
	assert.NotNil(t, f.cache.GetCachedLesson(f.lessonID))

	f.clock.Advance(2 * time.Second)
	assert.Nil(t, f.cache.GetCachedLesson(f.lessonID))
	// the stale file is still on disk but must not be served
	assert.FileExists(t, f.file())
	assert.Nil(t, f.cache.GetCachedLesson(f.lessonID))
}

func TestCachePromotesFromDisk(t *testing.T) {
	f := newCacheFixture(t)
	_, err := f.cache.CacheLesson(context.Background(), f.lessonID)
	require.NoError(t, err)

	// a second manager over the same directory starts with an empty memory tier
	other, err := NewCacheManager(f.store, f.cache.Dir(), time.Hour, nil)
	require.NoError(t, err)
	other.now = f.clock.Now

	view := other.GetCachedLesson(f.lessonID)
	require.NotNil(t, view)
	assert.Equal(t, f.lessonID, view.ID)
	stats := other.Stats()
	assert.Equal(t, int64(1), stats.Promotions)
	assert.Equal(t, 1, stats.Entries)

	assert.NotNil(t, other.GetCachedLesson(f.lessonID))
	assert.Equal(t, int64(1), other.Stats().Promotions)
	assert.Equal(t, int64(2), other.Stats().Hits)
}

func TestCorruptCacheFileIsAMiss(t *testing.T) {
	f := newCacheFixture(t)
	require.NoError(t, os.WriteFile(f.file(), []byte("{not json"), 0o644))

	assert.Nil(t, f.cache.GetCachedLesson(f.lessonID))

	view, err := f.cache.GetLessonWithDetails(context.Background(), f.lessonID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, f.lessonID, view.ID)
}

func TestInvalidateCacheIsIdempotent(t *testing.T) {
	f := newCacheFixture(t)
	events := &eventRecorder{}
	f.cache.Events = events
	_, err := f.cache.CacheLesson(context.Background(), f.lessonID)
	require.NoError(t, err)

	require.NoError(t, f.cache.InvalidateCache(f.lessonID))
	assert.Nil(t, f.cache.GetCachedLesson(f.lessonID))
	assert.NoFileExists(t, f.file())

	require.NoError(t, f.cache.InvalidateCache(f.lessonID))
	assert.Nil(t, f.cache.GetCachedLesson(f.lessonID))
	assert.Equal(t, int64(1), f.cache.Stats().Invalidations)
	assert.Equal(t, []string{EventCacheInvalidated}, events.types())

	require.NoError(t, f.cache.InvalidateCache("../../etc/passwd"))
}

func TestGetLessonWithDetailsReadThrough(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()

	view, err := f.cache.GetLessonWithDetails(ctx, f.lessonID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.FileExists(t, f.file())

	again, err := f.cache.GetLessonWithDetails(ctx, f.lessonID)
	require.NoError(t, err)
	assert.Same(t, view, again)

	missing, err := f.cache.GetLessonWithDetails(ctx, "no-such-lesson")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetLessonWithDetailsConcurrentMisses(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	views := make([]*CachedLessonView, 8)
	for i := range views {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			view, err := f.cache.GetLessonWithDetails(ctx, f.lessonID)
			assert.NoError(t, err)
			views[i] = view
		}(i)
	}
	wg.Wait()
	for _, view := range views {
		require.NotNil(t, view)
		assert.Equal(t, f.lessonID, view.ID)
	}
	assert.Equal(t, 1, f.cache.Stats().Entries)
}

func TestGetLessonWithDetailsSurvivesCancelledCaller(t *testing.T) {
	f := newCacheFixture(t)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	var wg sync.WaitGroup
	errs := make([]error, 6)
	views := make([]*CachedLessonView, 6)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := context.Background()
			if i%2 == 0 {
				ctx = cancelled
			}
			views[i], errs[i] = f.cache.GetLessonWithDetails(ctx, f.lessonID)
		}(i)
	}
	wg.Wait()
	for i := range errs {
		require.NoError(t, errs[i])
		require.NotNil(t, views[i])
		assert.Equal(t, f.lessonID, views[i].ID)
	}

	require.NoError(t, f.cache.InvalidateCache(f.lessonID))
	view, err := f.cache.GetLessonWithDetails(cancelled, f.lessonID)
	require.NoError(t, err)
	require.NotNil(t, view)
}

func TestClearCacheRemovesEverything(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()
	_, err := f.cache.CacheLesson(ctx, f.lessonID)
	require.NoError(t, err)
	unrelated := filepath.Join(f.cache.Dir(), "notes.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0o644))

	require.NoError(t, f.cache.ClearCache())
	assert.Zero(t, f.cache.Stats().Entries)
	assert.NoFileExists(t, f.file())
	assert.FileExists(t, unrelated)
	assert.Nil(t, f.cache.GetCachedLesson(f.lessonID))
}

func TestCachedViewDecodesMissingFieldsAsEmpty(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()
	subject, err := f.store.GetOrCreateSubject(ctx, "Mathematics", 6)
	require.NoError(t, err)
	broken := "not json"
	record, err := f.store.CreateLesson(ctx, store.LessonRecord{
		Lesson: models.Lesson{
			SubjectID:          subject.ID,
			Title:              "Hand written",
			GradeLevel:         6,
			Difficulty:         "beginner",
			LearningObjectives: &broken,
		},
		Activities: []models.LessonActivity{{Title: "Talk", ActivityType: "discussion"}},
	})
	require.NoError(t, err)

	view, err := f.cache.GetLessonWithDetails(ctx, record.Lesson.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Nil(t, view.Topic)
	assert.Equal(t, []string{}, view.LearningObjectives)
	assert.Equal(t, map[string]interface{}{}, view.EntrepreneurshipConnection)
	require.Len(t, view.Activities, 1)
	assert.Equal(t, map[string]interface{}{}, view.Activities[0].Content)
}

func TestWarmCachesBatch(t *testing.T) {
	f := newCacheFixture(t)
	require.NoError(t, f.cache.Warm(context.Background(), []string{f.lessonID, "missing"}))
	assert.Equal(t, 1, f.cache.Stats().Entries)
	assert.NotNil(t, f.cache.GetCachedLesson(f.lessonID))
}
