package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"goldenhand-backend/internal/models"
	"goldenhand-backend/internal/platform/logger"
	"goldenhand-backend/internal/store"
)

const (
	DefaultCacheExpiry = time.Hour

	EventCacheInvalidated = "cache.invalidated"
	EventCacheCleared     = "cache.cleared"

	cacheFilePrefix = "lesson_"
	cacheFileSuffix = ".json"
	warmConcurrency = 4
)

var cacheKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type SubjectView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	GradeLevel  int    `json:"grade_level"`
}

type TopicView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SectionView struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

type ActivityView struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	ActivityType    string                 `json:"activity_type"`
	Instructions    string                 `json:"instructions"`
	Content         map[string]interface{} `json:"content"`
	DurationMinutes int                    `json:"duration_minutes"`
}

type ResourceView struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	ResourceType string                 `json:"resource_type"`
	URL          *string                `json:"url"`
	Content      map[string]interface{} `json:"content"`
	IsGenerated  bool                   `json:"is_generated"`
}

// CachedLessonView is the denormalized lesson stored by the cache. It is
// never the system of record. Views returned by the cache are shared and
// must not be modified.
type CachedLessonView struct {
	ID                         string                 `json:"id"`
	Title                      string                 `json:"title"`
	Content                    string                 `json:"content"`
	Subject                    SubjectView            `json:"subject"`
	Topic                      *TopicView             `json:"topic"`
	GradeLevel                 int                    `json:"grade_level"`
	Difficulty                 string                 `json:"difficulty"`
	DurationMinutes            int                    `json:"duration_minutes"`
	LearningObjectives         []string               `json:"learning_objectives"`
	EntrepreneurshipConnection map[string]interface{} `json:"entrepreneurship_connection"`
	IsGenerated                bool                   `json:"is_generated"`
	GeneratorAgent             *string                `json:"generator_agent"`
	Sections                   []SectionView          `json:"sections"`
	Activities                 []ActivityView         `json:"activities"`
	Resources                  []ResourceView         `json:"resources"`
	CacheTime                  float64                `json:"cache_time"`
}

type CacheStats struct {
	Entries       int   `json:"entries"`
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Promotions    int64 `json:"diskPromotions"`
	Invalidations int64 `json:"invalidations"`
}

// CacheManager is a two-tier lesson cache: an in-memory map backed by one
// JSON file per lesson. Both tiers are read and mutated under mu, so an
// invalidation is never observed half done.
type CacheManager struct {
	store  *store.Store
	dir    string
	expiry time.Duration
	log    *logger.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*CachedLessonView
	group   singleflight.Group

	hits          atomic.Int64
	misses        atomic.Int64
	promotions    atomic.Int64
	invalidations atomic.Int64

	// Events, when set, receives invalidation and clear events.
	Events Notifier
}

func NewCacheManager(st *store.Store, dir string, expiry time.Duration, log *logger.Logger) (*CacheManager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	if expiry <= 0 {
		expiry = DefaultCacheExpiry
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CacheManager{
		store:   st,
		dir:     dir,
		expiry:  expiry,
		log:     log,
		now:     time.Now,
		entries: map[string]*CachedLessonView{},
	}, nil
}

func (c *CacheManager) Dir() string {
	return c.dir
}

func (c *CacheManager) path(lessonID string) (string, bool) {
	if !cacheKeyPattern.MatchString(lessonID) {
		return "", false
	}
	return filepath.Join(c.dir, cacheFilePrefix+lessonID+cacheFileSuffix), true
}

func (c *CacheManager) epoch() float64 {
	return float64(c.now().UnixNano()) / float64(time.Second)
}

func (c *CacheManager) fresh(view *CachedLessonView) bool {
	return c.epoch()-view.CacheTime < c.expiry.Seconds()
}

// CacheLesson hydrates the lesson from the store and writes it to both
// tiers. A missing lesson returns nil without error.
func (c *CacheManager) CacheLesson(ctx context.Context, lessonID string) (*CachedLessonView, error) {
	record, err := c.store.LoadLesson(ctx, lessonID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	view, err := c.buildView(ctx, record)
	if err != nil {
		return nil, err
	}
	view.CacheTime = c.epoch()

	raw, err := json.Marshal(view)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[lessonID] = view
	if path, ok := c.path(lessonID); ok {
		if err := writeAtomic(path, raw); err != nil {
			// the memory tier still serves this entry
			c.log.Warn("cache file write failed", "lesson_id", lessonID, "error", err)
		}
	}
	return view, nil
}

func (c *CacheManager) buildView(ctx context.Context, record store.LessonRecord) (*CachedLessonView, error) {
	lesson := record.Lesson
	subject, err := c.store.SubjectByID(ctx, lesson.SubjectID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	view := &CachedLessonView{
		ID:                         lesson.ID,
		Title:                      lesson.Title,
		Content:                    lesson.Content,
		Subject:                    SubjectView{ID: subject.ID, Name: subject.Name, Description: subject.Description, GradeLevel: subject.GradeLevel},
		GradeLevel:                 lesson.GradeLevel,
		Difficulty:                 lesson.Difficulty,
		DurationMinutes:            lesson.DurationMinutes,
		LearningObjectives:         decodeStrings(lesson.LearningObjectives),
		EntrepreneurshipConnection: decodeObject(lesson.EntrepreneurshipConnection),
		IsGenerated:                lesson.IsGenerated,
		GeneratorAgent:             lesson.GeneratorAgent,
		Sections:                   make([]SectionView, 0, len(record.Sections)),
		Activities:                 make([]ActivityView, 0, len(record.Activities)),
		Resources:                  make([]ResourceView, 0, len(record.Resources)),
	}
	if lesson.TopicID != nil {
		topic, err := c.store.TopicByID(ctx, *lesson.TopicID)
		switch {
		case err == nil:
			view.Topic = &TopicView{ID: topic.ID, Name: topic.Name, Description: topic.Description}
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
	}
	for _, section := range record.Sections {
		view.Sections = append(view.Sections, SectionView{
			ID: section.ID, Title: section.Title, Content: section.Content, Order: section.SortOrder,
		})
	}
	for _, activity := range record.Activities {
		view.Activities = append(view.Activities, activityView(activity))
	}
	for _, resource := range record.Resources {
		view.Resources = append(view.Resources, ResourceView{
			ID:           resource.ID,
			Title:        resource.Title,
			ResourceType: resource.ResourceType,
			URL:          resource.URL,
			Content:      decodeObject(resource.Content),
			IsGenerated:  resource.IsGenerated,
		})
	}
	return view, nil
}

func activityView(activity models.LessonActivity) ActivityView {
	return ActivityView{
		ID:              activity.ID,
		Title:           activity.Title,
		ActivityType:    activity.ActivityType,
		Instructions:    activity.Instructions,
		Content:         decodeObject(activity.Content),
		DurationMinutes: activity.DurationMinutes,
	}
}

// GetCachedLesson returns a fresh view from memory, else from disk
// (promoting it into memory). Unreadable or stale files count as misses.
func (c *CacheManager) GetCachedLesson(lessonID string) *CachedLessonView {
	c.mu.Lock()
	defer c.mu.Unlock()

	if view, ok := c.entries[lessonID]; ok {
		if c.fresh(view) {
			c.hits.Add(1)
			return view
		}
		delete(c.entries, lessonID)
	}
	path, ok := c.path(lessonID)
	if !ok {
		c.misses.Add(1)
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		c.misses.Add(1)
		return nil
	}
	var view CachedLessonView
	if err := json.Unmarshal(raw, &view); err != nil || view.ID != lessonID || !c.fresh(&view) {
		c.misses.Add(1)
		return nil
	}
	c.entries[lessonID] = &view
	c.hits.Add(1)
	c.promotions.Add(1)
	return &view
}

// GetLessonWithDetails is a read-through lookup. Concurrent misses for the
// same lesson share one hydration, which is not cancelled with the caller
// that started it. It returns nil when the lesson does not exist.
func (c *CacheManager) GetLessonWithDetails(ctx context.Context, lessonID string) (*CachedLessonView, error) {
	if view := c.GetCachedLesson(lessonID); view != nil {
		return view, nil
	}
	shared := context.WithoutCancel(ctx)
	result, err, _ := c.group.Do(lessonID, func() (interface{}, error) {
		if view := c.peek(lessonID); view != nil {
			return view, nil
		}
		return c.CacheLesson(shared, lessonID)
	})
	if err != nil {
		return nil, err
	}
	view, _ := result.(*CachedLessonView)
	return view, nil
}

// peek checks the memory tier without touching the counters.
func (c *CacheManager) peek(lessonID string) *CachedLessonView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if view, ok := c.entries[lessonID]; ok && c.fresh(view) {
		return view
	}
	return nil
}

// InvalidateCache drops the lesson from both tiers. Absent entries are a
// no-op.
func (c *CacheManager) InvalidateCache(lessonID string) error {
	c.mu.Lock()
	_, inMemory := c.entries[lessonID]
	delete(c.entries, lessonID)
	var removeErr error
	removed := false
	if path, ok := c.path(lessonID); ok {
		err := os.Remove(path)
		switch {
		case err == nil:
			removed = true
		case !errors.Is(err, os.ErrNotExist):
			removeErr = err
		}
	}
	c.mu.Unlock()

	if removeErr != nil {
		return fmt.Errorf("remove cache file: %w", removeErr)
	}
	if inMemory || removed {
		c.invalidations.Add(1)
		c.publish(EventCacheInvalidated, map[string]interface{}{"lessonId": lessonID})
	}
	return nil
}

// ClearCache empties the memory tier and deletes every lesson cache file.
func (c *CacheManager) ClearCache() error {
	c.mu.Lock()
	c.entries = map[string]*CachedLessonView{}
	entries, err := os.ReadDir(c.dir)
	var errs []error
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, err)
	}
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, cacheFilePrefix) {
			continue
		}
		if !strings.HasSuffix(name, cacheFileSuffix) && !strings.HasSuffix(name, ".tmp") {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	c.mu.Unlock()

	c.log.Info("lesson cache cleared", "files_removed", removed)
	c.publish(EventCacheCleared, map[string]interface{}{"filesRemoved": removed})
	return errors.Join(errs...)
}

// Warm caches the given lessons concurrently.
func (c *CacheManager) Warm(ctx context.Context, lessonIDs []string) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(warmConcurrency)
	for _, id := range lessonIDs {
		id := id
		group.Go(func() error {
			_, err := c.CacheLesson(ctx, id)
			if err != nil {
				return fmt.Errorf("warm %s: %w", id, err)
			}
			return nil
		})
	}
	return group.Wait()
}

func (c *CacheManager) Stats() CacheStats {
	c.mu.Lock()
	entries := len(c.entries)
	c.mu.Unlock()
	return CacheStats{
		Entries:       entries,
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Promotions:    c.promotions.Load(),
		Invalidations: c.invalidations.Load(),
	}
}

func (c *CacheManager) publish(eventType string, data interface{}) {
	if c.Events != nil {
		c.Events.Publish(eventType, data)
	}
}

// writeAtomic writes through a temp file in the same directory and renames
// it over path, so readers never see a partial file.
func writeAtomic(path string, raw []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func decodeStrings(raw *string) []string {
	values := []string{}
	if raw == nil || *raw == "" {
		return values
	}
	if err := json.Unmarshal([]byte(*raw), &values); err != nil || values == nil {
		return []string{}
	}
	return values
}

func decodeObject(raw *string) map[string]interface{} {
	value := map[string]interface{}{}
	if raw == nil || *raw == "" {
		return value
	}
	if err := json.Unmarshal([]byte(*raw), &value); err != nil || value == nil {
		return map[string]interface{}{}
	}
	return value
}
