package lessons

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenhand-backend/internal/agents"
	"goldenhand-backend/internal/db"
	"goldenhand-backend/internal/migrations"
	"goldenhand-backend/internal/store"
)

type recordedEvent struct {
	Type string
	Data interface{}
}

type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *eventRecorder) Publish(eventType string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Type: eventType, Data: data})
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []string{}
	for _, event := range r.events {
		out = append(out, event.Type)
	}
	return out
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "lessons.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, migrations.Apply(conn))
	return store.New(conn)
}

func newTestGenerator(t *testing.T) (*Generator, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	integrator := agents.NewIntegrator(agents.NewFactory(agents.NewDefaultRegistry()))
	return NewGenerator(integrator, st, nil), st
}

func countRows(t *testing.T, st *store.Store, table string) int {
	t.Helper()
	var count int
	require.NoError(t, st.DB().Get(&count, "SELECT COUNT(*) FROM "+table))
	return count
}

func TestGenerateLessonAssemblesActivities(t *testing.T) {
	gen, _ := newTestGenerator(t)

	young, err := gen.GenerateLesson("Mathematics", "Fractions", 5, "intermediate")
	require.NoError(t, err)
	assert.Equal(t, "Fractions - Lesson", young.Title)
	assert.Equal(t, agents.MathAgentID, young.GeneratorAgent)
	assert.NotEmpty(t, young.Sections)
	assert.NotEmpty(t, young.LearningObjectives)
	assert.NotEmpty(t, young.Resources)
	assert.NotEmpty(t, young.EntrepreneurshipConnection.Description)
	require.Len(t, young.Activities, 2)
	assert.Equal(t, "exercise", young.Activities[0].ActivityType)
	assert.Equal(t, 15, young.Activities[0].DurationMinutes)
	assert.NotEmpty(t, young.Activities[0].Problems)
	assert.Equal(t, "quiz", young.Activities[1].ActivityType)
	assert.Equal(t, 10, young.Activities[1].DurationMinutes)

	older, err := gen.GenerateLesson("science", "Cells", 8, "advanced")
	require.NoError(t, err)
	require.Len(t, older.Activities, 3)
	assert.Equal(t, "project", older.Activities[2].ActivityType)
	assert.Equal(t, 45, older.Activities[2].DurationMinutes)
	assert.Equal(t, agents.Advanced, older.Difficulty)

	coerced, err := gen.GenerateLesson("coding", "Loops", 7, "legendary")
	require.NoError(t, err)
	assert.Equal(t, agents.Intermediate, coerced.Difficulty)
}

func TestGenerateLessonUnknownSubject(t *testing.T) {
	gen, _ := newTestGenerator(t)
	_, err := gen.GenerateLesson("History", "Rome", 5, "beginner")
	var noAgent *agents.NoAgentError
	require.True(t, errors.As(err, &noAgent))
	assert.Equal(t, "History", noAgent.Subject)
}

func TestCreateLessonEndToEndGradeFive(t *testing.T) {
	gen, st := newTestGenerator(t)
	events := &eventRecorder{}
	gen.Events = events
	ctx := context.Background()

	record, err := gen.CreateLesson(ctx, "Mathematics", "Fractions", 5, "intermediate")
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, st, "subjects"))
	assert.Equal(t, 1, countRows(t, st, "topics"))
	assert.Equal(t, 1, countRows(t, st, "lessons"))

	subjects, err := st.SubjectsByGrade(ctx, 5)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Mathematics", subjects[0].Name)

	topics, err := st.TopicsBySubject(ctx, subjects[0].ID)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Fractions", topics[0].Name)
	assert.Equal(t, 5, topics[0].GradeLevel)

	lesson := record.Lesson
	assert.Equal(t, subjects[0].ID, lesson.SubjectID)
	require.NotNil(t, lesson.TopicID)
	assert.Equal(t, topics[0].ID, *lesson.TopicID)
	assert.Equal(t, 5, lesson.GradeLevel)
	assert.Equal(t, 60, lesson.DurationMinutes)
	assert.True(t, lesson.IsGenerated)

	loaded, err := st.LoadLesson(ctx, lesson.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Sections)
	for idx, section := range loaded.Sections {
		assert.Equal(t, idx, section.SortOrder)
	}
	types := []string{}
	for _, activity := range loaded.Activities {
		types = append(types, activity.ActivityType)
	}
	assert.Equal(t, []string{"exercise", "quiz"}, types)
	assert.Equal(t, []string{EventLessonGenerated}, events.types())
}

func TestCreateLessonTwiceReusesSubjectAndTopic(t *testing.T) {
	gen, st := newTestGenerator(t)
	ctx := context.Background()

	first, err := gen.CreateLesson(ctx, "Mathematics", "Fractions", 5, "intermediate")
	require.NoError(t, err)
	second, err := gen.CreateLesson(ctx, "Mathematics", "Fractions", 5, "intermediate")
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, st, "subjects"))
	assert.Equal(t, 1, countRows(t, st, "topics"))
	assert.Equal(t, 2, countRows(t, st, "lessons"))
	assert.NotEqual(t, first.Lesson.ID, second.Lesson.ID)
	assert.Equal(t, *first.Lesson.TopicID, *second.Lesson.TopicID)
}

func TestGetOrGenerateLessonReusesExisting(t *testing.T) {
	gen, st := newTestGenerator(t)
	ctx := context.Background()

	lesson, created, err := gen.GetOrGenerateLesson(ctx, "Science", "Ecosystems", 6, "beginner")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := gen.GetOrGenerateLesson(ctx, "Science", "Ecosystems", 6, "beginner")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, lesson.ID, again.ID)

	_, created, err = gen.GetOrGenerateLesson(ctx, "Science", "Ecosystems", 6, "advanced")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, countRows(t, st, "lessons"))
}

func TestPlanCurriculumPrefersAgentTopics(t *testing.T) {
	gen, st := newTestGenerator(t)
	ctx := context.Background()

	plan, err := gen.PlanCurriculum(ctx, "Mathematics", []int{5, 5, 3})
	require.NoError(t, err)
	require.Len(t, plan.Grades, 2)
	curated := agents.NewMathematicsAgent().TopicsByGrade()
	assert.Equal(t, curated[5], plan.Grades[0].Topics)
	assert.Equal(t, 3, plan.Grades[1].GradeLevel)

	assert.Equal(t, 2, countRows(t, st, "subjects"))
	assert.Equal(t, len(curated[5])+len(curated[3]), countRows(t, st, "topics"))
	assert.Zero(t, countRows(t, st, "lessons"))
}

func TestPlanCurriculumFallsBackToTopicTable(t *testing.T) {
	gen, _ := newTestGenerator(t)
	plan, err := gen.PlanCurriculum(context.Background(), "Physics", []int{13})
	require.NoError(t, err)
	require.Len(t, plan.Grades, 1)
	assert.Equal(t, []string{"Topic 1", "Topic 2", "Topic 3", "Topic 4"}, plan.Grades[0].Topics)
}

func TestCurriculumWithoutAgentWritesNothing(t *testing.T) {
	gen, st := newTestGenerator(t)
	events := &eventRecorder{}
	gen.Events = events
	ctx := context.Background()

	_, err := gen.PlanCurriculum(ctx, "Underwater Basketry", []int{4, 5})
	var noAgent *agents.NoAgentError
	require.ErrorAs(t, err, &noAgent)
	assert.Equal(t, "Underwater Basketry", noAgent.Subject)

	report, err := gen.GenerateAndSaveCurriculum(ctx, "Art", []int{4})
	require.ErrorAs(t, err, &noAgent)
	assert.Zero(t, report.TotalLessons)

	assert.Zero(t, countRows(t, st, "subjects"))
	assert.Zero(t, countRows(t, st, "topics"))
	assert.Zero(t, countRows(t, st, "lessons"))
	assert.Empty(t, events.types())
}

func TestGenerateAndSaveCurriculumIsolatesFailures(t *testing.T) {
	gen, st := newTestGenerator(t)
	ctx := context.Background()

	topics := agents.NewMathematicsAgent().TopicsByGrade()[5]
	require.Len(t, topics, 4)
	rejected, err := gen.GenerateLesson("Mathematics", topics[1], 5, "intermediate")
	require.NoError(t, err)
	_, err = st.DB().Exec(fmt.Sprintf(`CREATE TRIGGER reject_lesson BEFORE INSERT ON lessons
WHEN NEW.title = '%s'
BEGIN SELECT RAISE(ABORT, 'lesson rejected'); END`, strings.ReplaceAll(rejected.Title, "'", "''")))
	require.NoError(t, err)

	report, err := gen.GenerateAndSaveCurriculum(ctx, "Mathematics", []int{5})
	require.NoError(t, err)
	require.Len(t, report.Grades, 1)
	grade := report.Grades[0]
	assert.Equal(t, 3, report.TotalLessons)
	assert.Equal(t, 3, grade.LessonsGenerated)
	require.Len(t, grade.Failures, 1)
	assert.Equal(t, topics[1], grade.Failures[0].Name)
	assert.Contains(t, grade.Failures[0].Error, "lesson rejected")
	require.Len(t, grade.Topics, 3)
	assert.Equal(t, []string{topics[0], topics[2], topics[3]},
		[]string{grade.Topics[0].Name, grade.Topics[1].Name, grade.Topics[2].Name})

	assert.Equal(t, 3, countRows(t, st, "lessons"))
	assert.Equal(t, 4, countRows(t, st, "topics"))
	assert.Zero(t, countRows(t, st, "lesson_sections WHERE lesson_id NOT IN (SELECT id FROM lessons)"))
}

func TestGenerateAndSaveCurriculumWarmsCache(t *testing.T) {
	gen, st := newTestGenerator(t)
	cache, err := NewCacheManager(st, t.TempDir(), 0, nil)
	require.NoError(t, err)
	gen.Cache = cache
	events := &eventRecorder{}
	gen.Events = events
	ctx := context.Background()

	report, err := gen.GenerateAndSaveCurriculum(ctx, "Technology", []int{4})
	require.NoError(t, err)
	topics := agents.NewTechnologyAgent().TopicsByGrade()[4]
	require.NotEmpty(t, topics)
	assert.Equal(t, len(topics), report.TotalLessons)
	assert.Equal(t, len(topics), report.Grades[0].LessonsGenerated)
	assert.Empty(t, report.Grades[0].Failures)
	assert.Equal(t, len(topics), countRows(t, st, "lessons"))

	for _, topic := range report.Grades[0].Topics {
		assert.NotNil(t, cache.GetCachedLesson(topic.LessonID), topic.Name)
	}
	assert.Equal(t, len(topics), cache.Stats().Entries)
	assert.Contains(t, events.types(), EventCurriculumGenerated)
}

func TestTopicTableLookup(t *testing.T) {
	table := DefaultTopicTable()
	assert.Equal(t, "Whole Numbers", table.Topics("Maths", 4)[0])
	assert.Equal(t, []string{"Life Sciences", "Physical Sciences", "Earth Sciences"}, table.Topics("natural science", 12))
	assert.Equal(t, "Python Programming", table.Topics("computing", 9)[2])
	assert.Len(t, table.Topics("Music", 4), 4)

	_, err := LoadTopicTable([]byte("families: [unterminated"))
	assert.Error(t, err)
}
