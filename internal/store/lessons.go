package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"goldenhand-backend/internal/models"
)

// LessonRecord is a lesson together with its ordered sub-entities, saved
// and loaded as one unit.
type LessonRecord struct {
	Lesson     models.Lesson
	Sections   []models.LessonSection
	Activities []models.LessonActivity
	Resources  []models.LessonResource
}

const lessonColumns = `id, subject_id, topic_id, title, content, grade_level, difficulty, duration_minutes,
  learning_objectives, entrepreneurship_connection, is_generated, generator_agent, created_at, updated_at`

func (s *Store) LessonByID(ctx context.Context, id string) (models.Lesson, error) {
	var lesson models.Lesson
	err := s.get(ctx, &lesson, `SELECT `+lessonColumns+` FROM lessons WHERE id = ?`, id)
	return lesson, err
}

func (s *Store) LessonsByTopic(ctx context.Context, topicID string) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	err := s.selectAll(ctx, &lessons, `SELECT `+lessonColumns+` FROM lessons WHERE topic_id = ? ORDER BY created_at, id`, topicID)
	return lessons, err
}

func (s *Store) LessonsBySubject(ctx context.Context, subjectID string) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	err := s.selectAll(ctx, &lessons, `SELECT `+lessonColumns+` FROM lessons WHERE subject_id = ? ORDER BY created_at, id`, subjectID)
	return lessons, err
}

func (s *Store) LessonsByGrade(ctx context.Context, grade int) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	err := s.selectAll(ctx, &lessons, `SELECT `+lessonColumns+` FROM lessons WHERE grade_level = ? ORDER BY created_at, id`, grade)
	return lessons, err
}

// FindLesson returns the most recent lesson for the topic at the given
// difficulty.
func (s *Store) FindLesson(ctx context.Context, topicID, difficulty string) (models.Lesson, error) {
	var lesson models.Lesson
	err := s.get(ctx, &lesson, `
SELECT `+lessonColumns+`
FROM lessons
WHERE topic_id = ? AND difficulty = ?
ORDER BY created_at DESC, id DESC
LIMIT 1
`, topicID, difficulty)
	return lesson, err
}

func (s *Store) SectionsByLesson(ctx context.Context, lessonID string) ([]models.LessonSection, error) {
	sections := []models.LessonSection{}
	err := s.selectAll(ctx, &sections, `SELECT * FROM lesson_sections WHERE lesson_id = ? ORDER BY sort_order`, lessonID)
	return sections, err
}

func (s *Store) ActivitiesByLesson(ctx context.Context, lessonID string) ([]models.LessonActivity, error) {
	activities := []models.LessonActivity{}
	err := s.selectAll(ctx, &activities, `SELECT * FROM lesson_activities WHERE lesson_id = ? ORDER BY position`, lessonID)
	return activities, err
}

func (s *Store) ResourcesByLesson(ctx context.Context, lessonID string) ([]models.LessonResource, error) {
	resources := []models.LessonResource{}
	err := s.selectAll(ctx, &resources, `SELECT * FROM lesson_resources WHERE lesson_id = ? ORDER BY position`, lessonID)
	return resources, err
}

// LoadLesson reads a lesson and all of its sub-entities.
func (s *Store) LoadLesson(ctx context.Context, id string) (LessonRecord, error) {
	lesson, err := s.LessonByID(ctx, id)
	if err != nil {
		return LessonRecord{}, err
	}
	record := LessonRecord{Lesson: lesson}
	if record.Sections, err = s.SectionsByLesson(ctx, id); err != nil {
		return LessonRecord{}, err
	}
	if record.Activities, err = s.ActivitiesByLesson(ctx, id); err != nil {
		return LessonRecord{}, err
	}
	if record.Resources, err = s.ResourcesByLesson(ctx, id); err != nil {
		return LessonRecord{}, err
	}
	return record, nil
}

// CreateLesson inserts the lesson and its sections, activities and
// resources in one transaction. IDs, timestamps, lesson references and
// activity/resource positions are assigned here; section sort order is
// taken from the caller.
func (s *Store) CreateLesson(ctx context.Context, record LessonRecord) (LessonRecord, error) {
	now := s.now()
	lesson := record.Lesson
	lesson.ID = uuid.NewString()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return LessonRecord{}, err
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, `
INSERT INTO lessons (`+lessonColumns+`)
VALUES (:id, :subject_id, :topic_id, :title, :content, :grade_level, :difficulty, :duration_minutes,
  :learning_objectives, :entrepreneurship_connection, :is_generated, :generator_agent, :created_at, :updated_at)
`, lesson); err != nil {
		return LessonRecord{}, fmt.Errorf("insert lesson: %w", err)
	}

	out := LessonRecord{Lesson: lesson}
	for _, section := range record.Sections {
		section.ID = uuid.NewString()
		section.LessonID = lesson.ID
		if _, err := tx.NamedExecContext(ctx, `
INSERT INTO lesson_sections (id, lesson_id, title, content, sort_order)
VALUES (:id, :lesson_id, :title, :content, :sort_order)
`, section); err != nil {
			return LessonRecord{}, fmt.Errorf("insert section %d: %w", section.SortOrder, err)
		}
		out.Sections = append(out.Sections, section)
	}
	for idx, activity := range record.Activities {
		activity.ID = uuid.NewString()
		activity.LessonID = lesson.ID
		activity.Position = idx
		if _, err := tx.NamedExecContext(ctx, `
INSERT INTO lesson_activities (id, lesson_id, title, activity_type, instructions, content, duration_minutes, position)
VALUES (:id, :lesson_id, :title, :activity_type, :instructions, :content, :duration_minutes, :position)
`, activity); err != nil {
			return LessonRecord{}, fmt.Errorf("insert activity %q: %w", activity.ActivityType, err)
		}
		out.Activities = append(out.Activities, activity)
	}
	for idx, resource := range record.Resources {
		resource.ID = uuid.NewString()
		resource.LessonID = lesson.ID
		resource.Position = idx
		if _, err := tx.NamedExecContext(ctx, `
INSERT INTO lesson_resources (id, lesson_id, title, resource_type, url, content, is_generated, position)
VALUES (:id, :lesson_id, :title, :resource_type, :url, :content, :is_generated, :position)
`, resource); err != nil {
			return LessonRecord{}, fmt.Errorf("insert resource %q: %w", resource.Title, err)
		}
		out.Resources = append(out.Resources, resource)
	}

	if err := tx.Commit(); err != nil {
		return LessonRecord{}, err
	}
	return out, nil
}

// CountLessons is used by reports and tests.
func (s *Store) CountLessons(ctx context.Context) (int, error) {
	var count int
	err := s.get(ctx, &count, `SELECT COUNT(*) FROM lessons`)
	return count, err
}
