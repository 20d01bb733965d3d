package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"goldenhand-backend/internal/models"
)

func (s *Store) LessonProgress(ctx context.Context, userID, lessonID string) (models.LessonProgress, error) {
	var progress models.LessonProgress
	err := s.get(ctx, &progress, `SELECT * FROM lesson_progress WHERE user_id = ? AND lesson_id = ?`, userID, lessonID)
	return progress, err
}

// UpsertProgress writes the single (user, lesson) progress row. An existing
// completed_at is never overwritten.
func (s *Store) UpsertProgress(ctx context.Context, progress models.LessonProgress) (models.LessonProgress, error) {
	if progress.LastActivityAt.IsZero() {
		progress.LastActivityAt = s.now()
	}
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
INSERT INTO lesson_progress (id, user_id, lesson_id, status, progress_percentage, last_activity_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, lesson_id) DO UPDATE SET
  status = excluded.status,
  progress_percentage = excluded.progress_percentage,
  last_activity_at = excluded.last_activity_at,
  completed_at = COALESCE(lesson_progress.completed_at, excluded.completed_at)
`), uuid.NewString(), progress.UserID, progress.LessonID, progress.Status, progress.ProgressPercentage,
		progress.LastActivityAt, nullTime(progress.CompletedAt))
	if err != nil {
		return models.LessonProgress{}, err
	}
	return s.LessonProgress(ctx, progress.UserID, progress.LessonID)
}

// ProgressByUser lists a user's progress rows joined with lesson title,
// grade and subject name, most recent activity first.
func (s *Store) ProgressByUser(ctx context.Context, userID string) ([]models.ProgressRow, error) {
	rows := []models.ProgressRow{}
	err := s.selectAll(ctx, &rows, `
SELECT p.id, p.user_id, p.lesson_id, p.status, p.progress_percentage, p.last_activity_at, p.completed_at,
  l.title AS lesson_title, l.grade_level AS grade_level, s.name AS subject_name
FROM lesson_progress p
JOIN lessons l ON l.id = p.lesson_id
JOIN subjects s ON s.id = l.subject_id
WHERE p.user_id = ?
ORDER BY p.last_activity_at DESC, p.id
`, userID)
	return rows, err
}

func nullTime(value *time.Time) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
