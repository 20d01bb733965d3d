package lessons

import (
	"context"
	"errors"
	"math"
	"time"

	"goldenhand-backend/internal/models"
	"goldenhand-backend/internal/services"
	"goldenhand-backend/internal/store"
)

var progressStatuses = map[string]bool{
	models.ProgressNotStarted: true,
	models.ProgressInProgress: true,
	models.ProgressCompleted:  true,
}

// ProgressTracker records per-user lesson progress.
type ProgressTracker struct {
	store *store.Store
	now   func() time.Time
}

func NewProgressTracker(st *store.Store) *ProgressTracker {
	return &ProgressTracker{store: st, now: func() time.Time { return time.Now().UTC() }}
}

// Update upserts the (user, lesson) record. The percentage is clamped to
// [0, 100]; the completion time is stamped once.
func (p *ProgressTracker) Update(ctx context.Context, userID, lessonID, status string, percentage float64) (models.LessonProgress, error) {
	if !progressStatuses[status] {
		return models.LessonProgress{}, services.ErrBadRequest("Invalid progress status")
	}
	if math.IsNaN(percentage) {
		return models.LessonProgress{}, services.ErrBadRequest("Invalid progress percentage")
	}
	if _, err := p.store.LessonByID(ctx, lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.LessonProgress{}, services.ErrNotFound("Lesson not found")
		}
		return models.LessonProgress{}, err
	}
	now := p.now()
	progress := models.LessonProgress{
		UserID:             userID,
		LessonID:           lessonID,
		Status:             status,
		ProgressPercentage: math.Max(0, math.Min(100, percentage)),
		LastActivityAt:     now,
	}
	if status == models.ProgressCompleted {
		progress.CompletedAt = &now
	}
	return p.store.UpsertProgress(ctx, progress)
}

type ProgressBreakdown struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"in_progress"`
	NotStarted      int     `json:"not_started"`
	AverageProgress float64 `json:"average_progress"`
}

func (b *ProgressBreakdown) add(status string, percentage float64) {
	b.Total++
	switch status {
	case models.ProgressCompleted:
		b.Completed++
	case models.ProgressInProgress:
		b.InProgress++
	default:
		b.NotStarted++
	}
	b.AverageProgress += (percentage - b.AverageProgress) / float64(b.Total)
}

type ProgressSummary struct {
	TotalLessons      int                           `json:"total_lessons"`
	CompletedLessons  int                           `json:"completed_lessons"`
	InProgressLessons int                           `json:"in_progress_lessons"`
	NotStartedLessons int                           `json:"not_started_lessons"`
	AverageProgress   float64                       `json:"average_progress"`
	BySubject         map[string]*ProgressBreakdown `json:"progress_by_subject"`
	ByGrade           map[int]*ProgressBreakdown    `json:"progress_by_grade"`
	Lessons           []models.ProgressRow          `json:"lessons"`
}

func (p *ProgressTracker) Summary(ctx context.Context, userID string) (ProgressSummary, error) {
	rows, err := p.store.ProgressByUser(ctx, userID)
	if err != nil {
		return ProgressSummary{}, err
	}
	summary := ProgressSummary{
		BySubject: map[string]*ProgressBreakdown{},
		ByGrade:   map[int]*ProgressBreakdown{},
		Lessons:   rows,
	}
	var overall ProgressBreakdown
	for _, row := range rows {
		overall.add(row.Status, row.ProgressPercentage)
		subject, ok := summary.BySubject[row.SubjectName]
		if !ok {
			subject = &ProgressBreakdown{}
			summary.BySubject[row.SubjectName] = subject
		}
		subject.add(row.Status, row.ProgressPercentage)
		grade, ok := summary.ByGrade[row.GradeLevel]
		if !ok {
			grade = &ProgressBreakdown{}
			summary.ByGrade[row.GradeLevel] = grade
		}
		grade.add(row.Status, row.ProgressPercentage)
	}
	summary.TotalLessons = overall.Total
	summary.CompletedLessons = overall.Completed
	summary.InProgressLessons = overall.InProgress
	summary.NotStartedLessons = overall.NotStarted
	summary.AverageProgress = overall.AverageProgress
	return summary, nil
}
