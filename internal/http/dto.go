package httpapi

import (
	"time"

	"goldenhand-backend/internal/agents"
	"goldenhand-backend/internal/models"
)

type SubjectDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	GradeLevel     int       `json:"gradeLevel"`
	CurriculumCode *string   `json:"curriculumCode"`
	CreatedAt      time.Time `json:"createdAt"`
}

type TopicDTO struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subjectId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	GradeLevel  int       `json:"gradeLevel"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LessonSummaryDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	GradeLevel      int       `json:"gradeLevel"`
	Difficulty      string    `json:"difficulty"`
	DurationMinutes int       `json:"durationMinutes"`
	IsGenerated     bool      `json:"isGenerated"`
	GeneratorAgent  *string   `json:"generatorAgent"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ProgressDTO struct {
	LessonID           string     `json:"lessonId"`
	Status             string     `json:"status"`
	ProgressPercentage float64    `json:"percentage"`
	LastActivityAt     time.Time  `json:"lastActivityAt"`
	CompletedAt        *time.Time `json:"completedAt"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func toSubjectDTO(subject models.Subject) SubjectDTO {
	return SubjectDTO{
		ID:             subject.ID,
		Name:           subject.Name,
		Description:    subject.Description,
		GradeLevel:     subject.GradeLevel,
		CurriculumCode: subject.CurriculumCode,
		CreatedAt:      subject.CreatedAt,
	}
}

func toTopicDTO(topic models.Topic) TopicDTO {
	return TopicDTO{
		ID:          topic.ID,
		SubjectID:   topic.SubjectID,
		Name:        topic.Name,
		Description: topic.Description,
		GradeLevel:  topic.GradeLevel,
		CreatedAt:   topic.CreatedAt,
	}
}

func toLessonSummaryDTO(lesson models.Lesson) LessonSummaryDTO {
	return LessonSummaryDTO{
		ID:              lesson.ID,
		Title:           lesson.Title,
		GradeLevel:      lesson.GradeLevel,
		Difficulty:      lesson.Difficulty,
		DurationMinutes: lesson.DurationMinutes,
		IsGenerated:     lesson.IsGenerated,
		GeneratorAgent:  lesson.GeneratorAgent,
		CreatedAt:       lesson.CreatedAt,
	}
}

func toProgressDTO(progress models.LessonProgress) ProgressDTO {
	return ProgressDTO{
		LessonID:           progress.LessonID,
		Status:             progress.Status,
		ProgressPercentage: progress.ProgressPercentage,
		LastActivityAt:     progress.LastActivityAt,
		CompletedAt:        progress.CompletedAt,
	}
}

type GenerateLessonRequest struct {
	Subject    string `json:"subject" validate:"required,max=100"`
	Topic      string `json:"topic" validate:"required,max=100"`
	GradeLevel int    `json:"gradeLevel" validate:"min=1,max=12"`
	Difficulty string `json:"difficulty"`
}

type GenerateCurriculumRequest struct {
	Subject     string `json:"subject" validate:"required,max=100"`
	GradeLevels []int  `json:"gradeLevels" validate:"required,min=1,max=12,dive,min=1,max=12"`
}

type LearningPathRequest struct {
	StudentID      string                        `json:"studentId" validate:"required"`
	GradeLevel     int                           `json:"gradeLevel" validate:"min=1,max=12"`
	Subjects       []string                      `json:"subjects" validate:"required,min=1,dive,required"`
	PriorKnowledge map[string]map[string]float64 `json:"priorKnowledge"`
}

type ContentRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	ContentType string `json:"contentType"`
	Difficulty  string `json:"difficulty"`
	GradeLevel  int    `json:"gradeLevel" validate:"min=1,max=12"`
}

type AnswerRequest struct {
	Question string                 `json:"question" validate:"required"`
	Subject  string                 `json:"subject"`
	Context  agents.QuestionContext `json:"context"`
}

type PerformanceRequest struct {
	StudentID string                 `json:"studentId" validate:"required"`
	Subject   string                 `json:"subject" validate:"required"`
	Results   agents.ActivityResults `json:"results"`
}

type ProgressRequest struct {
	Status     string  `json:"status" validate:"required"`
	Percentage float64 `json:"percentage"`
}
