package models

import "time"

type Subject struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	GradeLevel     int       `db:"grade_level"`
	CurriculumCode *string   `db:"curriculum_code"`
	CreatedAt      time.Time `db:"created_at"`
}

type Topic struct {
	ID             string    `db:"id"`
	SubjectID      string    `db:"subject_id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	GradeLevel     int       `db:"grade_level"`
	CurriculumCode *string   `db:"curriculum_code"`
	CreatedAt      time.Time `db:"created_at"`
}

// Lesson stores LearningObjectives and EntrepreneurshipConnection as JSON
// text.
type Lesson struct {
	ID                         string    `db:"id"`
	SubjectID                  string    `db:"subject_id"`
	TopicID                    *string   `db:"topic_id"`
	Title                      string    `db:"title"`
	Content                    string    `db:"content"`
	GradeLevel                 int       `db:"grade_level"`
	Difficulty                 string    `db:"difficulty"`
	DurationMinutes            int       `db:"duration_minutes"`
	LearningObjectives         *string   `db:"learning_objectives"`
	EntrepreneurshipConnection *string   `db:"entrepreneurship_connection"`
	IsGenerated                bool      `db:"is_generated"`
	GeneratorAgent             *string   `db:"generator_agent"`
	CreatedAt                  time.Time `db:"created_at"`
	UpdatedAt                  time.Time `db:"updated_at"`
}

type LessonSection struct {
	ID        string `db:"id"`
	LessonID  string `db:"lesson_id"`
	Title     string `db:"title"`
	Content   string `db:"content"`
	SortOrder int    `db:"sort_order"`
}

type LessonActivity struct {
	ID              string  `db:"id"`
	LessonID        string  `db:"lesson_id"`
	Title           string  `db:"title"`
	ActivityType    string  `db:"activity_type"`
	Instructions    string  `db:"instructions"`
	Content         *string `db:"content"`
	DurationMinutes int     `db:"duration_minutes"`
	Position        int     `db:"position"`
}

type LessonResource struct {
	ID           string  `db:"id"`
	LessonID     string  `db:"lesson_id"`
	Title        string  `db:"title"`
	ResourceType string  `db:"resource_type"`
	URL          *string `db:"url"`
	Content      *string `db:"content"`
	IsGenerated  bool    `db:"is_generated"`
	Position     int     `db:"position"`
}

const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

type LessonProgress struct {
	ID                 string     `db:"id"`
	UserID             string     `db:"user_id"`
	LessonID           string     `db:"lesson_id"`
	Status             string     `db:"status"`
	ProgressPercentage float64    `db:"progress_percentage"`
	LastActivityAt     time.Time  `db:"last_activity_at"`
	CompletedAt        *time.Time `db:"completed_at"`
}

// ProgressRow is a progress record joined with its lesson's grade and
// subject name.
type ProgressRow struct {
	LessonProgress
	LessonTitle string `db:"lesson_title"`
	GradeLevel  int    `db:"grade_level"`
	SubjectName string `db:"subject_name"`
}
