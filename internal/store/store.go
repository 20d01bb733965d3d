package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"goldenhand-backend/internal/models"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is the persistence layer for subjects, topics, lessons and progress.
// Queries are written with ? placeholders and rebound for the driver in use.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := s.db.GetContext(ctx, dest, s.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *Store) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...)
}

// GetOrCreateSubject returns the subject with the given name and grade,
// creating it when absent. A concurrent insert that loses the unique race
// is resolved by reading the winner's row.
func (s *Store) GetOrCreateSubject(ctx context.Context, name string, grade int) (models.Subject, error) {
	subject, err := s.subjectByNameGrade(ctx, name, grade)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return subject, err
	}
	subject = models.Subject{
		ID:          uuid.NewString(),
		Name:        name,
		Description: fmt.Sprintf("%s for Grade %d", name, grade),
		GradeLevel:  grade,
		CreatedAt:   s.now(),
	}
	_, insertErr := s.db.NamedExecContext(ctx, `
INSERT INTO subjects (id, name, description, grade_level, curriculum_code, created_at)
VALUES (:id, :name, :description, :grade_level, :curriculum_code, :created_at)
`, subject)
	if insertErr == nil {
		return subject, nil
	}
	existing, err := s.subjectByNameGrade(ctx, name, grade)
	if err != nil {
		return models.Subject{}, fmt.Errorf("create subject %q: %w", name, insertErr)
	}
	return existing, nil
}

func (s *Store) subjectByNameGrade(ctx context.Context, name string, grade int) (models.Subject, error) {
	var subject models.Subject
	err := s.get(ctx, &subject, `SELECT * FROM subjects WHERE name = ? AND grade_level = ?`, name, grade)
	return subject, err
}

func (s *Store) SubjectByID(ctx context.Context, id string) (models.Subject, error) {
	var subject models.Subject
	err := s.get(ctx, &subject, `SELECT * FROM subjects WHERE id = ?`, id)
	return subject, err
}

// SubjectsByGrade lists subjects for a grade, or every subject when grade
// is zero.
func (s *Store) SubjectsByGrade(ctx context.Context, grade int) ([]models.Subject, error) {
	subjects := []models.Subject{}
	if grade <= 0 {
		err := s.selectAll(ctx, &subjects, `SELECT * FROM subjects ORDER BY grade_level, name`)
		return subjects, err
	}
	err := s.selectAll(ctx, &subjects, `SELECT * FROM subjects WHERE grade_level = ? ORDER BY name`, grade)
	return subjects, err
}

// GetOrCreateTopic is keyed on (name, subject). The grade is copied onto a
// newly created row and ignored for lookup.
func (s *Store) GetOrCreateTopic(ctx context.Context, name, subjectID string, grade int) (models.Topic, error) {
	topic, err := s.topicByName(ctx, name, subjectID)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return topic, err
	}
	subject, err := s.SubjectByID(ctx, subjectID)
	if err != nil {
		return models.Topic{}, fmt.Errorf("topic subject %s: %w", subjectID, err)
	}
	topic = models.Topic{
		ID:          uuid.NewString(),
		SubjectID:   subjectID,
		Name:        name,
		Description: fmt.Sprintf("Topic in %s for Grade %d", subject.Name, grade),
		GradeLevel:  grade,
		CreatedAt:   s.now(),
	}
	_, insertErr := s.db.NamedExecContext(ctx, `
INSERT INTO topics (id, subject_id, name, description, grade_level, curriculum_code, created_at)
VALUES (:id, :subject_id, :name, :description, :grade_level, :curriculum_code, :created_at)
`, topic)
	if insertErr == nil {
		return topic, nil
	}
	existing, err := s.topicByName(ctx, name, subjectID)
	if err != nil {
		return models.Topic{}, fmt.Errorf("create topic %q: %w", name, insertErr)
	}
	return existing, nil
}

func (s *Store) topicByName(ctx context.Context, name, subjectID string) (models.Topic, error) {
	var topic models.Topic
	err := s.get(ctx, &topic, `SELECT * FROM topics WHERE name = ? AND subject_id = ?`, name, subjectID)
	return topic, err
}

func (s *Store) TopicByID(ctx context.Context, id string) (models.Topic, error) {
	var topic models.Topic
	err := s.get(ctx, &topic, `SELECT * FROM topics WHERE id = ?`, id)
	return topic, err
}

func (s *Store) TopicsBySubject(ctx context.Context, subjectID string) ([]models.Topic, error) {
	topics := []models.Topic{}
	err := s.selectAll(ctx, &topics, `SELECT * FROM topics WHERE subject_id = ? ORDER BY created_at, name`, subjectID)
	return topics, err
}
