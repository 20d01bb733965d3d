package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"goldenhand-backend/internal/agents"
	"goldenhand-backend/internal/models"
	"goldenhand-backend/internal/platform/logger"
	"goldenhand-backend/internal/store"
)

const (
	EventLessonGenerated     = "lesson.generated"
	EventCurriculumGenerated = "curriculum.generated"

	defaultLessonMinutes = 60
)

// Notifier receives generation and cache events.
type Notifier interface {
	Publish(eventType string, data interface{})
}

type GeneratedActivity struct {
	Title           string            `json:"title"`
	ActivityType    string            `json:"activity_type"`
	Instructions    string            `json:"instructions"`
	DurationMinutes int               `json:"duration_minutes"`
	Problems        []agents.Problem  `json:"problems,omitempty"`
	Questions       []agents.Question `json:"questions,omitempty"`
	Tasks           []agents.Task     `json:"tasks,omitempty"`
}

// GeneratedLesson is a fully assembled lesson that has not been saved yet.
type GeneratedLesson struct {
	Title                      string              `json:"title"`
	Subject                    string              `json:"subject"`
	Topic                      string              `json:"topic"`
	GradeLevel                 int                 `json:"grade_level"`
	Difficulty                 agents.Difficulty   `json:"difficulty"`
	LearningObjectives         []string            `json:"learning_objectives"`
	Introduction               string              `json:"introduction"`
	Sections                   []agents.Section    `json:"sections"`
	Summary                    string              `json:"summary"`
	Activities                 []GeneratedActivity `json:"activities"`
	Resources                  []agents.Resource   `json:"resources"`
	EntrepreneurshipConnection agents.Connection   `json:"entrepreneurship_connection"`
	GeneratorAgent             string              `json:"generator_agent"`
	CreatedAt                  time.Time           `json:"created_at"`
}

// Generator turns agent output into persisted lessons.
type Generator struct {
	integrator *agents.Integrator
	store      *store.Store
	topics     *TopicTable
	log        *logger.Logger

	// Cache, when set, is warmed with the lessons of a bulk generation.
	Cache *CacheManager
	// Events, when set, receives lesson and curriculum events.
	Events Notifier
}

func NewGenerator(integrator *agents.Integrator, st *store.Store, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{
		integrator: integrator,
		store:      st,
		topics:     DefaultTopicTable(),
		log:        log,
	}
}

// GenerateLesson assembles a lesson from the subject's agent without saving
// it. Unknown subjects yield *agents.NoAgentError.
func (g *Generator) GenerateLesson(subject, topic string, grade int, difficulty string) (GeneratedLesson, error) {
	level := agents.ParseDifficulty(difficulty)
	content, err := g.integrator.GenerateContent(subject, topic, string(agents.Lesson), string(level), grade)
	if err != nil {
		return GeneratedLesson{}, err
	}
	connection, err := g.integrator.EntrepreneurshipConnection(subject, topic, grade)
	if err != nil {
		return GeneratedLesson{}, err
	}
	resources, err := g.integrator.SuggestResources(subject, topic, "", string(level))
	if err != nil {
		return GeneratedLesson{}, err
	}
	agentID, _ := agents.AgentIDForSubject(subject)

	title := content.Title
	if title == "" {
		title = fmt.Sprintf("%s - Grade %d", topic, grade)
	}
	return GeneratedLesson{
		Title:                      title,
		Subject:                    subject,
		Topic:                      topic,
		GradeLevel:                 grade,
		Difficulty:                 level,
		LearningObjectives:         content.Objectives,
		Introduction:               content.Introduction,
		Sections:                   content.Sections,
		Summary:                    content.Summary,
		Activities:                 g.lessonActivities(subject, topic, grade, level),
		Resources:                  resources,
		EntrepreneurshipConnection: connection,
		GeneratorAgent:             agentID,
		CreatedAt:                  time.Now().UTC(),
	}, nil
}

// lessonActivities builds an exercise and a quiz, plus a project from
// grade 6 up.
func (g *Generator) lessonActivities(subject, topic string, grade int, level agents.Difficulty) []GeneratedActivity {
	activities := []GeneratedActivity{}
	if exercise, err := g.integrator.GenerateContent(subject, topic, string(agents.Exercise), string(level), grade); err == nil {
		activities = append(activities, GeneratedActivity{
			Title:           orDefault(exercise.Title, topic+" Exercise"),
			ActivityType:    "exercise",
			Instructions:    exercise.Instructions,
			DurationMinutes: 15,
			Problems:        exercise.Problems,
		})
	}
	if quiz, err := g.integrator.GenerateContent(subject, topic, string(agents.Quiz), string(level), grade); err == nil {
		activities = append(activities, GeneratedActivity{
			Title:           orDefault(quiz.Title, topic+" Quiz"),
			ActivityType:    "quiz",
			Instructions:    quiz.Instructions,
			DurationMinutes: 10,
			Questions:       quiz.Questions,
		})
	}
	if grade >= 6 {
		if project, err := g.integrator.GenerateContent(subject, topic, string(agents.Project), string(level), grade); err == nil {
			activities = append(activities, GeneratedActivity{
				Title:           orDefault(project.Title, topic+" Project"),
				ActivityType:    "project",
				Instructions:    project.Description,
				DurationMinutes: 45,
				Tasks:           project.Tasks,
			})
		}
	}
	return activities
}

// SaveLesson resolves the subject and topic rows and stores the lesson with
// its sections, activities and resources in one transaction.
func (g *Generator) SaveLesson(ctx context.Context, generated GeneratedLesson) (store.LessonRecord, error) {
	subject, err := g.store.GetOrCreateSubject(ctx, generated.Subject, generated.GradeLevel)
	if err != nil {
		return store.LessonRecord{}, fmt.Errorf("resolve subject: %w", err)
	}
	topic, err := g.store.GetOrCreateTopic(ctx, generated.Topic, subject.ID, generated.GradeLevel)
	if err != nil {
		return store.LessonRecord{}, fmt.Errorf("resolve topic: %w", err)
	}

	objectives, err := encodeJSON(nonNilStrings(generated.LearningObjectives))
	if err != nil {
		return store.LessonRecord{}, err
	}
	connection, err := encodeJSON(generated.EntrepreneurshipConnection)
	if err != nil {
		return store.LessonRecord{}, err
	}
	record := store.LessonRecord{
		Lesson: models.Lesson{
			SubjectID:                  subject.ID,
			TopicID:                    &topic.ID,
			Title:                      generated.Title,
			Content:                    generated.Introduction + "\n\n" + generated.Summary,
			GradeLevel:                 generated.GradeLevel,
			Difficulty:                 string(generated.Difficulty),
			DurationMinutes:            defaultLessonMinutes,
			LearningObjectives:         &objectives,
			EntrepreneurshipConnection: &connection,
			IsGenerated:                true,
			GeneratorAgent:             optionalString(generated.GeneratorAgent),
		},
	}
	for idx, section := range generated.Sections {
		record.Sections = append(record.Sections, models.LessonSection{
			Title:     orDefault(section.Title, fmt.Sprintf("Section %d", idx+1)),
			Content:   section.Content,
			SortOrder: idx,
		})
	}
	for _, activity := range generated.Activities {
		body, err := encodeJSON(activity)
		if err != nil {
			return store.LessonRecord{}, err
		}
		record.Activities = append(record.Activities, models.LessonActivity{
			Title:           activity.Title,
			ActivityType:    activity.ActivityType,
			Instructions:    activity.Instructions,
			Content:         &body,
			DurationMinutes: activity.DurationMinutes,
		})
	}
	for _, resource := range generated.Resources {
		body, err := encodeJSON(resource)
		if err != nil {
			return store.LessonRecord{}, err
		}
		record.Resources = append(record.Resources, models.LessonResource{
			Title:        resource.Title,
			ResourceType: orDefault(resource.Type, "link"),
			URL:          optionalString(resource.URL),
			Content:      &body,
			IsGenerated:  true,
		})
	}
	return g.store.CreateLesson(ctx, record)
}

// CreateLesson generates and saves a lesson.
func (g *Generator) CreateLesson(ctx context.Context, subject, topic string, grade int, difficulty string) (store.LessonRecord, error) {
	generated, err := g.GenerateLesson(subject, topic, grade, difficulty)
	if err != nil {
		return store.LessonRecord{}, err
	}
	record, err := g.SaveLesson(ctx, generated)
	if err != nil {
		return store.LessonRecord{}, err
	}
	g.log.Info("lesson generated",
		"lesson_id", record.Lesson.ID,
		"subject", subject,
		"topic", topic,
		"grade", grade,
	)
	g.publish(EventLessonGenerated, map[string]interface{}{
		"lessonId":   record.Lesson.ID,
		"title":      record.Lesson.Title,
		"subject":    subject,
		"topic":      topic,
		"gradeLevel": grade,
	})
	return record, nil
}

// GetOrGenerateLesson returns the latest lesson for the topic at the given
// difficulty, generating one when none exists. The boolean reports whether
// a new lesson was created.
func (g *Generator) GetOrGenerateLesson(ctx context.Context, subject, topic string, grade int, difficulty string) (models.Lesson, bool, error) {
	level := agents.ParseDifficulty(difficulty)
	subjectRow, err := g.store.GetOrCreateSubject(ctx, subject, grade)
	if err != nil {
		return models.Lesson{}, false, err
	}
	topicRow, err := g.store.GetOrCreateTopic(ctx, topic, subjectRow.ID, grade)
	if err != nil {
		return models.Lesson{}, false, err
	}
	lesson, err := g.store.FindLesson(ctx, topicRow.ID, string(level))
	if err == nil {
		return lesson, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Lesson{}, false, err
	}
	record, err := g.CreateLesson(ctx, subject, topic, grade, string(level))
	if err != nil {
		return models.Lesson{}, false, err
	}
	return record.Lesson, true, nil
}

type GradePlan struct {
	GradeLevel int      `json:"grade_level"`
	Topics     []string `json:"topics"`
}

type CurriculumPlan struct {
	Subject string      `json:"subject"`
	Grades  []GradePlan `json:"grade_levels"`
}

// PlanCurriculum resolves the topics of every grade and persists the
// subject and topic rows. No lessons are generated. A subject without an
// agent yields *agents.NoAgentError and writes nothing.
func (g *Generator) PlanCurriculum(ctx context.Context, subject string, grades []int) (CurriculumPlan, error) {
	plan := CurriculumPlan{Subject: subject, Grades: []GradePlan{}}
	curated, err := g.integrator.TopicsByGrade(subject)
	if err != nil {
		return CurriculumPlan{}, err
	}
	seen := map[int]bool{}
	for _, grade := range grades {
		if seen[grade] {
			continue
		}
		seen[grade] = true
		topics, ok := curated[grade]
		if !ok || len(topics) == 0 {
			topics = g.topics.Topics(subject, grade)
		}
		subjectRow, err := g.store.GetOrCreateSubject(ctx, subject, grade)
		if err != nil {
			return CurriculumPlan{}, fmt.Errorf("grade %d subject: %w", grade, err)
		}
		for _, name := range topics {
			if _, err := g.store.GetOrCreateTopic(ctx, name, subjectRow.ID, grade); err != nil {
				return CurriculumPlan{}, fmt.Errorf("grade %d topic %q: %w", grade, name, err)
			}
		}
		plan.Grades = append(plan.Grades, GradePlan{GradeLevel: grade, Topics: topics})
	}
	return plan, nil
}

type TopicResult struct {
	Name        string `json:"name"`
	LessonID    string `json:"lesson_id"`
	LessonTitle string `json:"lesson_title"`
}

type TopicFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type GradeReport struct {
	GradeLevel       int            `json:"grade_level"`
	Topics           []TopicResult  `json:"topics"`
	Failures         []TopicFailure `json:"failures,omitempty"`
	LessonsGenerated int            `json:"lessons_generated"`
}

type CurriculumReport struct {
	Subject      string        `json:"subject"`
	Grades       []GradeReport `json:"grade_levels"`
	TotalLessons int           `json:"total_lessons"`
}

// GenerateAndSaveCurriculum generates one intermediate lesson per planned
// topic. A failing topic is logged and recorded in the report; it does not
// stop the remaining topics.
func (g *Generator) GenerateAndSaveCurriculum(ctx context.Context, subject string, grades []int) (CurriculumReport, error) {
	plan, err := g.PlanCurriculum(ctx, subject, grades)
	if err != nil {
		return CurriculumReport{}, err
	}
	report := CurriculumReport{Subject: subject, Grades: []GradeReport{}}
	created := []string{}
	for _, gradePlan := range plan.Grades {
		gradeReport := GradeReport{GradeLevel: gradePlan.GradeLevel, Topics: []TopicResult{}}
		for _, topic := range gradePlan.Topics {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			record, err := g.CreateLesson(ctx, subject, topic, gradePlan.GradeLevel, string(agents.Intermediate))
			if err != nil {
				g.log.Warn("curriculum lesson failed",
					"subject", subject,
					"topic", topic,
					"grade", gradePlan.GradeLevel,
					"error", err,
				)
				gradeReport.Failures = append(gradeReport.Failures, TopicFailure{Name: topic, Error: err.Error()})
				continue
			}
			gradeReport.Topics = append(gradeReport.Topics, TopicResult{
				Name:        topic,
				LessonID:    record.Lesson.ID,
				LessonTitle: record.Lesson.Title,
			})
			gradeReport.LessonsGenerated++
			report.TotalLessons++
			created = append(created, record.Lesson.ID)
		}
		report.Grades = append(report.Grades, gradeReport)
	}

	if g.Cache != nil && len(created) > 0 {
		if err := g.Cache.Warm(ctx, created); err != nil {
			g.log.Warn("cache warm failed", "subject", subject, "error", err)
		}
	}
	g.publish(EventCurriculumGenerated, map[string]interface{}{
		"subject":      subject,
		"totalLessons": report.TotalLessons,
	})
	return report, nil
}

func (g *Generator) publish(eventType string, data interface{}) {
	if g.Events != nil {
		g.Events.Publish(eventType, data)
	}
}

func encodeJSON(value interface{}) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
