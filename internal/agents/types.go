package agents

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// ParseDifficulty maps free text onto a Difficulty, falling back to
// Intermediate for anything it does not recognise.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case Beginner:
		return Beginner
	case Advanced:
		return Advanced
	case Intermediate:
		return Intermediate
	default:
		return Intermediate
	}
}

// DifficultyForProficiency selects the difficulty for a proficiency in [0,1].
func DifficultyForProficiency(proficiency float64) Difficulty {
	switch {
	case proficiency < 0.3:
		return Beginner
	case proficiency < 0.7:
		return Intermediate
	default:
		return Advanced
	}
}

func (d Difficulty) Title() string {
	return capitalize(string(d))
}

type ContentType string

const (
	Lesson                    ContentType = "lesson"
	Exercise                  ContentType = "exercise"
	Quiz                      ContentType = "quiz"
	Project                   ContentType = "project"
	Assessment                ContentType = "assessment"
	Laboratory                ContentType = "laboratory"
	CodingPractice            ContentType = "coding_practice"
	StartupSimulation         ContentType = "startup_simulation"
	InterdisciplinaryProject  ContentType = "interdisciplinary_project"
	EntrepreneurshipChallenge ContentType = "entrepreneurship_challenge"
)

var generatedContentTypes = map[ContentType]bool{
	Lesson:            true,
	Exercise:          true,
	Quiz:              true,
	Project:           true,
	Assessment:        true,
	Laboratory:        true,
	CodingPractice:    true,
	StartupSimulation: true,
}

// ParseContentType maps free text onto a generatable ContentType. Unknown
// values become Lesson.
func ParseContentType(raw string) ContentType {
	ct := ContentType(strings.ToLower(strings.TrimSpace(raw)))
	if generatedContentTypes[ct] {
		return ct
	}
	return Lesson
}

// practice reports whether the content type belongs to the practice pass of
// a combined learning path.
func (c ContentType) practice() bool {
	return c == Exercise || c == Laboratory || c == CodingPractice
}

func (c ContentType) capstone() bool {
	return c == Project || c == Assessment || c == StartupSimulation
}

// Activity is a single step of a learning path.
type Activity struct {
	ContentType      ContentType `json:"content_type"`
	Topic            string      `json:"topic,omitempty"`
	Subject          string      `json:"subject,omitempty"`
	Subjects         []string    `json:"subjects,omitempty"`
	Difficulty       Difficulty  `json:"difficulty"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	EstimatedMinutes int         `json:"estimated_time_minutes,omitempty"`
}

// Minutes returns the estimated duration, 30 when the activity carries none.
func (a Activity) Minutes() int {
	if a.EstimatedMinutes <= 0 {
		return 30
	}
	return a.EstimatedMinutes
}

type Example struct {
	Prompt   string `json:"prompt"`
	Solution string `json:"solution"`
}

type CodeSample struct {
	Language    string `json:"language"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

type Question struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Options       []string   `json:"options,omitempty"`
	CorrectAnswer string     `json:"correct_answer,omitempty"`
	Points        int        `json:"points,omitempty"`
	StarterCode   string     `json:"starter_code,omitempty"`
	TestCases     []TestCase `json:"test_cases,omitempty"`
}

type Section struct {
	Title       string       `json:"title"`
	Content     string       `json:"content,omitempty"`
	Examples    []Example    `json:"examples,omitempty"`
	Steps       []string     `json:"steps,omitempty"`
	CodeSamples []CodeSample `json:"code_examples,omitempty"`
	Questions   []Question   `json:"questions,omitempty"`
}

type Problem struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type Task struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description"`
	Deliverable string     `json:"deliverable,omitempty"`
	StarterCode string     `json:"starter_code,omitempty"`
	Hints       []string   `json:"hints,omitempty"`
	TestCases   []TestCase `json:"test_cases,omitempty"`
}

type Phase struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Deliverable string   `json:"deliverable"`
}

type Criterion struct {
	Criterion string `json:"criterion"`
	Weight    int    `json:"weight"`
}

type Material struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	URL  string `json:"url"`
}

type Observations struct {
	Instructions string   `json:"instructions"`
	TableHeaders []string `json:"table_headers"`
}

// Content is the structured output of GenerateContent. Which fields are
// populated depends on ContentType; the header fields are always set.
type Content struct {
	Topic       string      `json:"topic"`
	ContentType ContentType `json:"content_type"`
	Difficulty  Difficulty  `json:"difficulty"`
	GradeLevel  int         `json:"grade_level"`
	Title       string      `json:"title"`

	Description    string        `json:"description,omitempty"`
	Introduction   string        `json:"introduction,omitempty"`
	Instructions   string        `json:"instructions,omitempty"`
	Objectives     []string      `json:"objectives,omitempty"`
	Sections       []Section     `json:"sections,omitempty"`
	Summary        string        `json:"summary,omitempty"`
	Scenario       string        `json:"scenario,omitempty"`
	Problems       []Problem     `json:"problems,omitempty"`
	HintsAvailable bool          `json:"hints_available,omitempty"`
	Questions      []Question    `json:"questions,omitempty"`
	Tasks          []Task        `json:"tasks,omitempty"`
	Phases         []Phase       `json:"phases,omitempty"`
	Supplies       []Material    `json:"resources,omitempty"`
	Rubric         []Criterion   `json:"rubric,omitempty"`
	TimeLimit      int           `json:"time_limit_minutes,omitempty"`
	PassingScore   int           `json:"passing_score,omitempty"`
	TotalPoints    int           `json:"total_points,omitempty"`
	Safety         []string      `json:"safety_guidelines,omitempty"`
	Materials      []string      `json:"materials,omitempty"`
	Procedure      []string      `json:"procedure,omitempty"`
	Observations   *Observations `json:"observations,omitempty"`
	Analysis       []string      `json:"analysis_questions,omitempty"`
	Conclusion     string        `json:"conclusion,omitempty"`
	Extension      string        `json:"extension,omitempty"`
	Setup          []string      `json:"setup_instructions,omitempty"`
	Submission     string        `json:"submission_instructions,omitempty"`
}

type AnswerRecord struct {
	Category string `json:"category"`
	Correct  bool   `json:"correct"`
}

// ActivityResults is the input to AnalyzePerformance. A nil MaxScore means
// the caller did not supply one and 100 is assumed.
type ActivityResults struct {
	ActivityType string         `json:"activity_type"`
	Topic        string         `json:"topic"`
	Score        float64        `json:"score"`
	MaxScore     *float64       `json:"max_score,omitempty"`
	Answers      []AnswerRecord `json:"answers,omitempty"`
}

type SkillRubric struct {
	Name    string         `json:"name"`
	Scores  map[string]int `json:"scores"`
	Overall float64        `json:"overall"`
	Summary string         `json:"feedback"`
}

type Feedback struct {
	StudentID                  string       `json:"student_id"`
	Topic                      string       `json:"topic"`
	ActivityType               string       `json:"activity_type"`
	Score                      float64      `json:"score"`
	MaxScore                   float64      `json:"max_score"`
	Percentage                 float64      `json:"percentage"`
	PerformanceLevel           string       `json:"performance_level"`
	Strengths                  []string     `json:"strengths"`
	Weaknesses                 []string     `json:"weaknesses"`
	Message                    string       `json:"feedback"`
	NextSteps                  []string     `json:"next_steps"`
	RecommendedResources       []Resource   `json:"recommended_resources"`
	EntrepreneurshipConnection Connection   `json:"entrepreneurship_connection"`
	Skills                     *SkillRubric `json:"skills,omitempty"`
}

type QuestionContext struct {
	Topic      string `json:"topic,omitempty"`
	GradeLevel int    `json:"grade_level,omitempty"`
}

type Resource struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Type        string     `json:"type"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Connection links an academic topic to business and startup relevance.
type Connection struct {
	Description          string   `json:"description"`
	BusinessApplications []string `json:"business_applications"`
	StartupIdeas         []string `json:"startup_ideas"`
	CaseStudy            string   `json:"case_study"`
	GradeContext         string   `json:"grade_context"`
	Topic                string   `json:"topic"`
	GradeLevel           int      `json:"grade_level"`
}

type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Initialized bool   `json:"initialized"`
	Type        string `json:"type"`
}

// NoAgentError is returned by integrator operations when no agent serves the
// requested subject. It carries the request parameters back to the caller.
type NoAgentError struct {
	Subject    string `json:"subject"`
	Topic      string `json:"topic,omitempty"`
	GradeLevel int    `json:"grade_level,omitempty"`
}

func (e *NoAgentError) Error() string {
	return fmt.Sprintf("No agent available for subject: %s", e.Subject)
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
