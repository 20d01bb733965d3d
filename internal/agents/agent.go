package agents

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// Agent is the capability set every subject agent provides.
type Agent interface {
	Info() Info
	Initialize() bool
	// TopicsByGrade returns the agent's curated curriculum. Agents without
	// one return an empty map.
	TopicsByGrade() map[int][]string
	GenerateLearningPath(studentID string, gradeLevel int, priorKnowledge map[string]float64) []Activity
	GenerateContent(topic string, contentType ContentType, difficulty Difficulty, gradeLevel int) Content
	AnalyzePerformance(studentID string, results ActivityResults) Feedback
	AnswerQuestion(question string, qctx QuestionContext) (string, float64)
	SuggestResources(topic, learningStyle string, difficulty Difficulty) []Resource
	EntrepreneurshipConnection(topic string, gradeLevel int) Connection
}

const (
	TierExcellent        = "Excellent"
	TierGood             = "Good"
	TierSatisfactory     = "Satisfactory"
	TierNeedsImprovement = "Needs Improvement"
)

// PerformanceTier maps a percentage onto the four-band scale. Lower bounds
// are inclusive.
func PerformanceTier(percentage float64) string {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 75:
		return TierGood
	case percentage >= 60:
		return TierSatisfactory
	default:
		return TierNeedsImprovement
	}
}

type keywordRule struct {
	words      []string
	answer     string
	confidence float64
}

type pathStep struct {
	contentType ContentType
	title       string
	description string
	minutes     int
}

type namedConnection struct {
	key        string
	connection Connection
}

// profile holds the subject tables a core agent renders from.
type profile struct {
	subject  string
	topics   map[int][]string
	practice pathStep

	// integration title is a format string taking the grade.
	integration pathStep

	lessonIntro      string
	lessonObjectives []string
	lessonSections   func(topic string) []Section
	lessonSummary    string

	exerciseInstructions string
	project              func(topic string) Content
	assessment           func() ([]Section, int)

	nextSteps map[string][]string

	rules          []keywordRule
	businessAnswer string
	fallbackAnswer string

	baseResources     func(topic string) []Resource
	styleResources    map[string]func(topic string, d Difficulty) Resource
	beginnerTitle     string
	localResource     func(topic string, d Difficulty) *Resource
	businessResource  func(topic string, d Difficulty) Resource
	connections       []namedConnection
	defaultConnection Connection
	gradeContexts     [3]string
}

// core implements Agent from a profile. Subject agents embed it and
// override the operations where they differ.
type core struct {
	name        string
	description string
	kind        string
	profile     *profile

	mu          sync.Mutex
	initialized bool
}

func newCore(name, description, kind string, p *profile) *core {
	return &core{name: name, description: description, kind: kind, profile: p}
}

func (c *core) Info() Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Info{Name: c.name, Description: c.description, Initialized: c.initialized, Type: c.kind}
}

func (c *core) Initialize() bool {
	c.mu.Lock()
	c.initialized = true
	c.mu.Unlock()
	return true
}

func (c *core) TopicsByGrade() map[int][]string {
	out := make(map[int][]string, len(c.profile.topics))
	for grade, topics := range c.profile.topics {
		out[grade] = append([]string(nil), topics...)
	}
	return out
}

func (c *core) GenerateLearningPath(studentID string, gradeLevel int, priorKnowledge map[string]float64) []Activity {
	topics := c.profile.topics[gradeLevel]
	if len(topics) == 0 {
		return nil
	}
	path := make([]Activity, 0, len(topics)*3+1)
	for _, topic := range topics {
		difficulty := DifficultyForProficiency(priorKnowledge[topic])
		path = append(path, Activity{
			ContentType:      Lesson,
			Topic:            topic,
			Difficulty:       difficulty,
			Title:            fmt.Sprintf("%s - %s Level", topic, difficulty.Title()),
			Description:      fmt.Sprintf("Learn about %s at a %s level", topic, difficulty),
			EstimatedMinutes: 30,
		})
		practice := c.profile.practice
		path = append(path, Activity{
			ContentType:      practice.contentType,
			Topic:            topic,
			Difficulty:       difficulty,
			Title:            fmt.Sprintf(practice.title, topic),
			Description:      fmt.Sprintf(practice.description, topic),
			EstimatedMinutes: practice.minutes,
		})
		path = append(path, Activity{
			ContentType:      Quiz,
			Topic:            topic,
			Difficulty:       difficulty,
			Title:            topic + " Quiz",
			Description:      "Test your knowledge of " + topic,
			EstimatedMinutes: 15,
		})
	}
	integration := c.profile.integration
	path = append(path, Activity{
		ContentType:      Project,
		Topic:            c.profile.subject + " Integration",
		Difficulty:       Intermediate,
		Title:            fmt.Sprintf(integration.title, gradeLevel),
		Description:      integration.description,
		EstimatedMinutes: integration.minutes,
	})
	return path
}

func (c *core) GenerateContent(topic string, contentType ContentType, difficulty Difficulty, gradeLevel int) Content {
	switch contentType {
	case Lesson, Exercise, Quiz, Project, Assessment:
	default:
		contentType = Lesson
	}
	content := Content{
		Topic:       topic,
		ContentType: contentType,
		Difficulty:  difficulty,
		GradeLevel:  gradeLevel,
		Title:       fmt.Sprintf("%s - %s", topic, capitalize(string(contentType))),
	}
	p := c.profile
	switch contentType {
	case Lesson:
		content.Introduction = fmt.Sprintf(p.lessonIntro, topic)
		content.Objectives = formatAll(p.lessonObjectives, topic)
		content.Sections = p.lessonSections(topic)
		content.Summary = fmt.Sprintf(p.lessonSummary, topic)
	case Exercise:
		content.Instructions = fmt.Sprintf(p.exerciseInstructions, topic)
		content.Problems = problemSet(topic, difficulty)
		content.HintsAvailable = true
	case Quiz:
		content.Instructions = fmt.Sprintf("This quiz will test your knowledge of %s. Select the best answer for each question.", topic)
		content.TimeLimit = 15
		content.PassingScore = 7
		content.Questions = quizQuestions(topic)
	case Project:
		project := p.project(topic)
		content.Title = project.Title
		content.Description = project.Description
		content.Objectives = project.Objectives
		content.Scenario = project.Scenario
		content.Tasks = project.Tasks
		content.Supplies = project.Supplies
		content.Rubric = project.Rubric
	case Assessment:
		content.Instructions = fmt.Sprintf("This assessment will evaluate your understanding of %s.", topic)
		content.Sections, content.TimeLimit = p.assessment()
		content.TotalPoints = 100
	}
	return content
}

func problemSet(topic string, difficulty Difficulty) []Problem {
	count := 8
	switch difficulty {
	case Beginner:
		count = 5
	case Advanced:
		count = 10
	}
	problems := make([]Problem, 0, count)
	for i := 0; i < count; i++ {
		problem := Problem{
			ID:          fmt.Sprintf("problem_%d", i+1),
			Question:    fmt.Sprintf("Sample %s problem %d for %s level", topic, i+1, difficulty),
			Answer:      "Sample answer",
			Explanation: fmt.Sprintf("Explanation for problem %d", i+1),
		}
		if i%2 == 0 {
			problem.Options = []string{"Option A", "Option B", "Option C", "Option D"}
			problem.Answer = "Option B"
		}
		problems = append(problems, problem)
	}
	return problems
}

func quizQuestions(topic string) []Question {
	questions := make([]Question, 0, 10)
	for i := 0; i < 10; i++ {
		questions = append(questions, Question{
			ID:            fmt.Sprintf("question_%d", i+1),
			Text:          fmt.Sprintf("Sample %s quiz question %d", topic, i+1),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option C",
			Points:        1,
		})
	}
	return questions
}

func (c *core) AnalyzePerformance(studentID string, results ActivityResults) Feedback {
	activityType := results.ActivityType
	if activityType == "" {
		activityType = "unknown"
	}
	topic := results.Topic
	if topic == "" {
		topic = "unknown"
	}
	maxScore := 100.0
	if results.MaxScore != nil {
		maxScore = *results.MaxScore
	}
	percentage := 0.0
	if maxScore > 0 {
		percentage = results.Score / maxScore * 100
	}
	tier := PerformanceTier(percentage)
	strengths, weaknesses := categorize(results.Answers)
	if len(strengths) == 0 {
		strengths = []string{"Not enough data to determine specific strengths"}
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{"Not enough data to determine specific weaknesses"}
	}
	return Feedback{
		StudentID:                  studentID,
		Topic:                      topic,
		ActivityType:               activityType,
		Score:                      results.Score,
		MaxScore:                   maxScore,
		Percentage:                 percentage,
		PerformanceLevel:           tier,
		Strengths:                  strengths,
		Weaknesses:                 weaknesses,
		Message:                    fmt.Sprintf("You scored %.1f%% on this %s. %s.", percentage, activityType, tier),
		NextSteps:                  append([]string(nil), c.profile.nextSteps[tier]...),
		RecommendedResources:       c.SuggestResources(topic, "", ""),
		EntrepreneurshipConnection: c.EntrepreneurshipConnection(topic, 10),
	}
}

// categorize splits answer categories into strengths (>= 80% correct) and
// weaknesses (<= 50% correct), in order of first appearance.
func categorize(answers []AnswerRecord) ([]string, []string) {
	type tally struct{ correct, total int }
	order := []string{}
	stats := map[string]*tally{}
	for _, answer := range answers {
		category := strings.TrimSpace(answer.Category)
		if category == "" {
			category = "general"
		}
		t, ok := stats[category]
		if !ok {
			t = &tally{}
			stats[category] = t
			order = append(order, category)
		}
		t.total++
		if answer.Correct {
			t.correct++
		}
	}
	var strengths, weaknesses []string
	for _, category := range order {
		t := stats[category]
		pct := float64(t.correct) / float64(t.total) * 100
		switch {
		case pct >= 80:
			strengths = append(strengths, category)
		case pct <= 50:
			weaknesses = append(weaknesses, category)
		}
	}
	return strengths, weaknesses
}

func (c *core) AnswerQuestion(question string, qctx QuestionContext) (string, float64) {
	topic := qctx.Topic
	if topic == "" {
		topic = "unknown"
	}
	grade := qctx.GradeLevel
	if grade == 0 {
		grade = 10
	}
	lowered := strings.ToLower(question)
	tokens := map[string]bool{}
	for _, token := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[token] = true
	}
	matches := func(words []string) bool {
		for _, word := range words {
			if strings.Contains(word, " ") {
				if strings.Contains(lowered, word) {
					return true
				}
				continue
			}
			if tokens[word] {
				return true
			}
		}
		return false
	}
	for _, rule := range c.profile.rules {
		if matches(rule.words) {
			return rule.answer, rule.confidence
		}
	}
	if matches([]string{"business", "entrepreneur", "startup"}) {
		connection := c.EntrepreneurshipConnection(topic, grade)
		if connection.Description == "" {
			return c.profile.businessAnswer, 0.7
		}
		return connection.Description, 0.7
	}
	return c.profile.fallbackAnswer, 0.3
}

func (c *core) SuggestResources(topic, learningStyle string, difficulty Difficulty) []Resource {
	if difficulty == "" {
		difficulty = Intermediate
	}
	p := c.profile
	resources := p.baseResources(topic)
	if build, ok := p.styleResources[strings.ToLower(strings.TrimSpace(learningStyle))]; ok {
		resources = append(resources, build(topic, difficulty))
	}
	switch difficulty {
	case Beginner:
		resources = append(resources, Resource{
			Title:       fmt.Sprintf(p.beginnerTitle, topic),
			Description: "Introduction to basic concepts in " + topic,
			URL:         "#",
			Type:        "course",
			Difficulty:  Beginner,
		})
	case Advanced:
		resources = append(resources, Resource{
			Title:       "Advanced " + topic,
			Description: "In-depth exploration of advanced concepts in " + topic,
			URL:         "#",
			Type:        "course",
			Difficulty:  Advanced,
		})
	}
	if p.localResource != nil {
		if local := p.localResource(topic, difficulty); local != nil {
			resources = append(resources, *local)
		}
	}
	return append(resources, p.businessResource(topic, difficulty))
}

func (c *core) EntrepreneurshipConnection(topic string, gradeLevel int) Connection {
	connection := lookupConnection(c.profile.connections, c.profile.defaultConnection, topic)
	switch {
	case gradeLevel <= 6:
		connection.GradeContext = c.profile.gradeContexts[0]
	case gradeLevel <= 9:
		connection.GradeContext = c.profile.gradeContexts[1]
	default:
		connection.GradeContext = c.profile.gradeContexts[2]
	}
	connection.Topic = topic
	connection.GradeLevel = gradeLevel
	return connection
}

// lookupConnection tries an exact key match, then a case-insensitive
// substring match in either direction in table order, then the fallback.
// The returned value never shares slices with the table.
func lookupConnection(table []namedConnection, fallback Connection, topic string) Connection {
	pick := fallback
	found := false
	for _, entry := range table {
		if entry.key == topic {
			pick, found = entry.connection, true
			break
		}
	}
	needle := strings.ToLower(strings.TrimSpace(topic))
	if !found && needle != "" {
		for _, entry := range table {
			key := strings.ToLower(entry.key)
			if strings.Contains(needle, key) || strings.Contains(key, needle) {
				pick = entry.connection
				break
			}
		}
	}
	pick.BusinessApplications = append([]string(nil), pick.BusinessApplications...)
	pick.StartupIdeas = append([]string(nil), pick.StartupIdeas...)
	return pick
}

func formatAll(templates []string, topic string) []string {
	out := make([]string, 0, len(templates))
	for _, template := range templates {
		if strings.Contains(template, "%s") {
			out = append(out, fmt.Sprintf(template, topic))
			continue
		}
		out = append(out, template)
	}
	return out
}

func styleResource(title, description, kind string) func(topic string, d Difficulty) Resource {
	return func(topic string, d Difficulty) Resource {
		return Resource{
			Title:       formatTopic(title, topic),
			Description: formatTopic(description, topic),
			URL:         "#",
			Type:        kind,
			Difficulty:  d,
		}
	}
}

func formatTopic(template, topic string) string {
	return strings.ReplaceAll(template, "{topic}", topic)
}
