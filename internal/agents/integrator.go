package agents

import (
	"math"
	"sync"
)

// baseline agents that must be present for the integrator to report ready.
var requiredAgentIDs = []string{MathAgentID, ScienceAgentID, TechAgentID}

// LearningPath is a sequenced multi-subject plan.
type LearningPath struct {
	GradeLevel            int        `json:"grade_level"`
	Subjects              []string   `json:"subjects"`
	Activities            []Activity `json:"activities"`
	EstimatedDurationDays int        `json:"estimated_duration_days"`
}

type AgentAnswer struct {
	AgentID    string  `json:"agent_id"`
	AgentName  string  `json:"agent_name"`
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

type AnswerResult struct {
	Question     string        `json:"question"`
	Answer       string        `json:"answer"`
	Confidence   float64       `json:"confidence"`
	Subject      string        `json:"subject,omitempty"`
	Agent        string        `json:"agent"`
	AllResponses []AgentAnswer `json:"all_responses,omitempty"`
}

type Overview struct {
	Initialized bool            `json:"initialized"`
	AgentCount  int             `json:"agent_count"`
	Agents      map[string]Info `json:"agents"`
}

// Integrator routes requests to subject agents and merges their learning
// paths. It initializes itself on first use.
type Integrator struct {
	factory *Factory

	mu          sync.Mutex
	agents      []NamedAgent
	initialized bool
}

func NewIntegrator(factory *Factory) *Integrator {
	return &Integrator{factory: factory}
}

// Initialize rebuilds the agent set from the factory. It reports true only
// when every baseline subject agent is available.
func (i *Integrator) Initialize() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.initializeLocked()
}

func (i *Integrator) initializeLocked() bool {
	i.agents = i.factory.CreateAll()
	present := make(map[string]bool, len(i.agents))
	for _, named := range i.agents {
		present[named.ID] = true
	}
	for _, id := range requiredAgentIDs {
		if !present[id] {
			return false
		}
	}
	i.initialized = true
	return true
}

func (i *Integrator) ensureInitialized() []NamedAgent {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.initialized {
		i.initializeLocked()
	}
	return append([]NamedAgent(nil), i.agents...)
}

func (i *Integrator) agentFor(subject string) (Agent, bool) {
	i.ensureInitialized()
	return i.factory.ForSubject(subject)
}

// GenerateLearningPath merges per-subject paths into lessons, then practice,
// then quizzes, then capstones. Subjects without an agent are skipped.
// priorKnowledge is keyed by subject, then topic.
func (i *Integrator) GenerateLearningPath(studentID string, gradeLevel int, subjects []string, priorKnowledge map[string]map[string]float64) LearningPath {
	i.ensureInitialized()

	type subjectPath struct {
		subject    string
		activities []Activity
	}
	var paths []subjectPath
	for _, subject := range subjects {
		agent, ok := i.factory.ForSubject(subject)
		if !ok {
			continue
		}
		paths = append(paths, subjectPath{
			subject:    subject,
			activities: agent.GenerateLearningPath(studentID, gradeLevel, priorKnowledge[subject]),
		})
	}

	result := LearningPath{GradeLevel: gradeLevel, Subjects: []string{}, Activities: []Activity{}}
	for _, p := range paths {
		result.Subjects = append(result.Subjects, p.subject)
	}
	passes := []func(ContentType) bool{
		func(c ContentType) bool { return c == Lesson },
		ContentType.practice,
		func(c ContentType) bool { return c == Quiz },
		ContentType.capstone,
	}
	for _, belongs := range passes {
		for _, p := range paths {
			for _, activity := range p.activities {
				if !belongs(activity.ContentType) {
					continue
				}
				activity.Subject = p.subject
				result.Activities = append(result.Activities, activity)
			}
		}
	}

	total := 0
	for _, activity := range result.Activities {
		total += activity.Minutes()
	}
	result.EstimatedDurationDays = int(math.RoundToEven(float64(total) / 120))

	if len(subjects) >= 2 {
		result.Activities = append(result.Activities, interdisciplinaryProject(subjects))
	}
	if gradeLevel >= 8 {
		result.Activities = append(result.Activities, Activity{
			ContentType:      EntrepreneurshipChallenge,
			Subjects:         append([]string(nil), subjects...),
			Difficulty:       Intermediate,
			Title:            "Entrepreneurship Challenge: From Knowledge to Business",
			Description:      "Develop a business idea that leverages your knowledge across multiple subjects to solve a real problem in your community.",
			EstimatedMinutes: 120,
		})
	}
	return result
}

func interdisciplinaryProject(subjects []string) Activity {
	present := map[string]bool{}
	for _, subject := range subjects {
		if id, ok := AgentIDForSubject(subject); ok {
			present[id] = true
		}
	}
	title := "Interdisciplinary Project: "
	description := "Apply concepts from multiple subjects to solve a real-world problem: "
	switch {
	case present[MathAgentID] && present[TechAgentID]:
		title += "Data-Driven Solution"
		description += "Use mathematical analysis and technology implementation to create a data-driven application."
	case present[ScienceAgentID] && present[TechAgentID]:
		title += "Scientific Innovation"
		description += "Apply scientific principles and technology skills to develop an innovative solution to an environmental or health challenge."
	case present[MathAgentID] && present[ScienceAgentID]:
		title += "Scientific Modeling"
		description += "Use mathematical models to analyze and predict scientific phenomena."
	default:
		title += "Cross-Domain Innovation"
		description += "Combine knowledge from different domains to create an innovative solution to a community challenge."
	}
	return Activity{
		ContentType:      InterdisciplinaryProject,
		Subjects:         append([]string(nil), subjects...),
		Difficulty:       Intermediate,
		Title:            title,
		Description:      description,
		EstimatedMinutes: 180,
	}
}

// GenerateContent coerces the content type and difficulty strings, falling
// back to lesson and intermediate.
func (i *Integrator) GenerateContent(subject, topic, contentType, difficulty string, gradeLevel int) (Content, error) {
	agent, ok := i.agentFor(subject)
	if !ok {
		return Content{}, &NoAgentError{Subject: subject, Topic: topic, GradeLevel: gradeLevel}
	}
	return agent.GenerateContent(topic, ParseContentType(contentType), ParseDifficulty(difficulty), gradeLevel), nil
}

func (i *Integrator) AnalyzePerformance(studentID, subject string, results ActivityResults) (Feedback, error) {
	agent, ok := i.agentFor(subject)
	if !ok {
		return Feedback{}, &NoAgentError{Subject: subject, Topic: results.Topic}
	}
	return agent.AnalyzePerformance(studentID, results), nil
}

// AnswerQuestion routes to the subject's agent when subject is set. Otherwise
// every instantiated agent answers and the most confident one wins; ties go
// to the agent registered first.
func (i *Integrator) AnswerQuestion(question, subject string, qctx QuestionContext) (AnswerResult, error) {
	agents := i.ensureInitialized()
	if subject != "" {
		agent, ok := i.factory.ForSubject(subject)
		if !ok {
			return AnswerResult{}, &NoAgentError{Subject: subject, Topic: qctx.Topic, GradeLevel: qctx.GradeLevel}
		}
		answer, confidence := agent.AnswerQuestion(question, qctx)
		return AnswerResult{
			Question:   question,
			Answer:     answer,
			Confidence: confidence,
			Subject:    subject,
			Agent:      agent.Info().Name,
		}, nil
	}
	if len(agents) == 0 {
		return AnswerResult{}, &NoAgentError{Topic: qctx.Topic, GradeLevel: qctx.GradeLevel}
	}
	responses := make([]AgentAnswer, 0, len(agents))
	best := 0
	for idx, named := range agents {
		answer, confidence := named.Agent.AnswerQuestion(question, qctx)
		responses = append(responses, AgentAnswer{
			AgentID:    named.ID,
			AgentName:  named.Agent.Info().Name,
			Answer:     answer,
			Confidence: confidence,
		})
		if confidence > responses[best].Confidence {
			best = idx
		}
	}
	return AnswerResult{
		Question:     question,
		Answer:       responses[best].Answer,
		Confidence:   responses[best].Confidence,
		Agent:        responses[best].AgentName,
		AllResponses: responses,
	}, nil
}

// SuggestResources passes an empty difficulty through so the agent applies
// its own default.
func (i *Integrator) SuggestResources(subject, topic, learningStyle, difficulty string) ([]Resource, error) {
	agent, ok := i.agentFor(subject)
	if !ok {
		return nil, &NoAgentError{Subject: subject, Topic: topic}
	}
	var level Difficulty
	if difficulty != "" {
		level = ParseDifficulty(difficulty)
	}
	return agent.SuggestResources(topic, learningStyle, level), nil
}

func (i *Integrator) EntrepreneurshipConnection(subject, topic string, gradeLevel int) (Connection, error) {
	agent, ok := i.agentFor(subject)
	if !ok {
		return Connection{}, &NoAgentError{Subject: subject, Topic: topic, GradeLevel: gradeLevel}
	}
	return agent.EntrepreneurshipConnection(topic, gradeLevel), nil
}

// TopicsByGrade returns the curated curriculum of the subject's agent.
func (i *Integrator) TopicsByGrade(subject string) (map[int][]string, error) {
	agent, ok := i.agentFor(subject)
	if !ok {
		return nil, &NoAgentError{Subject: subject}
	}
	return agent.TopicsByGrade(), nil
}

func (i *Integrator) AgentInfo() Overview {
	agents := i.ensureInitialized()
	i.mu.Lock()
	initialized := i.initialized
	i.mu.Unlock()
	overview := Overview{Initialized: initialized, AgentCount: len(agents), Agents: map[string]Info{}}
	for _, named := range agents {
		overview.Agents[named.ID] = named.Agent.Info()
	}
	return overview
}
