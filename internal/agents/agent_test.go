package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestPerformanceTier(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{95, TierExcellent},
		{90, TierExcellent},
		{89.9, TierGood},
		{80, TierGood},
		{75, TierGood},
		{65, TierSatisfactory},
		{60, TierSatisfactory},
		{59.99, TierNeedsImprovement},
		{40, TierNeedsImprovement},
		{0, TierNeedsImprovement},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PerformanceTier(tc.percentage), "percentage %.2f", tc.percentage)
	}
}

func TestParseFallbacks(t *testing.T) {
	assert.Equal(t, Intermediate, ParseDifficulty("impossible"))
	assert.Equal(t, Advanced, ParseDifficulty(" ADVANCED "))
	assert.Equal(t, Lesson, ParseContentType("podcast"))
	assert.Equal(t, CodingPractice, ParseContentType("coding_practice"))
}

func TestDifficultyForProficiency(t *testing.T) {
	assert.Equal(t, Beginner, DifficultyForProficiency(0))
	assert.Equal(t, Beginner, DifficultyForProficiency(0.29))
	assert.Equal(t, Intermediate, DifficultyForProficiency(0.3))
	assert.Equal(t, Intermediate, DifficultyForProficiency(0.69))
	assert.Equal(t, Advanced, DifficultyForProficiency(0.7))
}

func TestLearningPathShape(t *testing.T) {
	cases := []struct {
		name     string
		agent    Agent
		grade    int
		practice ContentType
	}{
		{"math", NewMathematicsAgent(), 5, Exercise},
		{"science", NewScienceAgent(), 9, Laboratory},
		{"technology", NewTechnologyAgent(), 7, CodingPractice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topics := tc.agent.TopicsByGrade()[tc.grade]
			require.NotEmpty(t, topics)

			path := tc.agent.GenerateLearningPath("student-1", tc.grade, nil)
			require.Len(t, path, 3*len(topics)+1)
			for i, topic := range topics {
				lesson, practice, quiz := path[3*i], path[3*i+1], path[3*i+2]
				assert.Equal(t, Lesson, lesson.ContentType)
				assert.Equal(t, tc.practice, practice.ContentType)
				assert.Equal(t, Quiz, quiz.ContentType)
				for _, activity := range []Activity{lesson, practice, quiz} {
					assert.Equal(t, topic, activity.Topic)
					assert.Equal(t, Beginner, activity.Difficulty)
				}
			}
			last := path[len(path)-1]
			assert.Equal(t, Project, last.ContentType)
			assert.Equal(t, Intermediate, last.Difficulty)
		})
	}
}

func TestLearningPathUsesPriorKnowledge(t *testing.T) {
	agent := NewMathematicsAgent()
	path := agent.GenerateLearningPath("s", 5, map[string]float64{"Geometry": 0.8, "Measurement": 0.5})

	byTopic := map[string]Difficulty{}
	for _, activity := range path {
		if activity.ContentType == Lesson {
			byTopic[activity.Topic] = activity.Difficulty
		}
	}
	assert.Equal(t, Advanced, byTopic["Geometry"])
	assert.Equal(t, Intermediate, byTopic["Measurement"])
	assert.Equal(t, Beginner, byTopic["Fractions Operations"])
	assert.Equal(t, "Geometry - Advanced Level", path[6].Title)
}

func TestLearningPathUnknownGrade(t *testing.T) {
	assert.Empty(t, NewScienceAgent().GenerateLearningPath("s", 13, nil))
	assert.Empty(t, NewTechnologyAgent().GenerateLearningPath("s", 0, nil))
}

func TestTechnologyPathAddsStartupSimulation(t *testing.T) {
	agent := NewTechnologyAgent()

	path := agent.GenerateLearningPath("s", 8, nil)
	require.Len(t, path, 14)
	last := path[len(path)-1]
	assert.Equal(t, StartupSimulation, last.ContentType)
	assert.Equal(t, "Tech Entrepreneurship", last.Topic)
	assert.Equal(t, 90, last.EstimatedMinutes)
}

func TestGenerateContentByType(t *testing.T) {
	math := NewMathematicsAgent()

	lesson := math.GenerateContent("Fractions", Lesson, Intermediate, 5)
	assert.Equal(t, "Fractions - Lesson", lesson.Title)
	assert.Len(t, lesson.Sections, 3)
	assert.Contains(t, lesson.Introduction, "Fractions")
	assert.NotEmpty(t, lesson.Summary)

	for difficulty, want := range map[Difficulty]int{Beginner: 5, Intermediate: 8, Advanced: 10} {
		exercise := math.GenerateContent("Fractions", Exercise, difficulty, 5)
		require.Len(t, exercise.Problems, want)
		assert.Len(t, exercise.Problems[0].Options, 4)
		assert.Equal(t, "Option B", exercise.Problems[0].Answer)
		assert.Empty(t, exercise.Problems[1].Options)
		assert.True(t, exercise.HintsAvailable)
	}

	quiz := math.GenerateContent("Fractions", Quiz, Beginner, 5)
	assert.Len(t, quiz.Questions, 10)
	assert.Equal(t, 15, quiz.TimeLimit)
	assert.Equal(t, 7, quiz.PassingScore)

	project := math.GenerateContent("Fractions", Project, Advanced, 5)
	assert.Equal(t, "Fractions Project: Real-World Application", project.Title)
	weight := 0
	for _, criterion := range project.Rubric {
		weight += criterion.Weight
	}
	assert.Equal(t, 100, weight)

	assessment := NewTechnologyAgent().GenerateContent("Databases", Assessment, Advanced, 11)
	assert.Equal(t, 60, assessment.TimeLimit)
	assert.Equal(t, 100, assessment.TotalPoints)
}

func TestGenerateContentExtensions(t *testing.T) {
	lab := NewScienceAgent().GenerateContent("Ecology", Laboratory, Beginner, 7)
	assert.Equal(t, Laboratory, lab.ContentType)
	assert.Equal(t, "Ecology Laboratory Investigation", lab.Title)
	require.NotNil(t, lab.Observations)
	assert.Len(t, lab.Observations.TableHeaders, 4)

	coding := NewTechnologyAgent().GenerateContent("Web Development", CodingPractice, Intermediate, 7)
	assert.Equal(t, "Web Development Coding Practice", coding.Title)
	assert.Len(t, coding.Tasks, 2)

	sim := NewTechnologyAgent().GenerateContent("Programming Projects", StartupSimulation, Intermediate, 8)
	assert.Len(t, sim.Phases, 5)

	// math has no laboratory content and renders a lesson instead
	fallback := NewMathematicsAgent().GenerateContent("Ratios", Laboratory, Intermediate, 6)
	assert.Equal(t, Lesson, fallback.ContentType)
	assert.Equal(t, "Ratios - Lesson", fallback.Title)
}

func TestAnalyzePerformance(t *testing.T) {
	agent := NewMathematicsAgent()

	feedback := agent.AnalyzePerformance("s1", ActivityResults{
		ActivityType: "quiz",
		Topic:        "Algebra I",
		Score:        8,
		MaxScore:     floatPtr(10),
		Answers: []AnswerRecord{
			{Category: "equations", Correct: true},
			{Category: "equations", Correct: true},
			{Category: "graphs", Correct: false},
			{Category: "graphs", Correct: true},
			{Category: "graphs", Correct: false},
			{Category: "word problems", Correct: true},
			{Category: "word problems", Correct: false},
			{Category: "word problems", Correct: true},
		},
	})
	assert.InDelta(t, 80.0, feedback.Percentage, 1e-9)
	assert.Equal(t, TierGood, feedback.PerformanceLevel)
	assert.Equal(t, []string{"equations"}, feedback.Strengths)
	assert.Equal(t, []string{"graphs"}, feedback.Weaknesses)
	assert.Equal(t, "You scored 80.0% on this quiz. Good.", feedback.Message)
	assert.Equal(t, []string{"Review specific areas of difficulty", "Practice with more examples"}, feedback.NextSteps)
	assert.NotEmpty(t, feedback.RecommendedResources)
	assert.Equal(t, 10, feedback.EntrepreneurshipConnection.GradeLevel)
	assert.Nil(t, feedback.Skills)
}

func TestAnalyzePerformanceDefaults(t *testing.T) {
	feedback := NewScienceAgent().AnalyzePerformance("s1", ActivityResults{ActivityType: "laboratory", Score: 0, MaxScore: floatPtr(0)})
	assert.Zero(t, feedback.Percentage)
	assert.Equal(t, TierNeedsImprovement, feedback.PerformanceLevel)
	assert.Equal(t, "unknown", feedback.Topic)
	assert.Equal(t, []string{"Not enough data to determine specific strengths"}, feedback.Strengths)
	require.NotNil(t, feedback.Skills)
	assert.Equal(t, "scientific_thinking", feedback.Skills.Name)

	defaulted := NewTechnologyAgent().AnalyzePerformance("s1", ActivityResults{ActivityType: "coding_practice", Score: 45})
	assert.Equal(t, 100.0, defaulted.MaxScore)
	assert.InDelta(t, 45.0, defaulted.Percentage, 1e-9)
	require.NotNil(t, defaulted.Skills)
	assert.Equal(t, "coding_skills", defaulted.Skills.Name)
}

func TestAnswerQuestion(t *testing.T) {
	math := NewMathematicsAgent()

	answer, confidence := math.AnswerQuestion("How do I add two numbers?", QuestionContext{})
	assert.Contains(t, answer, "To add numbers")
	assert.Equal(t, 0.9, confidence)

	answer, confidence = math.AnswerQuestion("Can I start a business with this?", QuestionContext{Topic: "Statistics", GradeLevel: 8})
	assert.Contains(t, answer, "Statistics enables")
	assert.Equal(t, 0.7, confidence)

	_, confidence = math.AnswerQuestion("Why is the sky blue?", QuestionContext{})
	assert.Equal(t, 0.3, confidence)

	answer, confidence = NewTechnologyAgent().AnswerQuestion("What is machine learning?", QuestionContext{})
	assert.Contains(t, answer, "Artificial Intelligence")
	assert.Equal(t, 0.8, confidence)

	// substrings of longer words do not count as keyword hits
	_, confidence = math.AnswerQuestion("Is an adder a snake?", QuestionContext{})
	assert.Equal(t, 0.3, confidence)
}

func TestSuggestResources(t *testing.T) {
	science := NewScienceAgent()

	base := science.SuggestResources("Cells", "", "")
	require.Len(t, base, 5)
	assert.Equal(t, "Khan Academy Science", base[0].Title)
	assert.Equal(t, "Cells in South African Context", base[3].Title)
	assert.Equal(t, Intermediate, base[4].Difficulty)

	visualBeginner := science.SuggestResources("Cells", "visual", Beginner)
	require.Len(t, visualBeginner, 7)
	assert.Equal(t, "Visual Science", visualBeginner[3].Title)
	assert.Equal(t, "Cells Fundamentals", visualBeginner[4].Title)

	advanced := NewMathematicsAgent().SuggestResources("Calculus", "kinesthetic", Advanced)
	require.Len(t, advanced, 6)
	assert.Equal(t, "Hands-on Calculus Activities", advanced[3].Title)
	assert.Equal(t, "Advanced Calculus", advanced[4].Title)
	assert.Equal(t, []string{"entrepreneurship", "business", "application"}, advanced[5].Tags)

	tech := NewTechnologyAgent().SuggestResources("Python Programming", "auditory", Beginner)
	assert.Equal(t, "Python Programming for Beginners", tech[5].Title)
	assert.Equal(t, "South African Python Programming Community", tech[6].Title)
}

func TestEntrepreneurshipConnectionLookup(t *testing.T) {
	math := NewMathematicsAgent()

	exact := math.EntrepreneurshipConnection("Algebra", 10)
	lower := math.EntrepreneurshipConnection("algebra", 10)
	longer := math.EntrepreneurshipConnection("Algebra II", 9)
	unknown := math.EntrepreneurshipConnection("Underwater Basketry", 4)
	empty := math.EntrepreneurshipConnection("", 4)

	assert.Equal(t, exact.Description, lower.Description)
	assert.Equal(t, exact.Description, longer.Description)
	assert.Equal(t, mathProfile.defaultConnection.Description, unknown.Description)
	assert.Equal(t, mathProfile.defaultConnection.Description, empty.Description)

	assert.Equal(t, mathProfile.gradeContexts[2], exact.GradeContext)
	assert.Equal(t, mathProfile.gradeContexts[1], longer.GradeContext)
	assert.Equal(t, mathProfile.gradeContexts[0], unknown.GradeContext)
	assert.Equal(t, "Algebra II", longer.Topic)
	assert.Equal(t, 9, longer.GradeLevel)

	// mutating a result leaves the table untouched
	exact.StartupIdeas[0] = "changed"
	assert.NotEqual(t, "changed", math.EntrepreneurshipConnection("Algebra", 10).StartupIdeas[0])

	science := NewScienceAgent().EntrepreneurshipConnection("Biology: Genetics and Evolution", 10)
	assert.Contains(t, science.Description, "Biology knowledge")
}
