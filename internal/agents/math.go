package agents

import "fmt"

// MathematicsAgent serves mathematics content ("Mathematics Navigator").
type MathematicsAgent struct {
	*core
}

func NewMathematicsAgent() Agent {
	return &MathematicsAgent{core: newCore(
		"Mathematics Navigator",
		"Specialized agent for mathematics education",
		"MathematicsAgent",
		mathProfile,
	)}
}

var mathProfile = &profile{
	subject: "Mathematics",
	topics: map[int][]string{
		1:  {"Counting", "Basic Addition", "Basic Subtraction", "Shapes"},
		2:  {"Addition", "Subtraction", "Simple Fractions", "Time"},
		3:  {"Multiplication", "Division", "Fractions", "Measurement"},
		4:  {"Multi-digit Operations", "Decimals", "Geometry", "Data Analysis"},
		5:  {"Fractions Operations", "Decimals Operations", "Geometry", "Measurement"},
		6:  {"Ratios", "Percentages", "Intro to Algebra", "Statistics"},
		7:  {"Pre-Algebra", "Geometry", "Statistics", "Probability"},
		8:  {"Algebra I", "Geometry", "Data Analysis", "Mathematical Modeling"},
		9:  {"Algebra II", "Geometry", "Trigonometry", "Statistics"},
		10: {"Advanced Algebra", "Trigonometry", "Probability", "Financial Mathematics"},
		11: {"Pre-Calculus", "Statistics", "Mathematical Modeling", "Business Mathematics"},
		12: {"Calculus", "Advanced Statistics", "Discrete Mathematics", "Financial Planning"},
	},
	practice: pathStep{
		contentType: Exercise,
		title:       "%s Practice",
		description: "Practice %s with interactive exercises",
		minutes:     20,
	},
	integration: pathStep{
		title:       "Grade %d Mathematics Project",
		description: "Apply all the mathematics concepts you've learned in a real-world project",
		minutes:     60,
	},

	lessonIntro: "Welcome to this lesson on %s. We'll explore key concepts and applications.",
	lessonObjectives: []string{
		"Understand the fundamental principles of %s",
		"Learn how to apply %s to solve problems",
		"Connect %s to real-world applications",
	},
	lessonSections: func(topic string) []Section {
		return []Section{
			{
				Title:   "Key Concepts",
				Content: fmt.Sprintf("This section covers the key concepts of %s...", topic),
				Examples: []Example{
					{Prompt: "Example problem 1", Solution: "Step-by-step solution 1"},
					{Prompt: "Example problem 2", Solution: "Step-by-step solution 2"},
				},
			},
			{
				Title:    "Applications",
				Content:  fmt.Sprintf("Here's how %s is applied in real-world situations...", topic),
				Examples: []Example{{Prompt: "Real-world scenario 1", Solution: "How to apply the concept"}},
			},
			{
				Title:    "Entrepreneurship Connection",
				Content:  fmt.Sprintf("Here's how %s can be used in business and entrepreneurship...", topic),
				Examples: []Example{{Prompt: "Business application", Solution: "How to use math to solve it"}},
			},
		}
	},
	lessonSummary: "In this lesson, we've covered the fundamentals of %s and its applications.",

	exerciseInstructions: "Practice the following %s problems. Take your time and show your work.",
	project: func(topic string) Content {
		return Content{
			Title:       topic + " Project: Real-World Application",
			Description: fmt.Sprintf("Apply your knowledge of %s to solve a real-world problem.", topic),
			Objectives: []string{
				"Apply mathematical concepts to a practical scenario",
				"Develop problem-solving skills",
				"Connect mathematics to entrepreneurship",
			},
			Scenario: fmt.Sprintf("You are starting a small business and need to use %s to optimize your operations...", topic),
			Tasks: []Task{
				{Description: "Task 1: Analyze the problem", Deliverable: "Analysis document"},
				{Description: "Task 2: Apply mathematical concepts", Deliverable: "Mathematical model"},
				{Description: "Task 3: Implement your solution", Deliverable: "Implementation plan"},
				{Description: "Task 4: Present your findings", Deliverable: "Presentation"},
			},
			Supplies: []Material{
				{Name: "Project guide", Type: "document", URL: "#"},
				{Name: "Sample data", Type: "spreadsheet", URL: "#"},
			},
			Rubric: []Criterion{
				{Criterion: "Mathematical accuracy", Weight: 30},
				{Criterion: "Problem-solving approach", Weight: 25},
				{Criterion: "Real-world applicability", Weight: 25},
				{Criterion: "Presentation quality", Weight: 20},
			},
		}
	},
	assessment: func() ([]Section, int) {
		return []Section{
			multipleChoiceSection(),
			{
				Title: "Problem Solving",
				Questions: []Question{
					{ID: "ps_1", Text: "Sample problem 1", CorrectAnswer: "Sample solution 1"},
					{ID: "ps_2", Text: "Sample problem 2", CorrectAnswer: "Sample solution 2"},
				},
			},
		}, 45
	},

	nextSteps: map[string][]string{
		TierExcellent:        {"Move to more advanced topics", "Try more challenging problems"},
		TierGood:             {"Review specific areas of difficulty", "Practice with more examples"},
		TierSatisfactory:     {"Focus on areas of weakness", "Review core concepts"},
		TierNeedsImprovement: {"Revisit fundamental concepts", "Work with simpler examples first"},
	},

	rules: []keywordRule{
		{
			words:      []string{"add", "sum", "plus", "addition"},
			answer:     "To add numbers, you combine their values. For example, 5 + 3 = 8.",
			confidence: 0.9,
		},
		{
			words:      []string{"subtract", "minus", "difference"},
			answer:     "To subtract, you find the difference between two numbers. For example, 8 - 3 = 5.",
			confidence: 0.9,
		},
		{
			words:      []string{"multiply", "product", "times"},
			answer:     "Multiplication is repeated addition. For example, 4 × 3 means 4 + 4 + 4 = 12.",
			confidence: 0.9,
		},
		{
			words:      []string{"divide", "quotient"},
			answer:     "Division is sharing a number into equal parts. For example, 12 ÷ 3 = 4.",
			confidence: 0.9,
		},
		{
			words:      []string{"formula", "equation"},
			answer:     "Mathematical formulas express relationships between variables. For example, the area of a rectangle is A = length × width.",
			confidence: 0.8,
		},
	},
	businessAnswer: "Mathematics is essential for business planning and financial management.",
	fallbackAnswer: "I'm not sure about the answer to this specific mathematics question. Could you provide more details or rephrase it?",

	baseResources: func(topic string) []Resource {
		return []Resource{
			{
				Title:       "Khan Academy",
				Description: "Free online lessons and exercises on " + topic,
				URL:         "https://www.khanacademy.org/math",
				Type:        "interactive",
				Difficulty:  Beginner,
			},
			{
				Title:       "Desmos",
				Description: "Interactive graphing calculator and activities",
				URL:         "https://www.desmos.com/",
				Type:        "tool",
				Difficulty:  Intermediate,
			},
			{
				Title:       "Mathematics for Business and Economics",
				Description: "Learn how mathematics applies to business scenarios",
				URL:         "#",
				Type:        "course",
				Difficulty:  Intermediate,
			},
		}
	},
	styleResources: map[string]func(string, Difficulty) Resource{
		"visual":      styleResource("Visual Mathematics", "Visual explanations of {topic} with interactive diagrams", "interactive"),
		"auditory":    styleResource("{topic} Explained - Audio Course", "Audio lectures explaining {topic} concepts", "audio"),
		"kinesthetic": styleResource("Hands-on {topic} Activities", "Physical and interactive activities to learn {topic}", "activity"),
	},
	beginnerTitle: "%s Fundamentals",
	businessResource: func(topic string, d Difficulty) Resource {
		return Resource{
			Title:       "Mathematics in Entrepreneurship: " + topic + " Applications",
			Description: fmt.Sprintf("Learn how %s is applied in business and entrepreneurship", topic),
			URL:         "#",
			Type:        "course",
			Difficulty:  d,
			Tags:        []string{"entrepreneurship", "business", "application"},
		}
	},
	connections: []namedConnection{
		{key: "Algebra", connection: Connection{
			Description:          "Algebra is essential for financial modeling, pricing strategies, and growth projections in startups.",
			BusinessApplications: []string{"Creating pricing models", "Forecasting revenue growth", "Calculating break-even points"},
			StartupIdeas:         []string{"Develop a financial planning app for small businesses", "Create a pricing optimization tool for e-commerce"},
			CaseStudy:            "How a South African tech startup used algebraic models to optimize their pricing strategy and increase revenue by 30%.",
		}},
		{key: "Statistics", connection: Connection{
			Description:          "Statistics enables data-driven decision making, market research analysis, and performance tracking.",
			BusinessApplications: []string{"Analyzing market trends", "A/B testing for product features", "Customer segmentation"},
			StartupIdeas:         []string{"Create a market research tool for African entrepreneurs", "Develop a data visualization platform for business insights"},
			CaseStudy:            "How a Johannesburg-based startup used statistical analysis to identify an underserved market segment and built a successful business.",
		}},
		{key: "Calculus", connection: Connection{
			Description:          "Calculus helps optimize business processes, maximize profits, and model complex business systems.",
			BusinessApplications: []string{"Optimizing production processes", "Maximizing profit functions", "Resource allocation"},
			StartupIdeas:         []string{"Develop an optimization tool for manufacturing businesses", "Create a resource planning application for small businesses"},
			CaseStudy:            "How a Cape Town engineering startup used calculus to optimize their production line and reduce costs by 25%.",
		}},
		{key: "Geometry", connection: Connection{
			Description:          "Geometry is valuable in design, spatial planning, and logistics optimization.",
			BusinessApplications: []string{"Store layout optimization", "Efficient packaging design", "Delivery route planning"},
			StartupIdeas:         []string{"Create a space planning app for retail businesses", "Develop a logistics optimization tool for delivery services"},
			CaseStudy:            "How a Durban logistics startup used geometric principles to optimize delivery routes and save 40% on fuel costs.",
		}},
		{key: "Probability", connection: Connection{
			Description:          "Probability helps with risk assessment, decision making under uncertainty, and forecasting.",
			BusinessApplications: []string{"Risk analysis for business decisions", "Insurance pricing models", "Inventory management"},
			StartupIdeas:         []string{"Develop a risk assessment tool for small businesses", "Create a predictive inventory management system"},
			CaseStudy:            "How a financial services startup in Pretoria used probability models to create innovative insurance products for underserved markets.",
		}},
	},
	defaultConnection: Connection{
		Description:          "Mathematics is fundamental to business planning, financial management, and data-driven decision making.",
		BusinessApplications: []string{"Financial planning and analysis", "Operational optimization", "Data-driven decision making"},
		StartupIdeas: []string{
			"Develop tools that solve mathematical problems in business contexts",
			"Create educational resources that teach math through entrepreneurship",
		},
		CaseStudy: "How successful South African entrepreneurs use mathematical thinking to build sustainable businesses.",
	},
	gradeContexts: [3]string{
		"Even at this early stage, understanding basic math helps in managing a small business like a lemonade stand or craft sale.",
		"At this grade level, you can start applying these concepts to plan and run small business projects in your community.",
		"With these advanced mathematical skills, you're equipped to develop business plans and financial models for real startup ventures.",
	},
}

func multipleChoiceSection() Section {
	return Section{
		Title: "Multiple Choice",
		Questions: []Question{
			{ID: "mc_1", Text: "Sample multiple choice question 1", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B"},
			{ID: "mc_2", Text: "Sample multiple choice question 2", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
		},
	}
}
