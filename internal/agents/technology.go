package agents

import "fmt"

type TechnologyAgent struct {
	*core
}

func NewTechnologyAgent() Agent {
	return &TechnologyAgent{core: newCore(
		"Technology Architect",
		"Specialized agent for technology and digital skills education",
		"TechnologyAgent",
		technologyProfile,
	)}
}

// GenerateLearningPath extends the shared path with a startup simulation from
// grade 8 upwards.
func (a *TechnologyAgent) GenerateLearningPath(studentID string, gradeLevel int, priorKnowledge map[string]float64) []Activity {
	path := a.core.GenerateLearningPath(studentID, gradeLevel, priorKnowledge)
	if len(path) == 0 || gradeLevel < 8 {
		return path
	}
	return append(path, Activity{
		ContentType:      StartupSimulation,
		Topic:            "Tech Entrepreneurship",
		Difficulty:       Intermediate,
		Title:            "Tech Startup Simulation",
		Description:      "Simulate launching a technology startup based on the skills you've learned",
		EstimatedMinutes: 90,
	})
}

func (a *TechnologyAgent) GenerateContent(topic string, contentType ContentType, difficulty Difficulty, gradeLevel int) Content {
	switch contentType {
	case CodingPractice:
		return codingPractice(topic, difficulty, gradeLevel)
	case StartupSimulation:
		return startupSimulation(topic, difficulty, gradeLevel)
	default:
		return a.core.GenerateContent(topic, contentType, difficulty, gradeLevel)
	}
}

func (a *TechnologyAgent) AnalyzePerformance(studentID string, results ActivityResults) Feedback {
	feedback := a.core.AnalyzePerformance(studentID, results)
	switch ContentType(feedback.ActivityType) {
	case CodingPractice, Project:
		feedback.Skills = &SkillRubric{
			Name: "coding_skills",
			Scores: map[string]int{
				"code_quality":    4,
				"problem_solving": 3,
				"efficiency":      4,
				"documentation":   3,
			},
			Overall: 3.5,
			Summary: "Your code is well-structured and efficient. Work on improving documentation and problem-solving approaches.",
		}
	}
	return feedback
}

func codingPractice(topic string, difficulty Difficulty, gradeLevel int) Content {
	sample := []TestCase{{Input: "example input", ExpectedOutput: "example output"}}
	return Content{
		Topic:        topic,
		ContentType:  CodingPractice,
		Difficulty:   difficulty,
		GradeLevel:   gradeLevel,
		Title:        topic + " Coding Practice",
		Introduction: fmt.Sprintf("In this coding practice, you will apply your knowledge of %s by writing and running code.", topic),
		Setup: []string{
			"Make sure you have the necessary software installed",
			"Create a new project folder",
			"Follow the instructions for each task",
		},
		Tasks: []Task{
			{
				Title:       "Task 1: Basic Implementation",
				Description: "Implement a simple solution that demonstrates the core concept",
				StarterCode: "# Your code here",
				Hints:       []string{"Think about how to structure your solution", "Remember to handle edge cases"},
				TestCases:   sample,
			},
			{
				Title:       "Task 2: Advanced Implementation",
				Description: "Extend your solution to handle more complex scenarios",
				StarterCode: "# Your code here",
				Hints:       []string{"Build on your previous solution", "Consider performance optimization"},
				TestCases:   sample,
			},
		},
		Supplies: []Material{
			{Name: "Documentation", URL: "#"},
			{Name: "Tutorial video", URL: "#"},
		},
		Submission: "Submit your code files along with a brief explanation of your approach.",
	}
}

func startupSimulation(topic string, difficulty Difficulty, gradeLevel int) Content {
	return Content{
		Topic:        topic,
		ContentType:  StartupSimulation,
		Difficulty:   difficulty,
		GradeLevel:   gradeLevel,
		Title:        "Tech Startup Simulation",
		Introduction: "In this simulation, you will experience the process of launching a technology startup based on the skills you've learned.",
		Objectives: []string{
			"Apply technical skills to a business context",
			"Understand the startup development process",
			"Develop entrepreneurial thinking",
			"Practice pitching and presenting business ideas",
		},
		Phases: []Phase{
			{
				Title:       "Phase 1: Ideation",
				Description: "Generate and evaluate business ideas based on technology solutions",
				Activities: []string{
					"Identify problems that can be solved with technology",
					"Brainstorm potential solutions",
					"Evaluate ideas based on feasibility and market potential",
				},
				Deliverable: "Business idea document",
			},
			{
				Title:       "Phase 2: Market Research",
				Description: "Research your target market and competition",
				Activities:  []string{"Define your target audience", "Analyze competitors", "Identify your unique value proposition"},
				Deliverable: "Market research report",
			},
			{
				Title:       "Phase 3: Prototype Development",
				Description: "Create a simple prototype of your solution",
				Activities:  []string{"Design user interface mockups", "Develop a basic working prototype", "Test with potential users"},
				Deliverable: "Prototype and user feedback",
			},
			{
				Title:       "Phase 4: Business Model",
				Description: "Develop a business model for your startup",
				Activities:  []string{"Define revenue streams", "Identify key resources and partners", "Calculate startup costs and projections"},
				Deliverable: "Business model canvas",
			},
			{
				Title:       "Phase 5: Pitch",
				Description: "Create and deliver a pitch for your startup",
				Activities:  []string{"Develop a pitch deck", "Practice your presentation", "Deliver your pitch and answer questions"},
				Deliverable: "Pitch presentation",
			},
		},
		Supplies: []Material{
			{Name: "Business Model Canvas Template", URL: "#"},
			{Name: "Pitch Deck Template", URL: "#"},
			{Name: "South African Startup Resources", URL: "#"},
		},
		Rubric: []Criterion{
			{Criterion: "Innovation and creativity", Weight: 20},
			{Criterion: "Technical feasibility", Weight: 20},
			{Criterion: "Market potential", Weight: 20},
			{Criterion: "Business model viability", Weight: 20},
			{Criterion: "Pitch quality", Weight: 20},
		},
	}
}

var technologyProfile = &profile{
	subject: "Technology",
	topics: map[int][]string{
		1:  {"Basic Computer Skills", "Digital Storytelling", "Introduction to Coding", "Online Safety"},
		2:  {"Computer Parts", "Digital Art", "Simple Programming", "Internet Basics"},
		3:  {"Word Processing", "Block Coding", "Digital Communication", "Responsible Technology Use"},
		4:  {"Spreadsheet Basics", "Animation", "Computational Thinking", "Digital Citizenship"},
		5:  {"Presentation Software", "Game Design Basics", "Introduction to Algorithms", "Digital Research"},
		6:  {"Digital Media", "Website Basics", "Programming Concepts", "Data Collection"},
		7:  {"Digital Design", "Web Development", "Programming with Python", "Data Analysis"},
		8:  {"App Design", "Advanced Web Development", "Programming Projects", "Digital Solutions"},
		9:  {"Computer Science Principles", "Web Applications", "Python Programming", "Database Basics"},
		10: {"Software Development", "Full Stack Development", "Data Structures", "User Experience Design"},
		11: {"Mobile App Development", "Advanced Programming", "Databases", "AI and Machine Learning Basics"},
		12: {"Entrepreneurial Technology", "Software Engineering", "Systems Design", "Emerging Technologies"},
	},
	practice: pathStep{
		contentType: CodingPractice,
		title:       "%s Coding Practice",
		description: "Apply your knowledge with hands-on coding related to %s",
		minutes:     45,
	},
	integration: pathStep{
		title:       "Grade %d Technology Project",
		description: "Apply technology concepts you've learned to build a real-world solution",
		minutes:     120,
	},

	lessonIntro: "Welcome to this technology lesson on %s. We'll explore key concepts, practice coding, and discover how these skills can be applied in the real world and in entrepreneurship.",
	lessonObjectives: []string{
		"Understand the fundamental principles of %s",
		"Develop practical skills in %s",
		"Learn how to apply %s to solve real-world problems",
		"Explore entrepreneurial opportunities related to %s",
	},
	lessonSections: func(topic string) []Section {
		return []Section{
			{
				Title:   "Key Concepts",
				Content: fmt.Sprintf("This section covers the key concepts of %s...", topic),
			},
			{
				Title:   "Practical Application",
				Content: fmt.Sprintf("Here's how to apply %s in practical scenarios...", topic),
				CodeSamples: []CodeSample{
					{Language: "python", Description: "Example 1", Code: "# Python code example\nprint('Hello, world!')"},
					{Language: "html", Description: "Example 2", Code: "<!-- HTML example -->\n<h1>Hello, world!</h1>"},
				},
			},
			{
				Title:   "Real-World Applications",
				Content: fmt.Sprintf("Here's how %s is used in industry and business...", topic),
				Examples: []Example{
					{Prompt: "E-commerce application", Solution: "How this concept is used in online stores"},
					{Prompt: "Mobile app development", Solution: "How this concept is used in mobile applications"},
				},
			},
			{
				Title:   "Entrepreneurship Connection",
				Content: fmt.Sprintf("Here's how %s can be leveraged to create business opportunities...", topic),
				Examples: []Example{{
					Prompt:   "Creating digital solutions for local businesses",
					Solution: "Application of web development skills",
				}},
			},
		}
	},
	lessonSummary: "In this lesson, we've covered the fundamentals of %s, its applications, and potential entrepreneurial opportunities.",

	exerciseInstructions: "Practice the following %s problems. Apply your technical knowledge and problem-solving skills.",
	project: func(topic string) Content {
		return Content{
			Title:       topic + " Project: Building a Digital Solution",
			Description: fmt.Sprintf("Apply your knowledge of %s to develop a solution to a real-world problem.", topic),
			Objectives: []string{
				"Apply technology concepts to a practical challenge",
				"Develop technical implementation skills",
				"Connect technology to entrepreneurship and innovation",
			},
			Scenario: fmt.Sprintf("South African communities and businesses face various challenges that can be addressed with technology. Use your knowledge of %s to develop a digital solution to one of these challenges...", topic),
			Tasks: []Task{
				{Description: "Task 1: Identify a problem that can be solved with technology", Deliverable: "Problem statement"},
				{Description: "Task 2: Design your solution", Deliverable: "Solution design document"},
				{Description: "Task 3: Implement a prototype", Deliverable: "Working prototype"},
				{Description: "Task 4: Test your solution", Deliverable: "Test results"},
				{Description: "Task 5: Develop a business model", Deliverable: "Business plan"},
			},
			Supplies: []Material{
				{Name: "Project guide", Type: "document", URL: "#"},
				{Name: "Code templates", Type: "code", URL: "#"},
				{Name: "Business model canvas", Type: "document", URL: "#"},
			},
			Rubric: []Criterion{
				{Criterion: "Technical implementation", Weight: 30},
				{Criterion: "Problem-solving approach", Weight: 20},
				{Criterion: "User experience", Weight: 20},
				{Criterion: "Business potential", Weight: 15},
				{Criterion: "Presentation quality", Weight: 15},
			},
		}
	},
	assessment: func() ([]Section, int) {
		sample := []TestCase{{Input: "example input", ExpectedOutput: "example output"}}
		return []Section{
			multipleChoiceSection(),
			{
				Title: "Coding Problems",
				Questions: []Question{
					{ID: "code_1", Text: "Write a function that...", StarterCode: "def solution():\n    # Your code here\n    pass", TestCases: sample},
					{ID: "code_2", Text: "Create a program that...", StarterCode: "# Your code here", TestCases: sample},
				},
			},
			{
				Title: "Application Design",
				Questions: []Question{
					{ID: "design_1", Text: "Design a solution for the following scenario...", CorrectAnswer: "Sample solution approach"},
				},
			},
		}, 60
	},

	nextSteps: map[string][]string{
		TierExcellent:        {"Explore advanced concepts in this topic", "Start a personal project applying these skills"},
		TierGood:             {"Review specific areas of difficulty", "Practice with more complex examples"},
		TierSatisfactory:     {"Focus on areas of weakness", "Review core concepts and practice more"},
		TierNeedsImprovement: {"Revisit fundamental concepts", "Work with simpler examples and exercises"},
	},

	rules: []keywordRule{
		{
			words:      []string{"programming", "code", "coding"},
			answer:     "Programming is the process of creating instructions for computers to follow. It involves writing code in languages like Python, JavaScript, or Java to solve problems and build applications.",
			confidence: 0.9,
		},
		{
			words:      []string{"web", "website", "html", "css"},
			answer:     "Web development involves creating websites and web applications. HTML is used for structure, CSS for styling, and JavaScript for interactivity. Backend technologies like Python, PHP, or Node.js handle server-side logic.",
			confidence: 0.85,
		},
		{
			words:      []string{"app", "mobile", "android", "ios"},
			answer:     "Mobile app development involves creating applications for smartphones and tablets. Android apps are typically built with Java or Kotlin, while iOS apps use Swift or Objective-C. Cross-platform frameworks like React Native or Flutter allow development for both platforms.",
			confidence: 0.85,
		},
		{
			words:      []string{"database", "data", "sql"},
			answer:     "Databases store and organize data for applications. SQL (Structured Query Language) is used to manage relational databases like MySQL or PostgreSQL. NoSQL databases like MongoDB store data in different formats and are often used for large-scale applications.",
			confidence: 0.85,
		},
		{
			words:      []string{"ai", "artificial intelligence", "machine learning"},
			answer:     "Artificial Intelligence (AI) enables computers to perform tasks that typically require human intelligence. Machine Learning is a subset of AI that allows systems to learn from data and improve over time without explicit programming.",
			confidence: 0.8,
		},
	},
	businessAnswer: "Technology skills are essential for modern entrepreneurship, enabling the creation of digital products and services that solve real-world problems.",
	fallbackAnswer: "I'm not sure about the answer to this specific technology question. Could you provide more details or rephrase it?",

	baseResources: func(topic string) []Resource {
		return []Resource{
			{
				Title:       "freeCodeCamp",
				Description: "Free interactive coding lessons on " + topic,
				URL:         "https://www.freecodecamp.org/",
				Type:        "interactive",
				Difficulty:  Beginner,
			},
			{
				Title:       "W3Schools",
				Description: "Web development tutorials and references",
				URL:         "https://www.w3schools.com/",
				Type:        "tutorial",
				Difficulty:  Intermediate,
			},
			{
				Title:       "GitHub Learning Lab",
				Description: "Interactive courses on coding and development",
				URL:         "https://lab.github.com/",
				Type:        "interactive",
				Difficulty:  Intermediate,
			},
			{
				Title:       "Tech Entrepreneurship",
				Description: "Learn how to build a tech startup",
				URL:         "#",
				Type:        "course",
				Difficulty:  Intermediate,
			},
		}
	},
	styleResources: map[string]func(string, Difficulty) Resource{
		"visual":      styleResource("Visual Tech Tutorials", "Visual explanations of {topic} with diagrams and videos", "video"),
		"auditory":    styleResource("{topic} Explained - Tech Podcast", "Audio explanations of {topic} concepts", "audio"),
		"kinesthetic": styleResource("Hands-on {topic} Projects", "Interactive projects to learn {topic} by doing", "project"),
	},
	beginnerTitle: "%s for Beginners",
	localResource: func(topic string, d Difficulty) *Resource {
		return &Resource{
			Title:       "South African " + topic + " Community",
			Description: fmt.Sprintf("Connect with local developers and entrepreneurs interested in %s", topic),
			URL:         "#",
			Type:        "community",
			Difficulty:  d,
		}
	},
	businessResource: func(topic string, d Difficulty) Resource {
		return Resource{
			Title:       "From Code to Company: Building a " + topic + " Startup",
			Description: fmt.Sprintf("Learn how to turn your %s skills into a viable business", topic),
			URL:         "#",
			Type:        "course",
			Difficulty:  d,
			Tags:        []string{"entrepreneurship", "startup", "business"},
		}
	},
	connections: []namedConnection{
		{key: "Web Development", connection: Connection{
			Description: "Web development skills enable you to create websites and web applications for businesses and organizations.",
			BusinessApplications: []string{
				"Creating websites for local businesses",
				"Developing e-commerce platforms",
				"Building web applications for specific industries",
			},
			StartupIdeas: []string{
				"Web development agency serving local businesses",
				"Industry-specific web application (e.g., for healthcare, education)",
				"Online marketplace for local products",
			},
			CaseStudy: "How a young developer from Soweto built a web development agency serving over 50 local businesses, creating employment for 10 people.",
		}},
		{key: "Mobile App Development", connection: Connection{
			Description: "Mobile app development allows you to create applications that solve problems for smartphone users.",
			BusinessApplications: []string{
				"Creating apps for businesses to reach customers",
				"Developing solutions for specific local challenges",
				"Building tools for other businesses",
			},
			StartupIdeas: []string{
				"Mobile app for connecting local service providers with customers",
				"Transportation or delivery app for your community",
				"Educational app focused on South African curriculum",
			},
			CaseStudy: "How a team of students from Cape Town developed a mobile app that helps people find safe transportation, now used by thousands daily.",
		}},
		{key: "Programming", connection: Connection{
			Description:          "Programming skills are the foundation for creating software solutions to various problems.",
			BusinessApplications: []string{"Developing custom software for businesses", "Creating automation tools", "Building data analysis solutions"},
			StartupIdeas: []string{
				"Software development consultancy",
				"Industry-specific software solution",
				"Educational programming platform for African students",
			},
			CaseStudy: "How a self-taught programmer from Durban built a software company that now employs 25 people and serves clients across Africa.",
		}},
		{key: "Data Analysis", connection: Connection{
			Description:          "Data analysis skills allow you to help businesses make better decisions based on their data.",
			BusinessApplications: []string{"Analyzing customer data for businesses", "Creating dashboards and reports", "Optimizing business operations"},
			StartupIdeas: []string{
				"Data analytics consultancy for small businesses",
				"Industry-specific data solution (e.g., for agriculture, retail)",
				"Market research service for African markets",
			},
			CaseStudy: "How a Johannesburg entrepreneur built a data analytics company that helps small businesses increase their revenue by understanding customer behavior.",
		}},
		{key: "Artificial Intelligence", connection: Connection{
			Description: "AI skills enable you to create intelligent systems that can automate tasks and provide insights.",
			BusinessApplications: []string{
				"Developing AI-powered customer service solutions",
				"Creating predictive analytics tools",
				"Building recommendation systems",
			},
			StartupIdeas: []string{
				"AI-powered solution for a specific industry challenge",
				"Chatbot development agency",
				"AI education platform for African students",
			},
			CaseStudy: "How a tech startup in Pretoria developed an AI solution for agriculture that helps farmers increase crop yields by 30%.",
		}},
	},
	defaultConnection: Connection{
		Description: "Technology skills are essential for modern entrepreneurship, enabling the creation of digital products and services that solve real-world problems.",
		BusinessApplications: []string{
			"Developing digital solutions for businesses",
			"Creating online platforms and services",
			"Building tools that solve specific problems",
		},
		StartupIdeas: []string{
			"Identify a local problem that can be solved with technology",
			"Create a digital service for a specific community or industry",
		},
		CaseStudy: "How South African tech entrepreneurs are building successful businesses by solving local problems with technology.",
	},
	gradeContexts: [3]string{
		"Even at this early stage, learning technology helps you understand how digital tools can solve problems around you.",
		"At this grade level, you can start creating simple websites, apps, or programs that address needs in your school or community.",
		"With these advanced technology skills, you're equipped to develop professional-quality solutions that could form the basis of a real startup.",
	},
}
