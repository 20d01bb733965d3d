package agents

import "fmt"

// ScienceAgent serves science content ("Science Illuminator"). On top of the
// shared content types it renders laboratory investigations and grades
// scientific thinking on laboratory and project work.
type ScienceAgent struct {
	*core
}

func NewScienceAgent() Agent {
	return &ScienceAgent{core: newCore(
		"Science Illuminator",
		"Specialized agent for science education",
		"ScienceAgent",
		scienceProfile,
	)}
}

func (a *ScienceAgent) GenerateContent(topic string, contentType ContentType, difficulty Difficulty, gradeLevel int) Content {
	if contentType != Laboratory {
		return a.core.GenerateContent(topic, contentType, difficulty, gradeLevel)
	}
	return Content{
		Topic:        topic,
		ContentType:  Laboratory,
		Difficulty:   difficulty,
		GradeLevel:   gradeLevel,
		Title:        topic + " Laboratory Investigation",
		Introduction: fmt.Sprintf("In this laboratory activity, you will conduct experiments related to %s.", topic),
		Safety: []string{
			"Always wear safety goggles when handling chemicals",
			"Follow all instructions carefully",
			"Report any spills or accidents immediately",
		},
		Materials: []string{
			"List of required materials for the experiment",
			"Additional equipment needed",
		},
		Procedure: []string{
			"Step 1: Detailed instructions for the first step",
			"Step 2: Detailed instructions for the second step",
			"Step 3: Detailed instructions for the third step",
		},
		Observations: &Observations{
			Instructions: "Record your observations in the provided table",
			TableHeaders: []string{"Trial", "Measurement 1", "Measurement 2", "Observations"},
		},
		Analysis: []string{
			"What patterns did you observe in your data?",
			"How do your results relate to the scientific concepts discussed in class?",
			"What sources of error might have affected your results?",
		},
		Conclusion: "Write a conclusion summarizing your findings and how they relate to the scientific concepts of this topic.",
		Extension:  "Design a follow-up experiment that would further explore this topic.",
	}
}

func (a *ScienceAgent) AnalyzePerformance(studentID string, results ActivityResults) Feedback {
	feedback := a.core.AnalyzePerformance(studentID, results)
	switch ContentType(feedback.ActivityType) {
	case Laboratory, Project:
		feedback.Skills = &SkillRubric{
			Name: "scientific_thinking",
			Scores: map[string]int{
				"hypothesis_formation": 4,
				"experimental_design":  3,
				"data_analysis":        4,
				"conclusion_drawing":   3,
			},
			Overall: 3.5,
			Summary: "You show good skills in hypothesis formation and data analysis. Work on improving your experimental design and conclusion drawing.",
		}
	}
	return feedback
}

var scienceProfile = &profile{
	subject: "Science",
	topics: map[int][]string{
		1:  {"Plants and Animals", "Weather", "The Five Senses", "Earth and Space"},
		2:  {"Life Cycles", "States of Matter", "Habitats", "Simple Machines"},
		3:  {"Animal Adaptations", "Forces and Motion", "Solar System", "Ecosystems"},
		4:  {"Energy", "Human Body Systems", "Earth's Processes", "Classification"},
		5:  {"Matter and Mixtures", "Ecosystems", "Weather and Climate", "Space Exploration"},
		6:  {"Cells", "Forces and Motion", "Earth's Structure", "Energy Transformations"},
		7:  {"Human Body Systems", "Chemical Reactions", "Weather and Climate", "Ecology"},
		8:  {"Genetics", "Chemistry Fundamentals", "Earth's History", "Waves and Energy"},
		9:  {"Biology: Cells and Systems", "Chemistry: Atomic Structure", "Physics: Motion and Forces", "Earth Science: Geology"},
		10: {"Biology: Genetics and Evolution", "Chemistry: Chemical Reactions", "Physics: Energy", "Environmental Science"},
		11: {"Biology: Physiology", "Chemistry: Organic Chemistry", "Physics: Electricity and Magnetism", "Earth Science: Climate"},
		12: {"Advanced Biology", "Advanced Chemistry", "Advanced Physics", "Scientific Research Methods"},
	},
	practice: pathStep{
		contentType: Laboratory,
		title:       "%s Laboratory",
		description: "Conduct experiments related to %s",
		minutes:     45,
	},
	integration: pathStep{
		title:       "Grade %d Science Project",
		description: "Apply scientific concepts you've learned in a real-world project",
		minutes:     90,
	},

	lessonIntro: "Welcome to this science lesson on %s. We'll explore key concepts, conduct experiments, and discover real-world applications.",
	lessonObjectives: []string{
		"Understand the fundamental principles of %s",
		"Learn how to apply the scientific method to %s",
		"Connect %s to real-world applications and entrepreneurship",
	},
	lessonSections: func(topic string) []Section {
		return []Section{
			{
				Title:   "Key Concepts",
				Content: fmt.Sprintf("This section covers the key scientific concepts of %s...", topic),
			},
			{
				Title:   "Scientific Method Application",
				Content: fmt.Sprintf("Here's how the scientific method is applied to %s...", topic),
				Steps: []string{
					"1. Ask a question about an observation",
					"2. Form a hypothesis",
					"3. Make a prediction based on the hypothesis",
					"4. Test the prediction",
					"5. Analyze the results and draw conclusions",
				},
			},
			{
				Title:   "Real-World Applications",
				Content: fmt.Sprintf("Here's how %s is applied in real-world situations...", topic),
				Examples: []Example{
					{Prompt: "Medical field application", Solution: "How this concept is used in medicine"},
					{Prompt: "Environmental application", Solution: "How this concept is used in environmental science"},
				},
			},
			{
				Title:    "Entrepreneurship Connection",
				Content:  fmt.Sprintf("Here's how %s can lead to business opportunities...", topic),
				Examples: []Example{{Prompt: "Innovation in renewable energy", Solution: "Application of energy principles"}},
			},
		}
	},
	lessonSummary: "In this lesson, we've covered the fundamentals of %s, its applications, and potential entrepreneurial opportunities.",

	exerciseInstructions: "Practice the following %s problems. Apply scientific thinking and show your work.",
	project: func(topic string) Content {
		return Content{
			Title:       topic + " Project: Scientific Innovation",
			Description: fmt.Sprintf("Apply your knowledge of %s to develop an innovative solution to a real-world problem.", topic),
			Objectives: []string{
				"Apply scientific concepts to a practical challenge",
				"Develop research and experimentation skills",
				"Connect science to entrepreneurship and innovation",
			},
			Scenario: fmt.Sprintf("South Africa faces challenges in areas like water conservation, renewable energy, and healthcare. Use your knowledge of %s to develop a solution to one of these challenges...", topic),
			Tasks: []Task{
				{Description: "Task 1: Identify a problem related to the topic", Deliverable: "Problem statement"},
				{Description: "Task 2: Research existing solutions", Deliverable: "Research summary"},
				{Description: "Task 3: Design your scientific solution", Deliverable: "Solution design"},
				{Description: "Task 4: Create a prototype or model", Deliverable: "Prototype/model"},
				{Description: "Task 5: Test and refine your solution", Deliverable: "Test results"},
				{Description: "Task 6: Develop a business case", Deliverable: "Business plan"},
			},
			Supplies: []Material{
				{Name: "Project guide", Type: "document", URL: "#"},
				{Name: "Scientific method template", Type: "document", URL: "#"},
				{Name: "Business plan template", Type: "document", URL: "#"},
			},
			Rubric: []Criterion{
				{Criterion: "Scientific accuracy", Weight: 25},
				{Criterion: "Innovation and creativity", Weight: 20},
				{Criterion: "Practical application", Weight: 25},
				{Criterion: "Business potential", Weight: 15},
				{Criterion: "Presentation quality", Weight: 15},
			},
		}
	},
	assessment: func() ([]Section, int) {
		return []Section{
			multipleChoiceSection(),
			{
				Title: "Short Answer",
				Questions: []Question{
					{ID: "sa_1", Text: "Sample short answer question 1", CorrectAnswer: "Sample answer 1"},
					{ID: "sa_2", Text: "Sample short answer question 2", CorrectAnswer: "Sample answer 2"},
				},
			},
			{
				Title: "Practical Application",
				Questions: []Question{{
					ID:            "pa_1",
					Text:          "Describe how you would apply the scientific method to solve a real-world problem related to this topic.",
					CorrectAnswer: "Sample answer with scientific method steps",
				}},
			},
		}, 45
	},

	nextSteps: map[string][]string{
		TierExcellent:        {"Explore advanced concepts in this topic", "Consider a related science project"},
		TierGood:             {"Review specific areas of difficulty", "Try additional experiments"},
		TierSatisfactory:     {"Focus on areas of weakness", "Review core scientific concepts"},
		TierNeedsImprovement: {"Revisit fundamental concepts", "Work with simpler experiments first"},
	},

	rules: []keywordRule{
		{
			words:      []string{"scientific", "method", "experiment"},
			answer:     "The scientific method is a process for experimentation used to explore observations and answer questions. It involves making observations, forming a hypothesis, conducting experiments, analyzing data, and drawing conclusions.",
			confidence: 0.9,
		},
		{
			words:      []string{"biology", "cell", "organism"},
			answer:     "Biology is the study of living organisms. Cells are the basic structural and functional units of all living organisms. They contain organelles that perform specific functions to keep the cell alive.",
			confidence: 0.85,
		},
		{
			words:      []string{"chemistry", "element", "compound", "reaction"},
			answer:     "Chemistry is the study of matter, its properties, and the changes it undergoes. Elements are pure substances that cannot be broken down further by chemical means. Compounds are substances made up of two or more elements chemically combined.",
			confidence: 0.85,
		},
		{
			words:      []string{"physics", "force", "motion", "energy"},
			answer:     "Physics is the study of matter, energy, and the interactions between them. Forces cause objects to accelerate, and energy is the capacity to do work or cause change.",
			confidence: 0.85,
		},
		{
			words:      []string{"earth", "geology", "climate"},
			answer:     "Earth science studies the planet's physical characteristics, atmosphere, and surrounding space. It includes geology (study of Earth's structure), meteorology (study of weather), and oceanography (study of oceans).",
			confidence: 0.8,
		},
	},
	businessAnswer: "Science is essential for innovation and developing solutions to real-world problems, which can lead to business opportunities.",
	fallbackAnswer: "I'm not sure about the answer to this specific science question. Could you provide more details or rephrase it?",

	baseResources: func(topic string) []Resource {
		return []Resource{
			{
				Title:       "Khan Academy Science",
				Description: "Free online lessons and exercises on " + topic,
				URL:         "https://www.khanacademy.org/science",
				Type:        "interactive",
				Difficulty:  Beginner,
			},
			{
				Title:       "PhET Interactive Simulations",
				Description: "Interactive science simulations that make learning fun",
				URL:         "https://phet.colorado.edu/",
				Type:        "simulation",
				Difficulty:  Intermediate,
			},
			{
				Title:       "Science and Entrepreneurship",
				Description: "Learn how scientific discoveries lead to business innovations",
				URL:         "#",
				Type:        "course",
				Difficulty:  Intermediate,
			},
		}
	},
	styleResources: map[string]func(string, Difficulty) Resource{
		"visual":      styleResource("Visual Science", "Visual explanations of {topic} with interactive diagrams", "interactive"),
		"auditory":    styleResource("{topic} Explained - Science Podcast", "Audio explanations of {topic} concepts", "audio"),
		"kinesthetic": styleResource("Hands-on {topic} Experiments", "Physical experiments and activities to learn {topic}", "activity"),
	},
	beginnerTitle: "%s Fundamentals",
	localResource: func(topic string, d Difficulty) *Resource {
		return &Resource{
			Title:       topic + " in South African Context",
			Description: fmt.Sprintf("Learn how %s is applied in South African research and industry", topic),
			URL:         "#",
			Type:        "article",
			Difficulty:  d,
		}
	},
	businessResource: func(topic string, d Difficulty) Resource {
		return Resource{
			Title:       "From Science to Startup: " + topic + " Applications",
			Description: fmt.Sprintf("Learn how %s can be applied to create innovative business solutions", topic),
			URL:         "#",
			Type:        "course",
			Difficulty:  d,
			Tags:        []string{"entrepreneurship", "innovation", "application"},
		}
	},
	connections: []namedConnection{
		{key: "Biology", connection: Connection{
			Description:          "Biology knowledge can lead to innovations in healthcare, agriculture, and biotechnology.",
			BusinessApplications: []string{"Developing healthcare solutions", "Creating sustainable agricultural practices", "Biotechnology innovations"},
			StartupIdeas: []string{
				"Develop a mobile health monitoring app",
				"Create sustainable farming solutions for urban areas",
				"Design biodegradable packaging from local materials",
			},
			CaseStudy: "How a South African biotech startup developed drought-resistant crop varieties to help local farmers increase yields by 40%.",
		}},
		{key: "Chemistry", connection: Connection{
			Description:          "Chemistry enables the development of new materials, pharmaceuticals, and sustainable products.",
			BusinessApplications: []string{"Creating eco-friendly products", "Developing new materials", "Improving manufacturing processes"},
			StartupIdeas: []string{
				"Develop affordable water purification solutions",
				"Create natural cosmetics using indigenous plants",
				"Design sustainable cleaning products",
			},
			CaseStudy: "How a Cape Town startup used green chemistry to develop affordable water filtration systems for rural communities.",
		}},
		{key: "Physics", connection: Connection{
			Description:          "Physics knowledge can lead to innovations in energy, transportation, and technology.",
			BusinessApplications: []string{"Renewable energy solutions", "Efficient transportation systems", "Sensor and measurement technologies"},
			StartupIdeas: []string{
				"Create affordable solar energy solutions for off-grid communities",
				"Develop energy-efficient transportation for urban areas",
				"Design low-cost scientific instruments for schools",
			},
			CaseStudy: "How a Johannesburg-based startup applied physics principles to develop low-cost solar water heaters, creating jobs and reducing energy costs.",
		}},
		{key: "Environmental Science", connection: Connection{
			Description:          "Environmental science knowledge can lead to solutions for sustainability, conservation, and resource management.",
			BusinessApplications: []string{"Waste management solutions", "Conservation technologies", "Sustainable resource management"},
			StartupIdeas: []string{
				"Create a waste recycling business",
				"Develop eco-tourism experiences",
				"Design water conservation systems for homes and businesses",
			},
			CaseStudy: "How a Durban entrepreneur turned plastic waste into building materials, addressing both environmental issues and housing needs.",
		}},
	},
	defaultConnection: Connection{
		Description:          "Scientific knowledge is the foundation for innovation and solving real-world problems, which can lead to business opportunities.",
		BusinessApplications: []string{"Developing innovative products", "Creating efficient processes", "Solving community challenges"},
		StartupIdeas: []string{
			"Identify a local problem that can be solved with scientific knowledge",
			"Develop educational resources that make science accessible",
		},
		CaseStudy: "How South African entrepreneurs use scientific thinking to build innovative solutions to local challenges.",
	},
	gradeContexts: [3]string{
		"Even at this early stage, understanding science helps you identify problems that could be solved with simple innovations.",
		"At this grade level, you can start applying scientific knowledge to develop solutions for community challenges.",
		"With these advanced scientific skills, you're equipped to develop innovative solutions that could form the basis of a startup.",
	},
}
