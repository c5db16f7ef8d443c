package catalog

import "github.com/arkan-dev/eduverse-api/internal/models"

var baselineCourses = []models.Course{
	{
		ID:           "quiz_1",
		Title:        "General Knowledge Master",
		Description:  "Test your knowledge about the world, history, and current events in this ultimate quiz challenge.",
		LessonsCount: 3,
		Duration:     "15m",
		Category:     models.CategoryQuiz,
		ImageColor:   "bg-indigo-500",
		Lessons: []models.Lesson{
			{
				ID: "gk_1", Title: "Level 1: Geography", Duration: "5:00",
				Quiz: []models.QuizQuestion{
					{ID: "q1", Question: "Which is the largest continent by land area?", Options: []string{"Africa", "Asia", "North America", "Europe"}, CorrectAnswer: 1},
					{ID: "q2", Question: "What is the capital city of Australia?", Options: []string{"Sydney", "Melbourne", "Canberra", "Brisbane"}, CorrectAnswer: 2},
					{ID: "q3", Question: "Which river is the longest in the world?", Options: []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, CorrectAnswer: 1},
					{ID: "q4", Question: "Which country is known as the Land of the Rising Sun?", Options: []string{"China", "South Korea", "Japan", "Thailand"}, CorrectAnswer: 2},
				},
			},
			{
				ID: "gk_2", Title: "Level 2: History", Duration: "5:00", IsLocked: true,
				Quiz: []models.QuizQuestion{
					{ID: "q1", Question: "Who was the first President of the United States?", Options: []string{"Thomas Jefferson", "Abraham Lincoln", "George Washington", "John Adams"}, CorrectAnswer: 2},
					{ID: "q2", Question: "In which year did World War II end?", Options: []string{"1942", "1945", "1950", "1939"}, CorrectAnswer: 1},
					{ID: "q3", Question: "Who discovered America in 1492?", Options: []string{"Christopher Columbus", "Vasco da Gama", "Ferdinand Magellan", "Marco Polo"}, CorrectAnswer: 0},
				},
			},
			{
				ID: "gk_3", Title: "Level 3: Sports & Culture", Duration: "5:00", IsLocked: true,
				Quiz: []models.QuizQuestion{
					{ID: "q1", Question: "Which country won the 2022 FIFA World Cup?", Options: []string{"France", "Brazil", "Argentina", "Germany"}, CorrectAnswer: 2},
					{ID: "q2", Question: "Who wrote \"Romeo and Juliet\"?", Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"}, CorrectAnswer: 1},
				},
			},
		},
	},
	{
		ID:           "quiz_2",
		Title:        "Science & Logic Whiz",
		Description:  "Sharpen your mind with these science trivia and logic puzzles.",
		LessonsCount: 2,
		Duration:     "10m",
		Category:     models.CategoryQuiz,
		ImageColor:   "bg-emerald-600",
		Lessons: []models.Lesson{
			{
				ID: "sci_1", Title: "Level 1: Basic Science", Duration: "5:00",
				Quiz: []models.QuizQuestion{
					{ID: "q1", Question: "What is the chemical symbol for Gold?", Options: []string{"Ag", "Au", "Fe", "Pb"}, CorrectAnswer: 1},
					{ID: "q2", Question: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: 1},
					{ID: "q3", Question: "What is the powerhouse of the cell?", Options: []string{"Nucleus", "Mitochondria", "Ribosome", "Cytoplasm"}, CorrectAnswer: 1},
				},
			},
			{
				ID: "sci_2", Title: "Level 2: Logic & Math", Duration: "5:00", IsLocked: true,
				Quiz: []models.QuizQuestion{
					{ID: "q1", Question: "What is the square root of 144?", Options: []string{"10", "11", "12", "14"}, CorrectAnswer: 2},
					{ID: "q2", Question: "If you have a 3 gallon jug and a 5 gallon jug, how can you measure exactly 4 gallons?", Options: []string{"Fill 3, pour into 5", "Fill 5, pour into 3, empty 3, pour remaining 2 into 3, fill 5, pour into 3", "Impossible", "Guess"}, CorrectAnswer: 1},
				},
			},
		},
	},
	{
		ID:           "k12_1",
		Title:        "Mathematics - Class 10 (Real Numbers & Algebra)",
		Description:  "Master the fundamentals of Real Numbers, Polynomials, and Quadratic Equations with visual problem-solving techniques.",
		LessonsCount: 45,
		Duration:     "32h",
		Category:     models.CategoryAcademic,
		ImageColor:   "bg-blue-500",
		Lessons: []models.Lesson{
			{
				ID: "l1", Title: "Introduction to Real Numbers", Duration: "10:05", VideoURL: sampleVideo1,
				Quiz: []models.QuizQuestion{
					{ID: "q1", Question: "Which of the following is NOT a real number?", Options: []string{"0", "-5", "Square root of -1", "Pi"}, CorrectAnswer: 2},
					{ID: "q2", Question: "Euclid's Division Lemma states that for any two positive integers a and b, there exist unique integers q and r such that:", Options: []string{"a = bq + r, 0 <= r < b", "a = bq - r, 0 <= r < b", "a = bq + r, 0 < r < b", "a = bq + r, r > b"}, CorrectAnswer: 0},
				},
			},
			{ID: "l2", Title: "Euclid's Division Lemma", Duration: "15:30", VideoURL: sampleVideo2},
			{ID: "l3", Title: "Fundamental Theorem of Arithmetic", Duration: "12:45", VideoURL: sampleVideo3},
			{ID: "l4", Title: "Revisiting Irrational Numbers", Duration: "18:20", VideoURL: sampleVideo1, IsLocked: true},
		},
	},
	{
		ID:           "k12_2",
		Title:        "Physics - Class 12 (Electrostatics & Optics)",
		LessonsCount: 60,
		Duration:     "45h",
		Category:     models.CategoryAcademic,
		ImageColor:   "bg-cyan-600",
		Lessons: []models.Lesson{
			{ID: "p1", Title: "Electric Charges and Fields", Duration: "14:20", VideoURL: sampleVideo2},
			{ID: "p2", Title: "Electrostatic Potential", Duration: "20:10", VideoURL: sampleVideo3},
			{ID: "p3", Title: "Capacitance and Dielectrics", Duration: "16:05", VideoURL: sampleVideo1, IsLocked: true},
			{ID: "p4", Title: "Magnetism and Matter", Duration: "18:30", VideoURL: sampleVideo2, IsLocked: true},
			{ID: "p5", Title: "Electromagnetic Induction", Duration: "22:15", VideoURL: sampleVideo3, IsLocked: true},
			{ID: "p6", Title: "Ray Optics and Optical Instruments", Duration: "25:00", VideoURL: sampleVideo1, IsLocked: true},
		},
	},
	{
		ID:           "k12_3",
		Title:        "Chemistry - Class 11 (Organic Fundamentals)",
		LessonsCount: 50,
		Duration:     "38h",
		Category:     models.CategoryAcademic,
		ImageColor:   "bg-teal-500",
		Lessons: []models.Lesson{
			{ID: "c1", Title: "Introduction to Organic Chemistry", Duration: "12:30", VideoURL: sampleVideo2},
			{ID: "c2", Title: "IUPAC Nomenclature", Duration: "18:45", VideoURL: sampleVideo3},
			{ID: "c3", Title: "Isomerism: Structural & Stereo", Duration: "15:20", VideoURL: sampleVideo1},
			{ID: "c4", Title: "Reaction Mechanisms Basics", Duration: "20:10", VideoURL: sampleVideo2, IsLocked: true},
		},
	},
	{
		ID:           "k12_4",
		Title:        "Biology - Class 12 (Genetics & Evolution)",
		LessonsCount: 55,
		Duration:     "40h",
		Category:     models.CategoryAcademic,
		ImageColor:   "bg-emerald-500",
	},
	{
		ID:           "high_1",
		Title:        "Engineering Mathematics I (Matrices & Calculus)",
		LessonsCount: 80,
		Duration:     "60h",
		Category:     models.CategoryHigherEd,
		ImageColor:   "bg-indigo-600",
		Lessons: []models.Lesson{
			{ID: "h1", Title: "Matrices: Rank & System of Equations", Duration: "25:00", VideoURL: sampleVideo3},
			{ID: "h2", Title: "Eigenvalues and Eigenvectors", Duration: "30:15", VideoURL: sampleVideo1, IsLocked: true},
		},
	},
	{
		ID:           "high_2",
		Title:        "Data Structures & Algorithms (B.Tech CS)",
		LessonsCount: 120,
		Duration:     "90h",
		Category:     models.CategoryHigherEd,
		ImageColor:   "bg-violet-600",
	},
	{
		ID:           "high_3",
		Title:        "Human Anatomy - Year 1 (MBBS)",
		LessonsCount: 150,
		Duration:     "110h",
		Category:     models.CategoryHigherEd,
		ImageColor:   "bg-rose-600",
	},
	{
		ID:           "high_4",
		Title:        "Financial Accounting (B.Com/MBA)",
		LessonsCount: 70,
		Duration:     "50h",
		Category:     models.CategoryHigherEd,
		ImageColor:   "bg-blue-700",
	},
	{
		ID:           "tech_1",
		Title:        "Generative AI & LLM Engineering",
		Description:  "Learn how to build Large Language Model applications using modern frameworks and prompt engineering.",
		LessonsCount: 40,
		Duration:     "35h",
		Category:     models.CategorySkills,
		ImageColor:   "bg-fuchsia-600",
		Lessons: []models.Lesson{
			{ID: "t1", Title: "Introduction to GenAI", Duration: "08:45", VideoURL: sampleVideo1},
			{ID: "t2", Title: "Prompt Engineering Basics", Duration: "12:30", VideoURL: sampleVideo2},
			{ID: "t3", Title: "Fine-tuning LLMs", Duration: "22:15", VideoURL: sampleVideo3, IsLocked: true},
		},
	},
	{
		ID:           "tech_2",
		Title:        "Electric Vehicle (EV) Battery Systems",
		LessonsCount: 35,
		Duration:     "28h",
		Category:     models.CategorySkills,
		ImageColor:   "bg-green-600",
	},
	{
		ID:           "tech_3",
		Title:        "Full Stack Web Dev (MERN Stack)",
		LessonsCount: 90,
		Duration:     "75h",
		Category:     models.CategorySkills,
		ImageColor:   "bg-cyan-500",
	},
	{
		ID:           "tech_4",
		Title:        "Cloud Solutions Architect (AWS)",
		LessonsCount: 50,
		Duration:     "40h",
		Category:     models.CategorySkills,
		ImageColor:   "bg-orange-500",
	},
	{
		ID:           "bus_1",
		Title:        "Digital Marketing & SEO Strategy",
		LessonsCount: 45,
		Duration:     "30h",
		Category:     models.CategoryBusiness,
		ImageColor:   "bg-purple-500",
	},
	{
		ID:           "bus_2",
		Title:        "Startup Zero to One: Entrepreneurship",
		LessonsCount: 25,
		Duration:     "20h",
		Category:     models.CategoryBusiness,
		ImageColor:   "bg-pink-600",
	},
	{
		ID:           "bus_3",
		Title:        "Corporate Finance & Valuation",
		LessonsCount: 30,
		Duration:     "25h",
		Category:     models.CategoryBusiness,
		ImageColor:   "bg-slate-700",
	},
	{
		ID:           "adv_1",
		Title:        "Advanced Quantum Computing",
		Description:  "Deep dive into Qubits, Quantum Gates, and Shor's Algorithm.",
		LessonsCount: 60,
		Duration:     "50h",
		Category:     models.CategoryAdvanced,
		ImageColor:   "bg-slate-900",
		Lessons: []models.Lesson{
			{ID: "q1", Title: "Introduction to Qubits", Duration: "25:00", VideoURL: sampleVideo3},
			{ID: "q2", Title: "Superposition & Entanglement", Duration: "35:10", VideoURL: sampleVideo1, IsLocked: true},
			{ID: "q3", Title: "Shor's Algorithm Explained", Duration: "40:20", VideoURL: sampleVideo2, IsLocked: true},
			{ID: "q4", Title: "Quantum Error Correction (Premium)", Duration: "45:30", VideoURL: sampleVideo3, IsLocked: true},
		},
	},
	{
		ID:           "adv_2",
		Title:        "Strategic Global Management",
		Description:  "Executive leadership strategies for multinational corporations.",
		LessonsCount: 40,
		Duration:     "35h",
		Category:     models.CategoryAdvanced,
		ImageColor:   "bg-amber-600",
		Lessons: []models.Lesson{
			{ID: "s1", Title: "Global Market Entry Strategies", Duration: "28:15", VideoURL: sampleVideo2},
			{ID: "s2", Title: "Cross-Cultural Leadership", Duration: "32:00", VideoURL: sampleVideo3, IsLocked: true},
		},
	},
	{
		ID:           "adv_3",
		Title:        "AI System Architecture",
		Description:  "Designing scalable AI infrastructure for enterprise applications.",
		LessonsCount: 55,
		Duration:     "45h",
		Category:     models.CategoryAdvanced,
		ImageColor:   "bg-indigo-900",
		Lessons: []models.Lesson{
			{ID: "a1", Title: "Distributed Training Patterns", Duration: "45:00", VideoURL: sampleVideo1},
			{ID: "a2", Title: "Inference Optimization", Duration: "38:30", VideoURL: sampleVideo2, IsLocked: true},
		},
	},
	{
		ID:           "adv_4",
		Title:        "Esports Mastery: BGMI",
		Description:  "Professional strategies for Battlegrounds Mobile India, including map rotation and recoil control.",
		LessonsCount: 12,
		Duration:     "10h",
		Category:     models.CategoryAdvanced,
		ImageColor:   "bg-orange-700",
		Lessons: []models.Lesson{
			{ID: "b1", Title: "Introduction to Competitive BGMI", Duration: "10:00", VideoURL: sampleVideo1},
			{ID: "b2", Title: "Advanced Zone Rotations", Duration: "15:30", VideoURL: sampleVideo2, IsLocked: true},
			{ID: "b3", Title: "Squad Synergy & Comms", Duration: "12:45", VideoURL: sampleVideo3, IsLocked: true},
		},
	},
}

var baselineCertificates = []models.Certificate{
	{ID: "cert1", Title: "Python for Data Science", IssueDate: "Jan 15, 2025"},
	{ID: "cert2", Title: "Digital Marketing Fundamentals", IssueDate: "Dec 20, 2024"},
	{ID: "cert3", Title: "Introduction to Cloud Computing", IssueDate: "Nov 05, 2024"},
}

var baselineInternships = []models.Internship{
	{
		ID: "int1", Title: "React Native Developer", Company: "AppInnovate Labs",
		Mentor: "Sarah Chen (Senior Dev)", Status: models.InternshipActive,
		Week: 3, TotalWeeks: 8,
		Description: "Build cross-platform mobile applications for fintech startups.",
		Location:    "Bangalore", Type: "Remote", Stipend: "₹15,000/mo",
		Tags:       []string{"React Native", "Mobile", "Frontend"},
		ListingURL: "https://www.linkedin.com/jobs/search/?keywords=React+Native+Developer",
	},
	{
		ID: "int2", Title: "AI/ML Research Intern", Company: "Neural Nexus",
		Mentor: "Dr. A. Patel", Status: models.InternshipAvailable,
		TotalWeeks: 12, SpotsLeft: 3,
		Description: "Work on cutting-edge NLP models and fine-tune LLMs for healthcare data.",
		Location:    "Mumbai", Type: "Hybrid", Stipend: "₹25,000/mo",
		Tags:       []string{"Python", "PyTorch", "LLMs"},
		ListingURL: "https://www.linkedin.com/jobs/search/?keywords=AI+ML+Intern",
	},
	{
		ID: "int3", Title: "EV Battery Systems Engineer", Company: "Future Motors",
		Mentor: "Mike Ross", Status: models.InternshipAvailable,
		TotalWeeks: 10, SpotsLeft: 7,
		Description: "Design and simulate thermal management systems for EV battery packs.",
		Location:    "Pune", Type: "On-site", Stipend: "₹20,000/mo",
		Tags:       []string{"EV", "Thermal Engineering", "Simulink"},
		ListingURL: "https://www.linkedin.com/jobs/search/?keywords=EV+Battery+Engineer",
	},
	{
		ID: "int4", Title: "Social Media Strategist", Company: "GrowthHack Agency",
		Mentor: "Jessica Pearson", Status: models.InternshipAvailable,
		TotalWeeks: 6, SpotsLeft: 12,
		Description: "Create viral content strategies and manage campaigns for D2C brands.",
		Location:    "Remote", Type: "Remote", Stipend: "Performance Based",
		Tags:       []string{"Marketing", "Content", "Social Media"},
		ListingURL: "https://www.linkedin.com/jobs/search/?keywords=Social+Media+Strategist",
	},
	{
		ID: "int5", Title: "Financial Analyst Intern", Company: "Global FinCorp",
		Mentor: "Harvey Specter", Status: models.InternshipAvailable,
		TotalWeeks: 8, SpotsLeft: 5,
		Description: "Analyze market trends and assist in portfolio management for HNI clients.",
		Location:    "Gurgaon", Type: "Hybrid", Stipend: "₹18,000/mo",
		Tags:       []string{"Finance", "Excel", "Valuation"},
		ListingURL: "https://www.linkedin.com/jobs/search/?keywords=Financial+Analyst+Intern",
	},
	{
		ID: "int6", Title: "Full Stack Web Developer", Company: "TechFlow Systems",
		Mentor: "David Miller", Status: models.InternshipAvailable,
		TotalWeeks: 12, SpotsLeft: 4,
		Description: "Develop scalable web applications using the MERN stack.",
		Location:    "Remote", Type: "Remote", Stipend: "₹12,000/mo",
		Tags:       []string{"MERN", "Web", "Backend"},
		ListingURL: "https://www.linkedin.com/jobs/search/?keywords=Full+Stack+Web+Developer",
	},
}
