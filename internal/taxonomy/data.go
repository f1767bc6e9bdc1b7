package taxonomy

// DefaultVersion identifies the built-in catalog revision. Bump when
// the data below changes so cached match results can be invalidated.
const DefaultVersion = "2025.2"

// Canonical subcategory names. The scorer maps these to skill weights.
const (
	SubLanguages  = "programming_languages"
	SubFrameworks = "frameworks"
	SubDatabases  = "databases"
	SubCloud      = "cloud"
	SubTools      = "tools"
	SubOther      = "other"
)

// DefaultProfession is returned by the classifier when no signal is
// found in the resume at all. A deliberate fallback, not an error.
const DefaultProfession = "technology"

// Default returns the built-in taxonomy. The returned value must be
// treated as immutable; every component shares it.
func Default() *Taxonomy {
	return &Taxonomy{
		Version:     DefaultVersion,
		Professions: defaultProfessions(),
		Stacks:      defaultStacks(),
	}
}

func defaultProfessions() []Profession {
	return []Profession{
		{
			Name:          "technology",
			SearchTerms:   []string{"software engineer", "software developer", "programmer"},
			TitlePatterns: []string{"engineer", "developer", "programmer", "architect", "devops", "sre", "data scientist", "analyst"},
			Subcategories: []Subcategory{
				{Name: SubLanguages, Skills: []string{
					"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#",
					"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "SQL",
				}},
				{Name: SubFrameworks, Skills: []string{
					"Django", "Flask", "FastAPI", "Spring", "Spring Boot", "React",
					"Angular", "Vue", "Node.js", "Express", "Rails", "Laravel",
					".NET", "Gin", "Next.js",
				}},
				{Name: SubDatabases, Skills: []string{
					"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
					"SQLite", "Cassandra", "DynamoDB", "Oracle",
				}},
				{Name: SubCloud, Skills: []string{
					"AWS", "Azure", "GCP", "Heroku", "DigitalOcean",
				}},
				{Name: SubTools, Skills: []string{
					"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
					"Git", "GitHub Actions", "GitLab CI", "Linux", "Nginx",
					"RabbitMQ", "Kafka", "GraphQL", "gRPC",
				}},
				{Name: SubOther, Skills: []string{
					"Agile", "Scrum", "Microservices", "REST API", "CI/CD",
					"Machine Learning", "Data Analysis", "TDD",
				}},
			},
		},
		{
			Name:          "healthcare",
			SearchTerms:   []string{"registered nurse", "medical assistant", "healthcare specialist"},
			TitlePatterns: []string{"nurse", "physician", "doctor", "therapist", "paramedic", "pharmacist", "medical"},
			Subcategories: []Subcategory{
				{Name: "clinical", Skills: []string{
					"Patient Care", "Phlebotomy", "Medication Administration",
					"Vital Signs", "IV Therapy", "Wound Care", "Triage", "CPR",
				}},
				{Name: "administrative", Skills: []string{
					"Medical Records", "HIPAA", "Medical Billing", "ICD-10",
					"Electronic Health Records", "Patient Scheduling",
				}},
			},
		},
		{
			Name:          "finance",
			SearchTerms:   []string{"financial analyst", "accountant", "finance specialist"},
			TitlePatterns: []string{"accountant", "auditor", "controller", "bookkeeper", "underwriter", "treasurer"},
			Subcategories: []Subcategory{
				{Name: "accounting", Skills: []string{
					"Financial Reporting", "GAAP", "Accounts Payable",
					"Accounts Receivable", "Reconciliation", "Auditing", "Payroll",
					"Tax Preparation", "QuickBooks",
				}},
				{Name: "analysis", Skills: []string{
					"Financial Modeling", "Forecasting", "Budgeting", "Valuation",
					"Risk Management", "Excel", "Bloomberg Terminal",
				}},
			},
		},
		{
			Name:          "legal",
			SearchTerms:   []string{"attorney", "paralegal", "legal counsel"},
			TitlePatterns: []string{"attorney", "lawyer", "paralegal", "counsel", "solicitor"},
			Subcategories: []Subcategory{
				{Name: "practice", Skills: []string{
					"Legal Research", "Litigation", "Contract Drafting",
					"Due Diligence", "Depositions", "Compliance", "Legal Writing",
					"Westlaw", "LexisNexis",
				}},
			},
		},
		{
			Name:          "education",
			SearchTerms:   []string{"teacher", "instructor", "education specialist"},
			TitlePatterns: []string{"teacher", "professor", "instructor", "tutor", "principal", "educator"},
			Subcategories: []Subcategory{
				{Name: "teaching", Skills: []string{
					"Curriculum Development", "Lesson Planning",
					"Classroom Management", "Student Assessment",
					"Special Education", "ESL", "Differentiated Instruction",
				}},
			},
		},
		{
			Name:          "marketing",
			SearchTerms:   []string{"marketing manager", "marketing specialist", "digital marketer"},
			TitlePatterns: []string{"marketer", "marketing", "seo", "content strategist", "brand manager"},
			Subcategories: []Subcategory{
				{Name: "digital", Skills: []string{
					"SEO", "SEM", "Google Analytics", "Content Marketing",
					"Email Marketing", "Social Media Marketing", "Copywriting",
					"Google Ads", "A/B Testing", "CRM",
				}},
			},
		},
	}
}

func defaultStacks() []StackTemplate {
	return []StackTemplate{
		{
			Name:           "Python Backend",
			Profession:     "technology",
			Keywords:       []string{"python backend", "backend developer", "python developer", "api development"},
			RequiredSkills: []string{"Python", "Django", "PostgreSQL"},
			BonusSkills:    []string{"Flask", "FastAPI", "Redis", "Docker", "AWS", "Celery"},
		},
		{
			Name:           "Go Backend",
			Profession:     "technology",
			Keywords:       []string{"go backend", "golang developer", "go developer", "microservices"},
			RequiredSkills: []string{"Go", "PostgreSQL", "Docker"},
			BonusSkills:    []string{"Kubernetes", "gRPC", "Redis", "Kafka", "AWS"},
		},
		{
			Name:           "Java Backend",
			Profession:     "technology",
			Keywords:       []string{"java backend", "java developer", "spring developer"},
			RequiredSkills: []string{"Java", "Spring", "MySQL"},
			BonusSkills:    []string{"Spring Boot", "Hibernate", "Kafka", "Docker", "AWS"},
		},
		{
			Name:           "React Frontend",
			Profession:     "technology",
			Keywords:       []string{"frontend developer", "react developer", "ui developer", "front-end"},
			RequiredSkills: []string{"JavaScript", "React", "TypeScript"},
			BonusSkills:    []string{"Next.js", "Redux", "GraphQL", "Node.js"},
		},
		{
			Name:           "Full Stack JavaScript",
			Profession:     "technology",
			Keywords:       []string{"full stack", "fullstack", "full-stack developer", "mern"},
			RequiredSkills: []string{"JavaScript", "React", "Node.js", "MongoDB"},
			BonusSkills:    []string{"TypeScript", "Express", "Redis", "Docker"},
		},
		{
			Name:           "DevOps",
			Profession:     "technology",
			Keywords:       []string{"devops", "site reliability", "sre", "infrastructure engineer", "platform engineer"},
			RequiredSkills: []string{"Docker", "Kubernetes", "Terraform", "Linux"},
			BonusSkills:    []string{"AWS", "Ansible", "Jenkins", "GitHub Actions", "Python"},
		},
		{
			Name:           "Data Science",
			Profession:     "technology",
			Keywords:       []string{"data scientist", "machine learning", "ml engineer", "data science"},
			RequiredSkills: []string{"Python", "Machine Learning", "SQL"},
			BonusSkills:    []string{"R", "Data Analysis", "AWS", "Docker"},
		},
		{
			Name:           "Mobile",
			Profession:     "technology",
			Keywords:       []string{"mobile developer", "ios developer", "android developer", "mobile app"},
			RequiredSkills: []string{"Swift", "Kotlin"},
			BonusSkills:    []string{"React", "Java", "REST API"},
		},
	}
}
