package lexicon

// defaultLabels is the built-in skill vocabulary. Grouped by area for
// maintainability; order defines vector axis order, so append new skills at
// the end of their group rather than reordering.
var defaultLabels = []string{
	// Programming languages
	"Python", "Java", "C++", "C#", "Go", "Rust", "Kotlin", "Swift",
	"JavaScript", "TypeScript", "Ruby", "PHP", "R", "Shell", "Perl", "Golang",

	// Frontend
	"Frontend", "HTML", "CSS", "React", "Vue.js", "Angular", "jQuery", "Bootstrap",
	"Tailwind CSS", "Next.js", "SASS", "Webpack", "React Native", "Flutter",

	// Backend / frameworks
	"Backend", "Node.js", "Express.js", "Django", "Flask", "Spring Boot", "ASP.NET", "FastAPI",
	"Koa", "NestJS", "Laravel", "Ruby on Rails", "Langchain", "LangGraph", "AutoGen",

	// Databases and data analysis
	"Database", "SQL", "MySQL", "PostgreSQL", "MongoDB", "SQLite", "Redis", "Oracle",
	"Pandas", "NumPy", "Matplotlib", "Seaborn", "Excel", "Power BI",
	"Tableau", "ETL", "Data Warehousing", "BigQuery", "Firebase", "Data Structure", "Algorithm",

	// Cloud and DevOps
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform",
	"CI/CD", "Jenkins", "GitLab CI", "Ansible", "Prometheus", "Grafana",
	"Linux", "Bash", "Nginx", "Apache", "Vercel", "Render",

	// Security and testing
	"Penetration Testing", "OWASP", "Burp Suite", "Wireshark", "Data Security", "Authentication",
	"Unit Testing", "Integration Testing", "Selenium", "Jest", "Cypress",
	"Postman", "Test Automation", "Heuristic Evaluation", "A/B Testing", "Cryptography", "Blockchain",

	// Tooling and version control
	"Git", "GitHub", "GitLab", "Bitbucket", "JIRA", "VS Code",
	"IntelliJ IDEA", "Eclipse", "Figma", "Notion", "Slack", "Wireframe",

	// ERP / business systems
	"ERP", "SAP", "Oracle ERP", "Odoo", "Salesforce", "CRM", "PowerApps", "SharePoint", "Zoho",

	// Visualization and UI/UX
	"D3.js", "Chart.js", "UX", "UI", "Design Critique",
	"Information Hierarchy", "Declarative UI", "Human–Computer Interaction", "Software Development",

	// Auth and APIs
	"JWT", "Firebase Auth", "PayTo API",

	// Games / VR
	"Unity", "Unity3D", "OpenXR", "Oculus SDK", "SteamVR",
	"Graphics Programming", "Shader", "Rendering Pipeline",

	// LLMs / AI
	"LLMs", "Agent Framework", "Feedback Loop Design", "Behavioral Nudges",
	"Natural Language Processing", "AI", "Machine Learning", "Temporal Modeling",

	// Education and content design
	"Curriculum Design", "Storytelling", "Narrative Structure", "Learning Design", "AQF", "TEQSA",

	// Collaboration and agile delivery
	"Agile", "Sprint-based Environment", "Team Collaboration", "Peer Review",
}

// Default returns the built-in skill lexicon.
func Default() *Lexicon {
	return New(defaultLabels...)
}
