package bullets

// IndustrySkills pairs an industry with common skills worth generating
// bullets for.
type IndustrySkills struct {
	Industry string   `json:"industry"`
	Skills   []string `json:"skills"`
}

// SkillSuggestions returns common skills by industry, for users who do
// not know where to start.
func SkillSuggestions() []IndustrySkills {
	return []IndustrySkills{
		{
			Industry: "Software Development",
			Skills:   []string{"Python programming", "Web development", "Database management", "API development", "Version control", "Testing and debugging"},
		},
		{
			Industry: "Data Science",
			Skills:   []string{"Data analysis", "Machine learning", "Statistical modeling", "Data visualization", "SQL programming", "Predictive analytics"},
		},
		{
			Industry: "Marketing",
			Skills:   []string{"Digital marketing", "Social media management", "Content creation", "SEO optimization", "Email marketing", "Campaign management"},
		},
		{
			Industry: "Sales",
			Skills:   []string{"Customer relationship management", "Lead generation", "Sales presentations", "Negotiation", "Market research", "Account management"},
		},
		{
			Industry: "Project Management",
			Skills:   []string{"Team leadership", "Agile methodology", "Risk management", "Budget planning", "Stakeholder communication", "Resource allocation"},
		},
	}
}
