package internal

import "strings"

// CandidateProfile is the form input for a single interview submission.
// It lives for one request and is never written anywhere.
type CandidateProfile struct {
	Name            string   `json:"name" form:"name"`
	Email           string   `json:"email" form:"email"`
	Phone           string   `json:"phone" form:"phone"`
	YearsExperience int      `json:"years_experience"`
	DesiredPosition string   `json:"desired_position" form:"desired_position"`
	TechStack       []string `json:"tech_stack"`
	Language        string   `json:"language" form:"language"`
}

// ParseTechStack splits comma-separated input into trimmed, non-empty entries,
// keeping their original order.
func ParseTechStack(raw string) []string {
	var stack []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			stack = append(stack, item)
		}
	}
	return stack
}

// TechStackText renders the stack the way it is embedded in prompts.
func (p CandidateProfile) TechStackText() string {
	return strings.Join(p.TechStack, ", ")
}
