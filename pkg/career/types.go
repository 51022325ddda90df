package career

// Data represents the complete career data document.
type Data struct {
	Profile     Profile      `json:"profile"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
}

// Experience represents a single work-history record.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	JobType     string `json:"job_type"`
	Description string `json:"description"`
}

// Project represents a portfolio project record.
type Project struct {
	Name        string `json:"name"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description"`
}

// Profile represents the candidate's header information.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`
}
