package mailtemplates

// Template is an email the backend sends on application and payment events.
// Subject and Body use {{variable}} placeholders filled in by the backend.
type Template struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug"` // event key, e.g. application_approved
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	Variables []string `json:"variables,omitempty"`
	IsActive  bool     `json:"is_active"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

type Input struct {
	Name      string   `json:"name,omitempty"`
	Slug      string   `json:"slug,omitempty"`
	Subject   string   `json:"subject,omitempty"`
	Body      string   `json:"body,omitempty"`
	Variables []string `json:"variables,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

// Preview is a template rendered with sample values.
type Preview struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text,omitempty"`
}
