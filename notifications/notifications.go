package notifications

type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceStudents Audience = "students"
	AudienceAdmins   Audience = "admins"
	AudienceHostel   Audience = "hostel" // residents of TargetID
)

type Notification struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Type        string   `json:"type,omitempty"`
	Audience    Audience `json:"audience,omitempty"`
	TargetID    string   `json:"target_id,omitempty"`
	IsRead      bool     `json:"is_read"`
	Published   bool     `json:"is_published"`
	PublishedAt string   `json:"published_at,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

type Input struct {
	Title    string   `json:"title,omitempty"`
	Message  string   `json:"message,omitempty"`
	Type     string   `json:"type,omitempty"`
	Audience Audience `json:"audience,omitempty"`
	TargetID string   `json:"target_id,omitempty"`
}
