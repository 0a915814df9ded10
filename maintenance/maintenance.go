package maintenance

type Status string

const (
	StatusOpen       Status = "open"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Request is a maintenance ticket raised for a room or a shared facility.
type Request struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"` // plumbing, electrical, furniture...
	Priority    Priority `json:"priority,omitempty"`
	Status      Status   `json:"status"`
	HostelID    string   `json:"hostel_id,omitempty"`
	RoomID      string   `json:"room_id,omitempty"`
	ReportedBy  string   `json:"reported_by,omitempty"`
	AssignedTo  string   `json:"assigned_to,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	ResolvedAt  string   `json:"resolved_at,omitempty"`
}

type Input struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	HostelID    string   `json:"hostel_id,omitempty"`
	RoomID      string   `json:"room_id,omitempty"`
}
