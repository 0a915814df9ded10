package roomselection

type Status string

const (
	StatusDraft     Status = "draft"
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusPublished Status = "published" // results visible to students
)

// Session is a window in which eligible students pick their own rooms.
type Session struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AcademicSession string   `json:"academic_session,omitempty"`
	HostelIDs       []string `json:"hostel_ids,omitempty"`
	Levels          []string `json:"levels,omitempty"`
	StartsAt        string   `json:"starts_at,omitempty"`
	EndsAt          string   `json:"ends_at,omitempty"`
	Status          Status   `json:"status"`
	Selections      int      `json:"selections_count"`
}

// Selection records the room a student picked in a session.
type Selection struct {
	ID         string `json:"id"`
	SessionID  string `json:"session_id"`
	StudentID  string `json:"student_id,omitempty"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number,omitempty"`
	HostelName string `json:"hostel_name,omitempty"`
	Status     string `json:"status,omitempty"`
	SelectedAt string `json:"selected_at,omitempty"`
}

type Input struct {
	Name            string   `json:"name,omitempty"`
	AcademicSession string   `json:"academic_session,omitempty"`
	HostelIDs       []string `json:"hostel_ids,omitempty"`
	Levels          []string `json:"levels,omitempty"`
	StartsAt        string   `json:"starts_at,omitempty"`
	EndsAt          string   `json:"ends_at,omitempty"`
}
