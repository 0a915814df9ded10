package hostels

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderMixed  Gender = "mixed"
)

type Hostel struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Code           string   `json:"code,omitempty"`
	Gender         Gender   `json:"gender,omitempty"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description,omitempty"`
	TotalRooms     int      `json:"total_rooms"`
	AvailableRooms int      `json:"available_rooms"`
	Capacity       int      `json:"capacity"`
	Occupied       int      `json:"occupied"`
	Status         string   `json:"status,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
	WardenName     string   `json:"warden_name,omitempty"`
}

// OccupancyRate returns occupied beds as a percentage of capacity.
func (h Hostel) OccupancyRate() float64 {
	if h.Capacity == 0 {
		return 0
	}
	return float64(h.Occupied) * 100 / float64(h.Capacity)
}

type Room struct {
	ID       string  `json:"id"`
	HostelID string  `json:"hostel_id"`
	Number   string  `json:"room_number"`
	Floor    int     `json:"floor"`
	Type     string  `json:"type,omitempty"` // single, double, quad...
	Capacity int     `json:"capacity"`
	Occupied int     `json:"occupied"`
	Price    float64 `json:"price,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// Available reports whether the room has a free bed.
func (r Room) Available() bool {
	return r.Occupied < r.Capacity
}

type Input struct {
	Name        string   `json:"name,omitempty"`
	Code        string   `json:"code,omitempty"`
	Gender      Gender   `json:"gender,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Capacity    int      `json:"capacity,omitempty"`
	Status      string   `json:"status,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}
