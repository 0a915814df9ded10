package hostels

import "github.com/jrsteele09/hostel-admin/apiclient"

// Placeholder data served only when fallback is enabled and the backend
// cannot be reached.

func placeholderHostels() []Hostel {
	return []Hostel{
		{ID: "placeholder-1", Name: "Sample Hall A", Code: "SHA", Gender: GenderMale, TotalRooms: 120, AvailableRooms: 18, Capacity: 480, Occupied: 408, Status: "active"},
		{ID: "placeholder-2", Name: "Sample Hall B", Code: "SHB", Gender: GenderFemale, TotalRooms: 100, AvailableRooms: 9, Capacity: 400, Occupied: 371, Status: "active"},
	}
}

func placeholderPage() *apiclient.Page[Hostel] {
	items := placeholderHostels()
	return &apiclient.Page[Hostel]{
		Items: items,
		Pagination: apiclient.Pagination{
			CurrentPage: 1,
			PerPage:     len(items),
			Total:       len(items),
			LastPage:    1,
			From:        1,
			To:          len(items),
		},
	}
}

func placeholderRooms(hostelID string) []Room {
	return []Room{
		{ID: "placeholder-room-1", HostelID: hostelID, Number: "A101", Floor: 1, Type: "quad", Capacity: 4, Occupied: 3},
		{ID: "placeholder-room-2", HostelID: hostelID, Number: "A102", Floor: 1, Type: "quad", Capacity: 4, Occupied: 4},
	}
}
