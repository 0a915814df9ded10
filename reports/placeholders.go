package reports

func placeholderOverview() *Overview {
	return &Overview{
		TotalStudents:       1850,
		TotalHostels:        6,
		TotalRooms:          520,
		TotalBeds:           2080,
		OccupiedBeds:        1790,
		OccupancyRate:       86.1,
		PendingApplications: 42,
		OpenMaintenance:     17,
		TotalRevenue:        83250000,
	}
}

func placeholderOccupancy() []HostelOccupancy {
	return []HostelOccupancy{
		{HostelID: "placeholder-1", HostelName: "Sample Hall A", Capacity: 480, Occupied: 408, Rate: 85},
		{HostelID: "placeholder-2", HostelName: "Sample Hall B", Capacity: 400, Occupied: 371, Rate: 92.75},
	}
}

func placeholderRevenue() *Revenue {
	return &Revenue{
		Total: 2700000,
		Points: []RevenuePoint{
			{Period: "month-1", Amount: 1350000, Count: 30},
			{Period: "month-2", Amount: 1350000, Count: 30},
		},
	}
}
