package hours

// Record is one observation period at a tram stop.
type Record struct {
	StopName       string `yaml:"stop_name"`
	RouteNumbers   []int  `yaml:"route_numbers"`
	PassengerCount int    `yaml:"passenger_count"`
	Comment        string `yaml:"comment"`
}

// Summary holds the aggregates computed over every record in a Store.
type Summary struct {
	TotalPassengers int
	// Min is the first record with the smallest passenger count, nil for an empty store.
	Min            *Record
	LongestComment string
}

func (r Record) clone() Record {
	if r.RouteNumbers != nil {
		r.RouteNumbers = append([]int{}, r.RouteNumbers...)
	}
	return r
}
