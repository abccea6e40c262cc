package hours

import (
	"fmt"
	"strconv"
	"strings"
)

func Format(r Record) string {
	routes := make([]string, 0, len(r.RouteNumbers))
	for _, n := range r.RouteNumbers {
		routes = append(routes, strconv.Itoa(n))
	}

	return fmt.Sprintf("Tram stop: %s\nRoute numbers: %s\nPassengers: %d\nComment: %s\n",
		r.StopName, strings.Join(routes, ", "), r.PassengerCount, r.Comment)
}

func FormatAll(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(Format(r))
		b.WriteString("\n")
	}
	return b.String()
}

func FormatSummary(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total passengers: %d\n", s.TotalPassengers)
	if s.Min != nil {
		fmt.Fprintf(&b, "Hour with fewest passengers: %s (%d passengers)\n", s.Min.StopName, s.Min.PassengerCount)
	} else {
		b.WriteString("Hour with fewest passengers: no records\n")
	}
	fmt.Fprintf(&b, "Longest comment: %s\n", s.LongestComment)

	return b.String()
}
