package hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedNumber = errors.New("malformed number")
	ErrNegativeCount   = errors.New("negative passenger count")
)

func ParseRoutes(line string) []int {
	routes := []int{}

	for _, token := range strings.Split(line, ",") {
		n, err := parseInt(token)
		if err != nil || n < 0 {
			continue
		}
		routes = append(routes, n)
	}

	return routes
}

func ParsePassengerCount(s string) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d: %w", n, ErrNegativeCount)
	}
	return n, nil
}

func ParseIndex(s string) (int, error) {
	return parseInt(s)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrMalformedNumber)
	}
	return n, nil
}
