package hours

import (
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"time"
	"unicode/utf8"
)

var ErrInvalidIndex = errors.New("invalid index")

var (
	operationCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hours_operation_count",
		Help: "Number of store operations performed",
	}, []string{"op"})
	invalidIndexCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hours_invalid_index_count",
		Help: "Number of edit or delete calls rejected for an out of range index",
	}, []string{"op"})
	summarizeDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:        "hours_summarize",
		Help:        "Time spent computing record summaries",
		ConstLabels: prometheus.Labels{"op": "summarize"},
	})
)

func init() {
	prometheus.MustRegister(operationCount, invalidIndexCount, summarizeDuration)
}

// Store is an ordered, index addressed collection of records.
// It is not safe for concurrent use.
type Store struct {
	records []Record
}

func Seed() []Record {
	return []Record{
		{StopName: "Stop 1", RouteNumbers: []int{1, 2}, PassengerCount: 100, Comment: "Morning"},
		{StopName: "Stop 2", RouteNumbers: []int{3, 4}, PassengerCount: 50, Comment: "Noon"},
		{StopName: "Stop 3", RouteNumbers: []int{5, 6}, PassengerCount: 30, Comment: "Evening"},
		{StopName: "Stop 4", RouteNumbers: []int{7, 8}, PassengerCount: 75, Comment: "Night"},
		{StopName: "Stop 5", RouteNumbers: []int{9, 10}, PassengerCount: 10, Comment: "Late night"},
	}
}

func New() *Store {
	return NewWithRecords(Seed())
}

func NewWithRecords(records []Record) *Store {
	s := &Store{records: make([]Record, 0, len(records))}
	for _, r := range records {
		s.records = append(s.records, r.clone())
	}
	return s
}

func (s *Store) Add(r Record) {
	operationCount.With(prometheus.Labels{"op": "add"}).Inc()
	s.records = append(s.records, r.clone())
}

func (s *Store) EditAt(index int, r Record) error {
	if err := s.checkIndex("edit", index); err != nil {
		return err
	}

	operationCount.With(prometheus.Labels{"op": "edit"}).Inc()
	s.records[index] = r.clone()
	return nil
}

func (s *Store) DeleteAt(index int) error {
	if err := s.checkIndex("delete", index); err != nil {
		return err
	}

	operationCount.With(prometheus.Labels{"op": "delete"}).Inc()
	s.records = append(s.records[:index], s.records[index+1:]...)
	return nil
}

func (s *Store) checkIndex(op string, index int) error {
	if index >= 0 && index < len(s.records) {
		return nil
	}

	invalidIndexCount.With(prometheus.Labels{"op": op}).Inc()
	return fmt.Errorf("%s record %d of %d: %w", op, index, len(s.records), ErrInvalidIndex)
}

func (s *Store) All() []Record {
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.clone())
	}
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) Summarize() Summary {
	start := time.Now()
	defer func() { summarizeDuration.Observe(time.Since(start).Seconds()) }()

	var summary Summary
	longest := 0

	for i := range s.records {
		r := &s.records[i]

		summary.TotalPassengers += r.PassengerCount

		if summary.Min == nil || r.PassengerCount < summary.Min.PassengerCount {
			quietest := r.clone()
			summary.Min = &quietest
		}

		if n := utf8.RuneCountInString(r.Comment); n > longest {
			longest = n
			summary.LongestComment = r.Comment
		}
	}

	return summary
}
