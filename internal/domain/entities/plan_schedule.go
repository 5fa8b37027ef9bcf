package entities

import (
	"encoding/json"
	"strings"
)

// PlanSchedule is the strict shape accepted for the student-authored
// schedule payload. Submissions historically arrived as free-form JSON,
// so every field is optional and extraction never fails: anything that
// does not parse counts as zero lessons.
type PlanSchedule struct {
	Title   string               `json:"title"`
	Lessons []PlanScheduleLesson `json:"lessons"`
}

type PlanScheduleLesson struct {
	Topic string `json:"topic"`
	Date  string `json:"date"`
}

// CountLessons extracts the billable lesson count from a raw schedule
// payload. Malformed or empty payloads yield 0 rather than an error;
// the review flow is where a zero-lesson plan gets caught, not parsing.
func CountLessons(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var s PlanSchedule
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	n := 0
	for _, l := range s.Lessons {
		if strings.TrimSpace(l.Topic) != "" || strings.TrimSpace(l.Date) != "" {
			n++
		}
	}
	return n
}

// EmptySchedule reports whether the payload carries no usable content.
// Used to block first submission of an empty plan.
func EmptySchedule(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	if !json.Valid(raw) {
		return true
	}
	var s PlanSchedule
	if err := json.Unmarshal(raw, &s); err != nil {
		return true
	}
	return strings.TrimSpace(s.Title) == "" && len(s.Lessons) == 0
}
