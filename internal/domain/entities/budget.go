package entities

import "time"

// FieldBudgetSetting holds the current rate/cap for one field
// (specialization). Created lazily on the first settings update; no
// history is kept, the row is overwritten in place.
//
// Storage model (DynamoDB):
//   - PK: field
//
// Monetary representation:
//   - Amounts are integral currency units (KRW-style). Ledger math never
//     touches floating point.
type FieldBudgetSetting struct {
	Field           string    `json:"field"`
	PerLessonAmount int64     `json:"per_lesson_amount"`
	MaxBudget       int64     `json:"max_budget"`
	Active          bool      `json:"active"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BudgetLedgerEntry is the allocated/used pair for one student.
//
// Storage model (DynamoDB):
//   - PK: student_id (0 or 1 rows per student)
//   - GSI1 (field-index): field
//
// The entry is created or overwritten only by an approve transition or a
// field recalculation pass; it is never duplicated and never deleted by
// a rejection.
type BudgetLedgerEntry struct {
	StudentID    string    `json:"student_id"`
	Field        string    `json:"field"`
	Allocated    int64     `json:"allocated"`
	Used         int64     `json:"used"`
	SourcePlanID string    `json:"source_plan_id"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Allocate derives a student's budget allocation from the billable
// lesson count and the field's current setting. A MaxBudget of 0 means
// the field is uncapped.
func Allocate(lessonCount int, s FieldBudgetSetting) int64 {
	if lessonCount < 0 {
		lessonCount = 0
	}
	allocated := int64(lessonCount) * s.PerLessonAmount
	if s.MaxBudget > 0 && allocated > s.MaxBudget {
		allocated = s.MaxBudget
	}
	return allocated
}

// ClampUsed keeps a ledger entry internally consistent after its
// allocation changes: used never exceeds allocated, even when a cap
// shrinks mid-program.
func ClampUsed(used, allocated int64) int64 {
	if used > allocated {
		return allocated
	}
	return used
}
