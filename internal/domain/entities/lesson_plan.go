package entities

import (
	"encoding/json"
	"time"
)

// PlanStatus represents the review lifecycle of a student's lesson plan.
//
// Domain notes:
//   - The admin service is the source of truth for plan/budget state.
//   - approved and rejected are both re-enterable: a student may edit and
//     resubmit, which resets the plan to submitted for a fresh review.

type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusSubmitted PlanStatus = "submitted"
	PlanStatusApproved  PlanStatus = "approved"
	PlanStatusRejected  PlanStatus = "rejected"
)

// LessonPlan is the one-per-student lesson plan persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: student_id (enforces the 1:1 student/plan rule)
//   - GSI1 (field-index): field
//
// Concurrency:
//   - Version is a monotonically increasing counter. Every mutation is a
//     conditional write on the version the caller last read.
//
// Invariants:
//   - ApprovedAt is non-nil iff Status == approved.
//   - RejectionReason is non-empty iff Status == rejected.
//   - LessonCount is the authoritative billing quantity, extracted from
//     the submitted schedule payload (never from the student profile).
type LessonPlan struct {
	ID              string          `json:"id"`
	StudentID       string          `json:"student_id"`
	Field           string          `json:"field"`
	Status          PlanStatus      `json:"status"`
	LessonCount     int             `json:"lesson_count"`
	Schedule        json.RawMessage `json:"schedule,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	ApprovedBy      string          `json:"approved_by,omitempty"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
