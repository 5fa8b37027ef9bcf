package response

import (
	"time"

	"sejong_admin/internal/domain/entities"
	"sejong_admin/internal/usecase"
)

type PlanResponse struct {
	ID              string     `json:"id"`
	StudentID       string     `json:"student_id"`
	Field           string     `json:"field"`
	Status          string     `json:"status"`
	LessonCount     int        `json:"lesson_count"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	Version         int64      `json:"version"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromLessonPlan(p entities.LessonPlan) PlanResponse {
	return PlanResponse{
		ID:              p.ID,
		StudentID:       p.StudentID,
		Field:           p.Field,
		Status:          string(p.Status),
		LessonCount:     p.LessonCount,
		RejectionReason: p.RejectionReason,
		ApprovedAt:      p.ApprovedAt,
		ApprovedBy:      p.ApprovedBy,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ApprovalResponse pairs the approved plan with the allocation it
// produced so the reviewer sees the amount without a second request.
type ApprovalResponse struct {
	Plan       PlanResponse        `json:"plan"`
	Allocation LedgerEntryResponse `json:"allocation"`
}

func FromApprovalResult(r usecase.ApprovalResult) ApprovalResponse {
	return ApprovalResponse{
		Plan:       FromLessonPlan(r.Plan),
		Allocation: FromLedgerEntry(r.Ledger),
	}
}
