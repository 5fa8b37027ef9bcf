package response

import (
	"time"

	"sejong_admin/internal/domain/entities"
)

type LedgerEntryResponse struct {
	StudentID    string    `json:"student_id"`
	Field        string    `json:"field"`
	Allocated    int64     `json:"allocated"`
	Used         int64     `json:"used"`
	SourcePlanID string    `json:"source_plan_id"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromLedgerEntry(e entities.BudgetLedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		StudentID:    e.StudentID,
		Field:        e.Field,
		Allocated:    e.Allocated,
		Used:         e.Used,
		SourcePlanID: e.SourcePlanID,
		UpdatedAt:    e.UpdatedAt,
	}
}
