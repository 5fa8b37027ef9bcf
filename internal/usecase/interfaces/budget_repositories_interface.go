package interfaces

import (
	"context"

	"sejong_admin/internal/domain/entities"
)

// IFieldSettingsRepository abstracts DynamoDB persistence for
// FieldBudgetSetting. One logically-singleton row per field; Upsert
// creates or overwrites it in a single conditional-free put.
type IFieldSettingsRepository interface {
	Upsert(ctx context.Context, s entities.FieldBudgetSetting) (entities.FieldBudgetSetting, error)
	GetByField(ctx context.Context, field string) (entities.FieldBudgetSetting, error)
}

// ILedgerRepository abstracts DynamoDB persistence for BudgetLedgerEntry.
//
// Put overwrites the student's single row (never duplicates). ListByField
// drives the recalculation engine; ListAll drives the program-wide
// overview and may scan.
type ILedgerRepository interface {
	Put(ctx context.Context, e entities.BudgetLedgerEntry) (entities.BudgetLedgerEntry, error)
	GetByStudentID(ctx context.Context, studentID string) (entities.BudgetLedgerEntry, error)
	ListByField(ctx context.Context, field string) ([]entities.BudgetLedgerEntry, error)
	ListAll(ctx context.Context) ([]entities.BudgetLedgerEntry, error)
}
