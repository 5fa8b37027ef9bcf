package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"sejong_admin/internal/domain/entities"
	"sejong_admin/internal/usecase/interfaces"
)

var (
	ErrInvalidField        = errors.New("invalid field")
	ErrInvalidSettingValue = errors.New("invalid setting value")
)

// RecalculationFailure identifies one student whose ledger row could not
// be rewritten during a field recalculation.
type RecalculationFailure struct {
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

// RecalculationReport is the observable outcome of a field-wide
// recalculation. UpdatedCount < TotalCount means some rows failed; the
// settings update itself still succeeded and the failed subset can be
// retried by re-running the update.
type RecalculationReport struct {
	Field        string                 `json:"field"`
	UpdatedCount int                    `json:"updated_count"`
	TotalCount   int                    `json:"total_count"`
	Failures     []RecalculationFailure `json:"failures,omitempty"`
}

// StudentBudgetStatus is one row of a field budget report.
type StudentBudgetStatus struct {
	Student    entities.Student    `json:"student"`
	PlanStatus entities.PlanStatus `json:"plan_status,omitempty"`
	Allocated  int64               `json:"allocated"`
	Used       int64               `json:"used"`
}

// FieldBudgetStatistics aggregates one field's plan statuses and ledger
// sums. UtilizationRate is used/allocated, 0 when nothing is allocated.
type FieldBudgetStatistics struct {
	TotalStudents   int     `json:"total_students"`
	PendingCount    int     `json:"pending_count"`
	ApprovedCount   int     `json:"approved_count"`
	RejectedCount   int     `json:"rejected_count"`
	TotalAllocated  int64   `json:"total_allocated"`
	TotalUsed       int64   `json:"total_used"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type FieldBudgetStatus struct {
	Field      string                      `json:"field"`
	Settings   entities.FieldBudgetSetting `json:"settings"`
	Students   []StudentBudgetStatus       `json:"students"`
	Statistics FieldBudgetStatistics       `json:"statistics"`
}

// BudgetOverview is the program-wide rollup over every ledger entry.
type BudgetOverview struct {
	TotalAllocated     int64   `json:"total_allocated"`
	TotalUsed          int64   `json:"total_used"`
	TotalApprovedItems int     `json:"total_approved_items"`
	AveragePerStudent  float64 `json:"average_per_student"`
}

// IBudgetUseCase exposes field budget administration and reporting.
//
// UpdateFieldSettings and the recalculation it triggers are one logical
// operation: a settings change that does not cascade to every approved
// student in the field is a defect, not a valid state.

type IBudgetUseCase interface {
	UpdateFieldSettings(ctx context.Context, field string, perLessonAmount, maxBudget int64) (RecalculationReport, error)
	GetFieldBudgetStatus(ctx context.Context, field string) (FieldBudgetStatus, error)
	GetBudgetOverview(ctx context.Context) (BudgetOverview, error)
}

type BudgetUseCase struct {
	settings interfaces.IFieldSettingsRepository
	ledger   interfaces.ILedgerRepository
	plans    interfaces.ILessonPlanRepository
	students interfaces.IStudentDirectory
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	settings interfaces.IFieldSettingsRepository,
	ledger interfaces.ILedgerRepository,
	plans interfaces.ILessonPlanRepository,
	students interfaces.IStudentDirectory,
) *BudgetUseCase {
	return &BudgetUseCase{settings: settings, ledger: ledger, plans: plans, students: students}
}

func (u *BudgetUseCase) UpdateFieldSettings(ctx context.Context, field string, perLessonAmount, maxBudget int64) (RecalculationReport, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return RecalculationReport{}, ErrInvalidField
	}
	if perLessonAmount < 0 || maxBudget < 0 {
		return RecalculationReport{}, ErrInvalidSettingValue
	}

	setting := entities.FieldBudgetSetting{
		Field:           field,
		PerLessonAmount: perLessonAmount,
		MaxBudget:       maxBudget,
		Active:          true,
		UpdatedAt:       time.Now().UTC(),
	}
	stored, err := u.settings.Upsert(ctx, setting)
	if err != nil {
		return RecalculationReport{}, err
	}

	log.Printf("[budget][usecase] settings updated field=%s per_lesson=%d cap=%d; recalculating", field, perLessonAmount, maxBudget)
	return u.recalculate(ctx, stored)
}

// recalculate rewrites every ledger entry in the field against the new
// setting, then sweeps the field's approved plans for entries that are
// missing entirely (an approval whose ledger write failed) and creates
// them. Per-student failures are collected, never fatal: each row is
// independent and partial progress beats none. Running it twice with the
// same setting yields identical ledger values.
func (u *BudgetUseCase) recalculate(ctx context.Context, setting entities.FieldBudgetSetting) (RecalculationReport, error) {
	entries, err := u.ledger.ListByField(ctx, setting.Field)
	if err != nil {
		return RecalculationReport{}, err
	}

	report := RecalculationReport{Field: setting.Field, TotalCount: len(entries)}
	now := time.Now().UTC()
	covered := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		covered[entry.StudentID] = struct{}{}
		plan, err := u.plans.GetByStudentID(ctx, entry.StudentID)
		if err != nil {
			report.Failures = append(report.Failures, RecalculationFailure{StudentID: entry.StudentID, Reason: "load plan: " + err.Error()})
			continue
		}
		// The plan is the authoritative lesson count, not the stale
		// ledger value: an approved plan may itself have been edited.
		if plan.ID == "" || plan.Status != entities.PlanStatusApproved {
			report.Failures = append(report.Failures, RecalculationFailure{StudentID: entry.StudentID, Reason: "approved plan missing"})
			continue
		}

		allocated := entities.Allocate(plan.LessonCount, setting)
		entry.Allocated = allocated
		entry.Used = entities.ClampUsed(entry.Used, allocated)
		entry.SourcePlanID = plan.ID
		entry.UpdatedAt = now

		if _, err := u.ledger.Put(ctx, entry); err != nil {
			report.Failures = append(report.Failures, RecalculationFailure{StudentID: entry.StudentID, Reason: "write ledger: " + err.Error()})
			continue
		}
		report.UpdatedCount++
	}

	fieldPlans, err := u.plans.ListByField(ctx, setting.Field)
	if err != nil {
		return report, err
	}
	for _, plan := range fieldPlans {
		if plan.Status != entities.PlanStatusApproved {
			continue
		}
		if _, ok := covered[plan.StudentID]; ok {
			continue
		}

		report.TotalCount++
		allocated := entities.Allocate(plan.LessonCount, setting)
		entry := entities.BudgetLedgerEntry{
			StudentID:    plan.StudentID,
			Field:        setting.Field,
			Allocated:    allocated,
			Used:         0,
			SourcePlanID: plan.ID,
			UpdatedAt:    now,
		}
		if _, err := u.ledger.Put(ctx, entry); err != nil {
			report.Failures = append(report.Failures, RecalculationFailure{StudentID: plan.StudentID, Reason: "write ledger: " + err.Error()})
			continue
		}
		log.Printf("[budget][usecase] recreated missing ledger entry student_id=%s plan_id=%s allocated=%d", plan.StudentID, plan.ID, allocated)
		report.UpdatedCount++
	}

	if len(report.Failures) > 0 {
		log.Printf("[budget][usecase] recalculation partial failure field=%s updated=%d total=%d failed=%d",
			setting.Field, report.UpdatedCount, report.TotalCount, len(report.Failures))
	}
	return report, nil
}

func (u *BudgetUseCase) GetFieldBudgetStatus(ctx context.Context, field string) (FieldBudgetStatus, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return FieldBudgetStatus{}, ErrInvalidField
	}

	setting, err := u.settings.GetByField(ctx, field)
	if err != nil {
		return FieldBudgetStatus{}, err
	}
	cohort, err := u.students.ListByField(ctx, field)
	if err != nil {
		return FieldBudgetStatus{}, err
	}
	plans, err := u.plans.ListByField(ctx, field)
	if err != nil {
		return FieldBudgetStatus{}, err
	}
	entries, err := u.ledger.ListByField(ctx, field)
	if err != nil {
		return FieldBudgetStatus{}, err
	}

	planByStudent := make(map[string]entities.LessonPlan, len(plans))
	for _, p := range plans {
		planByStudent[p.StudentID] = p
	}
	entryByStudent := make(map[string]entities.BudgetLedgerEntry, len(entries))
	for _, e := range entries {
		entryByStudent[e.StudentID] = e
	}

	status := FieldBudgetStatus{Field: field, Settings: setting}
	status.Statistics.TotalStudents = len(cohort)
	for _, s := range cohort {
		row := StudentBudgetStatus{Student: s}
		if p, ok := planByStudent[s.ID]; ok {
			row.PlanStatus = p.Status
			switch p.Status {
			case entities.PlanStatusSubmitted:
				status.Statistics.PendingCount++
			case entities.PlanStatusApproved:
				status.Statistics.ApprovedCount++
			case entities.PlanStatusRejected:
				status.Statistics.RejectedCount++
			}
		}
		if e, ok := entryByStudent[s.ID]; ok {
			row.Allocated = e.Allocated
			row.Used = e.Used
			status.Statistics.TotalAllocated += e.Allocated
			status.Statistics.TotalUsed += e.Used
		}
		status.Students = append(status.Students, row)
	}
	if status.Statistics.TotalAllocated > 0 {
		status.Statistics.UtilizationRate = float64(status.Statistics.TotalUsed) / float64(status.Statistics.TotalAllocated)
	}
	return status, nil
}

func (u *BudgetUseCase) GetBudgetOverview(ctx context.Context) (BudgetOverview, error) {
	entries, err := u.ledger.ListAll(ctx)
	if err != nil {
		return BudgetOverview{}, err
	}

	overview := BudgetOverview{TotalApprovedItems: len(entries)}
	for _, e := range entries {
		overview.TotalAllocated += e.Allocated
		overview.TotalUsed += e.Used
	}
	if len(entries) > 0 {
		overview.AveragePerStudent = float64(overview.TotalAllocated) / float64(len(entries))
	}
	return overview, nil
}
