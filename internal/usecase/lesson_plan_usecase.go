package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"sejong_admin/internal/domain/entities"
	"sejong_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound          = errors.New("lesson plan not found")
	ErrStudentNotFound       = errors.New("student not found")
	ErrFieldSettingsNotFound = errors.New("field budget settings not found")
	ErrInvalidStudentID      = errors.New("invalid student id")
	ErrInvalidAdminID        = errors.New("invalid admin id")
	ErrInvalidTransition     = errors.New("invalid plan status transition")
	ErrEmptyPlanContent      = errors.New("empty plan content")
	ErrEmptyRejectionReason  = errors.New("empty rejection reason")
	ErrConcurrencyConflict   = errors.New("plan was modified concurrently")
)

// ApprovalResult is what an approve transition hands back to the caller:
// the approved plan plus the ledger entry the allocation produced, so the
// reviewer sees the computed amount immediately.
type ApprovalResult struct {
	Plan   entities.LessonPlan
	Ledger entities.BudgetLedgerEntry
}

// ILessonPlanUseCase exposes the lesson-plan approval state machine.
//
// Transitions:
//   - SaveDraft:    (none)|draft -> draft
//   - SubmitPlan:   (none)|draft|rejected -> submitted
//   - ApprovePlan:  submitted -> approved (creates/overwrites the ledger entry)
//   - RejectPlan:   submitted -> rejected (ledger deliberately untouched)
//   - ResubmitPlan: approved|rejected -> submitted (clears review fields)
//
// Every mutation takes the version the caller last read and fails with
// ErrConcurrencyConflict on a mismatch.

type ILessonPlanUseCase interface {
	SaveDraft(ctx context.Context, studentID string, schedule json.RawMessage, version int64) (entities.LessonPlan, error)
	SubmitPlan(ctx context.Context, studentID string, schedule json.RawMessage, version int64) (entities.LessonPlan, error)
	ApprovePlan(ctx context.Context, studentID, adminID string, version int64) (ApprovalResult, error)
	RejectPlan(ctx context.Context, studentID, reason string, version int64) (entities.LessonPlan, error)
	ResubmitPlan(ctx context.Context, studentID string, schedule json.RawMessage, version int64) (entities.LessonPlan, error)
	GetPlan(ctx context.Context, studentID string) (entities.LessonPlan, error)
}

type LessonPlanUseCase struct {
	plans    interfaces.ILessonPlanRepository
	settings interfaces.IFieldSettingsRepository
	ledger   interfaces.ILedgerRepository
	students interfaces.IStudentDirectory
}

var _ ILessonPlanUseCase = (*LessonPlanUseCase)(nil)

func NewLessonPlanUseCase(
	plans interfaces.ILessonPlanRepository,
	settings interfaces.IFieldSettingsRepository,
	ledger interfaces.ILedgerRepository,
	students interfaces.IStudentDirectory,
) *LessonPlanUseCase {
	return &LessonPlanUseCase{plans: plans, settings: settings, ledger: ledger, students: students}
}

func (u *LessonPlanUseCase) SaveDraft(ctx context.Context, studentID string, schedule json.RawMessage, version int64) (entities.LessonPlan, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return entities.LessonPlan{}, ErrInvalidStudentID
	}

	plan, err := u.plans.GetByStudentID(ctx, studentID)
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if plan.ID == "" {
		return u.createPlan(ctx, studentID, schedule, entities.PlanStatusDraft)
	}
	if plan.Status != entities.PlanStatusDraft {
		return entities.LessonPlan{}, ErrInvalidTransition
	}

	plan.Schedule = schedule
	plan.LessonCount = entities.CountLessons(schedule)
	plan.UpdatedAt = time.Now().UTC()
	return u.updateWithVersion(ctx, plan, version)
}

func (u *LessonPlanUseCase) SubmitPlan(ctx context.Context, studentID string, schedule json.RawMessage, version int64) (entities.LessonPlan, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return entities.LessonPlan{}, ErrInvalidStudentID
	}
	if entities.EmptySchedule(schedule) {
		return entities.LessonPlan{}, ErrEmptyPlanContent
	}

	plan, err := u.plans.GetByStudentID(ctx, studentID)
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if plan.ID == "" {
		return u.createPlan(ctx, studentID, schedule, entities.PlanStatusSubmitted)
	}
	if plan.Status != entities.PlanStatusDraft && plan.Status != entities.PlanStatusRejected {
		return entities.LessonPlan{}, ErrInvalidTransition
	}

	plan.Status = entities.PlanStatusSubmitted
	plan.Schedule = schedule
	plan.LessonCount = entities.CountLessons(schedule)
	plan.RejectionReason = ""
	plan.UpdatedAt = time.Now().UTC()
	return u.updateWithVersion(ctx, plan, version)
}

func (u *LessonPlanUseCase) ApprovePlan(ctx context.Context, studentID, adminID string, version int64) (ApprovalResult, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return ApprovalResult{}, ErrInvalidStudentID
	}
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return ApprovalResult{}, ErrInvalidAdminID
	}

	plan, err := u.plans.GetByStudentID(ctx, studentID)
	if err != nil {
		return ApprovalResult{}, err
	}
	if plan.ID == "" {
		return ApprovalResult{}, ErrPlanNotFound
	}
	// Approval fields must be empty: a plan carrying them in the
	// submitted state is mid-flight in another reviewer's approve.
	if plan.Status != entities.PlanStatusSubmitted || plan.ApprovedAt != nil || plan.ApprovedBy != "" {
		return ApprovalResult{}, ErrInvalidTransition
	}

	setting, err := u.settings.GetByField(ctx, plan.Field)
	if err != nil {
		return ApprovalResult{}, err
	}
	if setting.Field == "" || !setting.Active {
		return ApprovalResult{}, ErrFieldSettingsNotFound
	}

	now := time.Now().UTC()
	plan.Status = entities.PlanStatusApproved
	plan.ApprovedAt = &now
	plan.ApprovedBy = adminID
	plan.RejectionReason = ""
	plan.UpdatedAt = now

	updated, err := u.updateWithVersion(ctx, plan, version)
	if err != nil {
		return ApprovalResult{}, err
	}

	prev, err := u.ledger.GetByStudentID(ctx, studentID)
	if err != nil {
		return ApprovalResult{}, err
	}
	allocated := entities.Allocate(updated.LessonCount, setting)
	entry := entities.BudgetLedgerEntry{
		StudentID:    studentID,
		Field:        updated.Field,
		Allocated:    allocated,
		Used:         entities.ClampUsed(prev.Used, allocated),
		SourcePlanID: updated.ID,
		UpdatedAt:    now,
	}
	created, err := u.ledger.Put(ctx, entry)
	if err != nil {
		log.Printf("[plan][usecase] ledger write failed after approval student_id=%s plan_id=%s err=%v", studentID, updated.ID, err)
		return ApprovalResult{}, err
	}

	log.Printf("[plan][usecase] approved student_id=%s plan_id=%s lessons=%d allocated=%d", studentID, updated.ID, updated.LessonCount, created.Allocated)
	return ApprovalResult{Plan: updated, Ledger: created}, nil
}

func (u *LessonPlanUseCase) RejectPlan(ctx context.Context, studentID, reason string, version int64) (entities.LessonPlan, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return entities.LessonPlan{}, ErrInvalidStudentID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.LessonPlan{}, ErrEmptyRejectionReason
	}

	plan, err := u.plans.GetByStudentID(ctx, studentID)
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if plan.ID == "" {
		return entities.LessonPlan{}, ErrPlanNotFound
	}
	if plan.Status != entities.PlanStatusSubmitted {
		return entities.LessonPlan{}, ErrInvalidTransition
	}

	// The ledger entry, if any, stays as-is on rejection.
	plan.Status = entities.PlanStatusRejected
	plan.RejectionReason = reason
	plan.ApprovedAt = nil
	plan.ApprovedBy = ""
	plan.UpdatedAt = time.Now().UTC()
	return u.updateWithVersion(ctx, plan, version)
}

func (u *LessonPlanUseCase) ResubmitPlan(ctx context.Context, studentID string, schedule json.RawMessage, version int64) (entities.LessonPlan, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return entities.LessonPlan{}, ErrInvalidStudentID
	}
	if entities.EmptySchedule(schedule) {
		return entities.LessonPlan{}, ErrEmptyPlanContent
	}

	plan, err := u.plans.GetByStudentID(ctx, studentID)
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if plan.ID == "" {
		return entities.LessonPlan{}, ErrPlanNotFound
	}
	if plan.Status != entities.PlanStatusApproved && plan.Status != entities.PlanStatusRejected {
		return entities.LessonPlan{}, ErrInvalidTransition
	}

	// Destructive reset: both review outcomes are cleared, the plan goes
	// back in the queue. The ledger keeps the previous allocation until
	// the next approval overwrites it.
	plan.Status = entities.PlanStatusSubmitted
	plan.Schedule = schedule
	plan.LessonCount = entities.CountLessons(schedule)
	plan.RejectionReason = ""
	plan.ApprovedAt = nil
	plan.ApprovedBy = ""
	plan.UpdatedAt = time.Now().UTC()
	return u.updateWithVersion(ctx, plan, version)
}

func (u *LessonPlanUseCase) GetPlan(ctx context.Context, studentID string) (entities.LessonPlan, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return entities.LessonPlan{}, ErrInvalidStudentID
	}

	plan, err := u.plans.GetByStudentID(ctx, studentID)
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if plan.ID == "" {
		return entities.LessonPlan{}, ErrPlanNotFound
	}
	return plan, nil
}

func (u *LessonPlanUseCase) createPlan(ctx context.Context, studentID string, schedule json.RawMessage, status entities.PlanStatus) (entities.LessonPlan, error) {
	student, err := u.students.GetByID(ctx, studentID)
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if student.ID == "" {
		return entities.LessonPlan{}, ErrStudentNotFound
	}

	now := time.Now().UTC()
	plan := entities.LessonPlan{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Field:       student.Field,
		Status:      status,
		LessonCount: entities.CountLessons(schedule),
		Schedule:    schedule,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.plans.Create(ctx, plan)
}

func (u *LessonPlanUseCase) updateWithVersion(ctx context.Context, plan entities.LessonPlan, version int64) (entities.LessonPlan, error) {
	updated, err := u.plans.UpdateWithVersion(ctx, plan, version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.LessonPlan{}, ErrConcurrencyConflict
		}
		return entities.LessonPlan{}, err
	}
	if updated.ID == "" {
		return entities.LessonPlan{}, ErrPlanNotFound
	}
	return updated, nil
}
