package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"sejong_admin/internal/domain/entities"
	mock_interfaces "sejong_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedPlanFor(studentID string, lessons int) entities.LessonPlan {
	return entities.LessonPlan{
		ID:          "plan-" + studentID,
		StudentID:   studentID,
		Field:       "Korean Culture",
		Status:      entities.PlanStatusApproved,
		LessonCount: lessons,
		Version:     2,
	}
}

func TestBudgetUseCase_UpdateFieldSettings(t *testing.T) {
	t.Run("invalid field", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateFieldSettings(context.Background(), "  ", 50000, 500000)
		if !errors.Is(err, ErrInvalidField) {
			t.Fatalf("expected ErrInvalidField, got %v", err)
		}
	})

	t.Run("negative values", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil)
		if _, err := uc.UpdateFieldSettings(context.Background(), "Korean Culture", -1, 500000); !errors.Is(err, ErrInvalidSettingValue) {
			t.Fatalf("expected ErrInvalidSettingValue, got %v", err)
		}
		if _, err := uc.UpdateFieldSettings(context.Background(), "Korean Culture", 50000, -1); !errors.Is(err, ErrInvalidSettingValue) {
			t.Fatalf("expected ErrInvalidSettingValue, got %v", err)
		}
	})

	t.Run("recalculates every ledger entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockIFieldSettingsRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		plans := mock_interfaces.NewMockILessonPlanRepository(ctrl)
		uc := NewBudgetUseCase(settings, ledger, plans, nil)

		stored := entities.FieldBudgetSetting{Field: "Korean Culture", PerLessonAmount: 40000, MaxBudget: 300000, Active: true}
		settings.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.FieldBudgetSetting{})).DoAndReturn(
			func(_ context.Context, s entities.FieldBudgetSetting) (entities.FieldBudgetSetting, error) {
				if !s.Active || s.PerLessonAmount != 40000 || s.MaxBudget != 300000 {
					t.Fatalf("unexpected setting: %+v", s)
				}
				return stored, nil
			},
		)
		ledger.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.BudgetLedgerEntry{
			{StudentID: "stu-1", Field: "Korean Culture", Allocated: 400000, Used: 350000},
			{StudentID: "stu-2", Field: "Korean Culture", Allocated: 500000, Used: 100000},
		}, nil)
		plans.EXPECT().GetByStudentID(gomock.Any(), "stu-1").Return(approvedPlanFor("stu-1", 8), nil)
		plans.EXPECT().GetByStudentID(gomock.Any(), "stu-2").Return(approvedPlanFor("stu-2", 12), nil)
		plans.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.LessonPlan{
			approvedPlanFor("stu-1", 8),
			approvedPlanFor("stu-2", 12),
		}, nil)
		ledger.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetLedgerEntry{})).DoAndReturn(
			func(_ context.Context, e entities.BudgetLedgerEntry) (entities.BudgetLedgerEntry, error) {
				// 8 and 12 lessons both hit the new 300000 cap; stu-1's
				// old 350000 spend must be clamped to the new allocation.
				if e.Allocated != 300000 {
					t.Fatalf("unexpected allocation: %+v", e)
				}
				if e.StudentID == "stu-1" && e.Used != 300000 {
					t.Fatalf("used not clamped: %+v", e)
				}
				if e.StudentID == "stu-2" && e.Used != 100000 {
					t.Fatalf("used changed unexpectedly: %+v", e)
				}
				if e.SourcePlanID != "plan-"+e.StudentID {
					t.Fatalf("source plan not refreshed: %+v", e)
				}
				return e, nil
			},
		).Times(2)

		report, err := uc.UpdateFieldSettings(context.Background(), "Korean Culture", 40000, 300000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.UpdatedCount != 2 || report.TotalCount != 2 || len(report.Failures) != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("partial failure keeps going", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockIFieldSettingsRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		plans := mock_interfaces.NewMockILessonPlanRepository(ctrl)
		uc := NewBudgetUseCase(settings, ledger, plans, nil)

		stored := entities.FieldBudgetSetting{Field: "Korean Culture", PerLessonAmount: 50000, MaxBudget: 500000, Active: true}
		settings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(stored, nil)

		entries := make([]entities.BudgetLedgerEntry, 0, 10)
		for i := 1; i <= 10; i++ {
			entries = append(entries, entities.BudgetLedgerEntry{StudentID: fmt.Sprintf("stu-%d", i), Field: "Korean Culture", Allocated: 400000})
		}
		ledger.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return(entries, nil)

		fieldPlans := make([]entities.LessonPlan, 0, 10)
		for i := 1; i <= 10; i++ {
			id := fmt.Sprintf("stu-%d", i)
			fieldPlans = append(fieldPlans, approvedPlanFor(id, 8))
			if i == 7 {
				plans.EXPECT().GetByStudentID(gomock.Any(), id).Return(entities.LessonPlan{}, errors.New("throughput exceeded"))
				continue
			}
			plans.EXPECT().GetByStudentID(gomock.Any(), id).Return(approvedPlanFor(id, 8), nil)
		}
		plans.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return(fieldPlans, nil)
		ledger.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.BudgetLedgerEntry) (entities.BudgetLedgerEntry, error) {
				return e, nil
			},
		).Times(9)

		report, err := uc.UpdateFieldSettings(context.Background(), "Korean Culture", 50000, 500000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.UpdatedCount != 9 || report.TotalCount != 10 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if len(report.Failures) != 1 || report.Failures[0].StudentID != "stu-7" {
			t.Fatalf("unexpected failures: %+v", report.Failures)
		}
	})

	t.Run("entry without approved plan is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockIFieldSettingsRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		plans := mock_interfaces.NewMockILessonPlanRepository(ctrl)
		uc := NewBudgetUseCase(settings, ledger, plans, nil)

		stored := entities.FieldBudgetSetting{Field: "Korean Culture", PerLessonAmount: 50000, MaxBudget: 500000, Active: true}
		settings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(stored, nil)
		ledger.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.BudgetLedgerEntry{
			{StudentID: "stu-1", Field: "Korean Culture", Allocated: 400000},
		}, nil)
		resubmitted := approvedPlanFor("stu-1", 8)
		resubmitted.Status = entities.PlanStatusSubmitted
		plans.EXPECT().GetByStudentID(gomock.Any(), "stu-1").Return(resubmitted, nil)
		plans.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.LessonPlan{resubmitted}, nil)

		report, err := uc.UpdateFieldSettings(context.Background(), "Korean Culture", 50000, 500000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.UpdatedCount != 0 || report.TotalCount != 1 || len(report.Failures) != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("repairs an approval whose ledger write failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockIFieldSettingsRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		plans := mock_interfaces.NewMockILessonPlanRepository(ctrl)
		planUC := NewLessonPlanUseCase(plans, settings, ledger, nil)
		budgetUC := NewBudgetUseCase(settings, ledger, plans, nil)

		plans.EXPECT().GetByStudentID(gomock.Any(), "stu-1").Return(submittedPlan(), nil)
		settings.EXPECT().GetByField(gomock.Any(), "Korean Culture").Return(activeSetting(), nil)
		approved := submittedPlan()
		plans.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, p entities.LessonPlan, v int64) (entities.LessonPlan, error) {
				p.Version = v + 1
				approved = p
				return p, nil
			},
		)
		ledger.EXPECT().GetByStudentID(gomock.Any(), "stu-1").Return(entities.BudgetLedgerEntry{}, nil)
		ledger.EXPECT().Put(gomock.Any(), gomock.Any()).Return(entities.BudgetLedgerEntry{}, errors.New("throughput exceeded"))

		if _, err := planUC.ApprovePlan(context.Background(), "stu-1", "admin-1", 3); err == nil {
			t.Fatalf("expected ledger write error to surface")
		}

		// The plan is approved but its ledger row was never written; the
		// next settings update on the field must create it.
		settings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(activeSetting(), nil)
		ledger.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return(nil, nil)
		plans.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.LessonPlan{approved}, nil)
		ledger.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetLedgerEntry{})).DoAndReturn(
			func(_ context.Context, e entities.BudgetLedgerEntry) (entities.BudgetLedgerEntry, error) {
				if e.StudentID != "stu-1" || e.Allocated != 400000 || e.Used != 0 || e.SourcePlanID != "plan-1" {
					t.Fatalf("unexpected recreated entry: %+v", e)
				}
				return e, nil
			},
		)

		report, err := budgetUC.UpdateFieldSettings(context.Background(), "Korean Culture", 50000, 500000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.UpdatedCount != 1 || report.TotalCount != 1 || len(report.Failures) != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("same settings twice yields identical ledger values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockIFieldSettingsRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		plans := mock_interfaces.NewMockILessonPlanRepository(ctrl)
		uc := NewBudgetUseCase(settings, ledger, plans, nil)

		stored := map[string]entities.BudgetLedgerEntry{
			"stu-1": {StudentID: "stu-1", Field: "Korean Culture", Allocated: 400000, Used: 350000},
			"stu-2": {StudentID: "stu-2", Field: "Korean Culture", Allocated: 500000, Used: 100000},
		}
		settings.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.FieldBudgetSetting) (entities.FieldBudgetSetting, error) {
				return s, nil
			},
		).Times(2)
		ledger.EXPECT().ListByField(gomock.Any(), "Korean Culture").DoAndReturn(
			func(_ context.Context, _ string) ([]entities.BudgetLedgerEntry, error) {
				return []entities.BudgetLedgerEntry{stored["stu-1"], stored["stu-2"]}, nil
			},
		).Times(2)
		plans.EXPECT().GetByStudentID(gomock.Any(), "stu-1").Return(approvedPlanFor("stu-1", 8), nil).Times(2)
		plans.EXPECT().GetByStudentID(gomock.Any(), "stu-2").Return(approvedPlanFor("stu-2", 12), nil).Times(2)
		plans.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.LessonPlan{
			approvedPlanFor("stu-1", 8),
			approvedPlanFor("stu-2", 12),
		}, nil).Times(2)
		ledger.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.BudgetLedgerEntry) (entities.BudgetLedgerEntry, error) {
				stored[e.StudentID] = e
				return e, nil
			},
		).Times(4)

		first, err := uc.UpdateFieldSettings(context.Background(), "Korean Culture", 40000, 300000)
		if err != nil {
			t.Fatalf("unexpected error on first pass: %v", err)
		}
		afterFirst := map[string]entities.BudgetLedgerEntry{"stu-1": stored["stu-1"], "stu-2": stored["stu-2"]}

		second, err := uc.UpdateFieldSettings(context.Background(), "Korean Culture", 40000, 300000)
		if err != nil {
			t.Fatalf("unexpected error on second pass: %v", err)
		}

		if first.UpdatedCount != second.UpdatedCount || first.TotalCount != second.TotalCount {
			t.Fatalf("report counts drifted: first=%+v second=%+v", first, second)
		}
		for _, id := range []string{"stu-1", "stu-2"} {
			a, b := afterFirst[id], stored[id]
			if a.Allocated != b.Allocated || a.Used != b.Used || a.SourcePlanID != b.SourcePlanID {
				t.Fatalf("ledger values drifted for %s: first=%+v second=%+v", id, a, b)
			}
		}
		if e := stored["stu-1"]; e.Allocated != 300000 || e.Used != 300000 {
			t.Fatalf("unexpected stable values for stu-1: %+v", e)
		}
	})
}

func TestBudgetUseCase_GetFieldBudgetStatus(t *testing.T) {
	t.Run("invalid field", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil)
		_, err := uc.GetFieldBudgetStatus(context.Background(), "")
		if !errors.Is(err, ErrInvalidField) {
			t.Fatalf("expected ErrInvalidField, got %v", err)
		}
	})

	t.Run("joins cohort, plans and ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockIFieldSettingsRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		plans := mock_interfaces.NewMockILessonPlanRepository(ctrl)
		students := mock_interfaces.NewMockIStudentDirectory(ctrl)
		uc := NewBudgetUseCase(settings, ledger, plans, students)

		settings.EXPECT().GetByField(gomock.Any(), "Korean Culture").Return(
			entities.FieldBudgetSetting{Field: "Korean Culture", PerLessonAmount: 50000, MaxBudget: 500000, Active: true}, nil)
		students.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.Student{
			{ID: "stu-1", Name: "Kim Minjun", Field: "Korean Culture"},
			{ID: "stu-2", Name: "Lee Seoyeon", Field: "Korean Culture"},
			{ID: "stu-3", Name: "Park Jihoo", Field: "Korean Culture"},
		}, nil)
		approved := approvedPlanFor("stu-1", 8)
		rejected := approvedPlanFor("stu-2", 5)
		rejected.Status = entities.PlanStatusRejected
		plans.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.LessonPlan{approved, rejected}, nil)
		ledger.EXPECT().ListByField(gomock.Any(), "Korean Culture").Return([]entities.BudgetLedgerEntry{
			{StudentID: "stu-1", Field: "Korean Culture", Allocated: 400000, Used: 100000},
		}, nil)

		status, err := uc.GetFieldBudgetStatus(context.Background(), "Korean Culture")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Statistics.TotalStudents != 3 || status.Statistics.ApprovedCount != 1 || status.Statistics.RejectedCount != 1 {
			t.Fatalf("unexpected statistics: %+v", status.Statistics)
		}
		if status.Statistics.TotalAllocated != 400000 || status.Statistics.TotalUsed != 100000 {
			t.Fatalf("unexpected sums: %+v", status.Statistics)
		}
		if status.Statistics.UtilizationRate != 0.25 {
			t.Fatalf("unexpected utilization: %v", status.Statistics.UtilizationRate)
		}
		if len(status.Students) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(status.Students))
		}
		if status.Students[2].PlanStatus != "" || status.Students[2].Allocated != 0 {
			t.Fatalf("student without plan should be a zero row: %+v", status.Students[2])
		}
	})

	t.Run("utilization is zero when nothing allocated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockIFieldSettingsRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		plans := mock_interfaces.NewMockILessonPlanRepository(ctrl)
		students := mock_interfaces.NewMockIStudentDirectory(ctrl)
		uc := NewBudgetUseCase(settings, ledger, plans, students)

		settings.EXPECT().GetByField(gomock.Any(), "Calligraphy").Return(entities.FieldBudgetSetting{Field: "Calligraphy", Active: true}, nil)
		students.EXPECT().ListByField(gomock.Any(), "Calligraphy").Return(nil, nil)
		plans.EXPECT().ListByField(gomock.Any(), "Calligraphy").Return(nil, nil)
		ledger.EXPECT().ListByField(gomock.Any(), "Calligraphy").Return(nil, nil)

		status, err := uc.GetFieldBudgetStatus(context.Background(), "Calligraphy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Statistics.UtilizationRate != 0 {
			t.Fatalf("expected zero utilization, got %v", status.Statistics.UtilizationRate)
		}
	})
}

func TestBudgetUseCase_GetBudgetOverview(t *testing.T) {
	t.Run("sums every ledger entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewBudgetUseCase(nil, ledger, nil, nil)

		ledger.EXPECT().ListAll(gomock.Any()).Return([]entities.BudgetLedgerEntry{
			{StudentID: "stu-1", Allocated: 400000, Used: 100000},
			{StudentID: "stu-2", Allocated: 500000, Used: 500000},
		}, nil)

		overview, err := uc.GetBudgetOverview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if overview.TotalAllocated != 900000 || overview.TotalUsed != 600000 || overview.TotalApprovedItems != 2 {
			t.Fatalf("unexpected overview: %+v", overview)
		}
		if overview.AveragePerStudent != 450000 {
			t.Fatalf("unexpected average: %v", overview.AveragePerStudent)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewBudgetUseCase(nil, ledger, nil, nil)

		ledger.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		overview, err := uc.GetBudgetOverview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if overview.TotalApprovedItems != 0 || overview.AveragePerStudent != 0 {
			t.Fatalf("unexpected overview: %+v", overview)
		}
	})

	t.Run("propagates scan error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewBudgetUseCase(nil, ledger, nil, nil)

		scanErr := errors.New("scan failed")
		ledger.EXPECT().ListAll(gomock.Any()).Return(nil, scanErr)

		if _, err := uc.GetBudgetOverview(context.Background()); !errors.Is(err, scanErr) {
			t.Fatalf("expected scan error, got %v", err)
		}
	})
}
