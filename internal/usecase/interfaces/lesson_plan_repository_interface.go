package interfaces

import (
	"context"
	"errors"

	"sejong_admin/internal/domain/entities"
)

// ErrVersionConflict is returned by plan mutations when the stored
// version no longer matches the version the caller read. The write did
// not happen; the caller must re-read and retry deliberately.
var ErrVersionConflict = errors.New("lesson plan version conflict")

// ILessonPlanRepository abstracts DynamoDB persistence for LessonPlan.
//
// Conventions (shared by every repository here):
//   - Lookups return the zero value with a nil error when nothing exists.
//   - UpdateWithVersion is a conditional write on expectedVersion and
//     persists plan with Version = expectedVersion + 1.
type ILessonPlanRepository interface {
	Create(ctx context.Context, plan entities.LessonPlan) (entities.LessonPlan, error)
	GetByStudentID(ctx context.Context, studentID string) (entities.LessonPlan, error)
	UpdateWithVersion(ctx context.Context, plan entities.LessonPlan, expectedVersion int64) (entities.LessonPlan, error)
	ListByField(ctx context.Context, field string) ([]entities.LessonPlan, error)
}
