package interfaces

import (
	"context"

	"sejong_admin/internal/domain/entities"
)

// IStudentDirectory resolves students to their field and enumerates a
// field's cohort. The directory is read-only for this service; student
// records are managed by the enrollment system.
type IStudentDirectory interface {
	GetByID(ctx context.Context, id string) (entities.Student, error)
	ListByField(ctx context.Context, field string) ([]entities.Student, error)
}
