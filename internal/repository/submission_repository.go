package repository

import (
	"context"

	"gorm.io/gorm"

	"voxform/internal/model"
)

// SubmissionRepository defines enrollment form persistence operations.
// Submissions are append-only: there is no read-back, update or delete path.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.FormSubmission) error
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository builds a GORM-backed repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, sub *model.FormSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}
