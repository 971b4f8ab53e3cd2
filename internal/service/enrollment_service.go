package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"voxform/internal/errors"
	"voxform/internal/model"
	"voxform/internal/repository"
)

// EnrollmentInput carries the raw enrollment form fields. Percentage stays a
// string until validated; dob, gender and blood group are optional.
type EnrollmentInput struct {
	FirstName   string
	LastName    string
	FatherName  string
	MotherName  string
	DOB         string
	Gender      string
	Branch      string
	Section     string
	RollNumber  string
	YearOfStudy string
	Percentage  string
	Phone       string
	Email       string
	BloodGroup  string
	Address     string
}

// EnrollmentService validates and persists enrollment form submissions.
type EnrollmentService interface {
	Submit(ctx context.Context, in EnrollmentInput) (uint, error)
}

type enrollmentService struct {
	repo repository.SubmissionRepository
}

// NewEnrollmentService creates a new enrollment service.
func NewEnrollmentService(repo repository.SubmissionRepository) EnrollmentService {
	return &enrollmentService{repo: repo}
}

// Submit validates all fields before anything touches the database, so a
// validation failure never leaves a partial row behind.
func (s *enrollmentService) Submit(ctx context.Context, in EnrollmentInput) (uint, error) {
	required := []struct {
		field string
		value string
	}{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"father_name", in.FatherName},
		{"mother_name", in.MotherName},
		{"branch", in.Branch},
		{"section", in.Section},
		{"roll_number", in.RollNumber},
		{"year_of_study", in.YearOfStudy},
		{"percentage", in.Percentage},
		{"phone", in.Phone},
		{"email", in.Email},
		{"address", in.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return 0, errors.NewValidationError(f.field, "required")
		}
	}

	percentage, err := strconv.ParseFloat(strings.TrimSpace(in.Percentage), 64)
	if err != nil {
		return 0, errors.NewValidationError("percentage", "must be a number")
	}

	sub := &model.FormSubmission{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		FatherName:  in.FatherName,
		MotherName:  in.MotherName,
		DOB:         in.DOB,
		Gender:      in.Gender,
		Branch:      in.Branch,
		Section:     in.Section,
		RollNumber:  in.RollNumber,
		YearOfStudy: in.YearOfStudy,
		Percentage:  percentage,
		Phone:       in.Phone,
		Email:       in.Email,
		BloodGroup:  in.BloodGroup,
		Address:     in.Address,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return 0, fmt.Errorf("create submission: %w", err)
	}

	return sub.ID, nil
}
