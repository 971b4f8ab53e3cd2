package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voxform/internal/errors"
	"voxform/internal/model"
)

// MockSubmissionRepository is a mock implementation of SubmissionRepository.
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, sub *model.FormSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func validInput() EnrollmentInput {
	return EnrollmentInput{
		FirstName:   "Asha",
		LastName:    "Rao",
		FatherName:  "Kiran Rao",
		MotherName:  "Meera Rao",
		DOB:         "2004-06-01",
		Gender:      "female",
		Branch:      "CSE",
		Section:     "A",
		RollNumber:  "21CS042",
		YearOfStudy: "3",
		Percentage:  "87.5",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		BloodGroup:  "O+",
		Address:     "12 College Road",
	}
}

func TestEnrollmentService_Submit(t *testing.T) {
	t.Run("successful submission", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FormSubmission")).
			Run(func(args mock.Arguments) {
				sub := args.Get(1).(*model.FormSubmission)
				sub.ID = 7
				assert.Equal(t, 87.5, sub.Percentage)
			}).Return(nil)

		service := NewEnrollmentService(mockRepo)
		id, err := service.Submit(context.Background(), validInput())

		assert.NoError(t, err)
		assert.Equal(t, uint(7), id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-numeric percentage is rejected before persisting", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)

		in := validInput()
		in.Percentage = "abc"

		service := NewEnrollmentService(mockRepo)
		id, err := service.Submit(context.Background(), in)

		assert.Zero(t, id)
		var ve *errors.ValidationError
		assert.True(t, stderrors.As(err, &ve))
		assert.Equal(t, "percentage", ve.Field)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing required field is rejected", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)

		in := validInput()
		in.RollNumber = "  "

		service := NewEnrollmentService(mockRepo)
		id, err := service.Submit(context.Background(), in)

		assert.Zero(t, id)
		var ve *errors.ValidationError
		assert.True(t, stderrors.As(err, &ve))
		assert.Equal(t, "roll_number", ve.Field)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FormSubmission")).Return(nil)

		in := validInput()
		in.DOB = ""
		in.Gender = ""
		in.BloodGroup = ""

		service := NewEnrollmentService(mockRepo)
		_, err := service.Submit(context.Background(), in)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
