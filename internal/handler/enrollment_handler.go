package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"voxform/internal/errors"
	"voxform/internal/service"
	"voxform/internal/session"
)

// EnrollmentHandler handles the enrollment form.
type EnrollmentHandler struct {
	enrollments service.EnrollmentService
	sessions    session.Store
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(enrollments service.EnrollmentService, sessions session.Store) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, sessions: sessions}
}

// EnrollmentRequest mirrors the enrollment form field names. Field-level
// validation happens in the service so nothing is persisted on failure.
type EnrollmentRequest struct {
	FirstName   string `form:"firstName"`
	LastName    string `form:"lastName"`
	FatherName  string `form:"fatherName"`
	MotherName  string `form:"motherName"`
	DOB         string `form:"dob"`
	Gender      string `form:"gender"`
	Branch      string `form:"branch"`
	Section     string `form:"section"`
	RollNumber  string `form:"rollNumber"`
	YearOfStudy string `form:"yearOfStudy"`
	Percentage  string `form:"percentage"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
	BloodGroup  string `form:"bloodGroup"`
	Address     string `form:"address"`
}

// FormPage renders the enrollment form.
func (h *EnrollmentHandler) FormPage(c echo.Context) error {
	return c.Render(http.StatusOK, "form.html", echo.Map{
		"Flashes": popFlashes(c, h.sessions),
	})
}

// Submit validates and persists an enrollment form submission.
func (h *EnrollmentHandler) Submit(c echo.Context) error {
	var req EnrollmentRequest
	if err := c.Bind(&req); err != nil {
		addFlash(c, h.sessions, "error", "There was an error while submitting the form. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/form")
	}

	in := service.EnrollmentInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		FatherName:  req.FatherName,
		MotherName:  req.MotherName,
		DOB:         req.DOB,
		Gender:      req.Gender,
		Branch:      req.Branch,
		Section:     req.Section,
		RollNumber:  req.RollNumber,
		YearOfStudy: req.YearOfStudy,
		Percentage:  req.Percentage,
		Phone:       req.Phone,
		Email:       req.Email,
		BloodGroup:  req.BloodGroup,
		Address:     req.Address,
	}

	if _, err := h.enrollments.Submit(c.Request().Context(), in); err != nil {
		var ve *errors.ValidationError
		if stderrors.As(err, &ve) {
			addFlash(c, h.sessions, "error", ve.Error())
		} else {
			addFlash(c, h.sessions, "error", "There was an error while submitting the form. Please try again.")
		}
		return c.Redirect(http.StatusSeeOther, "/form")
	}

	addFlash(c, h.sessions, "success", "Student details submitted successfully!")
	return c.Redirect(http.StatusSeeOther, "/success")
}
