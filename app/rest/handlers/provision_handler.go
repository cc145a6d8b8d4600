package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
	apperrors "school-admin-service/app/utils/errors"
	"school-admin-service/app/utils/validator"
)

const dateLayout = "2006-01-02"

// ProvisionHandler handles account provisioning HTTP requests
type ProvisionHandler struct {
	provisionUsecase port.ProvisionUsecase
	validator        *validator.Validator
	logger           *slog.Logger
}

// NewProvisionHandler creates a new provision handler
func NewProvisionHandler(provisionUsecase port.ProvisionUsecase, logger *slog.Logger) *ProvisionHandler {
	return &ProvisionHandler{
		provisionUsecase: provisionUsecase,
		validator:        validator.New(),
		logger:           logger,
	}
}

// CreateTeacherRequest is the request body for POST /v1/admin/teachers
type CreateTeacherRequest struct {
	Email             string   `json:"email" validate:"required,email"`
	FullName          string   `json:"full_name" validate:"required,min=2,max=120"`
	Phone             string   `json:"phone" validate:"omitempty,max=30"`
	Address           string   `json:"address" validate:"omitempty,max=300"`
	EmployeeID        string   `json:"employee_id" validate:"required,admission_number"`
	Subjects          []string `json:"subjects"`
	JoiningDate       string   `json:"joining_date" validate:"required,datetime=2006-01-02"`
	TemporaryPassword string   `json:"temporary_password" validate:"required"`
}

// CreateTeacher provisions a teacher account
// @Summary Create teacher
// @Description Provision a teacher: identity, profile and teacher record
// @Tags admin
// @Accept json
// @Produce json
// @Param body body CreateTeacherRequest true "Teacher provisioning request"
// @Success 201 {object} domain.TeacherProvisionResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/admin/teachers [post]
func (h *ProvisionHandler) CreateTeacher(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateTeacherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    string(apperrors.ErrCodeValidationFailed),
			Details: err.Error(),
		})
	}

	joiningDate, _ := time.Parse(dateLayout, req.JoiningDate)

	result, err := h.provisionUsecase.ProvisionTeacher(ctx, domain.ProvisionTeacherInput{
		Email:             req.Email,
		FullName:          req.FullName,
		Phone:             req.Phone,
		Address:           req.Address,
		EmployeeID:        req.EmployeeID,
		Subjects:          req.Subjects,
		JoiningDate:       joiningDate,
		TemporaryPassword: req.TemporaryPassword,
	})
	if err != nil {
		h.logger.Error("teacher provisioning failed", "email", req.Email, "error", err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// CreateStudentRequest is the request body for POST /v1/admin/students
type CreateStudentRequest struct {
	StudentFullName   string `json:"student_full_name" validate:"required,min=2,max=120"`
	AdmissionNumber   string `json:"admission_number" validate:"required,admission_number"`
	ClassID           string `json:"class_id" validate:"required,max=60"`
	DateOfBirth       string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	EnrollmentDate    string `json:"enrollment_date" validate:"required,datetime=2006-01-02"`
	Gender            string `json:"gender" validate:"omitempty,max=20"`
	BloodGroup        string `json:"blood_group" validate:"omitempty,max=5"`
	StudentAddress    string `json:"student_address" validate:"omitempty,max=300"`
	EmergencyContact  string `json:"emergency_contact" validate:"omitempty,max=30"`
	MedicalConditions string `json:"medical_conditions" validate:"omitempty,max=1000"`

	ParentEmail       string `json:"parent_email" validate:"required,email"`
	ParentFullName    string `json:"parent_full_name" validate:"required,min=2,max=120"`
	ParentPhone       string `json:"parent_phone" validate:"omitempty,max=30"`
	ParentAddress     string `json:"parent_address" validate:"omitempty,max=300"`
	TemporaryPassword string `json:"temporary_password" validate:"required"`
}

// CreateStudentWithParent provisions a student record plus its parent account
// @Summary Create student with parent
// @Description Create a student record, creating the parent account first when none exists for the given email
// @Tags admin
// @Accept json
// @Produce json
// @Param body body CreateStudentRequest true "Student provisioning request"
// @Success 201 {object} domain.StudentProvisionResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/admin/students [post]
func (h *ProvisionHandler) CreateStudentWithParent(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    string(apperrors.ErrCodeValidationFailed),
			Details: err.Error(),
		})
	}

	dateOfBirth, _ := time.Parse(dateLayout, req.DateOfBirth)
	enrollmentDate, _ := time.Parse(dateLayout, req.EnrollmentDate)

	result, err := h.provisionUsecase.ProvisionStudentWithParent(ctx, domain.ProvisionStudentInput{
		StudentFullName:   req.StudentFullName,
		AdmissionNumber:   req.AdmissionNumber,
		ClassID:           req.ClassID,
		DateOfBirth:       dateOfBirth,
		EnrollmentDate:    enrollmentDate,
		Gender:            req.Gender,
		BloodGroup:        req.BloodGroup,
		StudentAddress:    req.StudentAddress,
		EmergencyContact:  req.EmergencyContact,
		MedicalNotes:      req.MedicalConditions,
		ParentEmail:       req.ParentEmail,
		ParentFullName:    req.ParentFullName,
		ParentPhone:       req.ParentPhone,
		ParentAddress:     req.ParentAddress,
		TemporaryPassword: req.TemporaryPassword,
	})
	if err != nil {
		h.logger.Error("student provisioning failed",
			"admission_number", req.AdmissionNumber,
			"error", err)
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// GetUserEmail returns the email of an identity
// @Summary Get user email
// @Description Look up the sign-in email for an identity id
// @Tags admin
// @Produce json
// @Param userId query string true "Identity ID"
// @Success 200 {object} UserEmailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/admin/users/email [get]
func (h *ProvisionHandler) GetUserEmail(c echo.Context) error {
	ctx := c.Request().Context()

	identityID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "userId must be a valid UUID",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	email, err := h.provisionUsecase.GetUserEmail(ctx, identityID)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, UserEmailResponse{
		UserID: identityID,
		Email:  email,
	})
}

// UserEmailResponse is the response body for GetUserEmail
type UserEmailResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// GetTeacher returns a teacher record
// @Summary Get teacher
// @Tags admin
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Success 200 {object} domain.TeacherRecord
// @Failure 404 {object} ErrorResponse
// @Router /v1/admin/teachers/{teacherId} [get]
func (h *ProvisionHandler) GetTeacher(c echo.Context) error {
	ctx := c.Request().Context()

	teacherID, err := uuid.Parse(c.Param("teacherId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "teacherId must be a valid UUID",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	record, err := h.provisionUsecase.GetTeacher(ctx, teacherID)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// GetStudent returns a student record
// @Summary Get student
// @Tags admin
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} domain.StudentRecord
// @Failure 404 {object} ErrorResponse
// @Router /v1/admin/students/{studentId} [get]
func (h *ProvisionHandler) GetStudent(c echo.Context) error {
	ctx := c.Request().Context()

	studentID, err := uuid.Parse(c.Param("studentId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "studentId must be a valid UUID",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	record, err := h.provisionUsecase.GetStudent(ctx, studentID)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// DeactivateUser marks a profile inactive
// @Summary Deactivate user
// @Description Deactivate a profile so its sessions stop passing authorization
// @Tags admin
// @Produce json
// @Param userId path string true "Profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/admin/users/{userId} [delete]
func (h *ProvisionHandler) DeactivateUser(c echo.Context) error {
	ctx := c.Request().Context()

	profileID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "userId must be a valid UUID",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	if err := h.provisionUsecase.DeactivateProfile(ctx, profileID); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "user deactivated",
	})
}

// respondError maps a usecase error to the HTTP error envelope
func (h *ProvisionHandler) respondError(c echo.Context, err error) error {
	appErr := apperrors.FromDomain(err)
	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}
