package employee

import (
	"strings"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/core/common/validation"
)

// CreateEmployeeDTO represents the admin "add employee" form
type CreateEmployeeDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

// Normalize trims surrounding whitespace from every field.
func (dto CreateEmployeeDTO) Normalize() CreateEmployeeDTO {
	return CreateEmployeeDTO{
		FirstName:  strings.TrimSpace(dto.FirstName),
		LastName:   strings.TrimSpace(dto.LastName),
		Email:      strings.TrimSpace(dto.Email),
		Phone:      strings.TrimSpace(dto.Phone),
		Department: strings.TrimSpace(dto.Department),
	}
}

func (dto CreateEmployeeDTO) Validate() *internal.AppError {
	departments := make([]string, len(Departments))
	for i, d := range Departments {
		departments[i] = string(d)
	}

	validator := validation.NewValidator()
	validator.Field("first_name", dto.FirstName).Required()
	validator.Field("last_name", dto.LastName).Required()
	validator.Field("email", dto.Email).Required()
	validator.Field("phone", dto.Phone).Required()
	validator.Field("department", dto.Department).
		Required().
		OneOf(internal.ErrCodeInvalidDepartment, departments...)
	return validator.Validate()
}

type EmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}
