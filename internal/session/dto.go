package session

import (
	"strings"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/core/common/validation"
	"github.com/frahmantamala/lead-tracker/internal/employee"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() *internal.AppError {
	validator := validation.NewValidator()
	validator.Field("email", strings.TrimSpace(dto.Email)).Required()
	validator.Field("password", dto.Password).Required()
	return validator.Validate()
}

type StatusResponse struct {
	Admin    bool               `json:"admin"`
	Employee *employee.Employee `json:"employee"`
}
