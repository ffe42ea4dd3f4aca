package lead

import (
	"strings"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/core/common/validation"
)

// LeadDTO represents the add/edit lead form. Every field is required.
type LeadDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	City     string `json:"city"`
	Message  string `json:"message"`
}

func (dto LeadDTO) Normalize() LeadDTO {
	return LeadDTO{
		Name:     strings.TrimSpace(dto.Name),
		Email:    strings.TrimSpace(dto.Email),
		Phone:    strings.TrimSpace(dto.Phone),
		Status:   strings.TrimSpace(dto.Status),
		JobTitle: strings.TrimSpace(dto.JobTitle),
		Company:  strings.TrimSpace(dto.Company),
		City:     strings.TrimSpace(dto.City),
		Message:  strings.TrimSpace(dto.Message),
	}
}

func (dto LeadDTO) Validate() *internal.AppError {
	validator := validation.NewValidator()
	validator.Field("name", dto.Name).Required()
	validator.Field("email", dto.Email).Required()
	validator.Field("phone", dto.Phone).Required()
	validator.Field("status", dto.Status).Required()
	validator.Field("job_title", dto.JobTitle).Required()
	validator.Field("company", dto.Company).Required()
	validator.Field("city", dto.City).Required()
	validator.Field("message", dto.Message).Required()
	return validator.Validate()
}

// FromLead returns the editable fields of an existing lead.
func FromLead(l *Lead) LeadDTO {
	return LeadDTO{
		Name:     l.Name,
		Email:    l.Email,
		Phone:    l.Phone,
		Status:   l.Status,
		JobTitle: l.JobTitle,
		Company:  l.Company,
		City:     l.City,
		Message:  l.Message,
	}
}

type LeadsResponse struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date,omitempty"`
	Leads      []*Lead `json:"leads"`
}

type AllLeadsResponse struct {
	Leads map[int64][]*Lead `json:"leads"`
}

type ReportResponse struct {
	EmployeeID  int64       `json:"employee_id"`
	Date        string      `json:"date,omitempty"`
	LeadsOnDate int         `json:"leads_on_date"`
	TotalLeads  int         `json:"total_leads"`
	ByHour      []HourCount `json:"by_hour"`
	ByDay       []DayCount  `json:"by_day"`
}
