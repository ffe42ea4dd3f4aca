package lead

import (
	"time"

	leadDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/lead"
	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

type Lead struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	City     string `json:"city"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Hour     int    `json:"hour"`
}

// NewLead builds a lead with a fresh id, stamped at now.
func NewLead(dto LeadDTO, now time.Time) *Lead {
	l := &Lead{ID: uuid.NewString()}
	l.Apply(dto, now)
	return l
}

// Apply overwrites the editable fields and re-stamps the entry time. The id is kept.
func (l *Lead) Apply(dto LeadDTO, now time.Time) {
	l.Name = dto.Name
	l.Email = dto.Email
	l.Phone = dto.Phone
	l.Status = dto.Status
	l.JobTitle = dto.JobTitle
	l.Company = dto.Company
	l.City = dto.City
	l.Message = dto.Message
	l.Stamp(now)
}

func (l *Lead) Stamp(now time.Time) {
	l.Date = now.Format(DateLayout)
	l.Time = now.Format(TimeLayout)
	l.Hour = now.Hour()
}

func ToDataModel(l *Lead) leadDatamodel.Lead {
	return leadDatamodel.Lead{
		ID:       l.ID,
		Name:     l.Name,
		Email:    l.Email,
		Phone:    l.Phone,
		Status:   l.Status,
		JobTitle: l.JobTitle,
		Company:  l.Company,
		City:     l.City,
		Message:  l.Message,
		Date:     l.Date,
		Time:     l.Time,
		Hour:     l.Hour,
	}
}

func FromDataModel(l leadDatamodel.Lead) *Lead {
	return &Lead{
		ID:       l.ID,
		Name:     l.Name,
		Email:    l.Email,
		Phone:    l.Phone,
		Status:   l.Status,
		JobTitle: l.JobTitle,
		Company:  l.Company,
		City:     l.City,
		Message:  l.Message,
		Date:     l.Date,
		Time:     l.Time,
		Hour:     l.Hour,
	}
}

func FromDataModelSlice(leads []leadDatamodel.Lead) []*Lead {
	result := make([]*Lead, len(leads))
	for i, l := range leads {
		result[i] = FromDataModel(l)
	}
	return result
}
