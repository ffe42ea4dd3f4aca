package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeEmployeeCreated = "employee.created"
	EventTypeEmployeeDeleted = "employee.deleted"
	EventTypeLeadCreated     = "lead.created"
	EventTypeLeadUpdated     = "lead.updated"
	EventTypeLeadDeleted     = "lead.deleted"
)

// EventTypes lists every event the record store publishes.
var EventTypes = []string{
	EventTypeEmployeeCreated,
	EventTypeEmployeeDeleted,
	EventTypeLeadCreated,
	EventTypeLeadUpdated,
	EventTypeLeadDeleted,
}

type EmployeeCreatedEvent struct {
	BaseEvent
	EmployeeID int64  `json:"employee_id"`
	Department string `json:"department"`
}

func NewEmployeeCreatedEvent(employeeID int64, department string) *EmployeeCreatedEvent {
	return &EmployeeCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEmployeeCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"department":  department,
			},
		},
		EmployeeID: employeeID,
		Department: department,
	}
}

type EmployeeDeletedEvent struct {
	BaseEvent
	EmployeeID   int64 `json:"employee_id"`
	Existed      bool  `json:"existed"`
	LeadsRemoved int   `json:"leads_removed"`
}

func NewEmployeeDeletedEvent(employeeID int64, existed bool, leadsRemoved int) *EmployeeDeletedEvent {
	return &EmployeeDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEmployeeDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id":   employeeID,
				"existed":       existed,
				"leads_removed": leadsRemoved,
			},
		},
		EmployeeID:   employeeID,
		Existed:      existed,
		LeadsRemoved: leadsRemoved,
	}
}

type LeadEvent struct {
	BaseEvent
	EmployeeID int64  `json:"employee_id"`
	LeadID     string `json:"lead_id"`
	Position   int    `json:"position"`
}

func NewLeadEvent(eventType string, employeeID int64, leadID string, position int) *LeadEvent {
	return &LeadEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"lead_id":     leadID,
				"position":    position,
			},
		},
		EmployeeID: employeeID,
		LeadID:     leadID,
		Position:   position,
	}
}
