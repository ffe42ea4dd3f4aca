package recordstore

import (
	"context"
	"strconv"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/core/common/validation"
	leadDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/lead"
	"github.com/frahmantamala/lead-tracker/internal/core/events"
	"github.com/frahmantamala/lead-tracker/internal/lead"
)

// ListLeads returns the employee's leads in entry order.
func (s *Store) ListLeads(ctx context.Context, employeeID int64) ([]*lead.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.loadLeads(ctx)
	if err != nil {
		return nil, err
	}
	return lead.FromDataModelSlice(table[leadKey(employeeID)]), nil
}

// ListAllLeads returns every recorded lead grouped by owner. Entries whose key
// is not a decimal id are skipped.
func (s *Store) ListAllLeads(ctx context.Context) (map[int64][]*lead.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.loadLeads(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]*lead.Lead, len(table))
	for key, leads := range table {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			s.logger.Warn("skipping leads under non-numeric key", "key", key)
			continue
		}
		result[id] = lead.FromDataModelSlice(leads)
	}
	return result, nil
}

// FilterLeadsByDate returns the leads stamped on date. An empty date returns all of them.
func (s *Store) FilterLeadsByDate(ctx context.Context, employeeID int64, date string) ([]*lead.Lead, error) {
	if appErr := validation.ValidateCalendarDate(date); appErr != nil {
		return nil, appErr
	}
	leads, err := s.ListLeads(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return lead.FilterByDate(leads, date), nil
}

func (s *Store) CountLeadsOnDate(ctx context.Context, employeeID int64, date string) (int, error) {
	leads, err := s.FilterLeadsByDate(ctx, employeeID, date)
	if err != nil {
		return 0, err
	}
	return len(leads), nil
}

// AddLead stamps the lead with the current date and time and appends it to
// the employee's list.
func (s *Store) AddLead(ctx context.Context, employeeID int64, dto lead.LeadDTO) (*lead.Lead, error) {
	dto = dto.Normalize()
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.employeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	table, err := s.loadLeads(ctx)
	if err != nil {
		return nil, err
	}

	created := lead.NewLead(dto, s.now())
	key := leadKey(employeeID)
	table[key] = append(table[key], lead.ToDataModel(created))
	if err := s.saveLeads(ctx, table); err != nil {
		return nil, err
	}

	position := len(table[key]) - 1
	s.logger.Info("lead added", "employee_id", employeeID, "lead_id", created.ID, "position", position)
	s.publish(ctx, events.NewLeadEvent(events.EventTypeLeadCreated, employeeID, created.ID, position))
	return created, nil
}

// UpdateLead replaces the lead at position, keeping its id and re-stamping its entry time.
func (s *Store) UpdateLead(ctx context.Context, employeeID int64, position int, dto lead.LeadDTO) (*lead.Lead, error) {
	return s.updateLead(ctx, employeeID, dto, func(leads []leadDatamodel.Lead) int {
		if position < 0 || position >= len(leads) {
			return -1
		}
		return position
	})
}

func (s *Store) UpdateLeadByID(ctx context.Context, employeeID int64, leadID string, dto lead.LeadDTO) (*lead.Lead, error) {
	return s.updateLead(ctx, employeeID, dto, func(leads []leadDatamodel.Lead) int {
		return indexOfLead(leads, leadID)
	})
}

func (s *Store) updateLead(ctx context.Context, employeeID int64, dto lead.LeadDTO, locate func([]leadDatamodel.Lead) int) (*lead.Lead, error) {
	dto = dto.Normalize()
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.loadLeads(ctx)
	if err != nil {
		return nil, err
	}
	key := leadKey(employeeID)
	leads := table[key]
	position := locate(leads)
	if position < 0 {
		return nil, internal.ErrLeadNotFound
	}

	updated := lead.FromDataModel(leads[position])
	updated.Apply(dto, s.now())
	leads[position] = lead.ToDataModel(updated)
	table[key] = leads
	if err := s.saveLeads(ctx, table); err != nil {
		return nil, err
	}

	s.logger.Info("lead updated", "employee_id", employeeID, "lead_id", updated.ID, "position", position)
	s.publish(ctx, events.NewLeadEvent(events.EventTypeLeadUpdated, employeeID, updated.ID, position))
	return updated, nil
}

// DeleteLead removes the lead at position. Positions out of range are ignored.
func (s *Store) DeleteLead(ctx context.Context, employeeID int64, position int) error {
	return s.deleteLead(ctx, employeeID, func(leads []leadDatamodel.Lead) int {
		if position < 0 || position >= len(leads) {
			return -1
		}
		return position
	})
}

// DeleteLeadByID removes the lead with the given id. Unknown ids are ignored.
func (s *Store) DeleteLeadByID(ctx context.Context, employeeID int64, leadID string) error {
	return s.deleteLead(ctx, employeeID, func(leads []leadDatamodel.Lead) int {
		return indexOfLead(leads, leadID)
	})
}

func (s *Store) deleteLead(ctx context.Context, employeeID int64, locate func([]leadDatamodel.Lead) int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.loadLeads(ctx)
	if err != nil {
		return err
	}
	key := leadKey(employeeID)
	leads := table[key]
	position := locate(leads)
	if position < 0 {
		return nil
	}

	removed := leads[position]
	remaining := make([]leadDatamodel.Lead, 0, len(leads)-1)
	remaining = append(remaining, leads[:position]...)
	remaining = append(remaining, leads[position+1:]...)
	table[key] = remaining
	if err := s.saveLeads(ctx, table); err != nil {
		return err
	}

	s.logger.Info("lead deleted", "employee_id", employeeID, "lead_id", removed.ID, "position", position)
	s.publish(ctx, events.NewLeadEvent(events.EventTypeLeadDeleted, employeeID, removed.ID, position))
	return nil
}

func indexOfLead(leads []leadDatamodel.Lead, leadID string) int {
	if leadID == "" {
		return -1
	}
	for i, l := range leads {
		if l.ID == leadID {
			return i
		}
	}
	return -1
}
