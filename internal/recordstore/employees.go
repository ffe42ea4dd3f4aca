package recordstore

import (
	"context"
	"strings"

	"github.com/frahmantamala/lead-tracker/internal"
	employeeDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/employee"
	"github.com/frahmantamala/lead-tracker/internal/core/events"
	"github.com/frahmantamala/lead-tracker/internal/employee"
)

func (s *Store) ListEmployees(ctx context.Context) ([]*employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return employee.FromDataModelSlice(employees), nil
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return nil, err
	}
	i, ok := findEmployee(employees, id)
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	return employee.FromDataModel(employees[i]), nil
}

// FindEmployeeByEmail matches case-insensitively. The first match wins.
func (s *Store) FindEmployeeByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for _, e := range employees {
		if strings.EqualFold(e.Email, email) {
			return employee.FromDataModel(e), nil
		}
	}
	return nil, internal.ErrEmployeeNotFound
}

// AddEmployee validates the form, assigns the next id and appends the record.
// Nothing is written when validation fails.
func (s *Store) AddEmployee(ctx context.Context, dto employee.CreateEmployeeDTO) (*employee.Employee, error) {
	dto = dto.Normalize()
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.nextEmployeeID(ctx, employees)
	if err != nil {
		return nil, err
	}

	created := employee.NewEmployee(id, dto)
	employees = append(employees, employee.ToDataModel(created))

	// the counter is written first; a failed table write then only skips an id
	if err := s.saveEmployeeIDSeq(ctx, id); err != nil {
		return nil, err
	}
	if err := s.saveEmployees(ctx, employees); err != nil {
		return nil, err
	}

	s.logger.Info("employee added", "employee_id", id, "department", created.Department)
	s.publish(ctx, events.NewEmployeeCreatedEvent(id, string(created.Department)))
	return created, nil
}

// DeleteEmployee removes the employee and every lead recorded under its id.
// The leads entry is removed even when no such employee exists.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return err
	}
	table, err := s.loadLeads(ctx)
	if err != nil {
		return err
	}

	// leads go first so a failed write never leaves leads without an owner
	leadsRemoved := 0
	if leads, ok := table[leadKey(id)]; ok {
		leadsRemoved = len(leads)
		delete(table, leadKey(id))
		if err := s.saveLeads(ctx, table); err != nil {
			return err
		}
	}

	i, existed := findEmployee(employees, id)
	if existed {
		remaining := make([]employeeDatamodel.Employee, 0, len(employees)-1)
		remaining = append(remaining, employees[:i]...)
		remaining = append(remaining, employees[i+1:]...)
		if err := s.saveEmployees(ctx, remaining); err != nil {
			return err
		}
	}

	s.logger.Info("employee deleted", "employee_id", id, "existed", existed, "leads_removed", leadsRemoved)
	s.publish(ctx, events.NewEmployeeDeletedEvent(id, existed, leadsRemoved))
	return nil
}

func (s *Store) employeeExists(ctx context.Context, id int64) (bool, error) {
	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return false, err
	}
	_, ok := findEmployee(employees, id)
	return ok, nil
}
