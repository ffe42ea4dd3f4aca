package recordstore

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/frahmantamala/lead-tracker/internal"
	employeeDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/employee"
	leadDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/lead"
)

// loadEmployees returns the employees table. A missing or unparseable value
// is an empty table; only backend failures are returned.
func (s *Store) loadEmployees(ctx context.Context) ([]employeeDatamodel.Employee, error) {
	raw, found, err := s.kv.Get(ctx, KeyEmployees)
	if err != nil {
		return nil, internal.NewStorageError("read "+KeyEmployees, err)
	}
	if !found {
		return []employeeDatamodel.Employee{}, nil
	}

	var employees []employeeDatamodel.Employee
	if err := json.Unmarshal([]byte(raw), &employees); err != nil {
		s.logger.Warn("malformed table, treating as empty", "key", KeyEmployees, "error", err)
		return []employeeDatamodel.Employee{}, nil
	}
	if employees == nil {
		employees = []employeeDatamodel.Employee{}
	}
	return employees, nil
}

func (s *Store) saveEmployees(ctx context.Context, employees []employeeDatamodel.Employee) error {
	data, err := json.Marshal(employees)
	if err != nil {
		return internal.NewInternalError("failed to encode employees", err)
	}
	if err := s.kv.Set(ctx, KeyEmployees, string(data)); err != nil {
		return internal.NewStorageError("write "+KeyEmployees, err)
	}
	return nil
}

// loadLeads returns the leads table with the same fail-soft rule as loadEmployees.
func (s *Store) loadLeads(ctx context.Context) (leadDatamodel.Table, error) {
	raw, found, err := s.kv.Get(ctx, KeyLeads)
	if err != nil {
		return nil, internal.NewStorageError("read "+KeyLeads, err)
	}
	if !found {
		return leadDatamodel.Table{}, nil
	}

	var table leadDatamodel.Table
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		s.logger.Warn("malformed table, treating as empty", "key", KeyLeads, "error", err)
		return leadDatamodel.Table{}, nil
	}
	if table == nil {
		table = leadDatamodel.Table{}
	}
	return table, nil
}

func (s *Store) saveLeads(ctx context.Context, table leadDatamodel.Table) error {
	data, err := json.Marshal(table)
	if err != nil {
		return internal.NewInternalError("failed to encode leads", err)
	}
	if err := s.kv.Set(ctx, KeyLeads, string(data)); err != nil {
		return internal.NewStorageError("write "+KeyLeads, err)
	}
	return nil
}

// nextEmployeeID returns the id for a new employee: one past the larger of
// the persisted counter and the largest id in the table. Ids of deleted
// employees are never handed out again.
func (s *Store) nextEmployeeID(ctx context.Context, employees []employeeDatamodel.Employee) (int64, error) {
	var last int64
	raw, found, err := s.kv.Get(ctx, KeyEmployeeIDSeq)
	if err != nil {
		return 0, internal.NewStorageError("read "+KeyEmployeeIDSeq, err)
	}
	if found {
		seq, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.logger.Warn("malformed id counter, reseeding from table", "key", KeyEmployeeIDSeq, "error", err)
		} else {
			last = seq
		}
	}

	for _, e := range employees {
		if e.ID > last {
			last = e.ID
		}
	}
	return last + 1, nil
}

func (s *Store) saveEmployeeIDSeq(ctx context.Context, id int64) error {
	if err := s.kv.Set(ctx, KeyEmployeeIDSeq, strconv.FormatInt(id, 10)); err != nil {
		return internal.NewStorageError("write "+KeyEmployeeIDSeq, err)
	}
	return nil
}

func leadKey(employeeID int64) string {
	return strconv.FormatInt(employeeID, 10)
}

func findEmployee(employees []employeeDatamodel.Employee, id int64) (int, bool) {
	for i, e := range employees {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}
