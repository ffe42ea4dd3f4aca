// Package session keeps the admin and employee login flags in the record
// store and decides who may open them.
package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/frahmantamala/lead-tracker/internal"
	employeeDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/employee"
	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/storage"
)

const (
	KeyIsAuthenticated = "isAuthenticated"
	KeyCurrentEmployee = "currentEmployee"

	adminFlag = "true"
)

// Manager reads and writes the session flags. Sessions never expire; they
// last until closed.
type Manager struct {
	kv     storage.RecordStore
	logger *slog.Logger
}

func NewManager(kv storage.RecordStore, logger *slog.Logger) *Manager {
	return &Manager{kv: kv, logger: logger}
}

func (m *Manager) OpenAdmin(ctx context.Context) error {
	if err := m.kv.Set(ctx, KeyIsAuthenticated, adminFlag); err != nil {
		return internal.NewStorageError("write "+KeyIsAuthenticated, err)
	}
	return nil
}

func (m *Manager) CloseAdmin(ctx context.Context) error {
	if err := m.kv.Remove(ctx, KeyIsAuthenticated); err != nil {
		return internal.NewStorageError("remove "+KeyIsAuthenticated, err)
	}
	return nil
}

// IsAdminAuthenticated is true only for the exact stored flag "true".
func (m *Manager) IsAdminAuthenticated(ctx context.Context) (bool, error) {
	v, found, err := m.kv.Get(ctx, KeyIsAuthenticated)
	if err != nil {
		return false, internal.NewStorageError("read "+KeyIsAuthenticated, err)
	}
	return found && v == adminFlag, nil
}

func (m *Manager) OpenEmployee(ctx context.Context, emp *employee.Employee) error {
	data, err := json.Marshal(employee.ToDataModel(emp))
	if err != nil {
		return internal.NewInternalError("failed to encode session employee", err)
	}
	if err := m.kv.Set(ctx, KeyCurrentEmployee, string(data)); err != nil {
		return internal.NewStorageError("write "+KeyCurrentEmployee, err)
	}
	return nil
}

func (m *Manager) CloseEmployee(ctx context.Context) error {
	if err := m.kv.Remove(ctx, KeyCurrentEmployee); err != nil {
		return internal.NewStorageError("remove "+KeyCurrentEmployee, err)
	}
	return nil
}

// CurrentEmployee returns the logged in employee, or nil when there is none
// or the stored record cannot be read.
func (m *Manager) CurrentEmployee(ctx context.Context) (*employee.Employee, error) {
	raw, found, err := m.kv.Get(ctx, KeyCurrentEmployee)
	if err != nil {
		return nil, internal.NewStorageError("read "+KeyCurrentEmployee, err)
	}
	if !found {
		return nil, nil
	}

	var stored employeeDatamodel.Employee
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored.ID == 0 {
		m.logger.Warn("malformed session record, ignoring", "key", KeyCurrentEmployee, "error", err)
		return nil, nil
	}
	return employee.FromDataModel(stored), nil
}
