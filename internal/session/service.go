package session

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/employee"
)

// EmployeeDirectory resolves the email typed at the employee login.
type EmployeeDirectory interface {
	FindEmployeeByEmail(ctx context.Context, email string) (*employee.Employee, error)
}

type Service struct {
	manager   *Manager
	policy    Policy
	directory EmployeeDirectory
	logger    *slog.Logger
}

func NewService(manager *Manager, policy Policy, directory EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{
		manager:   manager,
		policy:    policy,
		directory: directory,
		logger:    logger,
	}
}

func (s *Service) LoginAdmin(ctx context.Context, dto LoginDTO) error {
	if appErr := dto.Validate(); appErr != nil {
		return appErr
	}
	if err := s.policy.CheckAdmin(dto.Email, dto.Password); err != nil {
		s.logger.Warn("admin login rejected")
		return err
	}
	if err := s.manager.OpenAdmin(ctx); err != nil {
		return err
	}
	s.logger.Info("admin logged in")
	return nil
}

func (s *Service) LogoutAdmin(ctx context.Context) error {
	return s.manager.CloseAdmin(ctx)
}

// LoginEmployee opens the employee session for the employee registered
// under email. Unknown emails are reported as invalid credentials.
func (s *Service) LoginEmployee(ctx context.Context, dto LoginDTO) (*employee.Employee, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	emp, err := s.directory.FindEmployeeByEmail(ctx, dto.Email)
	if err != nil {
		if internal.IsNotFound(err) {
			s.logger.Warn("employee login rejected: unknown email")
			return nil, internal.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.policy.CheckEmployee(emp, dto.Password); err != nil {
		s.logger.Warn("employee login rejected", "employee_id", emp.ID)
		return nil, err
	}
	if err := s.manager.OpenEmployee(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info("employee logged in", "employee_id", emp.ID)
	return emp, nil
}

func (s *Service) LogoutEmployee(ctx context.Context) error {
	return s.manager.CloseEmployee(ctx)
}

func (s *Service) Status(ctx context.Context) (*StatusResponse, error) {
	admin, err := s.manager.IsAdminAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	emp, err := s.manager.CurrentEmployee(ctx)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{Admin: admin, Employee: emp}, nil
}
