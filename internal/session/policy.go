package session

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/employee"
)

// Policy decides whether a login attempt may open a session.
type Policy interface {
	CheckAdmin(email, password string) error
	CheckEmployee(emp *employee.Employee, password string) error
}

// StaticPolicy accepts one admin account and a single password shared by
// every employee. Passwords are stored as bcrypt hashes.
type StaticPolicy struct {
	AdminEmail           string
	AdminPasswordHash    string
	EmployeePasswordHash string
}

func NewStaticPolicy(cfg internal.SessionConfig) *StaticPolicy {
	return &StaticPolicy{
		AdminEmail:           cfg.AdminEmail,
		AdminPasswordHash:    cfg.AdminPasswordHash,
		EmployeePasswordHash: cfg.EmployeePasswordHash,
	}
}

func (p *StaticPolicy) CheckAdmin(email, password string) error {
	if p.AdminEmail == "" || !strings.EqualFold(strings.TrimSpace(email), p.AdminEmail) {
		return internal.ErrInvalidCredentials
	}
	return comparePassword(p.AdminPasswordHash, password)
}

func (p *StaticPolicy) CheckEmployee(emp *employee.Employee, password string) error {
	if emp == nil {
		return internal.ErrInvalidCredentials
	}
	return comparePassword(p.EmployeePasswordHash, password)
}

func comparePassword(hash, password string) error {
	if hash == "" {
		return internal.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return internal.ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns the bcrypt hash to put in the session configuration.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
