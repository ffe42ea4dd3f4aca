package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/session"
)

// mockSessionService is a hand-written stand-in for session.ServiceAPI
type mockSessionService struct {
	loginAdminErr    error
	loginEmployee    *employee.Employee
	loginEmployeeErr error
	status           *session.StatusResponse
	loggedOutAdmin   bool
	lastLogin        session.LoginDTO
}

func (m *mockSessionService) LoginAdmin(_ context.Context, dto session.LoginDTO) error {
	m.lastLogin = dto
	return m.loginAdminErr
}

func (m *mockSessionService) LogoutAdmin(context.Context) error {
	m.loggedOutAdmin = true
	return nil
}

func (m *mockSessionService) LoginEmployee(_ context.Context, dto session.LoginDTO) (*employee.Employee, error) {
	m.lastLogin = dto
	return m.loginEmployee, m.loginEmployeeErr
}

func (m *mockSessionService) LogoutEmployee(context.Context) error {
	return nil
}

func (m *mockSessionService) Status(context.Context) (*session.StatusResponse, error) {
	return m.status, nil
}

var _ = Describe("Handler", func() {
	var (
		svc     *mockSessionService
		handler *session.Handler
	)

	BeforeEach(func() {
		svc = &mockSessionService{}
		handler = session.NewHandler(svc)
	})

	It("should log the admin in", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/admin/login",
			strings.NewReader(`{"email":"admin@leads.local","password":"admin-secret"}`))
		rec := httptest.NewRecorder()

		handler.AdminLogin(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(svc.lastLogin.Email).To(Equal("admin@leads.local"))
		var body session.StatusResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Admin).To(BeTrue())
	})

	It("should answer 401 with an error body on bad credentials", func() {
		svc.loginAdminErr = internal.ErrInvalidCredentials
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/admin/login",
			strings.NewReader(`{"email":"admin@leads.local","password":"x"}`))
		rec := httptest.NewRecorder()

		handler.AdminLogin(rec, req)

		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(rec.Body.String()).To(ContainSubstring(`"code":"INVALID_CREDENTIALS"`))
	})

	It("should answer 400 on a malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/employee/login", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		handler.EmployeeLogin(rec, req)

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return the logged in employee", func() {
		svc.loginEmployee = &employee.Employee{ID: 2, FirstName: "John"}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/employee/login",
			strings.NewReader(`{"email":"john@x.com","password":"team-secret"}`))
		rec := httptest.NewRecorder()

		handler.EmployeeLogin(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"first_name":"John"`))
	})

	It("should answer 204 on logout", func() {
		rec := httptest.NewRecorder()
		handler.AdminLogout(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session/admin/logout", nil))

		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(svc.loggedOutAdmin).To(BeTrue())
	})

	It("should report the session status", func() {
		svc.status = &session.StatusResponse{Admin: true}
		rec := httptest.NewRecorder()
		handler.Status(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"admin":true`))
	})
})
