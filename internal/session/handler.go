package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/transport"
	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

type ServiceAPI interface {
	LoginAdmin(ctx context.Context, dto LoginDTO) error
	LogoutAdmin(ctx context.Context) error
	LoginEmployee(ctx context.Context, dto LoginDTO) (*employee.Employee, error)
	LogoutEmployee(ctx context.Context) error
	Status(ctx context.Context) (*StatusResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	if err := h.Service.LoginAdmin(r.Context(), dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, StatusResponse{Admin: true})
}

func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.LogoutAdmin(r.Context()); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	emp, err := h.Service.LoginEmployee(r.Context(), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, StatusResponse{Employee: emp})
}

func (h *Handler) EmployeeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.LogoutEmployee(r.Context()); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.Service.Status(r.Context())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, status)
}
