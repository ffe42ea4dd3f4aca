package employee

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/lead-tracker/internal/transport"
	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

type ServiceAPI interface {
	ListEmployees(ctx context.Context) ([]*Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	AddEmployee(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
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

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, EmployeesResponse{Employees: employees})
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	created, err := h.Service.AddEmployee(r.Context(), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	logger.From(r.Context()).Info("employee created", "employee_id", created.ID)
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	emp, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, emp)
}

// DeleteEmployee answers 204 whether or not the employee existed.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	if err := h.Service.DeleteEmployee(r.Context(), id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
