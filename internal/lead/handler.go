package lead

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/core/common/validation"
	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/transport"
	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ServiceAPI interface {
	GetEmployee(ctx context.Context, id int64) (*employee.Employee, error)
	ListLeads(ctx context.Context, employeeID int64) ([]*Lead, error)
	ListAllLeads(ctx context.Context) (map[int64][]*Lead, error)
	FilterLeadsByDate(ctx context.Context, employeeID int64, date string) ([]*Lead, error)
	AddLead(ctx context.Context, employeeID int64, dto LeadDTO) (*Lead, error)
	UpdateLead(ctx context.Context, employeeID int64, position int, dto LeadDTO) (*Lead, error)
	UpdateLeadByID(ctx context.Context, employeeID int64, leadID string, dto LeadDTO) (*Lead, error)
	DeleteLead(ctx context.Context, employeeID int64, position int) error
	DeleteLeadByID(ctx context.Context, employeeID int64, leadID string) error
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

// ListAllLeads serves the admin overview of every employee's leads.
func (h *Handler) ListAllLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Service.ListAllLeads(r.Context())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, AllLeadsResponse{Leads: leads})
}

// ListLeads returns the employee's leads, narrowed to ?date= when given.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	date := r.URL.Query().Get("date")

	leads, err := h.Service.FilterLeadsByDate(r.Context(), employeeID, date)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, LeadsResponse{EmployeeID: employeeID, Date: date, Leads: leads})
}

func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	var dto LeadDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	created, err := h.Service.AddLead(r.Context(), employeeID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	position, appErr := h.URLParamInt(r, "position")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	var dto LeadDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	updated, err := h.Service.UpdateLead(r.Context(), employeeID, position, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) UpdateLeadByID(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	var dto LeadDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	updated, err := h.Service.UpdateLeadByID(r.Context(), employeeID, chi.URLParam(r, "leadID"), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	position, appErr := h.URLParamInt(r, "position")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	if err := h.Service.DeleteLead(r.Context(), employeeID, position); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteLeadByID(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	if err := h.Service.DeleteLeadByID(r.Context(), employeeID, chi.URLParam(r, "leadID")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Report returns the dashboard figures. The hourly counts cover the selected
// date when one is given; the daily counts always cover every lead.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	date := r.URL.Query().Get("date")
	if appErr := validation.ValidateCalendarDate(date); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	leads, err := h.Service.ListLeads(r.Context(), employeeID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	onDate := FilterByDate(leads, date)

	h.WriteJSON(w, http.StatusOK, ReportResponse{
		EmployeeID:  employeeID,
		Date:        date,
		LeadsOnDate: len(onDate),
		TotalLeads:  len(leads),
		ByHour:      AggregateByHour(onDate),
		ByDay:       AggregateByDay(leads),
	})
}

// Export downloads the employee's leads as a spreadsheet.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	employeeID, appErr := h.URLParamInt64(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	owner, err := h.Service.GetEmployee(r.Context(), employeeID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	leads, err := h.Service.ListLeads(r.Context(), employeeID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, owner.FullName(), leads); err != nil {
		h.WriteAppError(w, internal.NewInternalError("failed to build spreadsheet", err))
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="leads-%d.xlsx"`, employeeID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Logger.Error("failed to write spreadsheet", "employee_id", employeeID, "error", err)
	}
}
