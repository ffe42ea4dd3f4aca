package lead_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/lead"
)

// mockLeadService is a hand-written stand-in for lead.ServiceAPI
type mockLeadService struct {
	owner        *employee.Employee
	leads        []*lead.Lead
	lastPosition int
	lastLeadID   string
	updateErr    error
}

func (m *mockLeadService) GetEmployee(_ context.Context, id int64) (*employee.Employee, error) {
	if m.owner == nil || m.owner.ID != id {
		return nil, internal.ErrEmployeeNotFound
	}
	return m.owner, nil
}

func (m *mockLeadService) ListLeads(context.Context, int64) ([]*lead.Lead, error) {
	return m.leads, nil
}

func (m *mockLeadService) ListAllLeads(context.Context) (map[int64][]*lead.Lead, error) {
	return map[int64][]*lead.Lead{m.owner.ID: m.leads}, nil
}

func (m *mockLeadService) FilterLeadsByDate(_ context.Context, _ int64, date string) ([]*lead.Lead, error) {
	return lead.FilterByDate(m.leads, date), nil
}

func (m *mockLeadService) AddLead(_ context.Context, _ int64, dto lead.LeadDTO) (*lead.Lead, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}
	l := &lead.Lead{ID: "new", Name: dto.Name}
	m.leads = append(m.leads, l)
	return l, nil
}

func (m *mockLeadService) UpdateLead(_ context.Context, _ int64, position int, dto lead.LeadDTO) (*lead.Lead, error) {
	m.lastPosition = position
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &lead.Lead{Name: dto.Name}, nil
}

func (m *mockLeadService) UpdateLeadByID(_ context.Context, _ int64, leadID string, dto lead.LeadDTO) (*lead.Lead, error) {
	m.lastLeadID = leadID
	return &lead.Lead{ID: leadID, Name: dto.Name}, nil
}

func (m *mockLeadService) DeleteLead(_ context.Context, _ int64, position int) error {
	m.lastPosition = position
	return nil
}

func (m *mockLeadService) DeleteLeadByID(_ context.Context, _ int64, leadID string) error {
	m.lastLeadID = leadID
	return nil
}

var _ = Describe("Handler", func() {
	var (
		svc    *mockLeadService
		router *chi.Mux
	)

	BeforeEach(func() {
		svc = &mockLeadService{
			owner: &employee.Employee{ID: 2, FirstName: "John", LastName: "Roe"},
			leads: []*lead.Lead{
				stamped("2024-04-01", 9),
				stamped("2024-04-02", 9),
				stamped("2024-04-02", 15),
			},
		}
		handler := lead.NewHandler(svc)
		router = chi.NewRouter()
		router.Get("/leads", handler.ListAllLeads)
		router.Route("/employees/{id}/leads", func(r chi.Router) {
			r.Get("/", handler.ListLeads)
			r.Post("/", handler.CreateLead)
			r.Get("/report", handler.Report)
			r.Get("/export", handler.Export)
			r.Put("/{position}", handler.UpdateLead)
			r.Delete("/{position}", handler.DeleteLead)
			r.Put("/id/{leadID}", handler.UpdateLeadByID)
			r.Delete("/id/{leadID}", handler.DeleteLeadByID)
		})
	})

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	It("should filter the list by date", func() {
		rec := serve(http.MethodGet, "/employees/2/leads?date=2024-04-02", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp lead.LeadsResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.EmployeeID).To(Equal(int64(2)))
		Expect(resp.Leads).To(HaveLen(2))
	})

	It("should build the dashboard report", func() {
		rec := serve(http.MethodGet, "/employees/2/leads/report?date=2024-04-02", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var report lead.ReportResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &report)).To(Succeed())
		Expect(report.LeadsOnDate).To(Equal(2))
		Expect(report.TotalLeads).To(Equal(3))
		Expect(report.ByHour).To(Equal([]lead.HourCount{{Hour: 9, Count: 1}, {Hour: 15, Count: 1}}))
		Expect(report.ByDay).To(HaveLen(2))
	})

	It("should reject a malformed report date", func() {
		rec := serve(http.MethodGet, "/employees/2/leads/report?date=yesterday", "")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring(`"code":"INVALID_DATE"`))
	})

	It("should validate new leads", func() {
		rec := serve(http.MethodPost, "/employees/2/leads", `{"name":"Ann"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should pass the position through", func() {
		rec := serve(http.MethodPut, "/employees/2/leads/1", `{"name":"Ann"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(svc.lastPosition).To(Equal(1))

		rec = serve(http.MethodDelete, "/employees/2/leads/2", "")
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(svc.lastPosition).To(Equal(2))
	})

	It("should reject a negative position", func() {
		rec := serve(http.MethodDelete, "/employees/2/leads/-1", "")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should answer 404 when the position holds no lead", func() {
		svc.updateErr = internal.ErrLeadNotFound
		rec := serve(http.MethodPut, "/employees/2/leads/9", `{"name":"Ann"}`)
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should address leads by id", func() {
		rec := serve(http.MethodPut, "/employees/2/leads/id/abc", `{"name":"Ann"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(svc.lastLeadID).To(Equal("abc"))

		rec = serve(http.MethodDelete, "/employees/2/leads/id/def", "")
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(svc.lastLeadID).To(Equal("def"))
	})

	It("should download a spreadsheet", func() {
		rec := serve(http.MethodGet, "/employees/2/leads/export", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
		Expect(rec.Header().Get("Content-Disposition")).To(ContainSubstring("leads-2.xlsx"))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))
	})

	It("should answer 404 when exporting an unknown employee", func() {
		rec := serve(http.MethodGet, "/employees/3/leads/export", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should list every employee's leads", func() {
		rec := serve(http.MethodGet, "/leads", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"2":[`))
	})
})
