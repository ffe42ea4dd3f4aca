package lead_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/lead"
)

func completeForm() lead.LeadDTO {
	return lead.LeadDTO{
		Name:     "Ann",
		Email:    "ann@acme.com",
		Phone:    "0800",
		Status:   "new",
		JobTitle: "CTO",
		Company:  "Acme",
		City:     "Jakarta",
		Message:  "call back",
	}
}

var _ = Describe("Lead", func() {
	Describe("NewLead", func() {
		It("should stamp date, time and hour from the given instant", func() {
			now := time.Date(2024, 12, 31, 23, 59, 58, 0, time.UTC)
			l := lead.NewLead(completeForm(), now)

			Expect(l.ID).NotTo(BeEmpty())
			Expect(l.Date).To(Equal("2024-12-31"))
			Expect(l.Time).To(Equal("23:59:58"))
			Expect(l.Hour).To(Equal(23))
		})

		It("should give every lead its own id", func() {
			now := time.Now()
			Expect(lead.NewLead(completeForm(), now).ID).NotTo(Equal(lead.NewLead(completeForm(), now).ID))
		})
	})

	Describe("Apply", func() {
		It("should keep the id and re-stamp", func() {
			l := lead.NewLead(completeForm(), time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
			id := l.ID

			form := completeForm()
			form.Status = "won"
			l.Apply(form, time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC))

			Expect(l.ID).To(Equal(id))
			Expect(l.Status).To(Equal("won"))
			Expect(l.Date).To(Equal("2024-01-02"))
			Expect(l.Hour).To(Equal(0))
		})
	})

	Describe("data model mapping", func() {
		It("should round trip every field", func() {
			l := lead.NewLead(completeForm(), time.Now())
			Expect(lead.FromDataModel(lead.ToDataModel(l))).To(Equal(l))
			Expect(lead.FromLead(l)).To(Equal(completeForm()))
		})
	})

	Describe("LeadDTO", func() {
		It("should accept a complete form", func() {
			Expect(completeForm().Validate()).To(BeNil())
		})

		It("should name every whitespace-only field", func() {
			form := completeForm()
			form.City = "  "
			form.Company = ""

			appErr := form.Normalize().Validate()
			Expect(appErr).NotTo(BeNil())
			details := appErr.Details.(internal.ValidationErrors)
			fields := []string{}
			for _, e := range details.Errors {
				fields = append(fields, e.Field)
			}
			Expect(fields).To(ConsistOf("company", "city"))
		})
	})
})
