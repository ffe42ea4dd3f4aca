package lead_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal/lead"
)

func stamped(date string, hour int) *lead.Lead {
	return &lead.Lead{Name: "x", Date: date, Hour: hour}
}

var _ = Describe("Report", func() {
	var leads []*lead.Lead

	BeforeEach(func() {
		leads = []*lead.Lead{
			stamped("2024-04-02", 14),
			stamped("2024-04-01", 9),
			stamped("2024-04-02", 9),
			stamped("2024-04-03", 14),
			stamped("2024-04-02", 23),
		}
	})

	Describe("AggregateByHour", func() {
		It("should count leads per hour in ascending order", func() {
			Expect(lead.AggregateByHour(leads)).To(Equal([]lead.HourCount{
				{Hour: 9, Count: 2},
				{Hour: 14, Count: 2},
				{Hour: 23, Count: 1},
			}))
		})

		It("should not depend on input order", func() {
			reversed := make([]*lead.Lead, len(leads))
			for i, l := range leads {
				reversed[len(leads)-1-i] = l
			}
			Expect(lead.AggregateByHour(reversed)).To(Equal(lead.AggregateByHour(leads)))
		})

		It("should return an empty result for no leads", func() {
			Expect(lead.AggregateByHour(nil)).To(BeEmpty())
		})
	})

	Describe("AggregateByDay", func() {
		It("should count leads per date in ascending order", func() {
			Expect(lead.AggregateByDay(leads)).To(Equal([]lead.DayCount{
				{Date: "2024-04-01", Count: 1},
				{Date: "2024-04-02", Count: 3},
				{Date: "2024-04-03", Count: 1},
			}))
		})

		It("should add up to the number of leads", func() {
			total := 0
			for _, dc := range lead.AggregateByDay(leads) {
				total += dc.Count
			}
			Expect(total).To(Equal(len(leads)))
		})
	})

	Describe("FilterByDate", func() {
		It("should keep only the leads of that date in order", func() {
			filtered := lead.FilterByDate(leads, "2024-04-02")
			Expect(filtered).To(HaveLen(3))
			Expect(filtered[0]).To(BeIdenticalTo(leads[0]))
			Expect(filtered[2]).To(BeIdenticalTo(leads[4]))
		})

		It("should return a copy of everything for an empty date", func() {
			filtered := lead.FilterByDate(leads, "")
			Expect(filtered).To(Equal(leads))

			filtered[0] = nil
			Expect(leads[0]).NotTo(BeNil())
		})

		It("should return nothing for a date without leads", func() {
			Expect(lead.FilterByDate(leads, "2023-01-01")).To(BeEmpty())
		})
	})
})
