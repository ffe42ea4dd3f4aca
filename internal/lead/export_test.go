package lead_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/frahmantamala/lead-tracker/internal/lead"
)

var _ = Describe("WriteXLSX", func() {
	It("should write the leads and both count sheets", func() {
		leads := []*lead.Lead{
			{ID: "a", Name: "Ann", Company: "Acme", Date: "2024-04-01", Time: "09:15:00", Hour: 9},
			{ID: "b", Name: "Bob", Company: "Globex", Date: "2024-04-02", Time: "14:00:00", Hour: 14},
			{ID: "c", Name: "Cid", Company: "Initech", Date: "2024-04-02", Time: "09:45:00", Hour: 9},
		}

		var buf bytes.Buffer
		Expect(lead.WriteXLSX(&buf, "Jane Doe", leads)).To(Succeed())

		f, err := excelize.OpenReader(&buf)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		Expect(f.GetSheetList()).To(Equal([]string{"Leads", "By Hour", "By Day"}))

		title, err := f.GetCellValue("Leads", "A1")
		Expect(err).NotTo(HaveOccurred())
		Expect(title).To(Equal("Leads of Jane Doe"))

		rows, err := f.GetRows("Leads")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(5))
		Expect(rows[1][1]).To(Equal("Name"))
		Expect(rows[3][1]).To(Equal("Bob"))

		hours, err := f.GetRows("By Hour")
		Expect(err).NotTo(HaveOccurred())
		Expect(hours).To(Equal([][]string{{"Hour", "Leads"}, {"09:00", "2"}, {"14:00", "1"}}))

		days, err := f.GetRows("By Day")
		Expect(err).NotTo(HaveOccurred())
		Expect(days).To(Equal([][]string{{"Date", "Leads"}, {"2024-04-01", "1"}, {"2024-04-02", "2"}}))
	})

	It("should write only headers for an employee without leads", func() {
		var buf bytes.Buffer
		Expect(lead.WriteXLSX(&buf, "Nobody", nil)).To(Succeed())

		f, err := excelize.OpenReader(&buf)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Leads")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
	})
})
