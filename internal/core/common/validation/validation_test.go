package validation_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/core/common/validation"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

func fieldCodes(appErr *internal.AppError) map[string]string {
	codes := map[string]string{}
	for _, e := range appErr.Details.(internal.ValidationErrors).Errors {
		codes[e.Field] = e.Code
	}
	return codes
}

var _ = Describe("ValidationBuilder", func() {
	It("should pass when every rule holds", func() {
		v := validation.NewValidator()
		v.Field("name", "Jane").Required().MaxLength(10)
		v.Field("department", "IPS").OneOf(internal.ErrCodeInvalidDepartment, "IPS", "GMEC")
		Expect(v.Validate()).To(BeNil())
	})

	It("should collect one entry per failed rule", func() {
		v := validation.NewValidator()
		v.Field("name", " ").Required()
		v.Field("department", "ACME").Required().OneOf(internal.ErrCodeInvalidDepartment, "IPS", "GMEC")
		v.Field("city", "a very long city name").MaxLength(5)

		appErr := v.Validate()
		Expect(appErr).NotTo(BeNil())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		Expect(fieldCodes(appErr)).To(Equal(map[string]string{
			"name":       string(internal.ErrCodeRequiredField),
			"department": string(internal.ErrCodeInvalidDepartment),
			"city":       string(internal.ErrCodeValidationFailed),
		}))
	})

	It("should leave empty values to Required", func() {
		v := validation.NewValidator()
		v.Field("department", "").OneOf(internal.ErrCodeInvalidDepartment, "IPS")
		v.Field("date", "").CalendarDate()
		Expect(v.Validate()).To(BeNil())
	})

	It("should run custom rules", func() {
		v := validation.NewValidator()
		v.Field("position", -1).Custom(func(value interface{}) *internal.AppError {
			if value.(int) < 0 {
				return internal.NewValidationFieldError("position", "position must not be negative", internal.ErrCodeInvalidID)
			}
			return nil
		})

		appErr := v.Validate()
		Expect(appErr).NotTo(BeNil())
		Expect(appErr.GetDetailedMessage()).To(Equal("position must not be negative"))
	})
})

var _ = Describe("ValidateCalendarDate", func() {
	It("should accept YYYY-MM-DD and the empty string", func() {
		Expect(validation.ValidateCalendarDate("2024-02-29")).To(BeNil())
		Expect(validation.ValidateCalendarDate("")).To(BeNil())
	})

	It("should reject other layouts and impossible dates", func() {
		for _, date := range []string{"2024/02/01", "01-02-2024", "2023-02-29", "today"} {
			appErr := validation.ValidateCalendarDate(date)
			Expect(appErr).NotTo(BeNil(), date)
			Expect(fieldCodes(appErr)).To(HaveKeyWithValue("date", string(internal.ErrCodeInvalidDate)))
		}
	})
})
