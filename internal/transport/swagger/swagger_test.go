package swagger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal/transport/swagger"
)

func TestSwagger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swagger Suite")
}

var _ = Describe("OpenAPI document", func() {
	It("should be a valid document", func() {
		doc, err := swagger.Load(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Info.Title).To(Equal("Lead Tracker API"))
	})

	It("should describe the lead routes", func() {
		doc, err := swagger.Load(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Paths.Find("/employees/{id}/leads")).NotTo(BeNil())
		Expect(doc.Paths.Find("/employees/{id}/leads/id/{leadID}")).NotTo(BeNil())
		Expect(doc.Paths.Find("/session/employee/login")).NotTo(BeNil())
	})

	It("should document the not found answer of a position update", func() {
		doc, err := swagger.Load(context.Background())
		Expect(err).NotTo(HaveOccurred())

		item := doc.Paths.Find("/employees/{id}/leads/{position}")
		Expect(item).NotTo(BeNil())
		Expect(item.Put.Responses.Value("404")).NotTo(BeNil())
		Expect(item.Put.Description).To(ContainSubstring("LEAD_NOT_FOUND"))
	})

	It("should be served as yaml", func() {
		rec := httptest.NewRecorder()
		swagger.DocumentHandler(rec, httptest.NewRequest(http.MethodGet, "/openapi.yml", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/yaml"))
		Expect(rec.Body.String()).To(HavePrefix("openapi: 3.0.3"))
	})
})
