package middleware_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal/transport/middleware"
)

var _ = Describe("CORS", func() {
	var (
		reached bool
		handler http.Handler
	)

	BeforeEach(func() {
		reached = false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusTeapot)
		})
		handler = middleware.CORS("https://app.example.com, https://admin.example.com")(next)
	})

	serve := func(method, origin string, preflight bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/api/v1/employees", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		if preflight {
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	It("should allow a listed origin", func() {
		rec := serve(http.MethodGet, "https://admin.example.com", false)
		Expect(reached).To(BeTrue())
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://admin.example.com"))
	})

	It("should not allow an origin missing from the list", func() {
		rec := serve(http.MethodGet, "https://evil.example.com", false)
		Expect(reached).To(BeTrue())
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})

	It("should answer a preflight without calling the route", func() {
		rec := serve(http.MethodOptions, "https://app.example.com", true)
		Expect(reached).To(BeFalse())
		Expect(rec.Code).To(BeNumerically("<", http.StatusMultipleChoices))
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://app.example.com"))
		Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(Equal(http.MethodPost))
	})

	It("should pass a plain OPTIONS request through to the route", func() {
		rec := serve(http.MethodOptions, "https://app.example.com", false)
		Expect(reached).To(BeTrue())
		Expect(rec.Code).To(Equal(http.StatusTeapot))
	})

	It("should allow any origin with a wildcard", func() {
		handler = middleware.CORS("*")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		rec := serve(http.MethodGet, "https://anything.example.com", false)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})
})
