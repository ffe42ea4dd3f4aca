package internal_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/lead-tracker/internal"
)

func TestInternal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Suite")
}

var _ = Describe("AppError", func() {
	It("should still match its sentinel after WithCause", func() {
		err := internal.ErrLeadNotFound.WithCause(errors.New("position 4"))
		Expect(errors.Is(err, internal.ErrLeadNotFound)).To(BeTrue())
		Expect(errors.Is(err, internal.ErrEmployeeNotFound)).To(BeFalse())
		Expect(internal.ErrLeadNotFound.Cause).To(BeNil())
	})

	It("should classify wrapped errors", func() {
		wrapped := errors.Join(errors.New("context"), internal.ErrEmployeeNotFound)
		Expect(internal.IsNotFound(wrapped)).To(BeTrue())
		Expect(internal.IsValidation(wrapped)).To(BeFalse())
		Expect(internal.IsNotFound(errors.New("plain"))).To(BeFalse())
	})

	It("should render as an error envelope without the cause", func() {
		appErr := internal.NewStorageError("write leads", errors.New("disk full"))
		status, body := appErr.ToHTTPResponse()
		Expect(status).To(Equal(http.StatusInternalServerError))

		data, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`{"error":{"type":"INTERNAL_ERROR","code":"STORAGE_FAILURE","message":"storage write leads failed"}}`))
		Expect(appErr.Error()).To(ContainSubstring("disk full"))
	})

	It("should report the first field message", func() {
		appErr := internal.NewValidationFieldError("email", "email is required", internal.ErrCodeRequiredField)
		Expect(appErr.Error()).To(Equal("email is required"))
		Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
	})
})

var _ = Describe("Context helpers", func() {
	It("should carry the session identity", func() {
		ctx := internal.ContextWithEmployeeID(context.Background(), 4)
		ctx = internal.ContextWithAdmin(ctx, true)
		Expect(internal.EmployeeIDFromContext(ctx)).To(Equal(int64(4)))
		Expect(internal.IsAdminFromContext(ctx)).To(BeTrue())
		Expect(internal.EmployeeIDFromContext(context.Background())).To(BeZero())
	})

	It("should default the timeout", func() {
		ctx, cancel := internal.WithTimeout(context.Background(), 0)
		defer cancel()
		deadline, ok := ctx.Deadline()
		Expect(ok).To(BeTrue())
		Expect(time.Until(deadline)).To(BeNumerically("~", 5*time.Second, time.Second))
	})
})

var _ = Describe("Config", func() {
	validConfig := func() *internal.Config {
		return &internal.Config{
			Server: internal.ServerConfig{
				AllowedOrigins:    "*",
				ReadHeaderTimeout: time.Second,
				ReadTimeout:       5 * time.Second,
			},
			Storage: internal.StorageConfig{Driver: internal.StorageDriverMemory},
			Session: internal.SessionConfig{
				AdminEmail:           "admin@leads.local",
				AdminPasswordHash:    "hash",
				EmployeePasswordHash: "hash",
			},
			Logging: internal.LoggingConfig{Level: "info", Format: "json"},
		}
	}

	It("should accept a complete configuration", func() {
		Expect(validConfig().Validate()).To(Succeed())
	})

	It("should require a source for sql drivers", func() {
		cfg := validConfig()
		cfg.Storage.Driver = internal.StorageDriverSQLite
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("source is required")))
	})

	It("should reject unknown drivers and log levels", func() {
		cfg := validConfig()
		cfg.Storage.Driver = "mongo"
		cfg.Logging.Level = "loud"
		err := cfg.Validate()
		Expect(err).To(MatchError(ContainSubstring("unknown driver")))
		Expect(err).To(MatchError(ContainSubstring("unknown level")))
	})

	It("should require the session credentials", func() {
		cfg := validConfig()
		cfg.Session.AdminPasswordHash = ""
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("admin_password_hash")))
	})

	Describe("LoadConfigFromEnv", func() {
		AfterEach(func() {
			os.Unsetenv("STORAGE_DRIVER")
			os.Unsetenv("HTTP_PORT")
			os.Unsetenv("REDIS_DB")
		})

		It("should read overrides and keep defaults", func() {
			os.Setenv("STORAGE_DRIVER", "redis")
			os.Setenv("HTTP_PORT", "9090")
			os.Setenv("REDIS_DB", "not-a-number")

			cfg := internal.LoadConfigFromEnv()
			Expect(cfg.Storage.Driver).To(Equal(internal.StorageDriverRedis))
			Expect(cfg.Server.Port).To(Equal(9090))
			Expect(cfg.Storage.Redis.DB).To(Equal(0))
			Expect(cfg.Storage.Redis.KeyPrefix).To(Equal("lead-tracker:"))
		})
	})
})
