package config_test

import (
	"os"
	"time"

	"strokescan/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		// run from a directory without a .env file
		wd, wdErr := os.Getwd()
		Expect(wdErr).NotTo(HaveOccurred())
		Expect(os.Chdir(GinkgoT().TempDir())).To(Succeed())
		DeferCleanup(os.Chdir, wd)

		for _, key := range []string{
			"API_PORT", "DB_DRIVER", "DB_CONNECTION_URL", "UPLOAD_DIR", "STORAGE_BACKEND",
			"S3_BUCKET", "MODEL_TIMEOUT", "SESSION_TTL", "COOKIE_SECURE", "MAX_UPLOAD_BYTES",
			"ADMIN_PASSWORD", "LOG_LEVEL",
		} {
			GinkgoT().Setenv(key, "")
		}
		GinkgoT().Setenv("SESSION_SECRET", "s3cret")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the session secret is set", func() {
		It("applies the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.DBDriver).To(Equal("sqlite"))
			Expect(app.DBConnectionURL).To(Equal("database.db"))
			Expect(app.UploadDir).To(Equal("static/uploaded_images"))
			Expect(app.StorageBackend).To(Equal(config.StorageLocal))
			Expect(app.ModelTimeout).To(Equal(10 * time.Second))
			Expect(app.SessionTTL).To(Equal(24 * time.Hour))
			Expect(app.CookieSecure).To(BeFalse())
			Expect(app.MaxUploadBytes).To(Equal(int64(10 << 20)))
			Expect(app.SessionSecret).To(Equal("s3cret"))
		})
	})

	When("the session secret is missing", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("SESSION_SECRET", "")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_SECRET")))
		})
	})

	When("values are overridden", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("API_PORT", "9090")
			GinkgoT().Setenv("DB_DRIVER", "postgres")
			GinkgoT().Setenv("SESSION_TTL", "30m")
			GinkgoT().Setenv("COOKIE_SECURE", "true")
			GinkgoT().Setenv("MAX_UPLOAD_BYTES", "1024")
		})

		It("uses them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9090"))
			Expect(app.DBDriver).To(Equal("postgres"))
			Expect(app.SessionTTL).To(Equal(30 * time.Minute))
			Expect(app.CookieSecure).To(BeTrue())
			Expect(app.MaxUploadBytes).To(Equal(int64(1024)))
		})
	})

	When("a duration is malformed", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("MODEL_TIMEOUT", "soon")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("MODEL_TIMEOUT")))
		})
	})

	When("a duration is not positive", func() {
		DescribeTable("fails",
			func(key, value string) {
				GinkgoT().Setenv(key, value)

				_, err := config.NewApp()
				Expect(err).To(MatchError(ContainSubstring(key)))
				Expect(err).To(MatchError(ContainSubstring("must be positive")))
			},
			Entry("zero session ttl", "SESSION_TTL", "0s"),
			Entry("negative session ttl", "SESSION_TTL", "-1h"),
			Entry("zero model timeout", "MODEL_TIMEOUT", "0"),
		)
	})

	When("the s3 backend has no bucket", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("STORAGE_BACKEND", "s3")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("S3_BUCKET")))
		})
	})

	When("the storage backend is unknown", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("STORAGE_BACKEND", "ftp")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("STORAGE_BACKEND")))
		})
	})
})
