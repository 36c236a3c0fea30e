package cmd

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"strokescan/internal/classifier"
	classifierFake "strokescan/internal/classifier/fake"
	"strokescan/internal/core"
	"strokescan/internal/db"
	"strokescan/internal/http/handler"
	"strokescan/internal/http/handler/middleware"
	"strokescan/internal/http/payload"
	"strokescan/internal/http/view"
	"strokescan/internal/metrics"
	"strokescan/internal/repository"
	"strokescan/internal/storage"
	"strokescan/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var imageSrc = regexp.MustCompile(`src="(/uploads/[^"]+)"`)

func scanPNG() []byte {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	var buf bytes.Buffer
	Expect(png.Encode(&buf, img)).To(Succeed())
	return buf.Bytes()
}

type browser struct {
	base   string
	client *http.Client
}

func newBrowser(base string) *browser {
	jar, err := cookiejar.New(nil)
	Expect(err).NotTo(HaveOccurred())

	return &browser{
		base: base,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *browser) get(path string) (*http.Response, string) {
	resp, err := b.client.Get(b.base + path)
	Expect(err).NotTo(HaveOccurred())
	return resp, readBody(resp)
}

func (b *browser) post(path string, values url.Values) (*http.Response, string) {
	resp, err := b.client.PostForm(b.base+path, values)
	Expect(err).NotTo(HaveOccurred())
	return resp, readBody(resp)
}

func (b *browser) upload(filename string, data []byte) (*http.Response, string) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("photo", filename)
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(data)
	Expect(err).NotTo(HaveOccurred())
	Expect(mw.Close()).To(Succeed())

	resp, err := b.client.Post(b.base+"/upload", mw.FormDataContentType(), &body)
	Expect(err).NotTo(HaveOccurred())
	return resp, readBody(resp)
}

func (b *browser) login(username, password string) *http.Response {
	resp, _ := b.post("/login", url.Values{"username": {username}, "password": {password}})
	return resp
}

func readBody(resp *http.Response) string {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return string(body)
}

func signupForm(username, password string) url.Values {
	return url.Values{
		"name":     {strings.ToUpper(username[:1]) + username[1:]},
		"email":    {username + "@example.com"},
		"mobile":   {"0123456789"},
		"username": {username},
		"password": {password},
	}
}

var _ = Describe("Router", func() {
	var (
		ctx       context.Context
		dbConn    *db.GormDB
		repo      *repository.PredictionRepository
		fakeModel *classifierFake.Model
		registry  *prometheus.Registry
		srv       *httptest.Server
		uploadDir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger := zap.NewNop().Sugar()
		dir := GinkgoT().TempDir()

		var err error
		dbConn, err = db.Open(logger, db.DriverSQLite, filepath.Join(dir, "strokescan.db"))
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewPredictionRepository(dbConn)
		admin, err := core.NewAdminUser("admin-pw")
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.MigrateAndSeed(ctx, admin)).To(Succeed())

		uploadDir = filepath.Join(dir, "uploads")
		images, err := storage.NewLocalStore(uploadDir)
		Expect(err).NotTo(HaveOccurred())

		registry = prometheus.NewRegistry()
		appMetrics := metrics.New(registry)

		fakeModel = new(classifierFake.Model)
		fakeModel.PredictReturns([]float32{0.1, 0.2, 0.7}, nil)

		scan := core.NewStrokeScan(
			logger,
			repo,
			jwt.NewJWTService([]byte("test-secret")),
			classifier.NewClassifier(logger, fakeModel, appMetrics),
			images,
			time.Hour)

		renderer, err := view.NewRenderer()
		Expect(err).NotTo(HaveOccurred())

		cookie := middleware.SessionCookie{TTL: time.Hour}
		pages := handler.NewPageHandler(logger, payload.DecodeValidator{}, scan, renderer, appMetrics, cookie, 1<<20)

		srv = httptest.NewServer(newRouter(logger, pages, scan, cookie, appMetrics, registry))
	})

	AfterEach(func() {
		srv.Close()
		Expect(dbConn.Close()).To(Succeed())
	})

	It("should sign up once per username", func() {
		b := newBrowser(srv.URL)

		_, body := b.post("/signup", signupForm("alice", "pw1"))
		Expect(body).To(ContainSubstring("Account successfully created"))

		_, body = b.post("/signup", signupForm("alice", "other"))
		Expect(body).To(ContainSubstring("User already exists!"))

		users, err := repo.ListUsers(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(users).To(HaveLen(2))
	})

	It("should only log in with the right password", func() {
		b := newBrowser(srv.URL)
		b.post("/signup", signupForm("alice", "pw1"))

		resp, body := b.post("/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("Invalid username or password!"))

		resp = b.login("alice", "pw1")
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/home"))

		resp = b.login("admin", "admin-pw")
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/landing_admin"))
	})

	It("should keep anonymous users and non-admins out", func() {
		b := newBrowser(srv.URL)

		for _, path := range []string{"/upload", "/admin", "/landing_admin", "/uploads/x.png"} {
			resp, _ := b.get(path)
			Expect(resp.StatusCode).To(Equal(http.StatusFound), path)
			Expect(resp.Header.Get("Location")).To(Equal("/login"), path)
		}

		b.post("/signup", signupForm("bob", "pw"))
		Expect(b.login("bob", "pw").StatusCode).To(Equal(http.StatusFound))

		resp, _ := b.get("/upload")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		resp, _ = b.get("/admin")
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/login"))
	})

	It("should classify an upload and record it for the session user", func() {
		b := newBrowser(srv.URL)
		b.post("/signup", signupForm("bob", "pw"))
		b.login("bob", "pw")

		resp, body := b.upload("Scan.PNG", scanPNG())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`<span id="label">normal</span>`))

		bob, err := repo.GetUser(ctx, "bob")
		Expect(err).NotTo(HaveOccurred())

		predictions, err := repo.GetUserPredictions(ctx, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(predictions).To(HaveLen(1))
		Expect(predictions[0].UserID).To(Equal(bob.ID))
		Expect(predictions[0].Label).To(Equal(classifier.LabelNormal))
		Expect(predictions[0].ImageName).To(HaveSuffix(".png"))

		match := imageSrc.FindStringSubmatch(body)
		Expect(match).To(HaveLen(2))
		resp, served := b.get(match[1])
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Header.Get("Content-Type")).To(Equal("image/png"))
		Expect([]byte(served)).To(Equal(scanPNG()))

		Expect(fakeModel.PredictCallCount()).To(Equal(1))
		_, tensor := fakeModel.PredictArgsForCall(0)
		Expect(tensor.Shape).To(Equal([]int{1, 256, 256, 1}))
	})

	It("should reject uploads that are not images", func() {
		b := newBrowser(srv.URL)
		b.post("/signup", signupForm("bob", "pw"))
		b.login("bob", "pw")

		resp, _ := b.upload("notes.txt", []byte("just text"))
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(fakeModel.PredictCallCount()).To(Equal(0))

		stored, err := os.ReadDir(uploadDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(BeEmpty())
	})

	It("should reject images declaring huge dimensions without storing them", func() {
		b := newBrowser(srv.URL)
		b.post("/signup", signupForm("bob", "pw"))
		b.login("bob", "pw")

		var bomb bytes.Buffer
		Expect(png.Encode(&bomb, image.NewGray(image.Rect(0, 0, classifier.MaxDimension+1, 1)))).To(Succeed())

		resp, _ := b.upload("wide.png", bomb.Bytes())
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(fakeModel.PredictCallCount()).To(Equal(0))

		stored, err := os.ReadDir(uploadDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(BeEmpty())
	})

	It("should serve an image uploaded under a markup name as an image", func() {
		b := newBrowser(srv.URL)
		b.post("/signup", signupForm("bob", "pw"))
		b.login("bob", "pw")

		resp, body := b.upload("scan.html", scanPNG())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		match := imageSrc.FindStringSubmatch(body)
		Expect(match).To(HaveLen(2))
		Expect(match[1]).To(HaveSuffix(".png"))

		resp, _ = b.get(match[1])
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Header.Get("Content-Type")).To(HavePrefix("image/"))

		resp, _ = b.get(strings.TrimSuffix(match[1], ".png") + ".html")
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("should let the admin remove a user together with their predictions", func() {
		user := newBrowser(srv.URL)
		user.post("/signup", signupForm("bob", "pw"))
		user.login("bob", "pw")
		user.upload("scan.png", scanPNG())

		bob, err := repo.GetUser(ctx, "bob")
		Expect(err).NotTo(HaveOccurred())

		admin := newBrowser(srv.URL)
		admin.login("admin", "admin-pw")

		resp, body := admin.get("/admin")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("bob@example.com"))
		Expect(body).To(ContainSubstring("data:image/png;base64,"))

		resp, _ = admin.post("/admin", url.Values{"username": {"bob"}})
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/admin"))

		_, err = repo.GetUser(ctx, "bob")
		Expect(err).To(MatchError(repository.ErrUserNotFound))

		predictions, err := repo.GetUserPredictions(ctx, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(predictions).To(BeEmpty())

		// the removed user's session is no longer honoured
		resp, _ = user.get("/upload")
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/login"))
	})

	It("should log out", func() {
		b := newBrowser(srv.URL)
		b.post("/signup", signupForm("bob", "pw"))
		b.login("bob", "pw")

		resp, _ := b.post("/logout", url.Values{})
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/landing"))

		resp, _ = b.get("/upload")
		Expect(resp.StatusCode).To(Equal(http.StatusFound))
	})

	It("should expose health and request metrics", func() {
		b := newBrowser(srv.URL)

		resp, body := b.get("/healthz")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(Equal("ok"))

		resp, _ = b.get("/landing")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Header.Get("X-Request-ID")).NotTo(BeEmpty())

		_, body = b.get("/metrics")
		Expect(body).To(ContainSubstring(`strokescan_http_requests_total{method="GET",path="GET /landing",status="200"} 1`))
	})
})
