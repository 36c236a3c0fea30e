package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"strokescan/internal/core"
	"strokescan/internal/http/handler/middleware"
	"strokescan/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestID", func() {
	It("should put a request id on the context and the response", func() {
		var seen string
		h := middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFromContext(r.Context())
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(seen).NotTo(BeEmpty())
		Expect(w.Header().Get("X-Request-ID")).To(Equal(seen))
	})

	It("should be empty outside a request", func() {
		Expect(middleware.RequestIDFromContext(context.Background())).To(BeEmpty())
	})
})

var _ = Describe("Logging", func() {
	It("should pass the response through", func() {
		h := middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(w.Code).To(Equal(http.StatusTeapot))
		Expect(w.Body.String()).To(Equal("short and stout"))
	})
})

var _ = Describe("Metrics", func() {
	var (
		observer *fake.RequestObserver
		mux      *http.ServeMux
		h        http.Handler
	)

	BeforeEach(func() {
		observer = new(fake.RequestObserver)
		mux = http.NewServeMux()
		mux.HandleFunc("GET /uploads/{name}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		h = middleware.NewMetricsMiddleware(observer).Metrics(mux)
	})

	It("should label requests by route pattern", func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/uploads/abc.png", nil))

		Expect(observer.ObserveRequestCallCount()).To(Equal(1))
		path, method, status, _ := observer.ObserveRequestArgsForCall(0)
		Expect(path).To(Equal("GET /uploads/{name}"))
		Expect(method).To(Equal(http.MethodGet))
		Expect(status).To(Equal(http.StatusNotFound))
	})

	It("should group unmatched requests", func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

		path, _, status, _ := observer.ObserveRequestArgsForCall(0)
		Expect(path).To(Equal("unmatched"))
		Expect(status).To(Equal(http.StatusNotFound))
	})
})

var _ = Describe("SessionMiddleware", func() {
	var (
		resolver *fake.SessionResolver
		m        *middleware.SessionMiddleware
		cookie   middleware.SessionCookie
		w        *httptest.ResponseRecorder
		req      *http.Request

		seen    core.Session
		hasSeen bool
		called  bool
		next    http.Handler
	)

	BeforeEach(func() {
		resolver = new(fake.SessionResolver)
		cookie = middleware.SessionCookie{TTL: time.Hour}
		m = middleware.NewSessionMiddleware(zap.NewNop().Sugar(), resolver, cookie)
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/upload", nil)

		called = false
		seen, hasSeen = core.Session{}, false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			seen, hasSeen = middleware.SessionFromContext(r.Context())
		})
	})

	Describe("Session", func() {
		JustBeforeEach(func() {
			m.Session(next).ServeHTTP(w, req)
		})

		When("there is no cookie", func() {
			It("should continue anonymously", func() {
				Expect(called).To(BeTrue())
				Expect(hasSeen).To(BeFalse())
				Expect(resolver.ResolveSessionCallCount()).To(Equal(0))
			})
		})

		When("the cookie holds a valid token", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "token"})
				resolver.ResolveSessionReturns(core.Session{UserID: 3, Username: "bob", Role: core.RoleUser}, nil)
			})

			It("should put the session on the context", func() {
				Expect(hasSeen).To(BeTrue())
				Expect(seen.Username).To(Equal("bob"))
				_, token := resolver.ResolveSessionArgsForCall(0)
				Expect(token).To(Equal("token"))
				Expect(w.Result().Cookies()).To(BeEmpty())
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "expired"})
				resolver.ResolveSessionReturns(core.Session{}, core.ErrInvalidSession)
			})

			It("should clear the cookie and continue anonymously", func() {
				Expect(called).To(BeTrue())
				Expect(hasSeen).To(BeFalse())

				cookies := w.Result().Cookies()
				Expect(cookies).To(HaveLen(1))
				Expect(cookies[0].Name).To(Equal(middleware.SessionCookieName))
				Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
			})
		})

		When("resolution fails for another reason", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "token"})
				resolver.ResolveSessionReturns(core.Session{}, errors.New("db down"))
			})

			It("should keep the cookie", func() {
				Expect(called).To(BeTrue())
				Expect(hasSeen).To(BeFalse())
				Expect(w.Result().Cookies()).To(BeEmpty())
			})
		})
	})

	Describe("RequireSession", func() {
		It("should redirect anonymous requests to login", func() {
			m.RequireSession(next).ServeHTTP(w, req)

			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/login"))
		})

		It("should let sessions through", func() {
			req = req.WithContext(middleware.WithSession(req.Context(), core.Session{Username: "bob", Role: core.RoleUser}))
			m.RequireSession(next).ServeHTTP(w, req)

			Expect(called).To(BeTrue())
		})
	})

	Describe("RequireAdmin", func() {
		It("should redirect anonymous requests to login", func() {
			m.RequireAdmin(next).ServeHTTP(w, req)

			Expect(called).To(BeFalse())
			Expect(w.Header().Get("Location")).To(Equal("/login"))
		})

		It("should redirect ordinary users to login", func() {
			req = req.WithContext(middleware.WithSession(req.Context(), core.Session{Username: "bob", Role: core.RoleUser}))
			m.RequireAdmin(next).ServeHTTP(w, req)

			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/login"))
		})

		It("should let the admin through", func() {
			req = req.WithContext(middleware.WithSession(req.Context(), core.Session{Username: "admin", Role: core.RoleAdmin}))
			m.RequireAdmin(next).ServeHTTP(w, req)

			Expect(called).To(BeTrue())
		})
	})
})

var _ = Describe("SessionCookie", func() {
	It("should set an http only lax cookie", func() {
		w := httptest.NewRecorder()
		middleware.SessionCookie{TTL: 2 * time.Hour, Secure: true}.Set(w, "signed")

		cookies := w.Result().Cookies()
		Expect(cookies).To(HaveLen(1))
		c := cookies[0]
		Expect(c.Name).To(Equal("strokescan_session"))
		Expect(c.Value).To(Equal("signed"))
		Expect(c.HttpOnly).To(BeTrue())
		Expect(c.Secure).To(BeTrue())
		Expect(c.SameSite).To(Equal(http.SameSiteLaxMode))
		Expect(c.MaxAge).To(Equal(7200))
	})
})
