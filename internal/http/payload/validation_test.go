package payload_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"strokescan/internal/core"
	"strokescan/internal/http/payload"

	"github.com/jellydator/validation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	Describe("SignupRequest", func() {
		var (
			values url.Values
			req    payload.SignupRequest
			err    error
		)

		BeforeEach(func() {
			req = payload.SignupRequest{}
			values = url.Values{
				"name":     {"  Alice  "},
				"email":    {"alice@example.com"},
				"mobile":   {"0123456789"},
				"username": {"alice"},
				"password": {" secret "},
			}
		})

		JustBeforeEach(func() {
			err = dv.DecodeAndValidateForm(postForm(values), &req)
		})

		It("should decode and trim the form", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(req.ToCoreSignupMessage()).To(Equal(core.SignupMessage{
				Name:     "Alice",
				Email:    "alice@example.com",
				Mobile:   "0123456789",
				Username: "alice",
				Password: " secret ",
			}))
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				values.Set("email", "alice")
			})

			It("should fail with a field error", func() {
				var verrs validation.Errors
				Expect(err).To(HaveOccurred())
				Expect(errors.As(err, &verrs)).To(BeTrue())
				Expect(verrs).To(HaveKey("Email"))
			})
		})

		When("the mobile number has letters", func() {
			BeforeEach(func() {
				values.Set("mobile", "01234abc")
			})

			It("should fail", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("the username has spaces", func() {
			BeforeEach(func() {
				values.Set("username", "al ice")
			})

			It("should fail", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("a field is missing", func() {
			BeforeEach(func() {
				values.Del("name")
			})

			It("should fail", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("AuthRequest", func() {
		It("should require both fields", func() {
			var req payload.AuthRequest
			err := dv.DecodeAndValidateForm(postForm(url.Values{"username": {"bob"}}), &req)

			Expect(err).To(HaveOccurred())
			Expect(req.Username).To(Equal("bob"))
		})

		It("should map to the core message", func() {
			var req payload.AuthRequest
			err := dv.DecodeAndValidateForm(postForm(url.Values{"username": {" bob "}, "password": {"pw"}}), &req)

			Expect(err).NotTo(HaveOccurred())
			Expect(req.ToCoreAuthMessage()).To(Equal(core.AuthMessage{Username: "bob", Password: "pw"}))
		})
	})

	Describe("RemoveUserRequest", func() {
		It("should require a username", func() {
			var req payload.RemoveUserRequest
			Expect(dv.DecodeAndValidateForm(postForm(url.Values{}), &req)).NotTo(Succeed())
		})

		It("should read the username", func() {
			var req payload.RemoveUserRequest
			Expect(dv.DecodeAndValidateForm(postForm(url.Values{"username": {"bob"}}), &req)).To(Succeed())
			Expect(req.Username).To(Equal("bob"))
		})
	})
})
