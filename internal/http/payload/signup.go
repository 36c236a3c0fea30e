package payload

import (
	"net/url"
	"regexp"
	"strings"

	"strokescan/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type SignupRequest struct {
	Name     string
	Email    string
	Mobile   string
	Username string
	Password string
}

func (s *SignupRequest) FromForm(values url.Values) {
	s.Name = strings.TrimSpace(values.Get("name"))
	s.Email = strings.TrimSpace(values.Get("email"))
	s.Mobile = strings.TrimSpace(values.Get("mobile"))
	s.Username = strings.TrimSpace(values.Get("username"))
	s.Password = values.Get("password")
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&s.Email, validation.Required, is.EmailFormat),
		validation.Field(&s.Mobile, validation.Required, is.Digit, validation.Length(6, 15)),
		validation.Field(&s.Username, validation.Required, validation.Length(1, 64), validation.Match(usernameRegex)),
		validation.Field(&s.Password, validation.Required, validation.Length(1, 72)),
	)
}

func (s SignupRequest) ToCoreSignupMessage() core.SignupMessage {
	return core.SignupMessage{
		Name:     s.Name,
		Email:    s.Email,
		Mobile:   s.Mobile,
		Username: s.Username,
		Password: s.Password,
	}
}
