package payload

import (
	"net/url"
	"strings"

	"strokescan/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Username string
	Password string
}

func (a *AuthRequest) FromForm(values url.Values) {
	a.Username = strings.TrimSpace(values.Get("username"))
	a.Password = values.Get("password")
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}
