package payload

import (
	"net/url"
	"strings"

	"github.com/jellydator/validation"
)

type RemoveUserRequest struct {
	Username string
}

func (u *RemoveUserRequest) FromForm(values url.Values) {
	u.Username = strings.TrimSpace(values.Get("username"))
}

func (u RemoveUserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required),
	)
}
