package payload

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

// FormPayload is filled from url-encoded or multipart form values.
type FormPayload interface {
	FromForm(values url.Values)
}

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request, object FormPayload) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}
	object.FromForm(r.PostForm)
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
