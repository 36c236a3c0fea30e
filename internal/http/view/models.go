package view

import (
	"encoding/base64"
	"html/template"
	"net/http"
	"time"
)

// Nav describes who is looking at the page.
type Nav struct {
	Username string
	Admin    bool
}

func (n Nav) LoggedIn() bool {
	return n.Username != ""
}

type LandingPage struct {
	Nav
}

type HomePage struct {
	Nav
}

type FormPage struct {
	Nav
	Message string
}

type UploadPage struct {
	Nav
	Label    string
	ImageURL string
	Error    string
}

type AdminPage struct {
	Nav
	Users []AdminUser
}

type AdminUser struct {
	Username    string
	Name        string
	Email       string
	Mobile      string
	Predictions []AdminPrediction
}

type AdminPrediction struct {
	Label     string
	Image     template.URL
	CreatedAt time.Time
}

type ErrorPage struct {
	Nav
	Status  int
	Message string
}

// ImageDataURL turns a base64 encoded image into a data URL usable as an img src.
func ImageDataURL(encoded string) template.URL {
	prefix := encoded
	if len(prefix) > 684 {
		prefix = prefix[:684]
	}
	head, _ := base64.StdEncoding.DecodeString(prefix)

	return template.URL("data:" + http.DetectContentType(head) + ";base64," + encoded)
}
