package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"strokescan/internal/classifier"
	"strokescan/internal/core"
	"strokescan/internal/http/handler/middleware"
	"strokescan/internal/http/payload"
	"strokescan/internal/http/view"
	"strokescan/internal/storage"

	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

var (
	Root         = "GET /{$}"
	Landing      = "GET /landing"
	Home         = "GET /home"
	UploadPage   = "GET /upload"
	Upload       = "POST /upload"
	SignupPage   = "GET /signup"
	Signup       = "POST /signup"
	LoginPage    = "GET /login"
	Login        = "POST /login"
	Logout       = "POST /logout"
	LandingAdmin = "GET /landing_admin"
	AdminPage    = "GET /admin"
	RemoveUser   = "POST /admin"
	Uploads      = "GET /uploads/{name}"
	Metrics      = "GET /metrics"
	Health       = "GET /healthz"
)

const photoField = "photo"

// uploadTypes lists what /uploads serves, keyed by the extension of the
// stored name. Anything else is answered with 404.
var uploadTypes = map[string]string{
	".png":  "image/png",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".webp": "image/webp",
}

type PageHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	scan             StrokeService
	renderer         Renderer
	predictions      PredictionObserver
	cookie           middleware.SessionCookie
	maxUploadBytes   int64
}

func NewPageHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	strokeService StrokeService,
	renderer Renderer,
	predictions PredictionObserver,
	cookie middleware.SessionCookie,
	maxUploadBytes int64,
) *PageHandler {
	return &PageHandler{
		logs:             logger,
		requestValidator: requestValidator,
		scan:             strokeService,
		renderer:         renderer,
		predictions:      predictions,
		cookie:           cookie,
		maxUploadBytes:   maxUploadBytes,
	}
}

func (h *PageHandler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	h.render(w, http.StatusOK, view.Landing, view.LandingPage{Nav: navFor(r)}, Landing, requestId)
}

func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	if session, ok := middleware.SessionFromContext(r.Context()); ok && session.IsAdmin() {
		http.Redirect(w, r, "/landing_admin", http.StatusFound)
		return
	}

	h.render(w, http.StatusOK, view.Home, view.HomePage{Nav: navFor(r)}, Home, requestId)
}

func (h *PageHandler) HandleLandingAdmin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	h.render(w, http.StatusOK, view.LandingAdmin, view.LandingPage{Nav: navFor(r)}, LandingAdmin, requestId)
}

func (h *PageHandler) HandleUploadPage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	h.render(w, http.StatusOK, view.Upload, view.UploadPage{Nav: navFor(r)}, UploadPage, requestId)
}

func (h *PageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	session, _ := middleware.SessionFromContext(r.Context())
	page := view.UploadPage{Nav: navFor(r)}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			page.Error = uploadTooLargeMsg
			h.render(w, http.StatusRequestEntityTooLarge, view.Upload, page, Upload, requestId)
			h.logs.Warnw("upload too large",
				"limit", tooLarge.Limit,
				"handler", Upload,
				"request_id", requestId)
			return
		}

		page.Error = badUploadMsg
		h.render(w, http.StatusBadRequest, view.Upload, page, Upload, requestId)
		h.logs.Errorw("failed to parse multipart form",
			"error", err,
			"handler", Upload,
			"request_id", requestId)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(photoField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.render(w, http.StatusOK, view.Upload, page, Upload, requestId)
			return
		}
		page.Error = badUploadMsg
		h.render(w, http.StatusBadRequest, view.Upload, page, Upload, requestId)
		h.logs.Errorw("failed to read uploaded file",
			"error", err,
			"handler", Upload,
			"request_id", requestId)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, oopsErr, Upload, requestId)
		h.logs.Errorw("failed to read uploaded file",
			"error", err,
			"handler", Upload,
			"request_id", requestId)
		return
	}

	result, err := h.scan.Predict(r.Context(), session, header.Filename, image)
	if err != nil {
		if errors.Is(err, classifier.ErrDecodeImage) {
			page.Error = notAnImageMsg
			h.render(w, http.StatusBadRequest, view.Upload, page, Upload, requestId)
			h.logs.Warnw("uploaded file is not an image",
				"error", err,
				"filename", header.Filename,
				"handler", Upload,
				"request_id", requestId)
			return
		}

		h.fail(w, r, http.StatusInternalServerError, oopsErr, Upload, requestId)
		h.logs.Errorw("prediction failed",
			"error", err,
			"handler", Upload,
			"request_id", requestId)
		return
	}

	h.predictions.ObservePrediction(result.Label)
	h.logs.Infow("prediction made",
		"label", result.Label,
		"image", result.ImageName,
		"username", session.Username,
		"handler", Upload,
		"request_id", requestId)

	page.Label = result.Label
	page.ImageURL = "/uploads/" + result.ImageName
	h.render(w, http.StatusOK, view.Upload, page, Upload, requestId)
}

func (h *PageHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	h.render(w, http.StatusOK, view.Signup, view.FormPage{Nav: navFor(r)}, SignupPage, requestId)
}

func (h *PageHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	page := view.FormPage{Nav: navFor(r)}

	var req payload.SignupRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &req); err != nil {
		page.Message = invalidSignupMsg + validationDetail(err)
		h.render(w, http.StatusOK, view.Signup, page, Signup, requestId)
		h.logs.Infow("invalid signup form",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	err := h.scan.Signup(r.Context(), req.ToCoreSignupMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserExists) {
			page.Message = userExistsMsg
			h.render(w, http.StatusOK, view.Signup, page, Signup, requestId)
			return
		}

		h.fail(w, r, http.StatusInternalServerError, oopsErr, Signup, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	page.Message = accountCreatedMsg
	h.render(w, http.StatusOK, view.Signup, page, Signup, requestId)
}

func (h *PageHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	h.render(w, http.StatusOK, view.Login, view.FormPage{Nav: navFor(r)}, LoginPage, requestId)
}

func (h *PageHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	page := view.FormPage{Nav: navFor(r), Message: invalidLoginMsg}

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &req); err != nil {
		h.render(w, http.StatusOK, view.Login, page, Login, requestId)
		h.logs.Infow("invalid login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, token, err := h.scan.Authenticate(r.Context(), req.ToCoreAuthMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.render(w, http.StatusOK, view.Login, page, Login, requestId)
			h.logs.Warnw("login rejected",
				"username", req.Username,
				"handler", Login,
				"request_id", requestId)
			return
		}

		h.fail(w, r, http.StatusInternalServerError, oopsErr, Login, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.cookie.Set(w, token)
	h.logs.Infow("user logged in",
		"username", session.Username,
		"handler", Login,
		"request_id", requestId)

	if session.IsAdmin() {
		http.Redirect(w, r, "/landing_admin", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (h *PageHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	http.Redirect(w, r, "/landing", http.StatusFound)
}

func (h *PageHandler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	users, err := h.scan.UsersWithPredictions(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, oopsErr, AdminPage, requestId)
		h.logs.Errorw("failed to list users",
			"error", err,
			"handler", AdminPage,
			"request_id", requestId)
		return
	}

	page := view.AdminPage{
		Nav:   navFor(r),
		Users: make([]view.AdminUser, 0, len(users)),
	}
	for _, u := range users {
		user := view.AdminUser{
			Username:    u.User.Username,
			Name:        u.User.Name,
			Email:       u.User.Email,
			Mobile:      u.User.Mobile,
			Predictions: make([]view.AdminPrediction, 0, len(u.Predictions)),
		}
		for _, p := range u.Predictions {
			user.Predictions = append(user.Predictions, view.AdminPrediction{
				Label:     p.Label,
				Image:     view.ImageDataURL(p.ImageData),
				CreatedAt: p.CreatedAt,
			})
		}
		page.Users = append(page.Users, user)
	}

	h.render(w, http.StatusOK, view.Admin, page, AdminPage, requestId)
}

func (h *PageHandler) HandleRemoveUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.RemoveUserRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &req); err != nil {
		h.logs.Infow("invalid remove user form",
			"error", err,
			"handler", RemoveUser,
			"request_id", requestId)
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	if err := h.scan.RemoveUser(r.Context(), req.Username); err != nil {
		h.fail(w, r, http.StatusInternalServerError, oopsErr, RemoveUser, requestId)
		h.logs.Errorw("failed to remove user",
			"error", err,
			"username", req.Username,
			"handler", RemoveUser,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h *PageHandler) HandleUploads(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	name := r.PathValue("name")

	contentType, ok := uploadTypes[filepath.Ext(name)]
	if !ok {
		h.fail(w, r, http.StatusNotFound, imageNotFoundMsg, Uploads, requestId)
		return
	}

	rc, err := h.scan.OpenUpload(r.Context(), name)
	if err != nil {
		if errors.Is(err, core.ErrInvalidImageName) || errors.Is(err, storage.ErrNotFound) {
			h.fail(w, r, http.StatusNotFound, imageNotFoundMsg, Uploads, requestId)
			return
		}

		h.fail(w, r, http.StatusInternalServerError, oopsErr, Uploads, requestId)
		h.logs.Errorw("failed to open upload",
			"error", err,
			"name", name,
			"handler", Uploads,
			"request_id", requestId)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
	w.Header().Set("Cache-Control", "private, max-age=3600")

	if _, err := io.Copy(w, rc); err != nil {
		h.logs.Errorw("failed to stream upload",
			"error", err,
			"name", name,
			"handler", Uploads,
			"request_id", requestId)
	}
}

func (h *PageHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, code int, message, handler, requestId string) {
	page := view.ErrorPage{
		Nav:     navFor(r),
		Status:  code,
		Message: message,
	}
	h.render(w, code, view.Error, page, handler, requestId)
}

func (h *PageHandler) render(w http.ResponseWriter, code int, page string, data any, handler, requestId string) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", page,
			"handler", handler,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"handler", handler,
			"request_id", requestId)
	}
}

func navFor(r *http.Request) view.Nav {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return view.Nav{}
	}
	return view.Nav{
		Username: session.Username,
		Admin:    session.IsAdmin(),
	}
}

func validationDetail(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}
	return "invalid form data."
}
