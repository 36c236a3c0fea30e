package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidEnvVar error = errors.New("invalid environment variable")

const (
	apiPortEnvKey        = "API_PORT"
	dbDriverEnvKey       = "DB_DRIVER"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	uploadDirEnvKey      = "UPLOAD_DIR"
	storageBackendEnvKey = "STORAGE_BACKEND"
	s3BucketEnvKey       = "S3_BUCKET"
	s3RegionEnvKey       = "S3_REGION"
	s3EndpointEnvKey     = "S3_ENDPOINT"
	s3AccessKeyEnvKey    = "S3_ACCESS_KEY"
	s3SecretKeyEnvKey    = "S3_SECRET_KEY"
	modelURLEnvKey       = "MODEL_SERVER_URL"
	modelNameEnvKey      = "MODEL_NAME"
	modelTimeoutEnvKey   = "MODEL_TIMEOUT"
	sessionSecretEnvKey  = "SESSION_SECRET"
	sessionTTLEnvKey     = "SESSION_TTL"
	cookieSecureEnvKey   = "COOKIE_SECURE"
	maxUploadEnvKey      = "MAX_UPLOAD_BYTES"
	adminPasswordEnvKey  = "ADMIN_PASSWORD"
	logLevelEnvKey       = "LOG_LEVEL"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	UploadDir       string
	StorageBackend  string
	S3              S3
	ModelServerURL  string
	ModelName       string
	ModelTimeout    time.Duration
	SessionSecret   string
	SessionTTL      time.Duration
	CookieSecure    bool
	MaxUploadBytes  int64
	AdminPassword   string
	LogLevel        string
}

type S3 struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewApp reads the application configuration from the environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence.
func NewApp() (App, error) {
	_ = godotenv.Load()

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok || sessionSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	modelTimeout, err := getDuration(modelTimeoutEnvKey, 10*time.Second)
	if err != nil {
		return App{}, err
	}

	sessionTTL, err := getDuration(sessionTTLEnvKey, 24*time.Hour)
	if err != nil {
		return App{}, err
	}

	cookieSecure, err := getBool(cookieSecureEnvKey, false)
	if err != nil {
		return App{}, err
	}

	maxUpload, err := getInt64(maxUploadEnvKey, 10<<20)
	if err != nil {
		return App{}, err
	}

	app := App{
		Port:            getenv(apiPortEnvKey, "8080"),
		DBDriver:        getenv(dbDriverEnvKey, "sqlite"),
		DBConnectionURL: getenv(dbConnEnvKey, "database.db"),
		UploadDir:       getenv(uploadDirEnvKey, "static/uploaded_images"),
		StorageBackend:  getenv(storageBackendEnvKey, StorageLocal),
		S3: S3{
			Bucket:    getenv(s3BucketEnvKey, ""),
			Region:    getenv(s3RegionEnvKey, "us-east-1"),
			Endpoint:  getenv(s3EndpointEnvKey, ""),
			AccessKey: getenv(s3AccessKeyEnvKey, ""),
			SecretKey: getenv(s3SecretKeyEnvKey, ""),
		},
		ModelServerURL: getenv(modelURLEnvKey, "http://localhost:8501"),
		ModelName:      getenv(modelNameEnvKey, "stroke"),
		ModelTimeout:   modelTimeout,
		SessionSecret:  sessionSecret,
		SessionTTL:     sessionTTL,
		CookieSecure:   cookieSecure,
		MaxUploadBytes: maxUpload,
		AdminPassword:  getenv(adminPasswordEnvKey, ""),
		LogLevel:       getenv(logLevelEnvKey, "info"),
	}

	switch app.StorageBackend {
	case StorageLocal:
	case StorageS3:
		if app.S3.Bucket == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, s3BucketEnvKey)
		}
	default:
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, storageBackendEnvKey, app.StorageBackend)
	}

	return app, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q must be positive", errInvalidEnvVar, key, v)
	}
	return d, nil
}

func getBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, key, err)
	}
	return b, nil
}

func getInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, key, v)
	}
	return n, nil
}
