package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AuthTransport selects where the session guard looks for the access token.
type AuthTransport string

const (
	AuthTransportHeader AuthTransport = "header"
	AuthTransportCookie AuthTransport = "cookie"
	AuthTransportBoth   AuthTransport = "both"
)

// AcceptsHeader reports whether the Authorization header is a valid transport.
func (t AuthTransport) AcceptsHeader() bool {
	return t == AuthTransportHeader || t == AuthTransportBoth
}

// AcceptsCookie reports whether the session cookie is a valid transport.
func (t AuthTransport) AcceptsCookie() bool {
	return t == AuthTransportCookie || t == AuthTransportBoth
}

const (
	BlobBackendLocal = "local"
	BlobBackendGCS   = "gcs"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	JWTSecret     string
	JWTTTL        time.Duration
	AuthTransport AuthTransport
	CookieSecure  bool
	CORSOrigins   []string

	BlobBackend        string
	BlobLocalDir       string
	BlobPublicURL      string
	GCSBucket          string
	GCSCredentialsFile string

	OperatorWorkers int
	LogLevel        string
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		JWTSecret:        "local-development-secret",
		JWTTTL:           time.Hour,
		AuthTransport:    AuthTransportHeader,
		CORSOrigins:      []string{"http://localhost:5173", "https://fynger-front.vercel.app"},
		BlobBackend:      BlobBackendLocal,
		BlobLocalDir:     "./data/blobs",
		BlobPublicURL:    "http://localhost:9446/blobs",
		OperatorWorkers:  4,
		LogLevel:         "info",
	}

	overrideString("PORT", &env.Port)
	overrideString("POSTGRES_ADDRESS", &env.PostgresAddress)
	overrideString("POSTGRES_PORT", &env.PostgresPort)
	overrideString("POSTGRES_DB", &env.PostgresDB)
	overrideString("POSTGRES_USERNAME", &env.PostgresUsername)
	overrideString("POSTGRES_PASSWORD", &env.PostgresPassword)
	overrideString("JWT_SECRET", &env.JWTSecret)
	overrideString("BLOB_BACKEND", &env.BlobBackend)
	overrideString("BLOB_LOCAL_DIR", &env.BlobLocalDir)
	overrideString("BLOB_PUBLIC_URL", &env.BlobPublicURL)
	overrideString("GCS_BUCKET", &env.GCSBucket)
	overrideString("GCS_CREDENTIALS_FILE", &env.GCSCredentialsFile)
	overrideString("LOG_LEVEL", &env.LogLevel)

	if v := os.Getenv("AUTH_TRANSPORT"); len(v) != 0 {
		env.AuthTransport = AuthTransport(strings.ToLower(v))
	}

	if v := os.Getenv("CORS_ORIGINS"); len(v) != 0 {
		env.CORSOrigins = splitList(v)
	}

	if v := os.Getenv("JWT_TTL"); len(v) != 0 {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL %q: %w", v, err)
		}
		env.JWTTTL = ttl
	}

	if v := os.Getenv("COOKIE_SECURE"); len(v) != 0 {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE %q: %w", v, err)
		}
		env.CookieSecure = secure
	}

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", v, err)
		}
		env.OperatorWorkers = workers
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate checks the values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.Port))
	}

	switch c.AuthTransport {
	case AuthTransportHeader, AuthTransportCookie, AuthTransportBoth:
	default:
		errs = append(errs, fmt.Errorf("invalid auth transport %q: must be header, cookie or both", c.AuthTransport))
	}

	switch c.BlobBackend {
	case BlobBackendLocal:
		if c.BlobLocalDir == "" {
			errs = append(errs, errors.New("BLOB_LOCAL_DIR is required for the local blob backend"))
		}
	case BlobBackendGCS:
		if c.GCSBucket == "" {
			errs = append(errs, errors.New("GCS_BUCKET is required for the gcs blob backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid blob backend %q: must be local or gcs", c.BlobBackend))
	}

	if len(c.JWTSecret) == 0 {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}

	if c.JWTTTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid JWT_TTL %s: must be positive", c.JWTTTL))
	}

	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Errorf("invalid OPERATOR_WORKERS %d: must be at least 1", c.OperatorWorkers))
	}

	return errors.Join(errs...)
}

func overrideString(key string, target *string) {
	if v := os.Getenv(key); len(v) != 0 {
		*target = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
