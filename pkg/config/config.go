package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "MOTORMART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	View         ViewConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MOTORMART_APP_ENV" default:"dev"`
	Port         string `envconfig:"MOTORMART_APP_PORT" default:"5500"`
	LogLevel     string `envconfig:"MOTORMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MOTORMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MOTORMART_DB_DSN"`
	Driver string `envconfig:"MOTORMART_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"MOTORMART_DB_HOST"`
	Port     int    `envconfig:"MOTORMART_DB_PORT" default:"5432"`
	User     string `envconfig:"MOTORMART_DB_USER"`
	Password string `envconfig:"MOTORMART_DB_PASSWORD"`
	Name     string `envconfig:"MOTORMART_DB_NAME"`
	SSLMode  string `envconfig:"MOTORMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MOTORMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MOTORMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MOTORMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MOTORMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MOTORMART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MOTORMART_JWT_ISSUER" default:"motormart"`
	ExpirationMinutes int    `envconfig:"MOTORMART_JWT_EXPIRATION_MINUTES" default:"60"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MOTORMART_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MOTORMART_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MOTORMART_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MOTORMART_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MOTORMART_ARGON_KEY_LEN" default:"32"`
}

type ViewConfig struct {
	TemplatesDir string `envconfig:"MOTORMART_TEMPLATES_DIR" default:"web/templates"`
	StaticDir    string `envconfig:"MOTORMART_STATIC_DIR" default:"web/static"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MOTORMART_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MOTORMART_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if strings.EqualFold(db.Driver, "sqlite") {
		db.DSN = "file::memory:?cache=shared"
		return nil
	}

	missing := []string{}
	values := map[string]string{
		"MOTORMART_DB_HOST": db.Host,
		"MOTORMART_DB_USER": db.User,
		"MOTORMART_DB_NAME": db.Name,
	}
	for _, key := range []string{"MOTORMART_DB_HOST", "MOTORMART_DB_USER", "MOTORMART_DB_NAME"} {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either MOTORMART_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
