package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"
	defaultMaxImageBytes      = 5 << 20
	defaultFeedLimit          = 3
	defaultFeedMaxLimit       = 50
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultRefreshTokenTTL    = 7 * 24 * time.Hour
	defaultWorkerPort         = 8081
	defaultWorkerBodySize     = "1MB"
)

// Persistence drivers.
const (
	DriverFirestore = "firestore"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

// Auth providers.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// Storage providers.
const (
	StorageProviderBlob  = "blob"
	StorageProviderMinio = "minio"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// PublicBaseURL is the externally reachable origin used in share links.
		PublicBaseURL      string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configures the post worker's push endpoint
	Worker struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	} `json:"worker" yaml:"worker"`

	Persistence PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// Firebase project settings shared by Firestore, Auth and Messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Feed *FeedConfig `json:"feed" yaml:"feed"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Contact *ContactConfig `json:"contact" yaml:"contact"`

	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PersistenceConfig selects the store behind the repositories.
type PersistenceConfig struct {
	// Driver is one of firestore, postgres or sqlite
	Driver string `json:"driver" yaml:"driver"`

	SQLite struct {
		DSN string `json:"dsn" yaml:"dsn"`
	} `json:"sqlite" yaml:"sqlite"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is firebase (managed identity) or local (self-hosted credentials)
	Provider        string        `json:"provider" yaml:"provider"`
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	MinPasswordLen  int           `json:"minPasswordLen" yaml:"minPasswordLen"`
}

type GoogleOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

// FirebaseConfig defines the Firebase project the service talks to
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// APIKey is the web API key used by the Identity Toolkit sign-in endpoints
	APIKey        string `json:"apiKey" yaml:"apiKey"`
	StorageBucket string `json:"storageBucket" yaml:"storageBucket"`
}

// StorageConfig defines where uploaded post images are kept
type StorageConfig struct {
	// Provider is blob (gocloud URL) or minio
	Provider string `json:"provider" yaml:"provider"`

	// BucketURL is a gocloud bucket URL, e.g. gs://bucket, s3://bucket, file:///tmp/img, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes object keys to build the image URL returned to clients
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxImageBytes int64 `json:"maxImageBytes" yaml:"maxImageBytes"`

	Minio MinioConfig `json:"minio" yaml:"minio"`
}

type MinioConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	UseSSL          bool   `json:"useSsl" yaml:"useSsl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience overrides the audience expected in push OIDC tokens
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// FeedConfig bounds the home feed
type FeedConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

// QRCodeConfig defines share QR code generation
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ContactConfig backs the contact page
type ContactConfig struct {
	Email    string            `json:"email" yaml:"email"`
	Socials  map[string]string `json:"socials" yaml:"socials"`
	Location struct {
		Name      string  `json:"name" yaml:"name"`
		Latitude  float64 `json:"latitude" yaml:"latitude"`
		Longitude float64 `json:"longitude" yaml:"longitude"`
	} `json:"location" yaml:"location"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// FIREBASE_PROJECTID -> firebase.projectId
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if strings.TrimSpace(cfg.Worker.MaxRequestBodySize) == "" {
		cfg.Worker.MaxRequestBodySize = defaultWorkerBodySize
	}
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = DriverSQLite
	}
	if cfg.Persistence.Driver == DriverSQLite && cfg.Persistence.SQLite.DSN == "" {
		cfg.Persistence.SQLite.DSN = "file:inkwell.db?_foreign_keys=on"
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderLocal
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Auth.MinPasswordLen == 0 {
		cfg.Auth.MinPasswordLen = 6
	}
	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	if cfg.Feed.DefaultLimit <= 0 {
		cfg.Feed.DefaultLimit = defaultFeedLimit
	}
	if cfg.Feed.MaxLimit <= 0 {
		cfg.Feed.MaxLimit = defaultFeedMaxLimit
	}
	if cfg.Storage != nil && cfg.Storage.MaxImageBytes <= 0 {
		cfg.Storage.MaxImageBytes = defaultMaxImageBytes
	}
}

// Validate reports missing settings required by the selected backends.
func (cfg *Config) Validate() error {
	switch cfg.Persistence.Driver {
	case DriverFirestore:
		if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
			return errors.New("firebase.projectId is required for the firestore driver")
		}
	case DriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres settings are required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return errors.Errorf("unknown persistence driver: %s", cfg.Persistence.Driver)
	}

	switch cfg.Auth.Provider {
	case AuthProviderFirebase:
		if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" || cfg.Firebase.APIKey == "" {
			return errors.New("firebase.projectId and firebase.apiKey are required for the firebase auth provider")
		}
	case AuthProviderLocal:
		if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
			return errors.New("secretKey.access and secretKey.refresh are required for the local auth provider")
		}
	default:
		return errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
