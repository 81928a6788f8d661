package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Web console
	WebPort   string
	AccessLog string
	Version   string

	// Broker management API
	BrokerScheme   string
	BrokerHost     string
	BrokerPort     string
	ApiBasePath    string
	AuthScheme     string // "basic" or "bearer"
	BearerToken    string
	InsecureTLS    bool
	RequestTimeout time.Duration

	// Login gate
	LoginMode       string // "static" or "broker"
	RequireEndpoint bool
	AdminUsername   string
	AdminPassword   string
	JwtSecret       string
	SessionTTL      time.Duration

	// Views
	DefaultPageSize int

	// Plugins
	DataDir           string
	EnableActivityLog bool
	ActivityRetention time.Duration
	EnableMetrics     bool
	EnableSwagger     bool
	AmqpPort          string
	EnableAmqpProbe   bool

	// Logging
	LogLevel string
}

const (
	AuthSchemeBasic  = "basic"
	AuthSchemeBearer = "bearer"

	LoginModeStatic = "static"
	LoginModeBroker = "broker"
)

// LoadConfig loads configuration from .env file, environment variables, or defaults
// Priority: environment variables > .env file > default values
func LoadConfig(version string) *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	return &Config{
		WebPort:   getEnv("MBCONSOLE_WEB_PORT", "3000"),
		AccessLog: getEnv("MBCONSOLE_ACCESS_LOG", "console-access.log"),
		Version:   version,

		BrokerScheme:   getEnvOneOf("MBCONSOLE_BROKER_SCHEME", "https", "http", "https"),
		BrokerHost:     getEnv("MBCONSOLE_BROKER_HOST", "localhost"),
		BrokerPort:     getEnv("MBCONSOLE_BROKER_PORT", "9000"),
		ApiBasePath:    getEnv("MBCONSOLE_API_BASE_PATH", "/broker/v1.0"),
		AuthScheme:     getEnvOneOf("MBCONSOLE_AUTH_SCHEME", AuthSchemeBasic, AuthSchemeBasic, AuthSchemeBearer),
		BearerToken:    getEnv("MBCONSOLE_BEARER_TOKEN", ""),
		InsecureTLS:    getEnvAsBool("MBCONSOLE_INSECURE_TLS", false),
		RequestTimeout: getEnvAsDuration("MBCONSOLE_REQUEST_TIMEOUT", 30*time.Second),

		LoginMode:       getEnvOneOf("MBCONSOLE_LOGIN_MODE", LoginModeStatic, LoginModeStatic, LoginModeBroker),
		RequireEndpoint: getEnvAsBool("MBCONSOLE_REQUIRE_ENDPOINT", true),
		AdminUsername:   getEnv("MBCONSOLE_ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("MBCONSOLE_ADMIN_PASSWORD", "admin"),
		JwtSecret:       getEnv("MBCONSOLE_JWT_SECRET", "secret"),
		SessionTTL:      getEnvAsDuration("MBCONSOLE_SESSION_TTL", 8*time.Hour),

		DefaultPageSize: getEnvAsInt("MBCONSOLE_DEFAULT_PAGE_SIZE", 5),

		DataDir:           getEnv("MBCONSOLE_DATA_DIR", "data"),
		EnableActivityLog: getEnvAsBool("MBCONSOLE_ENABLE_ACTIVITY_LOG", true),
		ActivityRetention: getEnvAsDuration("MBCONSOLE_ACTIVITY_RETENTION", 30*24*time.Hour),
		EnableMetrics:     getEnvAsBool("MBCONSOLE_ENABLE_METRICS", true),
		EnableSwagger:     getEnvAsBool("MBCONSOLE_ENABLE_SWAGGER", false),
		AmqpPort:          getEnv("MBCONSOLE_AMQP_PORT", "5672"),
		EnableAmqpProbe:   getEnvAsBool("MBCONSOLE_ENABLE_AMQP_PROBE", true),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// DefaultBrokerURL is the management API root used when a session carries no host.
func (c *Config) DefaultBrokerURL() string {
	return fmt.Sprintf("%s://%s:%s%s", c.BrokerScheme, c.BrokerHost, c.BrokerPort, c.ApiBasePath)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOneOf(key, defaultValue string, allowed ...string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	fmt.Printf("Warning: Invalid value for %s: %s, using default: %s\n", key, value, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		fmt.Printf("Warning: Invalid value for %s: %s, using default: %d\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s: %s, using default: %t\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		fmt.Printf("Warning: Invalid value for %s: %s, using default: %s\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
