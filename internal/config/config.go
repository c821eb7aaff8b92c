package config

import "os"

const defaultMaxRequestBodyBytes = 10 << 20

type Config struct {
	AppEnv              string `json:"app_env"`
	ServerPort          int    `json:"server_port"`
	JWTSecretKey        string `json:"jwt_secret_key"`
	JWTExpirationHours  int    `json:"jwt_expiration_hours"`
	DefaultRateLimit    int    `json:"default_rate_limit"`
	GlobalRateLimit     int    `json:"global_rate_limit"`
	MaxRequestBodyBytes int64  `json:"max_request_body_bytes"`
}

func Load() (*Config, error) {
	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		ServerPort:          getEnvPositiveInt("SERVER_PORT", 10000),
		JWTSecretKey:        os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours:  getEnvPositiveInt("JWT_EXPIRATION_HOURS", 24),
		DefaultRateLimit:    getEnvPositiveInt("DEFAULT_RATE_LIMIT", 1000), // per landlord per minute
		GlobalRateLimit:     getEnvPositiveInt("GLOBAL_RATE_LIMIT", 10000), // per IP per minute
		MaxRequestBodyBytes: int64(getEnvPositiveInt("MAX_REQUEST_BODY_BYTES", defaultMaxRequestBodyBytes)),
	}, nil
}
