package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	LogLevel     string
	GormLogLevel string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads the environment, after merging a .env file if one exists.
// Variables already set in the process win over the file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "studentloan"),
		MySQLUser: getenv("MYSQL_USER", "studentloan"),
		MySQLPass: os.Getenv("MYSQL_PASS"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getint("REDIS_DB", 0),
		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getenv("JWT_ISSUER", "studentloan-backend"),
		JWTTTLMinutes: getint("JWT_TTL_MINUTES", 60),

		LogLevel:     getenv("LOG_LEVEL", "info"),
		GormLogLevel: getenv("GORM_LOG_LEVEL", "warn"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.JWTTTLMinutes <= 0 {
		return fmt.Errorf("invalid JWT_TTL_MINUTES %d", c.JWTTTLMinutes)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	return nil
}

func (c *Config) JWTTTL() time.Duration { return time.Duration(c.JWTTTLMinutes) * time.Minute }

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
