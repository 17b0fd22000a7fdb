package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_PORT", "MYSQL_HOST", "MYSQL_PORT", "MYSQL_DB", "MYSQL_USER", "MYSQL_PASS",
		"REDIS_ADDR", "REDIS_DB", "IDEMPOTENCY_TTL_SECONDS",
		"JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES", "LOG_LEVEL", "GORM_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// keep a stray .env in the package dir out of the picture
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c := Load()
	if c.AppPort != "8080" || c.MySQLPort != "3306" || c.RedisAddr != "redis:6379" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.IdempotencyTTL() != 300*time.Second {
		t.Fatalf("idempotency ttl = %v", c.IdempotencyTTL())
	}
	if c.JWTTTL() != time.Hour {
		t.Fatalf("jwt ttl = %v", c.JWTTTL())
	}
	if c.JWTSecret != "" {
		t.Fatalf("JWT secret must have no default")
	}
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("Validate without secret: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("LOG_LEVEL", "debug")

	c := Load()
	if c.AppPort != "9090" || c.RedisDB != 3 || c.IdempTTLSecs != 60 || c.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.JWTTTL() != 15*time.Minute {
		t.Fatalf("jwt ttl = %v", c.JWTTTL())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoad_BadIntegerFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "two")
	if got := Load().RedisDB; got != 0 {
		t.Fatalf("RedisDB = %d, want 0", got)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir, _ := os.Getwd()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-file\nAPP_PORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APP_PORT", "7001")

	c := Load()
	if c.JWTSecret != "from-file" {
		t.Fatalf("JWT_SECRET = %q, want value from .env", c.JWTSecret)
	}
	if c.AppPort != "7001" {
		t.Fatalf("process env should win over .env, got %q", c.AppPort)
	}
	os.Unsetenv("JWT_SECRET")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppPort: "8080", MySQLHost: "db", MySQLPort: "3306", MySQLDB: "x", MySQLUser: "u",
			JWTSecret: "k", JWTTTLMinutes: 60, IdempTTLSecs: 300,
		}
	}
	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	for name, mutate := range map[string]func(*Config){
		"no host":      func(c *Config) { c.MySQLHost = "" },
		"bad port":     func(c *Config) { c.MySQLPort = "not-a-port" },
		"no app port":  func(c *Config) { c.AppPort = "" },
		"no secret":    func(c *Config) { c.JWTSecret = "" },
		"zero jwt ttl": func(c *Config) { c.JWTTTLMinutes = 0 },
		"zero idemp":   func(c *Config) { c.IdempTTLSecs = 0 },
	} {
		c := base()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLHost: "db", MySQLPort: "3307", MySQLDB: "loans", MySQLUser: "u", MySQLPass: "p"}
	want := "u:p@tcp(db:3307)/loans?"
	if got := c.MySQLDSN(); !strings.HasPrefix(got, want) || !strings.Contains(got, "parseTime=true") {
		t.Fatalf("dsn = %q", got)
	}
}
