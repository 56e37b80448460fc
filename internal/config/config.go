package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// insecureJWTFallback is used when JWT_SECRET is unset.  Kept for parity
// with the original deployment; any real install must set JWT_SECRET.
const insecureJWTFallback = "your-secret-key"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	DBUser      string // database username
	DBPass      string // database password (optional)
	DBHost      string // database host address
	DBPort      string // database port number
	DBName      string // database name
	JWTSecret   string // secret used to sign JWTs
	TokenTTLMin int    // session token time-to-live in minutes
	BcryptCost  int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Database variables are enforced by must() and missing values
// cause the program to exit with a fatal log message; the remaining keys
// carry defaults.
func Load() Config {
	return Config{
		Env:         envStr("APP_ENV", "dev"),                  // environment (dev/test/prod)
		Port:        envStr("PORT", "5000"),                    // port to bind the HTTP server
		DBUser:      must("DB_USER"),                           // database user
		DBPass:      os.Getenv("DB_PASS"),                      // database password (empty allowed)
		DBHost:      must("DB_HOST"),                           // database host
		DBPort:      must("DB_PORT"),                           // database port
		DBName:      must("DB_NAME"),                           // database name
		JWTSecret:   envStr("JWT_SECRET", insecureJWTFallback), // signing secret, insecure fallback
		TokenTTLMin: envIntDef("TOKEN_TTL_MIN", 60),            // session tokens live one hour
		BcryptCost:  envIntDef("BCRYPT_COST", 10),              // bcrypt cost factor
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envStr returns the value of key, or def when the variable is unset or empty.
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envIntDef is like envStr but converts the retrieved string into an
// integer.  A malformed value is a fatal configuration error.
func envIntDef(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
