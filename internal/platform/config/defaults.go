package config

const (
	defaultServerPort = 8080

	defaultDatabasePort         = 3306
	defaultDatabaseMaxOpenConns = 10

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// database.max_idle_conns stays 0 so released connections are closed, not pooled.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          DriverMySQL,
		"database.host":                            "localhost",
		"database.port":                            defaultDatabasePort,
		"database.user":                            "root",
		"database.password":                        "",
		"database.name":                            "college_predictor",
		"database.path":                            "college_predictor.db",
		"database.max_open_conns":                  defaultDatabaseMaxOpenConns,
		"database.max_idle_conns":                  0,
		"database.conn_max_lifetime":               "5m",
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"cors.allowed_origins": []string{"*"},

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "college-predictor",
	}
}
