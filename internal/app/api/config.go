package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"
)

// Service names accepted in SERVICES.
const (
	ServiceCustomers = "customers"
	ServiceVets      = "vets"
	ServiceVisits    = "visits"
)

var knownServices = []string{ServiceCustomers, ServiceVets, ServiceVisits}

// Config carries environment-driven settings for an API process.
type Config struct {
	Port              string
	Services          []string
	PostgresDSN       string
	RedisAddr         string
	RedisPassword     string
	VetsCacheTTL      time.Duration
	KafkaBrokers      []string
	KafkaTopic        string
	SentryDSN         string
	Environment       string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RedisAddr:         strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		VetsCacheTTL:      60 * time.Second,
		KafkaBrokers:      splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:        envDefault("KAFKA_TOPIC", "petclinic.events"),
		SentryDSN:         strings.TrimSpace(os.Getenv("SENTRY_DSN")),
		Environment:       envDefault("ENVIRONMENT", "local"),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	services, err := parseServices(envDefault("SERVICES", strings.Join(knownServices, ",")))
	if err != nil {
		return Config{}, err
	}
	cfg.Services = services
	if raw := strings.TrimSpace(os.Getenv("VETS_CACHE_TTL_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("VETS_CACHE_TTL_SECONDS must be a positive integer")
		}
		cfg.VetsCacheTTL = time.Duration(seconds) * time.Second
	}
	return cfg, nil
}

// Serves reports whether name is one of the configured services.
func (c Config) Serves(name string) bool {
	for _, s := range c.Services {
		if s == name {
			return true
		}
	}
	return false
}

func parseServices(raw string) ([]string, error) {
	var services []string
	seen := map[string]bool{}
	for _, name := range splitList(strings.ToLower(raw)) {
		if !isKnownService(name) {
			return nil, fmt.Errorf("SERVICES contains unknown service %q", name)
		}
		if !seen[name] {
			seen[name] = true
			services = append(services, name)
		}
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("SERVICES must name at least one of %s", strings.Join(knownServices, ", "))
	}
	return services, nil
}

func isKnownService(name string) bool {
	for _, known := range knownServices {
		if known == name {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
