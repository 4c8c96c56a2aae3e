package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Office   OfficeConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// OfficeLocation is a fixed office coordinate employees may clock in from.
type OfficeLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// OfficeConfig holds the geofencing settings for office clock-ins.
type OfficeConfig struct {
	Locations    []OfficeLocation
	RadiusMeters float64
}

// defaultOfficeLocations matches the two registered office sites.
const defaultOfficeLocations = "Main Office:13.119129:80.15127,Secondary Office:13.1068797:79.9229042"

func Load() (*Config, error) {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "tyro"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "168h"),
	}

	// Office geofence configuration
	officeRadius, err := strconv.ParseFloat(getEnv("OFFICE_RADIUS_METERS", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_RADIUS_METERS: %w", err)
	}

	locations, err := parseOfficeLocations(getEnv("OFFICE_LOCATIONS", defaultOfficeLocations))
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LOCATIONS: %w", err)
	}

	config.Office = OfficeConfig{
		Locations:    locations,
		RadiusMeters: officeRadius,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// parseOfficeLocations parses "Name:lat:lng,Name:lat:lng" into office entries.
func parseOfficeLocations(raw string) ([]OfficeLocation, error) {
	var locations []OfficeLocation
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed office entry %q", entry)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed latitude in %q: %w", entry, err)
		}
		lng, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed longitude in %q: %w", entry, err)
		}
		locations = append(locations, OfficeLocation{
			Name:      parts[0],
			Latitude:  lat,
			Longitude: lng,
		})
	}
	return locations, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.Office.Locations) == 0 {
		return fmt.Errorf("OFFICE_LOCATIONS is required")
	}
	if c.Office.RadiusMeters <= 0 {
		return fmt.Errorf("OFFICE_RADIUS_METERS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
