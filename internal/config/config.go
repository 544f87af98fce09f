package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Mode selecciona contra qué backend corre el cliente.
type Mode string

const (
	ModeDev        Mode = "dev"        // backend local
	ModeProduction Mode = "production" // backend hosteado
	ModeOffline    Mode = "offline"    // adapters en memoria, sin red
)

type Config struct {
	APIURL      string
	Mode        Mode
	SessionFile string
	Timezone    string
	LogLevel    string
	LogFormat   string
	AppName     string
}

func Load() *Config {
	return &Config{
		APIURL:      getEnv("VET_API_URL", ""),
		Mode:        parseMode(getEnv("VET_ENV", "dev")),
		SessionFile: getEnv("SESSION_FILE", defaultSessionFile()),
		Timezone:    getEnv("VET_TIMEZONE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		AppName:     getEnv("APP_NAME", "vetcare-pro"),
	}
}

func parseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return ModeProduction
	case "offline":
		return ModeOffline
	default:
		return ModeDev
	}
}

// Location resuelve la zona horaria de trabajo del cliente.
// Las fechas de la agenda se componen y descomponen siempre en esta zona.
func (c *Config) Location() *time.Location {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vetcare-session.json"
	}
	return filepath.Join(home, ".vetcare", "session.json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
