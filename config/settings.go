package config

import (
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the web server configuration. Values come from the
// optional TOML settings file, overridden by SHOP_* environment
// variables, falling back to defaults.
type Settings struct {
	Listen        string `toml:"listen"`
	Port          int    `toml:"port"`
	BasePath      string `toml:"base_path"`
	SessionMaxAge int    `toml:"session_max_age"` // minutes
	SessionSecret string `toml:"session_secret"`
}

func defaultSettings() *Settings {
	return &Settings{
		Listen:        "0.0.0.0",
		Port:          8080,
		BasePath:      "/",
		SessionMaxAge: 60,
	}
}

// LoadSettings reads the settings file named by SHOP_CONFIG (default
// "storefront.toml") when it exists, then applies environment overrides.
func LoadSettings() (*Settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(GetSettingsPath())
	if err == nil {
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("SHOP_LISTEN"); v != "" {
		s.Listen = v
	}
	if v := os.Getenv("SHOP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.Port = port
		}
	}
	if v := os.Getenv("SHOP_BASE_PATH"); v != "" {
		s.BasePath = v
	}
	if v := os.Getenv("SHOP_SESSION_MAX_AGE"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			s.SessionMaxAge = age
		}
	}
	if v := os.Getenv("SHOP_SESSION_SECRET"); v != "" {
		s.SessionSecret = v
	}

	if s.BasePath == "" {
		s.BasePath = "/"
	}
	if s.BasePath[0] != '/' {
		s.BasePath = "/" + s.BasePath
	}
	if s.BasePath[len(s.BasePath)-1] != '/' {
		s.BasePath += "/"
	}
	return s, nil
}
