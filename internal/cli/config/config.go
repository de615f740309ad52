// Package config manages the chat client's local configuration file.
// It is the client-side counterpart of the server configuration: the single
// place where the personality template and client identity persist between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config is the on-disk shape of ~/.bestie-chat/config.yaml.
type Config struct {
	Server      ServerConfig `mapstructure:"server"`
	Client      ClientConfig `mapstructure:"client"`
	Personality string       `mapstructure:"personality_config"`
}

// ServerConfig points the client at a backend.
type ServerConfig struct {
	URL string `mapstructure:"url"`
}

// ClientConfig identifies this client installation.
type ClientConfig struct {
	ID string `mapstructure:"id"`
}

var (
	cfg        *Config
	configPath string
)

// Init loads the configuration file, creating it with defaults on first run.
// A stable client id is generated once so an installation can be identified
// in logs and future multi-client features without re-rolling identity.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not resolve home directory: %w", err)
	}

	configDir := filepath.Join(home, ".bestie-chat")
	configPath = filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.url", "http://localhost:8000")
	viper.SetDefault("client.id", "")
	viper.SetDefault("personality_config", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return fmt.Errorf("could not read config file: %w", err)
			}
		}
	}

	var parsed Config
	if err := viper.Unmarshal(&parsed); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	cfg = &parsed

	if cfg.Client.ID == "" {
		cfg.Client.ID = uuid.NewString()
		viper.Set("client.id", cfg.Client.ID)
		if err := viper.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("could not persist client id: %w", err)
		}
	}

	return nil
}

// ServerURL returns the backend base URL.
func ServerURL() string { return cfg.Server.URL }

// SetServerURL overrides the backend base URL for this process only.
func SetServerURL(url string) { cfg.Server.URL = url }

// ClientID returns the stable identifier of this installation.
func ClientID() string { return cfg.Client.ID }

// Path returns the location of the configuration file.
func Path() string { return configPath }

// PersonalityStore adapts the config file to the controller's storage
// interface so personality load/save stays confined to this package.
type PersonalityStore struct{}

func (PersonalityStore) Load() (string, error) {
	return cfg.Personality, nil
}

func (PersonalityStore) Save(raw string) error {
	cfg.Personality = raw
	viper.Set("personality_config", raw)
	return viper.WriteConfigAs(configPath)
}
