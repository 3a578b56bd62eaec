package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode      string `mapstructure:"mode"`
	Providers struct {
		Google struct {
			BaseURL   string `mapstructure:"baseURL"`
			APIKeyEnv string `mapstructure:"apiKeyEnv"`
		} `mapstructure:"google"`
		Yelp struct {
			BaseURL   string `mapstructure:"baseURL"`
			APIKeyEnv string `mapstructure:"apiKeyEnv"`
		} `mapstructure:"yelp"`
	} `mapstructure:"providers"`
	Search struct {
		DefaultRadiusMeters int `mapstructure:"defaultRadiusMeters"`
	} `mapstructure:"search"`
	Session struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"session"`
	Metrics struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

// GoogleAPIKey resolves the Google Places credential from the
// environment. Empty means the provider is unconfigured, which is a
// supported state (it yields empty results, not an error).
func (c Config) GoogleAPIKey() string {
	return os.Getenv(c.Providers.Google.APIKeyEnv)
}

// YelpAPIKey resolves the Yelp Fusion credential from the environment.
func (c Config) YelpAPIKey() string {
	return os.Getenv(c.Providers.Yelp.APIKeyEnv)
}
