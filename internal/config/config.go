package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the dev server configuration.
type Config struct {
	Server ServerConfig
	Web    WebConfig
	SSO    SSOConfig
	Users  []UserConfig
}

// ServerConfig holds listener settings.
type ServerConfig struct {
	Addr      string
	StaticDir string `mapstructure:"static_dir"`
}

// WebConfig holds the properties served at /configuration.pinpoint.
type WebConfig struct {
	SendUsage        bool   `mapstructure:"send_usage"`
	EditUserInfo     bool   `mapstructure:"edit_user_info"`
	ShowActiveThread bool   `mapstructure:"show_active_thread"`
	OpenSource       bool   `mapstructure:"open_source"`
	SecurityGuideURL string `mapstructure:"security_guide_url"`
}

// SSOConfig controls the login redirect.
type SSOConfig struct {
	Required bool
	Header   string
	LoginURL string `mapstructure:"login_url"`
}

// UserConfig is a user known to the dev server.
type UserConfig struct {
	ID         string
	Name       string
	Department string
}

// Load reads configuration from file and env. Env var overrides use prefix PINPOINT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "web")
	v.SetDefault("web.send_usage", true)
	v.SetDefault("web.edit_user_info", true)
	v.SetDefault("web.show_active_thread", true)
	v.SetDefault("web.open_source", true)
	v.SetDefault("web.security_guide_url", "")
	v.SetDefault("sso.required", false)
	v.SetDefault("sso.header", "SSO_USER")
	v.SetDefault("sso.login_url", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PINPOINT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pinpoint-web")
	}

	v.SetEnvPrefix("PINPOINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
