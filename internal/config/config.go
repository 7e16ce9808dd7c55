package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	cfg  *Config
	once sync.Once
	mu   sync.RWMutex
)

// Config represents the application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	CEP     CEPConfig     `mapstructure:"cep"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	TemplateDir     string        `mapstructure:"template_dir"`
	StaticDir       string        `mapstructure:"static_dir"`
}

type AuthConfig struct {
	JWT struct {
		Secret         string        `mapstructure:"secret"`
		Issuer         string        `mapstructure:"issuer"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	Session struct {
		CookieName string `mapstructure:"cookie_name"`
		Secure     bool   `mapstructure:"secure"`
		HTTPOnly   bool   `mapstructure:"http_only"`
		MaxAge     int    `mapstructure:"max_age"`
	} `mapstructure:"session"`
	// User is the single demo credential record checked by the login
	// endpoint. The password may be plain or a bcrypt hash.
	User struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"user"`
}

type CEPConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type UploadConfig struct {
	Document UploadSlotConfig `mapstructure:"document"`
	Image    UploadSlotConfig `mapstructure:"image"`
}

type UploadSlotConfig struct {
	MaxSizeMB  int      `mapstructure:"max_size_mb"`
	Extensions []string `mapstructure:"extensions"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load initializes the configuration with hot reload support
func Load(configPath string) error {
	var err error
	once.Do(func() {
		v := viper.New()

		v.SetConfigType("yaml")
		v.SetConfigName("default")
		v.AddConfigPath(configPath)
		setDefaults(v)
		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("failed to read default config: %w", err)
			return
		}

		// Environment-specific overrides (optional)
		v.SetConfigName("config")
		if err = v.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				err = fmt.Errorf("failed to merge config: %w", err)
				return
			}
			err = nil
		}

		v.SetEnvPrefix("PLAYGROUND")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		cfg = &Config{}
		if err = v.Unmarshal(cfg); err != nil {
			err = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}

		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			mu.Lock()
			defer mu.Unlock()

			newCfg := &Config{}
			if err := v.Unmarshal(newCfg); err != nil {
				fmt.Printf("Failed to reload config: %v\n", err)
				return
			}
			cfg = newCfg
			fmt.Printf("Configuration reloaded from %s\n", e.Name)
		})
	})

	return err
}

// Get returns the current configuration (thread-safe)
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// LoadFromFile loads configuration from a specific file (useful for testing)
func LoadFromFile(configFile string) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// MustLoad loads configuration and panics on error
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "playground")
	v.SetDefault("app.env", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.template_dir", "templates")
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("auth.jwt.issuer", "playground")
	v.SetDefault("auth.jwt.access_token_ttl", "24h")
	v.SetDefault("auth.session.cookie_name", "auth_token")
	v.SetDefault("auth.session.http_only", true)
	v.SetDefault("auth.session.max_age", 86400)
	v.SetDefault("auth.user.username", "admin")
	v.SetDefault("auth.user.password", "1234")
	v.SetDefault("cep.base_url", "https://viacep.com.br")
	v.SetDefault("cep.timeout", "8s")
	v.SetDefault("upload.document.max_size_mb", 10)
	v.SetDefault("upload.document.extensions", []string{".pdf", ".txt", ".doc", ".docx", ".rtf"})
	v.SetDefault("upload.image.max_size_mb", 5)
	v.SetDefault("upload.image.extensions", []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"})
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// GetServerAddr returns the server listen address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction returns true if running in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment returns true if running in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}
