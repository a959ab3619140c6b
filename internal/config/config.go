package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

var (
	// appConfig holds a *Config snapshot for lock-free reads.
	appConfig atomic.Value
	configMu  sync.Mutex // write-side mutex
	configDir = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type UploadConfig struct {
	Path      string `mapstructure:"path"`       // blob store root on disk
	URLPrefix string `mapstructure:"url_prefix"` // public prefix, e.g. /storage/
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Path       string `mapstructure:"path"` // empty disables the file sink
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Get returns the current configuration snapshot.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/pixelvault.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "pixelvault")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("upload.path", "uploads")
	v.SetDefault("upload.url_prefix", "/storage/")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "pixelvault")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.compress", false)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("config file not found, using environment variables and defaults")
		} else {
			log.Fatalf("failed to read config file: %v", err)
		}
	}

	// Environment override: server.port becomes PIXELVAULT_SERVER_PORT.
	v.SetEnvPrefix("PIXELVAULT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore parses the viper state and atomically swaps the snapshot.
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("failed to parse config: %v", err)
		return
	}

	if tempConfig.Server.Mode != "release" && tempConfig.JWT.Secret == "" {
		log.Println("warning: jwt.secret unset, using an insecure development secret")
		tempConfig.JWT.Secret = "pixelvault_dev_secret"
	}

	appConfig.Store(&tempConfig)
}

func enforceJWTSecretSafety() {
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == "pixelvault_dev_secret" {
			log.Fatal("refusing to start in release mode without a safe jwt.secret; set PIXELVAULT_JWT_SECRET or jwt.secret")
		}
	}
}
