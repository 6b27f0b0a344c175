package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	go_ora "github.com/sijms/go-ora/v2"
	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig
	Server  ServerConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Session SessionConfig
	Builder BuilderConfig
	Video   VideoConfig
	Sound   SoundConfig
	Quiz    QuizConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type LoggerConfig struct {
	Level string
	Env   string
}

// SessionConfig controls page-session tokens and how long session state survives in the cache.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// BuilderConfig holds the delays of the car builder's scheduled visual effects.
type BuilderConfig struct {
	MismatchRevert  time.Duration
	CompletionDelay time.Duration
	PulseStagger    time.Duration
}

type VideoConfig struct {
	TickInterval time.Duration
	Step         int
}

type SoundConfig struct {
	SampleRate int
	CacheTTL   time.Duration
}

// QuizConfig optionally replaces the built-in question bank.
type QuizConfig struct {
	Questions []QuestionConfig `mapstructure:"questions"`
}

type QuestionConfig struct {
	Prompt  string   `mapstructure:"prompt"`
	Answers []string `mapstructure:"answers"`
	Correct int      `mapstructure:"correct"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("builder.mismatch_revert", "1s")
	v.SetDefault("builder.completion_delay", "500ms")
	v.SetDefault("builder.pulse_stagger", "200ms")
	v.SetDefault("video.tick_interval", "100ms")
	v.SetDefault("video.step", 1)
	v.SetDefault("sound.sample_rate", 22050)
	v.SetDefault("sound.cache_ttl", "24h")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Println("No config file found, using defaults and environment")
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Session: SessionConfig{
			Secret: v.GetString("session.secret"),
			TTL:    v.GetDuration("session.ttl"),
		},
		Builder: BuilderConfig{
			MismatchRevert:  v.GetDuration("builder.mismatch_revert"),
			CompletionDelay: v.GetDuration("builder.completion_delay"),
			PulseStagger:    v.GetDuration("builder.pulse_stagger"),
		},
		Video: VideoConfig{
			TickInterval: v.GetDuration("video.tick_interval"),
			Step:         v.GetInt("video.step"),
		},
		Sound: SoundConfig{
			SampleRate: v.GetInt("sound.sample_rate"),
			CacheTTL:   v.GetDuration("sound.cache_ttl"),
		},
	}

	if err := v.UnmarshalKey("quiz", &config.Quiz); err != nil {
		return nil, fmt.Errorf("failed to decode quiz config: %w", err)
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		config.Session.Secret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session.secret must be at least 32 bytes long")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.Video.TickInterval <= 0 || c.Video.Step <= 0 {
		return fmt.Errorf("video.tick_interval and video.step must be positive")
	}
	if c.Sound.SampleRate < 8000 {
		return fmt.Errorf("sound.sample_rate must be at least 8000, got %d", c.Sound.SampleRate)
	}
	return nil
}

// DatabaseEnabled reports whether a database connection was configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DB.Host != ""
}

// GetDSN builds the go-ora connection URL; user, password and service name are escaped.
func (c *Config) GetDSN() string {
	return go_ora.BuildUrl(c.DB.Host, c.DB.Port, c.DB.DBName, c.DB.User, c.DB.Password, nil)
}
