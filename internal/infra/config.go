package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config — корневая структура конфигурации сервиса.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig описывает настройки HTTP-сервера.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig описывает подключение к PostgreSQL.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

// RedisConfig описывает подключение к Redis (кэш фасетов каталога).
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	FacetTTL time.Duration `mapstructure:"facet_ttl"`
}

// AuthConfig содержит настройки JWT.
// Secret намеренно НЕ валидируется при старте: при его отсутствии
// падают только операции с токенами, остальной API продолжает работать.
type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
	// SoftRoleDeny — режим совместимости: отказ role gate отдаётся
	// со статусом 200 вместо жёсткого 403. Хендлер при этом не вызывается.
	SoftRoleDeny bool `mapstructure:"soft_role_deny"`
}

// LoggerConfig настраивает поведение zap логгера.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// LoadConfig инициализирует конфигурацию, объединяя значения из файла и ENV.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	// ENV перекрывает файл: AUTH_SECRET=... перекроет auth.secret
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Файла нет — работаем на ENV и дефолтах
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Пустые дефолты обязательны: AutomaticEnv поднимает из окружения
	// только известные viper ключи, без них AUTH_SECRET и DATABASE_URL
	// в env-only деплое терялись бы при Unmarshal
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 15)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.facet_ttl", 30*time.Second)
	v.SetDefault("auth.secret", "")
	// 10 суток — столько живёт access-токен витрины
	v.SetDefault("auth.token_ttl", 240*time.Hour)
	v.SetDefault("auth.soft_role_deny", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}
