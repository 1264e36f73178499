package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// PathEnv переменная окружения с путем к файлу конфигурации
const PathEnv = "CONFIG_PATH"

// Config конфигурация сервиса календаря
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig логирование, пустой File - вывод в stdout
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig prometheus метрики
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig Postgres для справочника клиентов.
// При Enabled = false клиенты живут только в памяти.
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// CatalogConfig начальные данные справочников
type CatalogConfig struct {
	SeedFile         string `toml:"seed_file"`
	SeedAppointments bool   `toml:"seed_appointments"`
}

// CalendarConfig параметры дашборда
type CalendarConfig struct {
	TaxRate        float64 `toml:"tax_rate"`
	DefaultSession string  `toml:"default_session"`
}

// Load читает конфигурацию из файла. Путь из CONFIG_PATH важнее аргумента.
// После чтения применяются значения по умолчанию и переменные окружения DB_*.
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(PathEnv); envPath != "" {
		path = envPath
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon-calendar"
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Catalog.SeedFile == "" {
		c.Catalog.SeedFile = "seed.toml"
	}

	if c.Calendar.DefaultSession == "" {
		c.Calendar.DefaultSession = "default"
	}
}

// applyEnv переопределяет параметры базы из окружения (пароль не хранится в файле)
func (c *Config) applyEnv() error {
	c.Database.Host = envString("DB_HOST", c.Database.Host)
	c.Database.User = envString("DB_USER", c.Database.User)
	c.Database.Password = envString("DB_PASSWORD", c.Database.Password)
	c.Database.DBName = envString("DB_NAME", c.Database.DBName)

	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT must be a number (got %q)", ErrInvalidConfig, v)
		}
		c.Database.Port = port
	}

	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port (got %d)", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logs.level must be one of debug, info, warn, error (got %q)", ErrInvalidConfig, c.Logs.Level)
	}

	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with / (got %q)", ErrInvalidConfig, c.Metrics.Path)
	}

	if c.Calendar.TaxRate < 0 || c.Calendar.TaxRate >= 1 {
		return fmt.Errorf("%w: calendar.tax_rate must be in [0, 1) (got %v)", ErrInvalidConfig, c.Calendar.TaxRate)
	}

	if c.Database.Enabled {
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required when database is enabled", ErrInvalidConfig)
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("%w: database.port must be a valid TCP port (got %d)", ErrInvalidConfig, c.Database.Port)
		}
	}

	return nil
}

// DSN строка подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
