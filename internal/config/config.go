package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/render"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
)

type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	GRPC    GRPCConfig
	Storage StorageConfig
	Redis   RedisConfig
	MySQL   MySQLConfig
	Log     LogConfig
	Shop    ShopConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type HTTPConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	SecureCookies   bool
}

type GRPCConfig struct {
	Port string
}

// StorageConfig selects the key-value backend holding carts and orders.
type StorageConfig struct {
	Driver     string
	KeyPrefix  string
	SessionTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type ShopConfig struct {
	Currency string
	Products []render.ProductCard
}

// Load reads config.toml (optional) and SHOP_* environment variables.
// Environment variables win over the file; built-in defaults fill the rest.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/storefront")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		HTTP: HTTPConfig{
			Port:            v.GetString("http.port"),
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
			SecureCookies:   v.GetBool("http.secure_cookies"),
		},
		GRPC: GRPCConfig{
			Port: v.GetString("grpc.port"),
		},
		Storage: StorageConfig{
			Driver:     v.GetString("storage.driver"),
			KeyPrefix:  v.GetString("storage.key_prefix"),
			SessionTTL: v.GetDuration("storage.session_ttl"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		MySQL: MySQLConfig{
			DSN:             v.GetString("mysql.dsn"),
			MaxOpenConns:    v.GetInt("mysql.max_open_conns"),
			MaxIdleConns:    v.GetInt("mysql.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("mysql.conn_max_lifetime"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Shop: ShopConfig{
			Currency: v.GetString("shop.currency"),
		},
	}

	if err := v.UnmarshalKey("shop.products", &cfg.Shop.Products); err != nil {
		return nil, fmt.Errorf("error reading shop.products: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.HTTP.Port == "" {
		cfg.HTTP.Port = "8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 5 * time.Second
	}
	if cfg.GRPC.Port == "" {
		cfg.GRPC.Port = "50051"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMemory
	}
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = "storefront:"
	}
	if cfg.Storage.SessionTTL == 0 {
		cfg.Storage.SessionTTL = 30 * 24 * time.Hour
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 100
	}
	if cfg.MySQL.DSN == "" {
		cfg.MySQL.DSN = "root:root@tcp(localhost:3306)/storefront?parseTime=true"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 50
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 25
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 5 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Shop.Currency == "" {
		cfg.Shop.Currency = "JMD"
	}
	if len(cfg.Shop.Products) == 0 {
		cfg.Shop.Products = defaultProducts()
	}
}

func defaultProducts() []render.ProductCard {
	return []render.ProductCard{
		{Name: "Lavender Dream", Price: "JMD 1,200.00", Image: "/static/img/lavender.jpg"},
		{Name: "Thyme Garden", Price: "JMD 500.00", Image: "/static/img/thyme.jpg"},
		{Name: "Cedar Smoke", Price: "JMD 800.00", Image: "/static/img/cedar.jpg"},
		{Name: "Citrus Harmony", Price: "JMD 1,050.00", Image: "/static/img/citrus.jpg"},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverRedis, DriverMySQL:
	default:
		return fmt.Errorf("unknown storage driver %q (want memory, redis or mysql)", c.Storage.Driver)
	}
	unit, err := currency.ParseISO(c.Shop.Currency)
	if err != nil {
		return fmt.Errorf("shop.currency must be an ISO 4217 code, got %q: %w", c.Shop.Currency, err)
	}
	c.Shop.Currency = unit.String()

	for _, p := range c.Shop.Products {
		price, err := domain.ParsePrice(p.Price)
		if err != nil {
			return fmt.Errorf("shop.products %q: %w", p.Name, err)
		}
		if string(price.Currency()) != c.Shop.Currency {
			return fmt.Errorf("shop.products %q: priced in %s, shop sells in %s", p.Name, price.Currency(), c.Shop.Currency)
		}
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
