package config

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

type StoreConfig struct {
	// Driver selects the record store backend: memory, redis, mysql or
	// sqlite.
	Driver string `yaml:"driver"`
	Prefix string `yaml:"prefix"`
}

type DatabaseConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
	// Path is the database file for the sqlite driver.
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type FulfillmentConfig struct {
	// Key authorizes order status transitions (the external fulfillment
	// system's shared secret).
	Key string `yaml:"key"`
}

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Store       StoreConfig       `yaml:"store"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	JWT         JWTConfig         `yaml:"jwt"`
	Fulfillment FulfillmentConfig `yaml:"fulfillment"`
}

func LoadConfig(filename string) (Config, error) {
	var config Config
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)
	return config, nil
}

// Environment wins over the file for the few settings that differ between
// deployments. The .env file, if present, is loaded by main before this runs.
func applyEnvOverrides(config *Config) {
	if addr := os.Getenv("STOREFRONT_ADDR"); addr != "" {
		config.Server.Addr = addr
	}
	if driver := os.Getenv("STOREFRONT_STORE_DRIVER"); driver != "" {
		config.Store.Driver = driver
	}
	if addr := os.Getenv("STOREFRONT_REDIS_ADDR"); addr != "" {
		config.Redis.Addr = addr
	}
	if secret := os.Getenv("STOREFRONT_JWT_SECRET"); secret != "" {
		config.JWT.Secret = secret
	}
	if key := os.Getenv("STOREFRONT_FULFILLMENT_KEY"); key != "" {
		config.Fulfillment.Key = key
	}
}

func applyDefaults(config *Config) {
	if config.Server.Addr == "" {
		config.Server.Addr = ":3000"
	}
	if config.Catalog.Path == "" {
		config.Catalog.Path = "json/products.json"
	}
	if config.Store.Driver == "" {
		config.Store.Driver = "memory"
	}
}

func SetupDatabaseConnection(config Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch config.Store.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.Database.Username,
			config.Database.Password,
			config.Database.Host,
			config.Database.Port,
			config.Database.Database,
		)
		return gorm.Open(mysql.Open(dsn), gormConfig)
	case "sqlite":
		path := config.Database.Path
		if path == "" {
			path = "storefront.db"
		}
		return gorm.Open(sqlite.Open(path), gormConfig)
	default:
		return nil, fmt.Errorf("store driver %q is not database backed", config.Store.Driver)
	}
}

func SetupRedisConnection(config Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.Database,
	})

	return redisClient, nil
}
