package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	MySQL         MySQLConfig         `mapstructure:"mysql"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// MySQLConfig MySQL 配置
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	Brokers           []string         `mapstructure:"brokers"`
	ClientID          string           `mapstructure:"client_id"`
	ConnectionTimeout time.Duration    `mapstructure:"connection_timeout"`
	Retry             KafkaRetryConfig `mapstructure:"retry"`
}

// KafkaRetryConfig Kafka 连接重试配置
type KafkaRetryConfig struct {
	MaxAttempts  int           `mapstructure:"max_attempts"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	Factor       float64       `mapstructure:"factor"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
}

// ElasticsearchConfig Elasticsearch 配置
type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	IndexName string   `mapstructure:"index_name"`
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadDefault 加载默认路径配置
func LoadDefault() (*Config, error) {
	return Load("./config/app.yaml")
}

// applyDefaults 补全默认值
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Kafka.ClientID == "" {
		cfg.Kafka.ClientID = "order-management-api"
	}
	if cfg.Kafka.ConnectionTimeout <= 0 {
		cfg.Kafka.ConnectionTimeout = 30 * time.Second
	}
	if cfg.Kafka.Retry.MaxAttempts <= 0 {
		cfg.Kafka.Retry.MaxAttempts = 5
	}
	if cfg.Kafka.Retry.InitialDelay <= 0 {
		cfg.Kafka.Retry.InitialDelay = 300 * time.Millisecond
	}
	if cfg.Kafka.Retry.Factor <= 0 {
		cfg.Kafka.Retry.Factor = 1.5
	}
	if cfg.Kafka.Retry.MaxDelay <= 0 {
		cfg.Kafka.Retry.MaxDelay = 30 * time.Second
	}
	if cfg.Elasticsearch.IndexName == "" {
		cfg.Elasticsearch.IndexName = "orders"
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql.dsn is required")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required")
	}
	if len(c.Elasticsearch.Addresses) == 0 {
		return fmt.Errorf("elasticsearch.addresses is required")
	}
	return nil
}
