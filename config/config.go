package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Booking  BookingConfig  `yaml:"booking"`
	Salon    SalonConfig    `yaml:"salon"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type StorageConfig struct {
	Backend  string         `yaml:"backend"` // "file" or "postgres"
	FilePath string         `yaml:"file_path"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingsTopic      string   `yaml:"bookings_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type ScheduleConfig struct {
	OpenWeekdays    []string `yaml:"open_weekdays"`
	Opening         string   `yaml:"opening"`
	Closing         string   `yaml:"closing"`
	SlotStepMinutes int      `yaml:"slot_step_minutes"`
	LookaheadDays   int      `yaml:"lookahead_days"`
}

type BookingConfig struct {
	SlotLockTTLSeconds int `yaml:"slot_lock_ttl_seconds"`
}

type SalonConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
