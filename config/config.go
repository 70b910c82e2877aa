// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar — her yerde ayrı ayrı
// os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her biri tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/mascotas.db)
}

// AuthConfig, session/token ayarları.
type AuthConfig struct {
	// JWTSecret, session credential'larını imzalayan anahtar — GİZLİ TUTULMALI.
	JWTSecret string
	// PasswordSalt, pbkdf2 hash'lerinin process-wide salt'ı.
	// Değişirse mevcut tüm şifre hash'leri geçersizleşir.
	PasswordSalt string
	// SessionCacheTTL, session cache entry'lerinin yaşam süresi.
	// Logout her zaman senkron evict eder; TTL sadece crash/miss durumunda
	// staleness üst sınırıdır.
	SessionCacheTTL time.Duration
	// SessionCacheSweep, süresi dolmuş entry'lerin fiziksel temizlenme aralığı.
	SessionCacheSweep time.Duration
}

// RedisConfig, image store olarak kullanılan redis ayarları.
type RedisConfig struct {
	Addr     string // host:port (ör: localhost:6379)
	Password string
	DB       int
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için) —
// dosya yoksa hata vermez, sessizce devam eder.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("SESSION_CACHE_TTL_SECONDS", "3600"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CACHE_TTL_SECONDS: %w", err)
	}

	cacheSweep, err := strconv.Atoi(getEnv("SESSION_CACHE_SWEEP_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CACHE_SWEEP_SECONDS: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	passwordSalt := getEnv("PASSWORD_SALT", "")
	if passwordSalt == "" {
		return nil, fmt.Errorf("PASSWORD_SALT environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/mascotas.db"),
		},
		Auth: AuthConfig{
			JWTSecret:         jwtSecret,
			PasswordSalt:      passwordSalt,
			SessionCacheTTL:   time.Duration(cacheTTL) * time.Second,
			SessionCacheSweep: time.Duration(cacheSweep) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:3000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
