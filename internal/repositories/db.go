// Package repositories owns the service's storage connections: the Postgres
// catalog store and the Redis cache. The decision engine never touches
// either; storage only feeds the configuration snapshot and the response
// cache at the host boundary.
package repositories

import (
	"log"
	"time"

	"payrouter/internal/config"
	"payrouter/internal/models"
	"payrouter/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB           *gorm.DB
	CacheService *cache.Service
)

// InitDB connects to Postgres and migrates the processor catalog table.
// Only needed when the catalog is served from the database.
func InitDB() error {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "payrouter") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	if lifetime, err := time.ParseDuration(config.GetEnv("DB_CONN_MAX_LIFETIME", "1h")); err == nil {
		sqlDB.SetConnMaxLifetime(lifetime)
	}

	if err := db.AutoMigrate(&models.Processor{}); err != nil {
		return err
	}

	DB = db
	return nil
}

// InitCache connects the Redis-backed cache service. A failure is logged and
// leaves CacheService nil; the service runs without a response cache.
func InitCache() {
	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}

	svc, err := cache.NewService(redisCfg, 24*time.Hour)
	if err != nil {
		log.Printf("⚠️ Redis unavailable, running without decision cache: %v", err)
		return
	}
	CacheService = svc
}

// CloseAll releases the storage connections at shutdown.
func CloseAll() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close database connection: %v", err)
			}
		}
	}
	if CacheService != nil {
		if err := CacheService.Close(); err != nil {
			log.Printf("⚠️ Failed to close Redis connection: %v", err)
		}
	}
}
