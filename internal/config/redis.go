package config

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig backs rate limiting and the document event fan-out.
type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:        getEnv("REDIS_HOST", "localhost"),
		Port:        getEnv("REDIS_PORT", "6379"),
		Password:    getEnv("REDIS_PASSWORD", ""),
		DB:          getEnvInt("REDIS_DB", 0),
		PoolSize:    getEnvPositiveInt("REDIS_POOL_SIZE", 20),
		DialTimeout: getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
	}
}

func (c *RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// GetClient connects and pings, so a missing server fails at startup.
func (c *RedisConfig) GetClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        c.Addr(),
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    c.PoolSize,
		DialTimeout: c.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", c.Addr(), err)
	}

	return client, nil
}
