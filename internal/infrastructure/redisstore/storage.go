// Package redisstore implementa fiber.Storage sobre Redis para compartir los
// contadores del limitador entre réplicas del servicio.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*Storage)(nil)

// DefaultPrefix prefijo de todas las claves del servicio.
const DefaultPrefix = "perfectpolymers:limiter:"

// Config conexión a Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // vacío = DefaultPrefix
}

// Storage adaptador fiber.Storage. Las operaciones usan un timeout corto
// porque se ejecutan dentro del middleware de cada petición.
type Storage struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// New abre la conexión y verifica con PING.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redisstore: REDIS_ADDR no configurado")
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redisstore: conectar a %s: %w", cfg.Addr, err)
	}
	return NewWithClient(client, cfg.Prefix), nil
}

// NewWithClient reutiliza un cliente existente.
func NewWithClient(client *redis.Client, prefix string) *Storage {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Storage{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (s *Storage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get devuelve (nil, nil) si la clave no existe, como exige fiber.Storage.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: get: %w", err)
	}
	return val, nil
}

// Set guarda val; exp 0 = sin expiración.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, s.prefix+key, val, exp).Err(); err != nil {
		return fmt.Errorf("redisstore: set: %w", err)
	}
	return nil
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redisstore: delete: %w", err)
	}
	return nil
}

// Reset borra solo las claves con el prefijo del servicio (SCAN, no FLUSHDB).
func (s *Storage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redisstore: reset: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redisstore: reset: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}
