package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"hostel-manager-go/models"
)

const (
	roomsKey    = "studygpt_rooms"    // String: JSON array of all rooms
	studentsKey = "studygpt_students" // String: JSON array of all students
)

// RedisService is the persistence boundary. The whole state lives under two
// independently-keyed JSON arrays; a missing key means "start empty", not an
// error.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context // Base context
}

// NewRedisService creates a new RedisService instance
func NewRedisService(client *redis.Client) *RedisService {
	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// getJSONArray reads one key and unmarshals it into dst. A missing key leaves
// dst untouched.
func (s *RedisService) getJSONArray(key string, dst interface{}) error {
	raw, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		logrus.WithError(err).Errorf("Error reading key %s", key)
		return fmt.Errorf("failed to read %s from Redis: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode %s snapshot: %w", key, err)
	}
	return nil
}

// LoadSnapshot reads the startup snapshot. Absent keys yield empty
// collections.
func (s *RedisService) LoadSnapshot() ([]models.Room, []models.Student, error) {
	rooms := []models.Room{}
	students := []models.Student{}

	if err := s.getJSONArray(roomsKey, &rooms); err != nil {
		return nil, nil, err
	}
	if err := s.getJSONArray(studentsKey, &students); err != nil {
		return nil, nil, err
	}

	logrus.Infof("Loaded %d rooms and %d students", len(rooms), len(students))
	return rooms, students, nil
}

// SaveSnapshot writes both arrays back after a successful mutation. The two
// keys are written in one pipeline round trip.
func (s *RedisService) SaveSnapshot(rooms []models.Room, students []models.Student) error {
	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to encode rooms snapshot: %w", err)
	}
	studentsJSON, err := json.Marshal(students)
	if err != nil {
		return fmt.Errorf("failed to encode students snapshot: %w", err)
	}

	pipe := s.Client.Pipeline()
	pipe.Set(s.Ctx, roomsKey, roomsJSON, 0)
	pipe.Set(s.Ctx, studentsKey, studentsJSON, 0)

	if _, err := pipe.Exec(s.Ctx); err != nil {
		logrus.WithError(err).Error("Error writing snapshot")
		return fmt.Errorf("failed to write snapshot to Redis: %w", err)
	}
	return nil
}

// getEnv returns the value of the environment variable or a fallback.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitializeRedisClient creates and tests a Redis client connection
func InitializeRedisClient() *redis.Client {
	addr := getEnv("REDIS_HOST", "127.0.0.1") + ":" + getEnv("REDIS_PORT", "6379")
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Ping Redis to check connection
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("Could not connect to Redis at %s: %v", addr, err)
	}

	logrus.Infof("Successfully connected to Redis at %s", addr)
	return rdb
}
