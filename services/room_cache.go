package services

import (
	"context"
	"time"

	"hotel-client/models"

	"github.com/redis/go-redis/v9"
)

const roomSnapshotPrefix = "rooms:snapshot:"

// RoomCache keeps the last fetched room collection per user. Prices are
// personalised by the backend, so snapshots are never shared between users.
type RoomCache interface {
	Load(ctx context.Context, username string) ([]*models.Room, bool, error)
	Save(ctx context.Context, username string, rooms []*models.Room) error
	Clear(ctx context.Context, username string) error
}

// RedisRoomCache stores snapshots as JSON in Redis
type RedisRoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRoomCache(rdb *redis.Client, ttl time.Duration) *RedisRoomCache {
	return &RedisRoomCache{rdb: rdb, ttl: ttl}
}

func snapshotKey(username string) string {
	return roomSnapshotPrefix + username
}

func (c *RedisRoomCache) Load(ctx context.Context, username string) ([]*models.Room, bool, error) {
	var rooms []*models.Room
	found, err := GetFromRedis(ctx, c.rdb, snapshotKey(username), &rooms)
	if err != nil || !found {
		return nil, false, err
	}
	return rooms, true, nil
}

func (c *RedisRoomCache) Save(ctx context.Context, username string, rooms []*models.Room) error {
	return SetToRedis(ctx, c.rdb, snapshotKey(username), rooms, c.ttl)
}

func (c *RedisRoomCache) Clear(ctx context.Context, username string) error {
	return DeleteFromRedis(ctx, c.rdb, snapshotKey(username))
}
