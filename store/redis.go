package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each record as one Redis string. Writes overwrite the
// whole blob, so two servers sharing a Redis behave exactly like two browser
// tabs sharing local storage: last write wins.
type RedisStore struct {
	notifier
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) redisKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) bool {
	blob, err := s.rdb.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("record store: read %q: %v", key, err)
		}
		return false
	}
	if err := decodeRecord(blob, dest); err != nil {
		log.Printf("record store: malformed record %q: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.redisKey(key), blob, 0).Err(); err != nil {
		return err
	}
	s.publish(key)
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return err
	}
	s.publish(key)
	return nil
}

func (s *RedisStore) Subscribe(key string, fn func()) {
	s.subscribe(key, fn)
}
