package redis

import (
	"context"
	"errors"

	"github.com/frahmantamala/lead-tracker/internal/storage"
	"github.com/go-redis/redis/v8"
)

// KVRepository implements storage.RecordStore on Redis string keys.
// Values never expire.
type KVRepository struct {
	rdb    *redis.Client
	prefix string
}

func NewKVRepository(rdb *redis.Client, prefix string) *KVRepository {
	return &KVRepository{rdb: rdb, prefix: prefix}
}

var _ storage.RecordStore = (*KVRepository)(nil)

func (r *KVRepository) key(name string) string {
	return r.prefix + name
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	str, err := r.rdb.Get(ctx, r.key(key)).Result()
	if err != nil {
		// returns err redis.Nil if key does not exist
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return str, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, r.key(key), value, 0).Err()
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.key(key)).Err()
}

func (r *KVRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
