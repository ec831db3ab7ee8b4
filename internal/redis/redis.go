// Package redis holds the shared client used for public-response ETag
// caching. Every public list (releases, gallery, videos, press) keeps
// one ETag key; admin writes delete the key so the next public read
// recomputes it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

const etagTTL = 24 * time.Hour

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

func etagKey(collection string) string {
	return fmt.Sprintf("public:%s:etag", collection)
}

// GetCollectionETag returns the cached ETag for a public collection, or
// "" on miss or when Redis is unavailable (caching is best-effort).
func GetCollectionETag(ctx context.Context, collection string) string {
	if Rdb == nil {
		return ""
	}
	val, err := Rdb.Get(ctx, etagKey(collection)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetCollectionETag stores a freshly computed ETag.
func SetCollectionETag(ctx context.Context, collection, etag string) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, etagKey(collection), etag, etagTTL).Err(); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("failed to cache collection ETag")
	}
}

// InvalidateCollection drops the cached ETag after an admin write.
func InvalidateCollection(ctx context.Context, collection string) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Del(ctx, etagKey(collection)).Err(); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("failed to invalidate collection ETag")
	} else {
		log.Debug().Str("collection", collection).Msg("invalidated collection ETag")
	}
}
