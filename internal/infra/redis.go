package infra

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the guide-pack cache. REDIS_URL takes a full
// redis:// URL; a bad or missing URL falls back to localhost so local runs
// work without config.
func InitRedis() *redis.Client {
	var client *redis.Client

	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Printf("Failed to parse REDIS_URL, using default connection: %v", err)
			client = redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		} else {
			client = redis.NewClient(opt)
		}
	} else {
		client = redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: Redis connection failed: %v. Offline packs will fall back to the database.", err)
	} else {
		log.Println("Redis connected successfully")
	}

	return client
}

func CloseRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Error closing redis connection: %v", err)
	}
}
