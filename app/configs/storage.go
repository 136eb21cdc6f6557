package configs

import (
	"log"

	"github.com/brightifybd/go-storefront/app/storage"
)

// OpenStore picks the persistence backend: Redis when REDIS_ADDR is
// set, otherwise the SQLite file at STORE_PATH. A backend that fails
// to open degrades to the in-memory store so the shop still serves,
// just without durability.
func OpenStore(env ENV) storage.KV {
	if env.RedisAddr != "" {
		kv, err := storage.OpenRedis(env.RedisAddr)
		if err == nil {
			log.Printf("✅ Redis store connected at %s", env.RedisAddr)
			return kv
		}
		log.Printf("Redis unavailable (%v), falling back to SQLite", err)
	}

	kv, err := storage.OpenSQLite(env.StorePath)
	if err == nil {
		log.Printf("✅ SQLite store opened at %s", env.StorePath)
		return kv
	}

	log.Printf("SQLite unavailable (%v), state will not survive restarts", err)
	return storage.NewMemory()
}
