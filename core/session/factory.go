package session

import (
	"log"
	"os"

	"kyuna.GO/config"
)

// NewStore picks the session store for this deployment: redis when
// configured and reachable, else the local sqlite file, else memory
// (SESSION_STORE=memory forces the last).
func NewStore() Store {
	if os.Getenv("SESSION_STORE") == "memory" {
		log.Println("Session store: memory (forced)")
		return NewMemoryStore()
	}
	if config.RedisClient != nil {
		log.Println("Session store: redis")
		return NewRedisStore(config.RedisClient)
	}
	db, err := config.NewSessionDB()
	if err == nil {
		store, merr := NewGormStore(db)
		if merr == nil {
			log.Println("Session store: sqlite")
			return store
		}
		err = merr
	}
	log.Printf("Session store: sqlite unavailable (%v), falling back to memory", err)
	return NewMemoryStore()
}
