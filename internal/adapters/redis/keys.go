package redis

// DefaultKeyPrefix namespaces every key this store writes
const DefaultKeyPrefix = "orbdyn:"

// Key returns the Redis key for a store key
func (s *Store) Key(key string) string {
	return s.prefix + key
}
