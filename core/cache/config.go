package cache

// Config holds configuration for the read-through cache.
type Config struct {
	// Driver selects the backend (memory, redis, none).
	Driver string `mapstructure:"driver" default:"memory"`
	// Addr is the Redis host:port.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// Prefix namespaces every key.
	Prefix string `mapstructure:"prefix" default:"athlete-dashboard:"`
	// TTLSeconds is how long entries live.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
}

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)
