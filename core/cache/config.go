package cache

// Config holds configuration for the key/value store.
type Config struct {
	// Enabled selects Redis; when false an in-process store is used.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Addr is the Redis host:port.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password for Redis AUTH.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis logical database.
	DB int `mapstructure:"db" default:"0"`
	// ConfirmTTLSeconds is how long a merge confirmation token stays valid.
	ConfirmTTLSeconds int `mapstructure:"confirm_ttl_seconds" default:"900"`
	// DialTimeoutMillis bounds the connection attempt.
	DialTimeoutMillis int `mapstructure:"dial_timeout_millis" default:"2000"`
}
