package config

// RedisConfig holds session store connection settings.
//
// With the REDIS_ prefix applied by AppConfig, the variables are
// REDIS_URI, REDIS_PASSWORD, REDIS_DB, REDIS_USE_SENTINEL,
// REDIS_SENTINEL_NODES, REDIS_SENTINEL_MASTER_NAME.
type RedisConfig struct {
	// URI is the redis address, host:port.
	URI string `env:"URI" envDefault:"localhost:6379"`

	// Password authenticates to redis. Empty means no auth.
	Password string `env:"PASSWORD"`

	// DB selects the logical database.
	DB int `env:"DB" envDefault:"0"`

	// UseSentinel switches to a sentinel-managed failover client.
	UseSentinel bool `env:"USE_SENTINEL" envDefault:"false"`

	// SentinelNodes lists sentinel addresses when UseSentinel is set.
	SentinelNodes []string `env:"SENTINEL_NODES" envSeparator:","`

	// SentinelMasterName names the monitored master set.
	SentinelMasterName string `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
}
