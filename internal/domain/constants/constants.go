// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider selection values, matched against config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Rate-limit store selection values, matched against config.
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)
