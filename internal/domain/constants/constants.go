// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store providers
const (
	StoreProviderPostgres  = "postgres"
	StoreProviderFirestore = "firestore"
	StoreProviderMemory    = "memory"
)

// Postgres schema modes applied at startup
const (
	SchemaModeOff     = "off"
	SchemaModeVerify  = "verify"
	SchemaModeMigrate = "migrate"
)

// Push notification data types
const (
	NotificationTypePartnerGift = "partner_gift"
)
