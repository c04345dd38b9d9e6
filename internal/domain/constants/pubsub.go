// Package constants holds shared configuration enum values.
package constants

// Pub/Sub provider selection for ledger event publishing.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
