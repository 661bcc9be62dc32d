package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the event bus
const (
	EventPostCreated      = "post.created"
	EventPostUpdated      = "post.updated"
	EventPostDeleted      = "post.deleted"
	EventContactSubmitted = "contact.submitted"
)

// Push notification topics
const (
	TopicContact    = "contact"
	TopicPostPrefix = "posts-"
)
