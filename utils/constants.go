package utils

// Redis key prefixes, one per logical concern.
const (
	AuthCachePrefix        = "authUser:"
	SpaceCachePrefix       = "space:"
	BookingsViewPrefix     = "bookingsView:"
	WorkflowSessionPrefix  = "wfSession:"
	AssistantContextPrefix = "assistant:ctx:"
)
