// Package handlers holds the gin endpoint handlers. Each handler binds
// input, delegates to a service, and maps errors to HTTP statuses; no
// business rules live here.
package handlers

import (
	"infinity8/gateway"
	"infinity8/services/assistant"
	"infinity8/services/bookings"
	"infinity8/services/identity"
	"infinity8/services/spaces"
	"infinity8/services/workflow"
)

// HandlerBundle groups all endpoint handlers and their services.
type HandlerBundle struct {
	Spaces    *spaces.Service
	Bookings  *bookings.Service
	Assistant *assistant.Service
	Identity  *identity.Resolver
	Admin     gateway.AdminAPI
	Sessions  *workflow.SessionManager
}
