// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Storage and fixture ports are implemented by platform and outbound adapters
// and called by the application layer.
package ports
