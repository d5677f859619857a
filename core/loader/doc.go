// Package loader provides the feature loading system of the HTTP API.
//
// Each feature implements the Feature interface, which names it, says whether it
// is enabled and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of features. Register adds one; LoadAll loads
// the enabled ones in registration order and skips the rest.
package loader
