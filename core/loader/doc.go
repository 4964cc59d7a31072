// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry of features. Register adds one, LoadAll mounts
// every enabled feature in registration order. The start command registers
// inventory, reports and integrity this way, and disables the ones whose
// dependencies (database, object storage) could not be reached.
package loader
