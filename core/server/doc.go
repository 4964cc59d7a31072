// Package server holds the HTTP server configuration and caller roles.
//
// While the start command handles the server startup, this package defines the
// configuration structure and the Role type used to pass the authenticated caller
// explicitly into admin operations.
//
// # Configuration
//
// The Config struct defines the HTTP port, the admin and master API keys, the
// per-IP limit on return attempts and the CORS allow list.
//
// # Roles
//
// Callers resolve to one of three roles: public (borrowers), admin (inventory
// administration, force returns, history) and master (admin management, which
// is handled by the identity provider and only gated here).
package server
