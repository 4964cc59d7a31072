// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: resolves the caller role (public, admin, master) from the X-API-Key
//     header and gates admin route groups with RequireRole.
//   - rayid: assigns every request a RayID, injecting it into the context and the
//     X-Ray-ID response header for tracing.
//
// Both are registered globally in the start command; RequireRole is attached to
// the admin group by each feature.
package middleware
