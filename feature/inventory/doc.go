// Package inventory implements the equipment catalog, borrower checkouts and
// returns, and inventory administration.
//
// # Components
//
//   - Service: catalog reads and admin CRUD; delegates checkout and return to engine.Engine.
//   - Handler: HTTP endpoints, with the return route rate limited per client IP.
//   - Loader: registers the feature with the application.
//
// Admin routes sit behind auth.RequireRole(server.RoleAdmin) and every admin
// service method also checks the caller role it is given.
//
// # HTTP Endpoints
//
//   - GET    /api/equipment                          : Public catalog (search, category).
//   - GET    /api/equipment/:id                      : One catalog item.
//   - GET    /api/equipment/:id/active-checkouts     : Outstanding checkouts of an item.
//   - GET    /api/equipment/:id/return-preview       : Suggested return breakdown.
//   - POST   /api/checkout                           : Check out, or receive a merge prompt.
//   - POST   /api/return                             : PIN-authorized return.
//   - GET    /api/admin/equipment                    : Items by view (active, reserved, archived).
//   - POST   /api/admin/equipment                    : Create an item.
//   - PATCH  /api/admin/equipment/:id                : Update an item.
//   - POST   /api/admin/equipment/:id/:action        : retire, restore, reserve or unreserve.
//   - DELETE /api/admin/equipment/:id                : Delete an item without active checkouts.
//   - GET    /api/admin/checkouts                    : Checkout history (search).
//   - GET    /api/admin/checkouts/active             : Every active checkout.
//   - POST   /api/admin/checkouts/:id/force-return   : Return without a PIN.
//   - DELETE /api/admin/checkouts/:id                : Delete a returned record.
package inventory
