// Package apperr defines the error taxonomy shared by the store, the ledger engine
// and the HTTP handlers.
//
// Every failure that reaches a caller is one of Validation, NotFound, Conflict,
// Forbidden, Unauthorized or Internal. Handlers map kinds to status codes with
// Write. Internal errors keep their cause (with a pkg/errors stack) for the server
// log and render as an opaque message.
//
// # Usage
//
//	if total > item.QuantityAvailable {
//	    return apperr.Conflict(map[string]any{"requested": total}, "Only %d available", n)
//	}
//
//	// in a handler
//	if err != nil {
//	    return apperr.Write(c, err)
//	}
package apperr
