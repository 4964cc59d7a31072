// Package engine applies checkouts and returns to the equipment ledger.
//
// Every mutation locks the equipment row (and an in-process mutex keyed by
// equipment id), validates against the current counters, then writes the
// item and its checkout record in a single transaction. Requests for
// different items never contend.
//
// # Checkout
//
//  1. Validate borrower, PIN format and the requested condition mix.
//  2. Reject when the item is retired or reserved, when the request exceeds
//     quantity_available, or when any bucket is short.
//  3. If the borrower already holds an active checkout under the same PIN,
//     return a merge prompt with a confirmation token and change nothing.
//  4. Otherwise append a record, or merge into the confirmed one, and take the
//     units off the item.
//
// # Return
//
// The newest active checkout whose PIN digest matches receives the return.
// Returned units go back on hand; quantity_available is capped at
// total_quantity minus quantity_reserved. Admins may force a return against a
// specific record without a PIN.
//
// # Usage
//
//	eng := engine.New(db, pin.NewHasher(cfg.Pin.Secret), tokens, logger)
//	res, err := eng.Checkout(ctx, &models.CheckoutRequest{...})
//	if res.MergePrompt {
//		// ask the borrower, then resubmit with ForceMerge and res.ConfirmToken
//	}
package engine
