// Package pin validates and hashes the 4-digit borrower PINs that authorize returns.
//
// PINs are never stored in clear. A keyed BLAKE2b-256 digest (pin.secret) is kept on
// the checkout record and compared in constant time. The keyspace is only 10^4, so
// the key is what keeps a leaked table from being reversed offline; online guessing
// is slowed by the rate limit on the return endpoint.
package pin
