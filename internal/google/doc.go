// Package google implements the OAuth2 authorization-code flow against
// Google's accounts service for Drive access.
//
// The package is stateless: credentials produced by ExchangeCode are returned
// to the caller by value and never persisted here. Persistence and token
// refresh are the caller's concern; an expired access token simply surfaces
// as an authorization error from the Drive API on the next call.
package google
