// Package kvstore is the persistence boundary of the storefront: a
// string-valued key-value store holding JSON blobs (cart_<uid>,
// userData_<uid>, orderHistory_<uid>). Components depend on the Store
// interface so tests can substitute the in-memory implementation.
package kvstore

import "context"

type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known key builders, matching the storefront's storage layout.
func CartKey(userID string) string         { return "cart_" + userID }
func UserDataKey(userID string) string     { return "userData_" + userID }
func OrderHistoryKey(userID string) string { return "orderHistory_" + userID }
