// Package migrations registers the storefront schema with pkg/migration.
// It is imported for its side effects by cmd/storefront.
package migrations
