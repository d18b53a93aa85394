// Package stores holds the typed device-local stores built on the metadata
// key/value repository: the one-time login flag and the identity
// provider's last signed-in account.
package stores
