// Package storage provides the durable key-value backend the stores
// persist their state into.
package storage

// KV is string-keyed durable storage scoped to the local device.
// Absence of a key is reported via the bool, not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
