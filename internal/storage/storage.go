package storage

import "errors"

// ErrNotFound is returned by Load when a key has never been written.
var ErrNotFound = errors.New("not found")

// KeyValue stores named collections as opaque byte values. Each Save
// overwrites the previous value for the key; there is no transaction
// spanning multiple keys.
type KeyValue interface {
	Save(key string, value []byte) error
	Load(key string) ([]byte, error)
	Close() error
}
