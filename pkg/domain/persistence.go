package domain

// Medium is the synchronous key-value storage abstraction behind the record
// store. Implementations are single-process: two processes sharing a medium
// can race (classic lost update) and that is an accepted limitation.
type Medium interface {
	// Read returns the payload stored under key, reporting presence.
	Read(key string) ([]byte, bool, error)
	// Write stores payload under key, replacing any prior value.
	Write(key string, payload []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Close releases any resources held by the medium.
	Close() error
}
