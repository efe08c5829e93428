package repository

// IdempotencyRepository remembers processed warehouse lifecycle event keys so
// a replayed sync call short-circuits to a no-op success.
type IdempotencyRepository interface {
	Seen(key string) (bool, error)
	Mark(key, event string) error
}
