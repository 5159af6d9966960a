package storages

// Storage is a durable string key-value store. Both operations may fail.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string) error

	Close() error
}
