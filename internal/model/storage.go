package model

// KeyValueStore is the client-local persistence port. The session
// manager keeps exactly two entries in it: the bearer token and the
// serialized current user.
type KeyValueStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Storage keys for the persisted session.
const (
	StorageKeyToken = "classdesk_token"
	StorageKeyUser  = "classdesk_user"
)
