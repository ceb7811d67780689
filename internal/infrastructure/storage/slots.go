// Package storage implements the persistent key-value slot layer: the full
// listing collection and the current user each live in one string-keyed slot
// and are rewritten whole on every mutation.
package storage

const (
	// SlotListings holds the serialized full listing collection.
	SlotListings = "toyshare:ads"
	// SlotSession holds the serialized current user, when logged in.
	SlotSession = "toyshare:user"
)
