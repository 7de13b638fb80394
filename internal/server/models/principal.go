package models

// Principal is an opaque, unforgeable caller identity resolved by the
// authentication layer before a request reaches the core.
type Principal string

// Anonymous is the distinguished unauthenticated sentinel.
const Anonymous Principal = ""

// IsAnonymous reports whether p is the unauthenticated sentinel.
func (p Principal) IsAnonymous() bool {
	return p == Anonymous
}
