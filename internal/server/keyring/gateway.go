// Package keyring seals and unseals file content. Key material never
// originates here: it is obtained per file from an external key-derivation
// gateway, encrypted to an ephemeral key of the requester, so that a
// permission check failure is also a cryptographic dead end.
package keyring

import "context"

// Gateway is the boundary to the external key-derivation service.
//
// Derive returns key material for the given derivation id and key name,
// encrypted to encryptionPublicKey (a 32-byte X25519 public key). The same
// (derivationID, keyName) pair always yields the same underlying key
// material; only the transport encryption differs per request.
type Gateway interface {
	Derive(ctx context.Context, derivationID []byte, keyName string, encryptionPublicKey []byte) ([]byte, error)
}
