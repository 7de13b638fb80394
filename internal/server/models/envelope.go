package models

// KeyConfig holds the key-derivation parameters an envelope was sealed with.
type KeyConfig struct {
	// DerivationID uniquely identifies the (file, owner) pair at the
	// key-derivation gateway.
	DerivationID []byte `json:"derivation_id"`
	// KeyName is the named key the gateway derives under.
	KeyName string `json:"key_name"`
	// EncryptionPublicKey is the ephemeral public key the gateway encrypted
	// the derived key material to when the envelope was sealed.
	EncryptionPublicKey []byte `json:"encryption_public_key"`
}

// Envelope is the sealed form of a file's content together with the
// access-control metadata that governs who may unseal it.
type Envelope struct {
	FileID           uint64      `json:"file_id"`
	EncryptedContent []byte      `json:"encrypted_content"`
	Nonce            []byte      `json:"nonce"`
	FileType         string      `json:"file_type"`
	// Owner is immutable after the envelope is created.
	Owner Principal `json:"owner_principal"`
	// SharedWith has set semantics: a principal appears at most once.
	// Insertion order is preserved.
	SharedWith []Principal `json:"shared_with"`
	KeyConfig  KeyConfig   `json:"key_config"`
}

// AccessibleBy reports whether p may unseal the envelope.
func (e *Envelope) AccessibleBy(p Principal) bool {
	if p == e.Owner {
		return true
	}
	return e.IsSharedWith(p)
}

// IsSharedWith reports whether p is in the shared set.
func (e *Envelope) IsSharedWith(p Principal) bool {
	for _, s := range e.SharedWith {
		if s == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so snapshots can leave the store's lock.
func (e *Envelope) Clone() *Envelope {
	if e == nil {
		return nil
	}
	cp := *e
	cp.EncryptedContent = append([]byte(nil), e.EncryptedContent...)
	cp.Nonce = append([]byte(nil), e.Nonce...)
	cp.SharedWith = append([]Principal(nil), e.SharedWith...)
	cp.KeyConfig.DerivationID = append([]byte(nil), e.KeyConfig.DerivationID...)
	cp.KeyConfig.EncryptionPublicKey = append([]byte(nil), e.KeyConfig.EncryptionPublicKey...)
	return &cp
}
