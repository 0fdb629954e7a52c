package domain

import "time"

// CredentialRecord is the persisted, encrypted wallet export for one user.
// One record per owner; replaced wholesale, never partially updated.
type CredentialRecord struct {
	OwnerID       string    `json:"owner_id"`
	NonceHex      string    `json:"-"` // fresh per record, never reused
	CiphertextHex string    `json:"-"` // AES-256-GCM encrypted wallet export
	CreatedAt     time.Time `json:"created_at"`
}
