package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// MaxInterestScore is the upper bound of the confidential interest score.
const MaxInterestScore = 100

// CiphertextHandle is an opaque reference to an encrypted value held by the registry.
type CiphertextHandle string

// HandleFromCiphertext derives the registry handle for an encrypted input.
func HandleFromCiphertext(ciphertext []byte) CiphertextHandle {
	return CiphertextHandle("0x" + hex.EncodeToString(ciphertext))
}

// ContentItem is a content entry as read from the registry.
// Items are never patched in place; a changed item is replaced by a fresh registry read.
type ContentItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Creator     string    `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
	PublicViews uint64    `json:"public_views"`
	PublicLikes uint64    `json:"public_likes"`

	// VerifiedScore is set if and only if the registry has accepted a decryption proof.
	VerifiedScore *int `json:"verified_score,omitempty"`
}

// IsVerified reports whether the score is part of the item's public on-chain record.
func (c ContentItem) IsVerified() bool {
	return c.VerifiedScore != nil
}

// ContentRecord is the raw record shape of the registry's getBusinessData call.
type ContentRecord struct {
	Name           string
	Description    string
	Creator        string
	Timestamp      int64
	CategoryIndex  uint64
	PublicViews    uint64
	PublicLikes    uint64
	IsVerified     bool
	DecryptedValue uint64
}

// ContentItemFromRecord converts a registry record into a ContentItem.
func ContentItemFromRecord(id string, rec ContentRecord) (ContentItem, error) {
	category, err := CategoryFromIndex(rec.CategoryIndex)
	if err != nil {
		return ContentItem{}, fmt.Errorf("decoding record [%s]: %w", id, err)
	}

	item := ContentItem{
		ID:          id,
		Title:       rec.Name,
		Category:    category,
		Description: rec.Description,
		Creator:     rec.Creator,
		CreatedAt:   time.Unix(rec.Timestamp, 0).UTC(),
		PublicViews: rec.PublicViews,
		PublicLikes: rec.PublicLikes,
	}

	if rec.IsVerified {
		if rec.DecryptedValue > MaxInterestScore {
			return ContentItem{}, fmt.Errorf("decoding record [%s]: verified score [%d] out of range",
				id, rec.DecryptedValue)
		}
		score := int(rec.DecryptedValue) //nolint:gosec // range checked above
		item.VerifiedScore = &score
	}

	return item, nil
}

// ContentFields are the user-supplied fields of a new content item.
type ContentFields struct {
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	Description   string   `json:"description"`
	InterestScore int      `json:"interest_score"`
}

// Validate checks the fields before anything is encrypted or submitted.
func (f ContentFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidContent)
	}
	if strings.TrimSpace(f.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidContent)
	}
	if _, err := f.Category.Index(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	if f.InterestScore < 0 || f.InterestScore > MaxInterestScore {
		return fmt.Errorf("%w: interest score [%d] must be between 0 and %d",
			ErrInvalidContent, f.InterestScore, MaxInterestScore)
	}
	return nil
}

// EncryptedInput is a ciphertext plus its input proof, bound to a contract and submitter.
type EncryptedInput struct {
	Ciphertext []byte
	Proof      []byte
}

// DecryptionResult maps each requested handle to its cleartext.
type DecryptionResult struct {
	ClearValues map[CiphertextHandle]uint64
}
