package datasources

import (
	"context"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

// RegistryRepository combines the registry contract surface consumed by the client.
type RegistryRepository interface {
	ContentIDLister
	ContentRecordFetcher
	CiphertextHandleGetter
	ContentCreator
	DecryptionProofSubmitter
	AvailabilityChecker
}

// Transaction is a submitted registry transaction.
type Transaction interface {
	Hash() string
	// Wait blocks until the transaction is final or fails.
	Wait(ctx context.Context) error
}

// ContentIDLister mirrors getAllBusinessIds.
type ContentIDLister interface {
	ListContentIDs(ctx context.Context) ([]string, error)
}

// ContentRecordFetcher mirrors getBusinessData.
type ContentRecordFetcher interface {
	FetchContentRecord(ctx context.Context, id string) (domain.ContentRecord, error)
}

// CiphertextHandleGetter mirrors getEncryptedValue. Always readable, verified or not.
type CiphertextHandleGetter interface {
	GetCiphertextHandle(ctx context.Context, id string) (domain.CiphertextHandle, error)
}

// CreateContentRequest carries the arguments of createBusinessData.
type CreateContentRequest struct {
	ID            string
	Title         string
	Description   string
	Creator       string
	Ciphertext    []byte
	InputProof    []byte
	CategoryIndex uint8
	ViewSeed      uint64
}

// ContentCreator mirrors createBusinessData.
type ContentCreator interface {
	CreateContent(ctx context.Context, req CreateContentRequest) (Transaction, error)
}

// DecryptionProofSubmitter mirrors verifyDecryption.
type DecryptionProofSubmitter interface {
	SubmitDecryptionProof(
		ctx context.Context,
		id string,
		abiEncodedClearValues, decryptionProof []byte,
	) (Transaction, error)
}

// AvailabilityChecker mirrors isAvailable.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) (bool, error)
}
