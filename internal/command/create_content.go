package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/registry"
)

// maxViewSeed bounds the public view count a new item starts with.
const maxViewSeed = 1000

// CatalogRefresher reloads the locally held catalog from the registry.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CreateContentRequest is the request for the CreateContent command.
type CreateContentRequest struct {
	Fields  domain.ContentFields
	Account string
	// OnProgress, if set, is told when the command moves on to waiting for finality.
	OnProgress func(message string)
}

// CreateContentResult identifies the created item.
type CreateContentResult struct {
	ID     string `json:"id"`
	TxHash string `json:"tx_hash"`
}

// CreateContent encrypts an interest score and submits a new item with it to the registry.
type CreateContent struct {
	Registry        *registry.Client
	Encryptor       datasources.Encryptor
	ContractAddress string

	// Catalog, if set, is refreshed once the item is final. Sessions that guard their catalog
	// against stale reloads leave it nil and refresh themselves.
	Catalog CatalogRefresher

	Now      func() time.Time
	ViewSeed func() uint64
}

// NewCreateContent creates a properly initialized CreateContent command.
func NewCreateContent(
	registryClient *registry.Client,
	encryptor datasources.Encryptor,
	catalog CatalogRefresher,
	contractAddress string,
) *CreateContent {
	return &CreateContent{
		Registry:        registryClient,
		Encryptor:       encryptor,
		Catalog:         catalog,
		ContractAddress: contractAddress,
		Now:             time.Now,
		ViewSeed:        func() uint64 { return rand.Uint64N(maxViewSeed) }, //nolint:gosec // not security sensitive
	}
}

// Execute validates, encrypts and submits the item, waits for it to become final, then reloads the catalog.
func (c *CreateContent) Execute(ctx context.Context, req CreateContentRequest) (CreateContentResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Account == "" {
		return CreateContentResult{}, domain.ErrWalletNotConnected
	}
	if err := req.Fields.Validate(); err != nil {
		return CreateContentResult{}, err
	}
	categoryIndex, err := req.Fields.Category.Index()
	if err != nil {
		return CreateContentResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidContent, err)
	}

	id := fmt.Sprintf("content-%d-%s", c.Now().UnixMilli(), uuid.NewString()[:8])

	encrypted, err := c.Encryptor.Encrypt(ctx, c.ContractAddress, req.Account, uint64(req.Fields.InterestScore)) //nolint:gosec // validated as 0-100
	if err != nil {
		return CreateContentResult{}, domain.ClassifyCollaboratorError(
			fmt.Errorf("encrypting interest score: %w", err), domain.ErrEncryption)
	}

	tx, err := c.Registry.Create(ctx, datasources.CreateContentRequest{
		ID:            id,
		Title:         req.Fields.Title,
		Description:   req.Fields.Description,
		Creator:       req.Account,
		Ciphertext:    encrypted.Ciphertext,
		InputProof:    encrypted.Proof,
		CategoryIndex: categoryIndex,
		ViewSeed:      c.ViewSeed(),
	})
	if err != nil {
		return CreateContentResult{}, err
	}

	if req.OnProgress != nil {
		req.OnProgress("Waiting for transaction confirmation...")
	}
	if err := tx.Wait(ctx); err != nil {
		return CreateContentResult{}, domain.ClassifyCollaboratorError(
			fmt.Errorf("waiting for create tx [%s]: %w", tx.Hash(), err), domain.ErrRegistryWrite)
	}

	logger.InfoContext(ctx, "created content", "content_id", id, "tx_hash", tx.Hash())

	if c.Catalog != nil {
		if err := c.Catalog.Refresh(ctx); err != nil {
			logger.WarnContext(ctx, "failed to refresh catalog after create", "error", err)
		}
	}

	return CreateContentResult{ID: id, TxHash: tx.Hash()}, nil
}
