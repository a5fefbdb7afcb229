// Package registry is the client-side view of the content registry contract:
// it turns raw registry records into domain items and classifies registry failures.
package registry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
)

var skippedRecordsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pcf_registry_skipped_records_total",
	Help: "Registry records skipped during listing because they could not be read or decoded.",
})

// Client reads and writes content through the registry surface.
type Client struct {
	IDLister       datasources.ContentIDLister
	RecordFetcher  datasources.ContentRecordFetcher
	HandleGetter   datasources.CiphertextHandleGetter
	Creator        datasources.ContentCreator
	ProofSubmitter datasources.DecryptionProofSubmitter
	Availability   datasources.AvailabilityChecker
}

// NewClient creates a Client backed by a single registry repository.
func NewClient(repo datasources.RegistryRepository) *Client {
	return &Client{
		IDLister:       repo,
		RecordFetcher:  repo,
		HandleGetter:   repo,
		Creator:        repo,
		ProofSubmitter: repo,
		Availability:   repo,
	}
}

// ListAll fetches every item. A record that fails to load is logged and skipped;
// only a failure to enumerate ids fails the listing.
func (c *Client) ListAll(ctx context.Context) ([]domain.ContentItem, error) {
	logger := domain.LoggerFromContext(ctx)

	ids, err := c.IDLister.ListContentIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing content ids: %w", domain.ErrRegistryRead, err)
	}

	items := make([]domain.ContentItem, 0, len(ids))
	for _, id := range ids {
		item, err := c.Get(ctx, id)
		if err != nil {
			logger.WarnContext(ctx, "skipping unreadable registry record", "content_id", id, "error", err)
			skippedRecordsTotal.Inc()
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// Get fetches a single item's authoritative state.
func (c *Client) Get(ctx context.Context, id string) (domain.ContentItem, error) {
	rec, err := c.RecordFetcher.FetchContentRecord(ctx, id)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("%w: fetching record [%s]: %w", domain.ErrRegistryRead, id, err)
	}

	item, err := domain.ContentItemFromRecord(id, rec)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("%w: %w", domain.ErrRegistryRead, err)
	}
	return item, nil
}

// CiphertextHandle returns the handle of the item's encrypted score.
func (c *Client) CiphertextHandle(ctx context.Context, id string) (domain.CiphertextHandle, error) {
	handle, err := c.HandleGetter.GetCiphertextHandle(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%w: getting ciphertext handle [%s]: %w", domain.ErrRegistryRead, id, err)
	}
	return handle, nil
}

// Create submits a new item. The item is only visible to other readers once the returned
// transaction is final.
func (c *Client) Create(ctx context.Context, req datasources.CreateContentRequest) (datasources.Transaction, error) {
	tx, err := c.Creator.CreateContent(ctx, req)
	if err != nil {
		return nil, domain.ClassifyCollaboratorError(
			fmt.Errorf("submitting content [%s]: %w", req.ID, err), domain.ErrRegistryWrite)
	}
	return tx, nil
}

// SubmitVerification submits a decryption proof and waits for it to become final.
func (c *Client) SubmitVerification(ctx context.Context, id string, abiEncodedClearValues, proof []byte) error {
	tx, err := c.ProofSubmitter.SubmitDecryptionProof(ctx, id, abiEncodedClearValues, proof)
	if err != nil {
		return domain.ClassifyCollaboratorError(
			fmt.Errorf("submitting decryption proof [%s]: %w", id, err), domain.ErrRegistryWrite)
	}

	if err := tx.Wait(ctx); err != nil {
		return domain.ClassifyCollaboratorError(
			fmt.Errorf("waiting for verification tx [%s]: %w", tx.Hash(), err), domain.ErrRegistryWrite)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "decryption proof accepted",
		"content_id", id, "tx_hash", tx.Hash())
	return nil
}

// IsAvailable calls the registry's availability probe.
func (c *Client) IsAvailable(ctx context.Context) (bool, error) {
	ok, err := c.Availability.IsAvailable(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: checking availability: %w", domain.ErrRegistryRead, err)
	}
	return ok, nil
}
