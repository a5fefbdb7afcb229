// Package mysql mirrors the content registry in a MySQL database, for deployments without a chain.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
)

const contentTable = "content_items"

var errAlreadyVerified = errors.New("execution reverted: Data already verified")

var _ datasources.RegistryRepository = (*Repository)(nil)

// Repository is a registry backed by MySQL. Writes are applied when their transaction is waited on.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) ListContentIDs(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("id")
	sb.From(contentTable)
	sb.OrderBy("seq")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running content ids query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning content id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) FetchContentRecord(ctx context.Context, id string) (domain.ContentRecord, error) {
	sb := sqlbuilder.Select(
		"title", "description", "creator", "created_at", "category_index",
		"public_views", "public_likes", "is_verified", "decrypted_value",
	)
	sb.From(contentTable)
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var rec domain.ContentRecord
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.Name, &rec.Description, &rec.Creator, &rec.Timestamp, &rec.CategoryIndex,
		&rec.PublicViews, &rec.PublicLikes, &rec.IsVerified, &rec.DecryptedValue,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ContentRecord{}, fmt.Errorf("%w: [%s]", domain.ErrContentNotFound, id)
	}
	if err != nil {
		return domain.ContentRecord{}, fmt.Errorf("fetching content record: %w", err)
	}
	return rec, nil
}

func (r *Repository) GetCiphertextHandle(ctx context.Context, id string) (domain.CiphertextHandle, error) {
	sb := sqlbuilder.Select("ciphertext_handle")
	sb.From(contentTable)
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var handle string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&handle)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: [%s]", domain.ErrContentNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("fetching ciphertext handle: %w", err)
	}
	return domain.CiphertextHandle(handle), nil
}

func (r *Repository) CreateContent(
	_ context.Context,
	req datasources.CreateContentRequest,
) (datasources.Transaction, error) {
	if req.ID == "" {
		return nil, errors.New("execution reverted: empty id")
	}
	if _, err := domain.CategoryFromIndex(uint64(req.CategoryIndex)); err != nil {
		return nil, fmt.Errorf("execution reverted: %w", err)
	}
	if len(req.Ciphertext) == 0 {
		return nil, errors.New("execution reverted: empty ciphertext")
	}

	return newTransaction(func(ctx context.Context) error {
		ib := sqlbuilder.NewInsertBuilder()
		ib.InsertInto(contentTable)
		ib.Cols(
			"id", "title", "description", "creator", "category_index",
			"public_views", "created_at", "ciphertext_handle", "input_proof",
		)
		ib.Values(
			req.ID, req.Title, req.Description, req.Creator, req.CategoryIndex,
			req.ViewSeed, r.now().Unix(), string(domain.HandleFromCiphertext(req.Ciphertext)), req.InputProof,
		)

		query, args := ib.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting content [%s]: %w", req.ID, err)
		}
		return nil
	}), nil
}

// SubmitDecryptionProof records a verified value. Proof checking is left to the gateway that issued it.
func (r *Repository) SubmitDecryptionProof(
	ctx context.Context,
	id string,
	abiEncodedClearValues, decryptionProof []byte,
) (datasources.Transaction, error) {
	values, err := datasources.DecodeClearValues(abiEncodedClearValues)
	if err != nil {
		return nil, fmt.Errorf("execution reverted: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("execution reverted: expected one clear value, got %d", len(values))
	}
	if values[0] > domain.MaxInterestScore {
		return nil, fmt.Errorf("execution reverted: clear value %d exceeds %d", values[0], domain.MaxInterestScore)
	}

	rec, err := r.FetchContentRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.IsVerified {
		return nil, errAlreadyVerified
	}

	return newTransaction(func(ctx context.Context) error {
		ub := sqlbuilder.NewUpdateBuilder()
		ub.Update(contentTable)
		ub.Set(
			ub.Assign("is_verified", true),
			ub.Assign("decrypted_value", values[0]),
			ub.Assign("decryption_proof", decryptionProof),
		)
		ub.Where(ub.Equal("id", id), ub.Equal("is_verified", false))

		query, args := ub.Build()
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("recording verification [%s]: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("recording verification [%s]: %w", id, err)
		}
		if affected == 0 {
			return errAlreadyVerified
		}
		return nil
	}), nil
}

// IsAvailable pings the database.
func (r *Repository) IsAvailable(ctx context.Context) (bool, error) {
	if err := r.db.PingContext(ctx); err != nil {
		return false, fmt.Errorf("pinging registry database: %w", err)
	}
	return true, nil
}

type transaction struct {
	hash  string
	apply func(ctx context.Context) error

	mu   sync.Mutex
	done bool
	err  error
}

func newTransaction(apply func(ctx context.Context) error) *transaction {
	id := uuid.New()
	return &transaction{hash: fmt.Sprintf("0x%x", id[:]), apply: apply}
}

func (t *transaction) Hash() string {
	return t.hash
}

// Wait applies the write once; later calls return the first outcome.
func (t *transaction) Wait(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.done {
		t.err = t.apply(ctx)
		t.done = true
	}
	return t.err
}
