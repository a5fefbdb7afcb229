package memory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
)

var errAlreadyVerified = errors.New("execution reverted: Data already verified")

type entry struct {
	record domain.ContentRecord
	handle domain.CiphertextHandle
}

// Ledger simulates the registry contract. Writes are staged and only become visible once the
// returned transaction has been waited on.
type Ledger struct {
	Address string
	Vault   *Vault

	now func() time.Time

	mu        sync.RWMutex
	order     []string
	entries   map[string]*entry
	available bool
}

func NewLedger(address string, vault *Vault) *Ledger {
	return &Ledger{
		Address:   address,
		Vault:     vault,
		now:       time.Now,
		entries:   map[string]*entry{},
		available: true,
	}
}

// SetAvailable controls what IsAvailable reports.
func (l *Ledger) SetAvailable(available bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.available = available
}

func (l *Ledger) ListContentIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, len(l.order))
	copy(ids, l.order)
	return ids, nil
}

func (l *Ledger) FetchContentRecord(_ context.Context, id string) (domain.ContentRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.entries[id]
	if !ok {
		return domain.ContentRecord{}, fmt.Errorf("%w: [%s]", domain.ErrContentNotFound, id)
	}
	return e.record, nil
}

func (l *Ledger) GetCiphertextHandle(_ context.Context, id string) (domain.CiphertextHandle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.entries[id]
	if !ok {
		return "", fmt.Errorf("%w: [%s]", domain.ErrContentNotFound, id)
	}
	return e.handle, nil
}

func (l *Ledger) CreateContent(_ context.Context, req datasources.CreateContentRequest) (datasources.Transaction, error) {
	if req.ID == "" {
		return nil, errors.New("execution reverted: empty id")
	}
	if _, err := domain.CategoryFromIndex(uint64(req.CategoryIndex)); err != nil {
		return nil, fmt.Errorf("execution reverted: %w", err)
	}
	if err := l.Vault.checkInput(l.Address, req.Creator, req.Ciphertext, req.InputProof); err != nil {
		return nil, fmt.Errorf("execution reverted: %w", err)
	}

	record := domain.ContentRecord{
		Name:          req.Title,
		Description:   req.Description,
		Creator:       req.Creator,
		CategoryIndex: uint64(req.CategoryIndex),
		PublicViews:   req.ViewSeed,
	}
	handle := domain.HandleFromCiphertext(req.Ciphertext)

	return newTransaction(func() error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if _, exists := l.entries[req.ID]; exists {
			return fmt.Errorf("execution reverted: content [%s] already exists", req.ID)
		}
		record.Timestamp = l.now().Unix()
		l.entries[req.ID] = &entry{record: record, handle: handle}
		l.order = append(l.order, req.ID)
		return nil
	}), nil
}

func (l *Ledger) SubmitDecryptionProof(
	_ context.Context,
	id string,
	abiEncodedClearValues, decryptionProof []byte,
) (datasources.Transaction, error) {
	// Mirrors the contract's pre-flight checks so obvious reverts fail at submission.
	value, err := l.checkProof(id, abiEncodedClearValues, decryptionProof)
	if err != nil {
		return nil, err
	}

	return newTransaction(func() error {
		l.mu.Lock()
		defer l.mu.Unlock()

		e := l.entries[id]
		if e.record.IsVerified {
			return errAlreadyVerified
		}
		e.record.IsVerified = true
		e.record.DecryptedValue = value
		return nil
	}), nil
}

func (l *Ledger) checkProof(id string, abiEncodedClearValues, proof []byte) (uint64, error) {
	l.mu.RLock()
	e, ok := l.entries[id]
	var handle domain.CiphertextHandle
	var verified bool
	if ok {
		handle = e.handle
		verified = e.record.IsVerified
	}
	l.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("execution reverted: %w: [%s]", domain.ErrContentNotFound, id)
	}
	if verified {
		return 0, errAlreadyVerified
	}
	if !bytes.Equal(proof, decryptionProof([]domain.CiphertextHandle{handle}, abiEncodedClearValues)) {
		return 0, errors.New("execution reverted: invalid decryption proof")
	}

	values, err := datasources.DecodeClearValues(abiEncodedClearValues)
	if err != nil {
		return 0, fmt.Errorf("execution reverted: %w", err)
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("execution reverted: expected one clear value, got %d", len(values))
	}
	if values[0] > domain.MaxInterestScore {
		return 0, fmt.Errorf("execution reverted: clear value %d exceeds %d", values[0], domain.MaxInterestScore)
	}
	return values[0], nil
}

func (l *Ledger) IsAvailable(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.available, nil
}

// transaction applies its staged write the first time it is waited on.
type transaction struct {
	hash  string
	apply func() error

	once sync.Once
	err  error
}

func newTransaction(apply func() error) *transaction {
	id := uuid.New()
	return &transaction{
		hash:  fmt.Sprintf("0x%x", id[:]),
		apply: apply,
	}
}

func (t *transaction) Hash() string {
	return t.hash
}

func (t *transaction) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.once.Do(func() {
		t.err = t.apply()
	})
	return t.err
}

var _ datasources.RegistryRepository = (*Ledger)(nil)
