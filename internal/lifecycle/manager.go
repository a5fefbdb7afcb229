// Package lifecycle tracks, per content item, how much of its confidential score this client knows,
// and drives the decrypt round trip that moves a score towards on-chain verification.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/registry"
)

var decryptOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pcf_decrypt_outcomes_total",
		Help: "Decrypt requests by outcome.",
	},
	[]string{"outcome"},
)

// DecryptOutcome describes how a successful Decrypt call ended.
type DecryptOutcome string

const (
	// OutcomeDecrypted means the gateway returned a fresh cleartext.
	OutcomeDecrypted DecryptOutcome = "decrypted"
	// OutcomeAlreadyVerified means the registry already held the verified value; no gateway call was made.
	OutcomeAlreadyVerified DecryptOutcome = "already_verified"
	// OutcomeVerifiedConcurrently means another party verified the score while our request was in flight.
	OutcomeVerifiedConcurrently DecryptOutcome = "verified_concurrently"
)

// DecryptResult is the result of a Decrypt call. Value is nil for OutcomeVerifiedConcurrently.
type DecryptResult struct {
	Value      *int
	Outcome    DecryptOutcome
	Visibility domain.ScoreVisibility
}

// Config holds tunables for the local decrypted-value cache.
type Config struct {
	// LocalCacheSize bounds how many locally decrypted values are held.
	LocalCacheSize int
	// LocalCacheTTL expires locally decrypted values; zero keeps them until evicted.
	LocalCacheTTL time.Duration
}

// Manager owns the loaded items and the ephemeral locally decrypted scores.
// Registry state always wins over the local cache.
type Manager struct {
	Registry        *registry.Client
	Decrypter       datasources.DecryptionVerifier
	ContractAddress string

	local *expirable.LRU[string, int]

	mu    sync.Mutex
	items []domain.ContentItem
	index map[string]int
	// views counts resets per item, and generation counts discards, so a decrypt that finishes after
	// its view was closed is dropped.
	views      map[string]uint64
	generation uint64
}

// NewManager creates a properly initialized Manager.
func NewManager(
	registryClient *registry.Client,
	decrypter datasources.DecryptionVerifier,
	contractAddress string,
	config Config,
) *Manager {
	return &Manager{
		Registry:        registryClient,
		Decrypter:       decrypter,
		ContractAddress: contractAddress,
		local:           expirable.NewLRU[string, int](config.LocalCacheSize, nil, config.LocalCacheTTL),
		index:           map[string]int{},
		views:           map[string]uint64{},
	}
}

// ResolveVisibility derives an item's visibility: verified registry state first, then the local cache.
func (m *Manager) ResolveVisibility(item domain.ContentItem) domain.ScoreVisibility {
	if item.VerifiedScore != nil {
		return domain.OnChainVerified(*item.VerifiedScore)
	}
	if v, ok := m.local.Peek(item.ID); ok {
		return domain.LocallyDecrypted(v)
	}
	return domain.Unresolved()
}

// LocalScore returns the locally decrypted value for an item, ignoring registry state.
func (m *Manager) LocalScore(id string) *int {
	if v, ok := m.local.Peek(id); ok {
		return &v
	}
	return nil
}

// Items returns the loaded items in registry order.
func (m *Manager) Items() []domain.ContentItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.ContentItem, len(m.items))
	copy(out, m.items)
	return out
}

// Item returns a loaded item.
func (m *Manager) Item(id string) (domain.ContentItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return domain.ContentItem{}, false
	}
	return m.items[i], true
}

// ReplaceItems swaps in a freshly listed catalog. Local values survive for unverified items.
func (m *Manager) ReplaceItems(ctx context.Context, items []domain.ContentItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaceItemsLocked(ctx, items)
}

func (m *Manager) replaceItemsLocked(ctx context.Context, items []domain.ContentItem) {
	m.items = make([]domain.ContentItem, len(items))
	copy(m.items, items)
	m.index = make(map[string]int, len(items))
	for i, item := range items {
		m.index[item.ID] = i
		m.observeLocked(ctx, item)
	}
}

// Refresh reloads the whole catalog from the registry. A listing that outlives a Discard is dropped.
func (m *Manager) Refresh(ctx context.Context) error {
	generation := m.currentGeneration()

	items, err := m.Registry.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("refreshing catalog: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != generation {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "dropping catalog listing from a discarded generation")
		return nil
	}
	m.replaceItemsLocked(ctx, items)
	return nil
}

// Discard drops every locally decrypted value, as a full reload would.
func (m *Manager) Discard(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	for _, id := range m.local.Keys() {
		m.applyLocalLocked(ctx, id, domain.VisibilityEvent{Kind: domain.EventDiscarded})
	}
}

// Reset forgets the locally decrypted value of an item, for example when its detail view closes.
// Verified items are unaffected.
func (m *Manager) Reset(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.views[id]++
	m.applyLocalLocked(ctx, id, domain.VisibilityEvent{Kind: domain.EventHidden})
}

// Decrypt recovers an item's score.
//
// An item already verified on-chain is answered from the registry without touching the gateway.
// Otherwise the gateway is asked to decrypt the item's handle, and handed a continuation that submits
// the resulting proof to the registry. The item is re-read before returning so callers see the
// post-verification state.
func (m *Manager) Decrypt(ctx context.Context, id string) (DecryptResult, error) {
	logger := domain.LoggerFromContext(ctx).With("content_id", id)
	generation := m.currentGeneration()

	item, err := m.Registry.Get(ctx, id)
	if err != nil {
		return DecryptResult{}, fmt.Errorf("fetching item state: %w", err)
	}
	m.storeItem(ctx, generation, item)

	if item.VerifiedScore != nil {
		decryptOutcomesTotal.WithLabelValues(string(OutcomeAlreadyVerified)).Inc()
		logger.DebugContext(ctx, "score already verified, skipping gateway")
		value := *item.VerifiedScore
		return DecryptResult{
			Value:      &value,
			Outcome:    OutcomeAlreadyVerified,
			Visibility: domain.OnChainVerified(value),
		}, nil
	}

	view := m.viewToken(id)

	handle, err := m.Registry.CiphertextHandle(ctx, id)
	if err != nil {
		return DecryptResult{}, err
	}

	result, err := m.Decrypter.VerifyDecryption(ctx, []domain.CiphertextHandle{handle}, m.ContractAddress,
		m.submitProofOnce(id))
	if err != nil {
		err = domain.ClassifyCollaboratorError(err, domain.ErrDecryption)
		if !errors.Is(err, domain.ErrAlreadyVerified) {
			decryptOutcomesTotal.WithLabelValues("error").Inc()
			return DecryptResult{}, fmt.Errorf("decrypting score of [%s]: %w", id, err)
		}

		logger.InfoContext(ctx, "score verified by another party during decrypt")
		decryptOutcomesTotal.WithLabelValues(string(OutcomeVerifiedConcurrently)).Inc()
		refreshed := m.reload(ctx, generation, id)
		return DecryptResult{
			Outcome:    OutcomeVerifiedConcurrently,
			Visibility: m.ResolveVisibility(refreshed),
		}, nil
	}

	clearValue, ok := result.ClearValues[handle]
	if !ok {
		decryptOutcomesTotal.WithLabelValues("error").Inc()
		return DecryptResult{}, fmt.Errorf("%w: no clear value returned for handle [%s]", domain.ErrDecryption, handle)
	}
	if clearValue > domain.MaxInterestScore {
		decryptOutcomesTotal.WithLabelValues("error").Inc()
		return DecryptResult{}, fmt.Errorf("%w: clear value [%d] out of range", domain.ErrDecryption, clearValue)
	}
	value := int(clearValue) //nolint:gosec // range checked above

	if !m.storeDecrypted(ctx, id, view, value) {
		logger.DebugContext(ctx, "view closed during decrypt, not caching value")
	}

	refreshed := m.reload(ctx, generation, id)
	decryptOutcomesTotal.WithLabelValues(string(OutcomeDecrypted)).Inc()

	return DecryptResult{
		Value:      &value,
		Outcome:    OutcomeDecrypted,
		Visibility: m.ResolveVisibility(refreshed),
	}, nil
}

// submitProofOnce builds the single-shot continuation handed to the gateway.
func (m *Manager) submitProofOnce(id string) datasources.ProofContinuation {
	var once sync.Once
	return func(ctx context.Context, abiEncodedClearValues, proof []byte) error {
		err := errors.New("decryption proof already submitted")
		once.Do(func() {
			err = m.Registry.SubmitVerification(ctx, id, abiEncodedClearValues, proof)
		})
		return err
	}
}

// reload re-reads one item after a state-changing round trip. A failed reload keeps the previous item.
func (m *Manager) reload(ctx context.Context, generation uint64, id string) domain.ContentItem {
	item, err := m.Registry.Get(ctx, id)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to refresh item after decrypt",
			"content_id", id, "error", err)
		current, _ := m.Item(id)
		return current
	}
	m.storeItem(ctx, generation, item)
	return item
}

// storeItem replaces a single item wholesale, unless the catalog was discarded since generation was taken.
func (m *Manager) storeItem(ctx context.Context, generation uint64, item domain.ContentItem) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != generation {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "dropping item read from a discarded generation",
			"content_id", item.ID)
		return
	}

	if i, ok := m.index[item.ID]; ok {
		m.items[i] = item
	} else {
		m.index[item.ID] = len(m.items)
		m.items = append(m.items, item)
	}
	m.observeLocked(ctx, item)
}

func (m *Manager) currentGeneration() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}

// storeDecrypted caches a decrypted value unless the item's view changed since the token was taken.
func (m *Manager) storeDecrypted(ctx context.Context, id string, token uint64, value int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.viewTokenLocked(id) != token {
		return false
	}
	m.applyLocalLocked(ctx, id, domain.VisibilityEvent{Kind: domain.EventDecrypted, Value: value})
	return true
}

func (m *Manager) observeLocked(ctx context.Context, item domain.ContentItem) {
	m.applyLocalLocked(ctx, item.ID, domain.VisibilityEvent{
		Kind:          domain.EventObserved,
		VerifiedScore: item.VerifiedScore,
	})
}

// applyLocalLocked runs the visibility state machine over the local view of an item and applies its
// effects. m.mu must be held.
func (m *Manager) applyLocalLocked(ctx context.Context, id string, event domain.VisibilityEvent) {
	current := domain.Unresolved()
	if v, ok := m.local.Peek(id); ok {
		current = domain.LocallyDecrypted(v)
	}

	transition, err := domain.NextVisibility(current, event)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "rejected visibility transition",
			"content_id", id, "event", event.Kind, "error", err)
		return
	}

	for _, effect := range transition.Effects {
		switch effect {
		case domain.EffectStoreLocal:
			m.local.Add(id, transition.Next.Value)
		case domain.EffectDropLocal:
			m.local.Remove(id)
		}
	}

	if current != transition.Next {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "score visibility changed",
			"content_id", id, "from", current.State, "to", transition.Next.State)
	}
}

func (m *Manager) viewToken(id string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewTokenLocked(id)
}

// viewTokenLocked only ever grows, since both counters do.
func (m *Manager) viewTokenLocked(id string) uint64 {
	return m.views[id] + m.generation
}
