// Package session composes wallet connection, FHE subsystem readiness and catalog loading into the
// client's top-level mode, and funnels every user action through a single status channel.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jbeshir/private-content-feed/internal/command"
	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/lifecycle"
	"github.com/jbeshir/private-content-feed/internal/registry"
)

// Mode is the top-level client mode.
type Mode string

const (
	ModeDisconnected Mode = "disconnected"
	// ModeInitializing lasts until the FHE subsystem is ready. A failed initialization is retried on the next connect.
	ModeInitializing Mode = "initializing"
	ModeLoading      Mode = "loading"
	ModeReady        Mode = "ready"
)

// View is a snapshot of the session.
type View struct {
	Mode         Mode                     `json:"mode"`
	Account      string                   `json:"account,omitempty"`
	Connected    bool                     `json:"connected"`
	Initialized  bool                     `json:"initialized"`
	Initializing bool                     `json:"initializing"`
	Loading      bool                     `json:"loading"`
	Refreshing   bool                     `json:"refreshing"`
	Status       domain.TransactionStatus `json:"status"`
}

// Orchestrator is the single client session.
type Orchestrator struct {
	Initializer  datasources.SubsystemInitializer
	Registry     *registry.Client
	Lifecycle    *lifecycle.Manager
	Create       command.Command[command.CreateContentRequest, command.CreateContentResult]
	Decrypt      command.Command[command.DecryptScoreRequest, command.DecryptScoreResult]
	Availability command.Command[command.Empty, command.Empty]
	Status       *StatusChannel

	mu           sync.Mutex
	account      string
	connected    bool
	initialized  bool
	initializing bool
	loading      bool
	refreshing   bool
	// epoch changes on every connect and disconnect; loads started under an older epoch are abandoned.
	epoch uint64
}

// NewOrchestrator creates a properly initialized Orchestrator.
func NewOrchestrator(
	initializer datasources.SubsystemInitializer,
	registryClient *registry.Client,
	manager *lifecycle.Manager,
	create command.Command[command.CreateContentRequest, command.CreateContentResult],
	decrypt command.Command[command.DecryptScoreRequest, command.DecryptScoreResult],
	availability command.Command[command.Empty, command.Empty],
	status *StatusChannel,
) *Orchestrator {
	return &Orchestrator{
		Initializer:  initializer,
		Registry:     registryClient,
		Lifecycle:    manager,
		Create:       create,
		Decrypt:      decrypt,
		Availability: availability,
		Status:       status,
	}
}

// View returns the current session snapshot.
func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()

	v := View{
		Account:      o.account,
		Connected:    o.connected,
		Initialized:  o.initialized,
		Initializing: o.initializing,
		Loading:      o.loading,
		Refreshing:   o.refreshing,
		Status:       o.Status.Current(),
	}
	switch {
	case !o.connected:
		v.Mode = ModeDisconnected
	case !o.initialized:
		v.Mode = ModeInitializing
	case o.loading:
		v.Mode = ModeLoading
	default:
		v.Mode = ModeReady
	}
	return v
}

// Connect records a wallet connection, then initializes the FHE subsystem (at most once) and loads the
// catalog concurrently. Failures of either are reported on the status channel, not returned.
func (o *Orchestrator) Connect(ctx context.Context, account string) error {
	if account == "" {
		return domain.ErrWalletNotConnected
	}

	o.mu.Lock()
	o.account = account
	o.connected = true
	// Loads of the previous epoch are abandoned, so their flags are too.
	o.loading = false
	o.refreshing = false
	o.epoch++
	epoch := o.epoch
	o.mu.Unlock()

	ctx = domain.ContextWithAccount(ctx, account)
	domain.LoggerFromContext(ctx).InfoContext(ctx, "wallet connected")

	var g errgroup.Group
	g.Go(func() error {
		o.initialize(ctx)
		return nil
	})
	g.Go(func() error {
		if err := o.load(ctx, epoch, false); err != nil {
			o.Status.Error("Failed to load data")
		}
		return nil
	})
	return g.Wait()
}

// Disconnect forgets the account and every piece of ephemeral client state. Pending loads are abandoned.
func (o *Orchestrator) Disconnect(ctx context.Context) {
	o.mu.Lock()
	o.account = ""
	o.connected = false
	o.loading = false
	o.refreshing = false
	o.epoch++
	o.mu.Unlock()

	o.Lifecycle.Discard(ctx)
	o.Lifecycle.ReplaceItems(ctx, nil)
	domain.LoggerFromContext(ctx).InfoContext(ctx, "wallet disconnected")
}

func (o *Orchestrator) initialize(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	o.mu.Lock()
	if o.initialized || o.initializing {
		o.mu.Unlock()
		return
	}
	o.initializing = true
	o.mu.Unlock()

	err := o.Initializer.Initialize(ctx)

	o.mu.Lock()
	o.initializing = false
	o.initialized = err == nil
	o.mu.Unlock()

	if err != nil {
		logger.ErrorContext(ctx, "FHE subsystem initialization failed", "error", err)
		o.Status.Error("FHE subsystem initialization failed")
		return
	}
	logger.InfoContext(ctx, "FHE subsystem initialized")
}

// load lists the catalog and installs it unless the session moved on while it was in flight.
// The loading or refreshing flag it raises belongs to its epoch: a newer epoch has already reset it.
func (o *Orchestrator) load(ctx context.Context, epoch uint64, refreshing bool) error {
	o.mu.Lock()
	if !o.connected || o.epoch != epoch {
		o.mu.Unlock()
		return nil
	}
	o.setLoadFlagLocked(refreshing, true)
	o.mu.Unlock()

	items, err := o.Registry.ListAll(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.epoch != epoch {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "abandoning catalog load for stale session")
		return nil
	}
	o.setLoadFlagLocked(refreshing, false)
	if err != nil {
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "failed to load catalog", "error", err)
		return err
	}

	o.Lifecycle.ReplaceItems(ctx, items)
	return nil
}

func (o *Orchestrator) setLoadFlagLocked(refreshing, value bool) {
	if refreshing {
		o.refreshing = value
	} else {
		o.loading = value
	}
}

// Refresh reloads the catalog on demand. A refresh already in flight is not duplicated.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	o.mu.Lock()
	if !o.connected {
		o.mu.Unlock()
		o.Status.Error(domain.StatusMessageForError("Refresh", domain.ErrWalletNotConnected))
		return domain.ErrWalletNotConnected
	}
	if o.refreshing {
		o.mu.Unlock()
		return nil
	}
	o.refreshing = true
	epoch := o.epoch
	o.mu.Unlock()

	if err := o.load(ctx, epoch, true); err != nil {
		o.Status.Error("Failed to load data")
		return err
	}
	return nil
}

// CreateContent runs the create action with status reporting.
func (o *Orchestrator) CreateContent(
	ctx context.Context,
	fields domain.ContentFields,
) (command.CreateContentResult, error) {
	account, err := o.requireReady()
	if err != nil {
		o.Status.Error(domain.StatusMessageForError("Submission", err))
		return command.CreateContentResult{}, err
	}
	epoch := o.currentEpoch()
	ctx = domain.ContextWithAccount(ctx, account)

	o.Status.Pending("Creating content with FHE encryption...")
	res, err := o.Create.Execute(ctx, command.CreateContentRequest{
		Fields:     fields,
		Account:    account,
		OnProgress: o.Status.Pending,
	})
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "create content failed", "error", err)
		o.Status.Error(domain.StatusMessageForError("Submission", err))
		return command.CreateContentResult{}, err
	}

	// Reload through the session so a create outliving its session cannot repopulate a closed catalog.
	if err := o.load(ctx, epoch, true); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to refresh catalog after create", "error", err)
	}

	o.Status.Success("Content created successfully!")
	return res, nil
}

// DecryptScore runs the decrypt action with status reporting. With toggle set, an item whose score is
// already shown locally is hidden instead.
func (o *Orchestrator) DecryptScore(
	ctx context.Context,
	id string,
	toggle bool,
) (command.DecryptScoreResult, error) {
	account, err := o.requireReady()
	if err != nil {
		o.Status.Error(domain.StatusMessageForError("Decryption", err))
		return command.DecryptScoreResult{}, err
	}
	ctx = domain.ContextWithAccount(ctx, account)

	if _, ok := o.Lifecycle.Item(id); !ok {
		return command.DecryptScoreResult{}, fmt.Errorf("%w: [%s]", domain.ErrContentNotFound, id)
	}

	o.Status.Pending("Verifying decryption on-chain...")
	res, err := o.Decrypt.Execute(ctx, command.DecryptScoreRequest{ContentID: id, Toggle: toggle})
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "decrypt failed", "content_id", id, "error", err)
		o.Status.Error(domain.StatusMessageForError("Decryption", err))
		return command.DecryptScoreResult{}, err
	}

	switch {
	case res.Hidden:
		o.Status.Set(domain.HiddenStatus())
	case res.Outcome == lifecycle.OutcomeAlreadyVerified:
		o.Status.Success("Data already verified on-chain")
	case res.Outcome == lifecycle.OutcomeVerifiedConcurrently:
		o.Status.Success("Data is already verified on-chain")
	default:
		o.Status.Success("Interest score decrypted successfully!")
	}
	return res, nil
}

// HideScore forgets a locally decrypted score, as closing its detail view does.
func (o *Orchestrator) HideScore(ctx context.Context, id string) error {
	if _, ok := o.Lifecycle.Item(id); !ok {
		return fmt.Errorf("%w: [%s]", domain.ErrContentNotFound, id)
	}
	o.Lifecycle.Reset(ctx, id)
	return nil
}

// CheckAvailability probes the registry with status reporting.
func (o *Orchestrator) CheckAvailability(ctx context.Context) error {
	o.mu.Lock()
	connected := o.connected
	o.mu.Unlock()
	if !connected {
		o.Status.Error(domain.StatusMessageForError("Availability check", domain.ErrWalletNotConnected))
		return domain.ErrWalletNotConnected
	}

	o.Status.Pending("Checking system availability...")
	if _, err := o.Availability.Execute(ctx, command.Empty{}); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "availability check failed", "error", err)
		o.Status.Error("Availability check failed")
		return err
	}
	o.Status.Success("System is available and ready!")
	return nil
}

// Summary aggregates the loaded catalog.
func (o *Orchestrator) Summary(now time.Time) domain.CatalogSummary {
	return domain.SummarizeCatalog(o.Lifecycle.Items(), now)
}

func (o *Orchestrator) currentEpoch() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.epoch
}

func (o *Orchestrator) requireReady() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.connected {
		return "", domain.ErrWalletNotConnected
	}
	if !o.initialized {
		return "", domain.ErrSubsystemNotReady
	}
	return o.account, nil
}

// IsNotReady reports whether err is a session precondition failure rather than an action failure.
func IsNotReady(err error) bool {
	return errors.Is(err, domain.ErrWalletNotConnected) || errors.Is(err, domain.ErrSubsystemNotReady)
}
