package session

import (
	"sync"
	"time"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

// StatusConfig sets how long finished statuses stay visible.
type StatusConfig struct {
	SuccessDismiss time.Duration
	ErrorDismiss   time.Duration
}

// StatusChannel is a single slot for user-facing action feedback.
// Writes are last-write-wins; success and error statuses clear themselves after a delay
// unless something newer has replaced them first.
type StatusChannel struct {
	config StatusConfig
	now    func() time.Time

	mu         sync.Mutex
	current    domain.TransactionStatus
	generation uint64
	timer      *time.Timer
}

func NewStatusChannel(config StatusConfig) *StatusChannel {
	return &StatusChannel{
		config:  config,
		now:     time.Now,
		current: domain.HiddenStatus(),
	}
}

func (c *StatusChannel) Pending(message string) {
	c.Set(domain.PendingStatus(message))
}

func (c *StatusChannel) Success(message string) {
	c.Set(domain.SuccessStatus(message))
}

func (c *StatusChannel) Error(message string) {
	c.Set(domain.ErrorStatus(message))
}

// Set replaces whatever is displayed.
func (c *StatusChannel) Set(status domain.TransactionStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	status.UpdatedAt = c.now()
	c.current = status
	c.generation++

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	var delay time.Duration
	switch status.Phase {
	case domain.StatusSuccess:
		delay = c.config.SuccessDismiss
	case domain.StatusError:
		delay = c.config.ErrorDismiss
	default:
		return
	}

	generation := c.generation
	c.timer = time.AfterFunc(delay, func() {
		c.dismiss(generation)
	})
}

// Current returns the displayed status.
func (c *StatusChannel) Current() domain.TransactionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *StatusChannel) dismiss(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stop does not guarantee the callback has not already started.
	if c.generation != generation {
		return
	}
	c.current = domain.HiddenStatus()
	c.timer = nil
}
