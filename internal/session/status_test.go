package session

import (
	"testing"
	"time"

	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusChannel_LastWriteWins(t *testing.T) {
	c := NewStatusChannel(StatusConfig{SuccessDismiss: time.Hour, ErrorDismiss: time.Hour})

	assert.False(t, c.Current().Visible)

	c.Pending("Creating content with FHE encryption...")
	c.Pending("Verifying decryption on-chain...")

	got := c.Current()
	assert.Equal(t, domain.StatusPending, got.Phase)
	assert.Equal(t, "Verifying decryption on-chain...", got.Message)
	assert.True(t, got.Visible)
}

func TestStatusChannel_Dismissal(t *testing.T) {
	cases := []struct {
		name string
		set  func(c *StatusChannel)
	}{
		{name: "success", set: func(c *StatusChannel) { c.Success("done") }},
		{name: "error", set: func(c *StatusChannel) { c.Error("failed") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewStatusChannel(StatusConfig{SuccessDismiss: 10 * time.Millisecond, ErrorDismiss: 10 * time.Millisecond})
			tc.set(c)
			require.True(t, c.Current().Visible)

			assert.Eventually(t, func() bool { return !c.Current().Visible }, time.Second, 5*time.Millisecond)
		})
	}
}

func TestStatusChannel_PendingPersists(t *testing.T) {
	c := NewStatusChannel(StatusConfig{SuccessDismiss: 5 * time.Millisecond, ErrorDismiss: 5 * time.Millisecond})

	c.Success("done")
	c.Pending("working")

	time.Sleep(30 * time.Millisecond)
	got := c.Current()
	assert.True(t, got.Visible)
	assert.Equal(t, "working", got.Message)
}

func TestStatusChannel_StaleDismissalIgnored(t *testing.T) {
	c := NewStatusChannel(StatusConfig{SuccessDismiss: time.Hour, ErrorDismiss: time.Hour})

	c.Success("first")
	stale := c.generation
	c.Error("second")

	c.dismiss(stale)
	assert.Equal(t, "second", c.Current().Message)
}
