package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/lifecycle"
)

// ScoreDecrypter is the part of the lifecycle manager DecryptScore drives.
type ScoreDecrypter interface {
	Decrypt(ctx context.Context, id string) (lifecycle.DecryptResult, error)
	Reset(ctx context.Context, id string)
	LocalScore(id string) *int
}

// DecryptScoreRequest is the request for the DecryptScore command.
type DecryptScoreRequest struct {
	ContentID string
	// Toggle hides a score that is already locally decrypted instead of decrypting it again.
	Toggle bool
}

// DecryptScoreResult reports what the command did. Hidden is set when a toggle hid the score.
type DecryptScoreResult struct {
	lifecycle.DecryptResult
	Hidden bool
}

// DecryptScore decrypts an item's interest score, or hides it when toggled off.
type DecryptScore struct {
	Lifecycle ScoreDecrypter
}

func NewDecryptScore(decrypter ScoreDecrypter) *DecryptScore {
	return &DecryptScore{Lifecycle: decrypter}
}

func (c *DecryptScore) Execute(ctx context.Context, req DecryptScoreRequest) (DecryptScoreResult, error) {
	if req.Toggle && c.Lifecycle.LocalScore(req.ContentID) != nil {
		c.Lifecycle.Reset(ctx, req.ContentID)
		return DecryptScoreResult{
			DecryptResult: lifecycle.DecryptResult{Visibility: domain.Unresolved()},
			Hidden:        true,
		}, nil
	}

	res, err := c.Lifecycle.Decrypt(ctx, req.ContentID)
	if err != nil {
		return DecryptScoreResult{}, fmt.Errorf("decrypting score: %w", err)
	}
	return DecryptScoreResult{DecryptResult: res}, nil
}
