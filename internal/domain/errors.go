package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSubsystemNotReady  = errors.New("FHE subsystem not ready")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrEncryption         = errors.New("encryption failed")
	ErrDecryption         = errors.New("decryption failed")
	ErrAlreadyVerified    = errors.New("data already verified")
	ErrRegistryRead       = errors.New("registry read failed")
	ErrRegistryWrite      = errors.New("registry write failed")
	ErrUserRejected       = errors.New("transaction rejected by user")

	ErrInvalidContent     = errors.New("invalid content")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrContentNotFound    = errors.New("content not found")
	ErrTerminalVisibility = errors.New("score already verified on-chain")
)

// ClassifyCollaboratorError attaches an error kind to an error returned by a wallet, gateway or
// registry collaborator. Those collaborators only report failures as text, so the "already verified"
// revert and wallet signature refusals are recognised by message. Anything else gets the fallback kind.
func ClassifyCollaboratorError(err error, fallback error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrAlreadyVerified, ErrUserRejected, ErrSubsystemNotReady, fallback} {
		if errors.Is(err, kind) {
			return err
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already verified"):
		return fmt.Errorf("%w: %w", ErrAlreadyVerified, err)
	case strings.Contains(msg, "user rejected"), strings.Contains(msg, "user denied"):
		return fmt.Errorf("%w: %w", ErrUserRejected, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

// StatusMessageForError renders a failed action as a status line. Kinds the user can act on get a fixed
// message; anything else is reported as "<action> failed: <error>".
func StatusMessageForError(action string, err error) string {
	switch {
	case errors.Is(err, ErrUserRejected):
		return "Transaction rejected by user"
	case errors.Is(err, ErrWalletNotConnected):
		return "Please connect wallet first"
	case errors.Is(err, ErrSubsystemNotReady):
		return "FHE system is not ready yet"
	default:
		return fmt.Sprintf("%s failed: %v", action, err)
	}
}
