package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCollaboratorError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		fallback error
		wantKind error
	}{
		{
			name:     "already_verified_revert",
			err:      errors.New("execution reverted: Data already verified"),
			fallback: ErrDecryption,
			wantKind: ErrAlreadyVerified,
		},
		{
			name:     "user_rejected_signature",
			err:      errors.New("user rejected transaction"),
			fallback: ErrRegistryWrite,
			wantKind: ErrUserRejected,
		},
		{
			name:     "user_denied_signature",
			err:      errors.New("MetaMask Tx Signature: User denied transaction signature."),
			fallback: ErrRegistryWrite,
			wantKind: ErrUserRejected,
		},
		{
			name:     "other_failure_gets_fallback",
			err:      errors.New("relayer timeout"),
			fallback: ErrDecryption,
			wantKind: ErrDecryption,
		},
		{
			name:     "already_classified_untouched",
			err:      ErrSubsystemNotReady,
			fallback: ErrEncryption,
			wantKind: ErrSubsystemNotReady,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyCollaboratorError(tc.err, tc.fallback)

			assert.ErrorIs(t, got, tc.wantKind)
			assert.ErrorIs(t, got, tc.err)
		})
	}

	assert.NoError(t, ClassifyCollaboratorError(nil, ErrDecryption))
}

func TestStatusMessageForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rejection",
			err:  fmt.Errorf("submitting content: %w", ErrUserRejected),
			want: "Transaction rejected by user",
		},
		{
			name: "no_wallet",
			err:  ErrWalletNotConnected,
			want: "Please connect wallet first",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "Submission failed: boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusMessageForError("Submission", tc.err))
		})
	}
}
