package memory

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
)

// Gateway encrypts and decrypts through a Vault. It refuses work until initialized.
type Gateway struct {
	Vault *Vault

	ready atomic.Bool
}

func NewGateway(vault *Vault) *Gateway {
	return &Gateway{Vault: vault}
}

func (g *Gateway) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.ready.Store(true)
	return nil
}

func (g *Gateway) Encrypt(
	_ context.Context,
	contractAddress, accountAddress string,
	plaintext uint64,
) (domain.EncryptedInput, error) {
	if !g.ready.Load() {
		return domain.EncryptedInput{}, domain.ErrSubsystemNotReady
	}
	if contractAddress == "" || accountAddress == "" {
		return domain.EncryptedInput{}, fmt.Errorf("%w: contract and account addresses are required",
			domain.ErrEncryption)
	}
	return g.Vault.seal(contractAddress, accountAddress, plaintext), nil
}

// VerifyDecryption opens the handles, hands the proof to onProofReady and returns its error, if any.
func (g *Gateway) VerifyDecryption(
	ctx context.Context,
	handles []domain.CiphertextHandle,
	_ string,
	onProofReady datasources.ProofContinuation,
) (domain.DecryptionResult, error) {
	if !g.ready.Load() {
		return domain.DecryptionResult{}, domain.ErrSubsystemNotReady
	}

	values := make([]uint64, 0, len(handles))
	result := domain.DecryptionResult{ClearValues: make(map[domain.CiphertextHandle]uint64, len(handles))}
	for _, handle := range handles {
		v, err := g.Vault.open(handle)
		if err != nil {
			return domain.DecryptionResult{}, err
		}
		values = append(values, v)
		result.ClearValues[handle] = v
	}

	abi := datasources.EncodeClearValues(values)
	if err := onProofReady(ctx, abi, decryptionProof(handles, abi)); err != nil {
		return domain.DecryptionResult{}, err
	}
	return result, nil
}

var _ datasources.Gateway = (*Gateway)(nil)
