package datasources

import (
	"context"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

// Gateway combines the FHE collaborators.
type Gateway interface {
	SubsystemInitializer
	Encryptor
	DecryptionVerifier
}

// SubsystemInitializer prepares the FHE subsystem (key material, relayer session).
// Encrypt and decrypt calls made before it succeeds fail with domain.ErrSubsystemNotReady.
type SubsystemInitializer interface {
	Initialize(ctx context.Context) error
}

// Encryptor turns a plaintext into a ciphertext and input proof bound to a contract and submitter.
type Encryptor interface {
	Encrypt(ctx context.Context, contractAddress, accountAddress string, plaintext uint64) (domain.EncryptedInput, error)
}

// ProofContinuation is handed to a decryption gateway and called at most once, when the decryption
// proof is ready. It is expected to submit the proof to the registry and wait for the outcome;
// its error is returned from VerifyDecryption.
type ProofContinuation func(ctx context.Context, abiEncodedClearValues, decryptionProof []byte) error

// DecryptionVerifier resolves ciphertext handles to cleartext, producing a verification proof.
type DecryptionVerifier interface {
	VerifyDecryption(
		ctx context.Context,
		handles []domain.CiphertextHandle,
		contractAddress string,
		onProofReady ProofContinuation,
	) (domain.DecryptionResult, error)
}
