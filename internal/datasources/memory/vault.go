// Package memory is an in-process stand-in for the registry contract and the FHE gateway.
// Ciphertexts are opaque random tokens; the vault remembers which plaintext each one stands for.
package memory

import (
	"bytes"
	"errors"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

// Vault holds the plaintext behind every ciphertext the memory gateway produced.
// It is shared between a Gateway and the Ledger that accepts its inputs.
type Vault struct {
	mu         sync.RWMutex
	plaintexts map[domain.CiphertextHandle]uint64
}

func NewVault() *Vault {
	return &Vault{plaintexts: map[domain.CiphertextHandle]uint64{}}
}

// seal stores plaintext under a fresh ciphertext and returns it with its input proof.
func (v *Vault) seal(contractAddress, accountAddress string, plaintext uint64) domain.EncryptedInput {
	token := uuid.New()
	ciphertext := token[:]

	v.mu.Lock()
	v.plaintexts[domain.HandleFromCiphertext(ciphertext)] = plaintext
	v.mu.Unlock()

	return domain.EncryptedInput{
		Ciphertext: ciphertext,
		Proof:      inputProof(contractAddress, accountAddress, ciphertext),
	}
}

func (v *Vault) open(handle domain.CiphertextHandle) (uint64, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	plaintext, ok := v.plaintexts[handle]
	if !ok {
		return 0, fmt.Errorf("unknown ciphertext handle [%s]", handle)
	}
	return plaintext, nil
}

// checkInput verifies that an input was sealed for this contract and submitter.
func (v *Vault) checkInput(contractAddress, accountAddress string, ciphertext, proof []byte) error {
	if _, err := v.open(domain.HandleFromCiphertext(ciphertext)); err != nil {
		return err
	}
	if !bytes.Equal(proof, inputProof(contractAddress, accountAddress, ciphertext)) {
		return errors.New("invalid input proof")
	}
	return nil
}

func inputProof(contractAddress, accountAddress string, ciphertext []byte) []byte {
	h := sha256.New()
	h.Write([]byte(contractAddress))
	h.Write([]byte{0})
	h.Write([]byte(accountAddress))
	h.Write([]byte{0})
	h.Write(ciphertext)
	return h.Sum(nil)
}

func decryptionProof(handles []domain.CiphertextHandle, abiEncodedClearValues []byte) []byte {
	h := sha256.New()
	for _, handle := range handles {
		h.Write([]byte(handle))
		h.Write([]byte{0})
	}
	h.Write(abiEncodedClearValues)
	return h.Sum(nil)
}
