// Package relayer talks to an FHE relayer over HTTP: it fetches key material, produces encrypted
// inputs with their proofs and performs public decryption with a verifiable proof.
package relayer

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pcf_relayer_requests_total",
			Help: "Relayer requests by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pcf_relayer_request_duration_seconds",
			Help:    "Relayer request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

var _ datasources.Gateway = (*Client)(nil)

// Client is a relayer-backed FHE gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	keyID string
}

// NewClient creates a new relayer client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type keyURLResponse struct {
	Response struct {
		KeyID string `json:"key_id"`
	} `json:"response"`
}

type inputProofRequest struct {
	ContractAddress string `json:"contract_address"`
	UserAddress     string `json:"user_address"`
	KeyID           string `json:"key_id"`
	Value           string `json:"value"`
	Bits            int    `json:"bits"`
}

type inputProofResponse struct {
	Ciphertext string `json:"ciphertext"`
	Proof      string `json:"proof"`
}

type publicDecryptRequest struct {
	ContractAddress string   `json:"contract_address"`
	Handles         []string `json:"handles"`
}

type publicDecryptResponse struct {
	ClearValues           map[string]string `json:"clear_values"`
	AbiEncodedClearValues string            `json:"abi_encoded_clear_values"`
	DecryptionProof       string            `json:"decryption_proof"`
}

// Initialize fetches the relayer's public key reference. Until it succeeds every other call fails
// with domain.ErrSubsystemNotReady.
func (c *Client) Initialize(ctx context.Context) error {
	var resp keyURLResponse
	if err := c.do(ctx, "initialize", http.MethodGet, "/v1/keyurl", nil, &resp); err != nil {
		return fmt.Errorf("fetching relayer key material: %w", err)
	}
	if resp.Response.KeyID == "" {
		return errors.New("relayer returned no key id")
	}

	c.mu.Lock()
	c.keyID = resp.Response.KeyID
	c.mu.Unlock()
	return nil
}

func (c *Client) Encrypt(
	ctx context.Context,
	contractAddress, accountAddress string,
	plaintext uint64,
) (domain.EncryptedInput, error) {
	keyID, err := c.requireKey()
	if err != nil {
		return domain.EncryptedInput{}, err
	}

	var resp inputProofResponse
	err = c.do(ctx, "encrypt", http.MethodPost, "/v1/input-proof", inputProofRequest{
		ContractAddress: contractAddress,
		UserAddress:     accountAddress,
		KeyID:           keyID,
		Value:           strconv.FormatUint(plaintext, 10),
		Bits:            32,
	}, &resp)
	if err != nil {
		return domain.EncryptedInput{}, fmt.Errorf("%w: %w", domain.ErrEncryption, err)
	}

	ciphertext, err := decodeHex(resp.Ciphertext)
	if err != nil {
		return domain.EncryptedInput{}, fmt.Errorf("%w: decoding ciphertext: %w", domain.ErrEncryption, err)
	}
	proof, err := decodeHex(resp.Proof)
	if err != nil {
		return domain.EncryptedInput{}, fmt.Errorf("%w: decoding input proof: %w", domain.ErrEncryption, err)
	}
	return domain.EncryptedInput{Ciphertext: ciphertext, Proof: proof}, nil
}

// VerifyDecryption asks the relayer to publicly decrypt the handles, then hands the ABI encoded
// values and proof to onProofReady. An error from onProofReady is returned as is.
func (c *Client) VerifyDecryption(
	ctx context.Context,
	handles []domain.CiphertextHandle,
	contractAddress string,
	onProofReady datasources.ProofContinuation,
) (domain.DecryptionResult, error) {
	if _, err := c.requireKey(); err != nil {
		return domain.DecryptionResult{}, err
	}

	req := publicDecryptRequest{ContractAddress: contractAddress, Handles: make([]string, len(handles))}
	for i, h := range handles {
		req.Handles[i] = string(h)
	}

	var resp publicDecryptResponse
	if err := c.do(ctx, "decrypt", http.MethodPost, "/v1/public-decrypt", req, &resp); err != nil {
		return domain.DecryptionResult{}, fmt.Errorf("public decrypt: %w", err)
	}

	// Hex case may differ on the way back, so values are keyed by the handles as the caller passed them.
	requested := make(map[string]domain.CiphertextHandle, len(handles))
	for _, h := range handles {
		requested[strings.ToLower(string(h))] = h
	}

	result := domain.DecryptionResult{ClearValues: make(map[domain.CiphertextHandle]uint64, len(resp.ClearValues))}
	for handle, raw := range resp.ClearValues {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return domain.DecryptionResult{}, fmt.Errorf("parsing clear value for [%s]: %w", handle, err)
		}
		key, ok := requested[strings.ToLower(handle)]
		if !ok {
			key = domain.CiphertextHandle(handle)
		}
		result.ClearValues[key] = v
	}

	abi, err := decodeHex(resp.AbiEncodedClearValues)
	if err != nil {
		return domain.DecryptionResult{}, fmt.Errorf("decoding abi clear values: %w", err)
	}
	proof, err := decodeHex(resp.DecryptionProof)
	if err != nil {
		return domain.DecryptionResult{}, fmt.Errorf("decoding decryption proof: %w", err)
	}

	if err := onProofReady(ctx, abi, proof); err != nil {
		return domain.DecryptionResult{}, err
	}
	return result, nil
}

func (c *Client) requireKey() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.keyID == "" {
		return "", domain.ErrSubsystemNotReady
	}
	return c.keyID, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		requestsTotal.WithLabelValues(operation, outcome).Inc()
		requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("relayer error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
