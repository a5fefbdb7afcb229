package memory

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/lifecycle"
	"github.com/jbeshir/private-content-feed/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testContract = "0xregistry"
	testAccount  = "0xalice"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func newBackend(t *testing.T) (*Ledger, *Gateway) {
	t.Helper()
	vault := NewVault()
	gateway := NewGateway(vault)
	require.NoError(t, gateway.Initialize(testContext()))
	return NewLedger(testContract, vault), gateway
}

func createItem(t *testing.T, ledger *Ledger, gateway *Gateway, id string, score uint64) datasources.Transaction {
	t.Helper()
	ctx := testContext()

	input, err := gateway.Encrypt(ctx, testContract, testAccount, score)
	require.NoError(t, err)

	tx, err := ledger.CreateContent(ctx, datasources.CreateContentRequest{
		ID:            id,
		Title:         "Title " + id,
		Description:   "Description " + id,
		Creator:       testAccount,
		Ciphertext:    input.Ciphertext,
		InputProof:    input.Proof,
		CategoryIndex: 2,
		ViewSeed:      17,
	})
	require.NoError(t, err)
	return tx
}

func TestLedger_CreateVisibleAfterFinality(t *testing.T) {
	ledger, gateway := newBackend(t)
	ctx := testContext()
	client := registry.NewClient(ledger)

	tx := createItem(t, ledger, gateway, "c1", 64)

	items, err := client.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "staged item must not be listed before finality")

	require.NoError(t, tx.Wait(ctx))
	assert.NotEmpty(t, tx.Hash())

	items, err = client.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "c1", item.ID)
	assert.Equal(t, "Title c1", item.Title)
	assert.Equal(t, "Description c1", item.Description)
	assert.Equal(t, domain.CategoryCrypto, item.Category)
	assert.Equal(t, uint64(17), item.PublicViews)
	assert.False(t, item.IsVerified())
	assert.WithinDuration(t, time.Now(), item.CreatedAt, time.Minute)
}

func TestLedger_CreateRejectsBadInput(t *testing.T) {
	ledger, gateway := newBackend(t)
	ctx := testContext()

	input, err := gateway.Encrypt(ctx, testContract, testAccount, 10)
	require.NoError(t, err)

	cases := []struct {
		name string
		req  datasources.CreateContentRequest
	}{
		{
			name: "proof_for_other_account",
			req: datasources.CreateContentRequest{
				ID: "x", Creator: "0xmallory", Ciphertext: input.Ciphertext, InputProof: input.Proof,
			},
		},
		{
			name: "unknown_ciphertext",
			req: datasources.CreateContentRequest{
				ID: "x", Creator: testAccount, Ciphertext: []byte("forged"), InputProof: input.Proof,
			},
		},
		{
			name: "unknown_category",
			req: datasources.CreateContentRequest{
				ID: "x", Creator: testAccount, Ciphertext: input.Ciphertext, InputProof: input.Proof, CategoryIndex: 9,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.CreateContent(ctx, tc.req)
			assert.Error(t, err)
		})
	}
}

func TestLedger_DecryptThroughLifecycle(t *testing.T) {
	ledger, gateway := newBackend(t)
	ctx := testContext()
	require.NoError(t, createItem(t, ledger, gateway, "c1", 64).Wait(ctx))

	client := registry.NewClient(ledger)
	manager := lifecycle.NewManager(client, gateway, testContract, lifecycle.Config{LocalCacheSize: 8})
	require.NoError(t, manager.Refresh(ctx))

	item, ok := manager.Item("c1")
	require.True(t, ok)
	assert.Equal(t, domain.Unresolved(), manager.ResolveVisibility(item))

	res, err := manager.Decrypt(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, res.Value)
	assert.Equal(t, 64, *res.Value)
	assert.Equal(t, lifecycle.OutcomeDecrypted, res.Outcome)
	assert.Equal(t, domain.OnChainVerified(64), res.Visibility)

	// Second decrypt is answered from the registry.
	res, err = manager.Decrypt(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeAlreadyVerified, res.Outcome)
}

func TestLedger_SubmitDecryptionProof(t *testing.T) {
	ledger, gateway := newBackend(t)
	ctx := testContext()
	require.NoError(t, createItem(t, ledger, gateway, "c1", 30).Wait(ctx))

	handle, err := ledger.GetCiphertextHandle(ctx, "c1")
	require.NoError(t, err)
	abi := datasources.EncodeClearValues([]uint64{30})
	proof := decryptionProof([]domain.CiphertextHandle{handle}, abi)

	_, err = ledger.SubmitDecryptionProof(ctx, "c1", abi, []byte("forged"))
	assert.Error(t, err)

	outOfRange := datasources.EncodeClearValues([]uint64{domain.MaxInterestScore + 1})
	_, err = ledger.SubmitDecryptionProof(ctx, "c1", outOfRange,
		decryptionProof([]domain.CiphertextHandle{handle}, outOfRange))
	assert.ErrorContains(t, err, "exceeds")

	first, err := ledger.SubmitDecryptionProof(ctx, "c1", abi, proof)
	require.NoError(t, err)
	second, err := ledger.SubmitDecryptionProof(ctx, "c1", abi, proof)
	require.NoError(t, err)

	require.NoError(t, first.Wait(ctx))
	err = second.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, domain.ClassifyCollaboratorError(err, domain.ErrRegistryWrite), domain.ErrAlreadyVerified)

	rec, err := ledger.FetchContentRecord(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, rec.IsVerified)
	assert.Equal(t, uint64(30), rec.DecryptedValue)

	_, err = ledger.SubmitDecryptionProof(ctx, "c1", abi, proof)
	assert.ErrorIs(t, domain.ClassifyCollaboratorError(err, domain.ErrRegistryWrite), domain.ErrAlreadyVerified)
}

func TestGateway_RequiresInitialization(t *testing.T) {
	gateway := NewGateway(NewVault())
	ctx := testContext()

	_, err := gateway.Encrypt(ctx, testContract, testAccount, 1)
	assert.ErrorIs(t, err, domain.ErrSubsystemNotReady)

	_, err = gateway.VerifyDecryption(ctx, nil, testContract,
		func(context.Context, []byte, []byte) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSubsystemNotReady)
}

func TestLedger_IsAvailable(t *testing.T) {
	ledger, _ := newBackend(t)

	ok, err := ledger.IsAvailable(testContext())
	require.NoError(t, err)
	assert.True(t, ok)

	ledger.SetAvailable(false)
	ok, err = ledger.IsAvailable(testContext())
	require.NoError(t, err)
	assert.False(t, ok)
}
