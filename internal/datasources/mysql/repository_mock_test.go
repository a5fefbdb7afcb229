package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/domain"
)

var recordColumns = []string{
	"title", "description", "creator", "created_at", "category_index",
	"public_views", "public_likes", "is_verified", "decrypted_value",
}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	repo := NewRepository(db)
	repo.now = func() time.Time { return time.Unix(1714176000, 0) }
	return repo, mock
}

func TestRepository_ListContentIDs_Mock(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT id FROM content_items ORDER BY seq").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("content-1").AddRow("content-2"))

	ids, err := repo.ListContentIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"content-1", "content-2"}, ids)
}

func TestRepository_FetchContentRecord_Mock(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT title, description, .* FROM content_items WHERE id = ?").
			WithArgs("content-1").
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow("Title", "Desc", "0xalice", int64(1714176000), int64(3), int64(10), int64(2), true, int64(77)))

		rec, err := repo.FetchContentRecord(context.Background(), "content-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ContentRecord{
			Name:           "Title",
			Description:    "Desc",
			Creator:        "0xalice",
			Timestamp:      1714176000,
			CategoryIndex:  3,
			PublicViews:    10,
			PublicLikes:    2,
			IsVerified:     true,
			DecryptedValue: 77,
		}, rec)
	})

	t.Run("not_found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT title, description, .* FROM content_items WHERE id = ?").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(recordColumns))

		_, err := repo.FetchContentRecord(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})
}

func TestRepository_CreateContent_Mock(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()

	tx, err := repo.CreateContent(ctx, datasources.CreateContentRequest{
		ID:            "content-1",
		Title:         "Title",
		Description:   "Desc",
		Creator:       "0xalice",
		Ciphertext:    []byte{0xde, 0xad},
		InputProof:    []byte{0x01},
		CategoryIndex: 2,
		ViewSeed:      10,
	})
	require.NoError(t, err)

	// Nothing is written until the transaction is waited on, and it is written once.
	mock.ExpectExec("INSERT INTO content_items").
		WithArgs("content-1", "Title", "Desc", "0xalice",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, tx.Wait(ctx))
	require.NoError(t, tx.Wait(ctx))
}

func TestRepository_SubmitDecryptionProof_Mock(t *testing.T) {
	abi := datasources.EncodeClearValues([]uint64{42})

	unverified := func() *sqlmock.Rows {
		return sqlmock.NewRows(recordColumns).
			AddRow("Title", "Desc", "0xalice", int64(1714176000), int64(3), int64(10), int64(2), false, int64(0))
	}

	t.Run("records_value", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectQuery("SELECT title, description, .* FROM content_items").WillReturnRows(unverified())
		tx, err := repo.SubmitDecryptionProof(ctx, "content-1", abi, []byte("proof"))
		require.NoError(t, err)

		mock.ExpectExec("UPDATE content_items SET").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, tx.Wait(ctx))
	})

	t.Run("verified_while_pending", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectQuery("SELECT title, description, .* FROM content_items").WillReturnRows(unverified())
		tx, err := repo.SubmitDecryptionProof(ctx, "content-1", abi, []byte("proof"))
		require.NoError(t, err)

		mock.ExpectExec("UPDATE content_items SET").WillReturnResult(sqlmock.NewResult(0, 0))
		err = tx.Wait(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(domain.ClassifyCollaboratorError(err, domain.ErrRegistryWrite),
			domain.ErrAlreadyVerified))
	})

	t.Run("rejects_multiple_values", func(t *testing.T) {
		repo, _ := newMockRepository(t)

		_, err := repo.SubmitDecryptionProof(context.Background(), "content-1",
			datasources.EncodeClearValues([]uint64{1, 2}), []byte("proof"))
		assert.Error(t, err)
	})

	t.Run("rejects_out_of_range_value", func(t *testing.T) {
		repo, _ := newMockRepository(t)

		_, err := repo.SubmitDecryptionProof(context.Background(), "content-1",
			datasources.EncodeClearValues([]uint64{domain.MaxInterestScore + 1}), []byte("proof"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execution reverted")
	})
}

func TestRepository_IsAvailable_Mock(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectPing()
	ok, err := repo.IsAvailable(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	ok, err = repo.IsAvailable(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}
