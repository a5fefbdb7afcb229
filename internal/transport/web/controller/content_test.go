package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/private-content-feed/internal/command"
	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentList_ServeHTTP(t *testing.T) {
	listed := []command.ScoredContent{
		{Item: domain.ContentItem{ID: "a", Category: domain.CategoryAI}, Visibility: domain.Unresolved()},
	}

	cases := []struct {
		name         string
		query        string
		listErr      error
		wantStatus   int
		wantCategory domain.Category
	}{
		{name: "all", wantStatus: http.StatusOK},
		{name: "by_category", query: "?category=AI", wantStatus: http.StatusOK, wantCategory: domain.CategoryAI},
		{name: "unknown_category", query: "?category=Cooking", wantStatus: http.StatusBadRequest},
		{name: "list_error", listErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeSession{listed: listed, listErr: tc.listErr}

			req := httptest.NewRequest(http.MethodGet, "/v1/content"+tc.query, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ContentList{Lister: fake}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantCategory, fake.listReq.Category)

			var got []command.ScoredContent
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			require.Len(t, got, 1)
			assert.Equal(t, "a", got[0].Item.ID)
			assert.Equal(t, domain.VisibilityUnresolved, got[0].Visibility.State)
		})
	}
}

func TestContentGet_ServeHTTP(t *testing.T) {
	fake := &fakeSession{listed: []command.ScoredContent{{Item: domain.ContentItem{ID: "a"}}}}

	for id, want := range map[string]int{"a": http.StatusOK, "missing": http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodGet, "/v1/content/"+id, nil)
		req = testContext()(req)
		req = mux.SetURLVars(req, map[string]string{"content_id": id})
		rec := httptest.NewRecorder()

		ContentGet{Lister: fake}.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, id)
	}
}

func TestContentCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       `{"title":"T","category":"Web3","description":"D","interest_score":60}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed_body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_fields",
			body:       `{"title":""}`,
			createErr:  domain.ErrInvalidContent,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not_connected",
			body:       `{}`,
			createErr:  domain.ErrWalletNotConnected,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Please connect wallet first",
		},
		{
			name:       "rejected",
			body:       `{}`,
			createErr:  domain.ErrUserRejected,
			wantStatus: http.StatusConflict,
			wantError:  "Transaction rejected by user",
		},
		{
			name:       "registry_write_failure",
			body:       `{}`,
			createErr:  domain.ErrRegistryWrite,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeSession{createRes: command.CreateContentResult{ID: "content-1"}, createErr: tc.createErr}

			req := httptest.NewRequest(http.MethodPost, "/v1/content", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ContentCreate{Creator: fake}.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusCreated {
				assert.Equal(t, domain.ContentFields{
					Title: "T", Category: domain.CategoryWeb3, Description: "D", InterestScore: 60,
				}, fake.created)

				var got command.CreateContentResult
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "content-1", got.ID)
			}
			if tc.wantError != "" {
				var got errorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tc.wantError, got.Error)
			}
		})
	}
}

func TestContentDecrypt_ServeHTTP(t *testing.T) {
	value := 42

	cases := []struct {
		name       string
		query      string
		res        command.DecryptScoreResult
		err        error
		wantStatus int
		wantToggle bool
		wantBody   *decryptResponse
	}{
		{
			name: "decrypted",
			res: command.DecryptScoreResult{DecryptResult: lifecycle.DecryptResult{
				Value: &value, Outcome: lifecycle.OutcomeDecrypted, Visibility: domain.LocallyDecrypted(42),
			}},
			wantStatus: http.StatusOK,
			wantBody: &decryptResponse{
				Value: &value, Outcome: "decrypted", Visibility: domain.LocallyDecrypted(42),
			},
		},
		{
			name:       "toggled_hidden",
			query:      "?toggle=true",
			res:        command.DecryptScoreResult{Hidden: true},
			wantStatus: http.StatusOK,
			wantToggle: true,
			wantBody:   &decryptResponse{Hidden: true},
		},
		{
			name:       "bad_toggle",
			query:      "?toggle=maybe",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not_ready",
			err:        domain.ErrSubsystemNotReady,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "decryption_failed",
			err:        domain.ErrDecryption,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeSession{decryptRes: tc.res, decryptErr: tc.err}

			req := httptest.NewRequest(http.MethodPost, "/v1/content/c1/decrypt"+tc.query, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"content_id": "c1"})
			rec := httptest.NewRecorder()

			ContentDecrypt{Decrypter: fake}.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody == nil {
				return
			}

			assert.Equal(t, "c1", fake.decryptID)
			assert.Equal(t, tc.wantToggle, fake.decryptToggle)

			var got decryptResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, *tc.wantBody, got)
		})
	}
}

func TestContentHideAndRefresh_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		handler    func(f *fakeSession) http.Handler
		fake       *fakeSession
		wantStatus int
	}{
		{
			name:       "hide",
			handler:    func(f *fakeSession) http.Handler { return ContentHide{Hider: f} },
			fake:       &fakeSession{},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "hide_unknown",
			handler:    func(f *fakeSession) http.Handler { return ContentHide{Hider: f} },
			fake:       &fakeSession{hideErr: domain.ErrContentNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "refresh",
			handler:    func(f *fakeSession) http.Handler { return ContentRefresh{Refresher: f} },
			fake:       &fakeSession{},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "refresh_disconnected",
			handler:    func(f *fakeSession) http.Handler { return ContentRefresh{Refresher: f} },
			fake:       &fakeSession{refreshErr: domain.ErrWalletNotConnected},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"content_id": "c1"})
			rec := httptest.NewRecorder()

			tc.handler(tc.fake).ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
