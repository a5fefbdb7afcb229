package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jbeshir/private-content-feed/internal/command"
	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/session"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

// fakeSession records calls and returns canned results for every controller interface.
type fakeSession struct {
	view session.View

	connectErr   error
	connected    string
	disconnected bool

	created   domain.ContentFields
	createRes command.CreateContentResult
	createErr error

	decryptID     string
	decryptToggle bool
	decryptRes    command.DecryptScoreResult
	decryptErr    error

	hideErr    error
	refreshErr error
	availErr   error

	listed  []command.ScoredContent
	listReq command.RecommendContentRequest
	listErr error
	oneErr  error

	summary domain.CatalogSummary
	items   []domain.ContentItem
	itemErr error
}

func (f *fakeSession) Connect(_ context.Context, account string) error {
	f.connected = account
	return f.connectErr
}

func (f *fakeSession) Disconnect(context.Context) {
	f.disconnected = true
}

func (f *fakeSession) View() session.View {
	return f.view
}

func (f *fakeSession) CreateContent(_ context.Context, fields domain.ContentFields) (command.CreateContentResult, error) {
	f.created = fields
	return f.createRes, f.createErr
}

func (f *fakeSession) DecryptScore(_ context.Context, id string, toggle bool) (command.DecryptScoreResult, error) {
	f.decryptID = id
	f.decryptToggle = toggle
	return f.decryptRes, f.decryptErr
}

func (f *fakeSession) HideScore(context.Context, string) error {
	return f.hideErr
}

func (f *fakeSession) Refresh(context.Context) error {
	return f.refreshErr
}

func (f *fakeSession) CheckAvailability(context.Context) error {
	return f.availErr
}

func (f *fakeSession) Summary(time.Time) domain.CatalogSummary {
	return f.summary
}

func (f *fakeSession) Execute(_ context.Context, req command.RecommendContentRequest) ([]command.ScoredContent, error) {
	f.listReq = req
	return f.listed, f.listErr
}

func (f *fakeSession) One(_ context.Context, id string) (command.ScoredContent, error) {
	if f.oneErr != nil {
		return command.ScoredContent{}, f.oneErr
	}
	for _, item := range f.listed {
		if item.Item.ID == id {
			return item, nil
		}
	}
	return command.ScoredContent{}, domain.ErrContentNotFound
}

func (f *fakeSession) ListAll(context.Context) ([]domain.ContentItem, error) {
	return f.items, f.itemErr
}
