package devserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/client/api"
	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/devserver/storage"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "devserver.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(NewServer(store, log).Handler())
	t.Cleanup(srv.Close)
	return srv
}

// The backend is exercised through the same client the application uses, so
// both sides of the contract are checked at once.
func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	c := api.NewHTTPClient(srv.URL, time.Second)

	missing, err := c.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := c.CreateUser(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "a@x.com", created.Email)

	found, err := c.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "pw", found.Password)

	got, err := c.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = c.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestTransactionCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	c := api.NewHTTPClient(srv.URL, time.Second)

	created, err := c.CreateTransaction(ctx, models.Transaction{
		OwnerID:  "u1",
		Type:     models.TypeExpense,
		Amount:   1500,
		Category: "Food",
		Date:     models.NewDate(2024, time.May, 1),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	listed, err := c.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, 1500.0, listed[0].Amount)
	assert.Equal(t, "2024-05-01", listed[0].Date.String())

	// Listing for another owner must come back empty.
	other, err := c.ListTransactions(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)

	created.Amount = 1600
	created.Comment = "groceries"
	updated, err := c.UpdateTransaction(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, 1600.0, updated.Amount)
	assert.Equal(t, "groceries", updated.Comment)

	require.NoError(t, c.DeleteTransaction(ctx, created.ID))

	listed, err = c.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCategoryCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	c := api.NewHTTPClient(srv.URL, time.Second)

	created, err := c.CreateCategory(ctx, models.Category{
		OwnerID: "u1", Name: "Food", Icon: "🍔", Color: "#FF8042",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Name = "Groceries"
	updated, err := c.UpdateCategory(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Name)

	listed, err := c.ListCategories(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Groceries", listed[0].Name)
	assert.Equal(t, "🍔", listed[0].Icon)

	require.NoError(t, c.DeleteCategory(ctx, created.ID))
}

func TestUpdateMissingTransactionIs404(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	c := api.NewHTTPClient(srv.URL, time.Second)

	_, err := c.UpdateTransaction(ctx, models.Transaction{
		ID: "missing", OwnerID: "u1", Type: models.TypeExpense,
		Amount: 1, Category: "Food", Date: models.NewDate(2024, time.May, 1),
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// json-server compatibility details checked at the raw HTTP level.
func TestWireFormats(t *testing.T) {
	srv := newTestServer(t)

	t.Run("delete returns empty object", func(t *testing.T) {
		c := api.NewHTTPClient(srv.URL, time.Second)
		created, err := c.CreateCategory(context.Background(), models.Category{OwnerID: "u1", Name: "Food"})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/categories/"+created.ID, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(body))
	})

	t.Run("missing resource message", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/users/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"Not found"}`, string(body))
	})

	t.Run("logout is 204", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/logout", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}
