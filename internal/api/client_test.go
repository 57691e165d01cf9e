package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamdoan/classdesk/internal/mocks"
	"github.com/lamdoan/classdesk/internal/model"
	"github.com/lamdoan/classdesk/internal/testutil"
)

func newTestClient(t *testing.T, handler http.Handler, timeout time.Duration) (*Client, *mocks.KeyValueStore, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := &mocks.KeyValueStore{}
	c := NewClient(srv.URL, timeout, store, testutil.MakeNoopLogger())

	return c, store, srv
}

func TestClient_Request_AddsHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	c, store, _ := newTestClient(t, handler, time.Second)
	store.On("Set", model.StorageKeyToken, "tok123").Return(nil)
	require.NoError(t, c.SetToken("tok123"))

	_, err := c.Request(context.Background(), http.MethodGet, "/students", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_Request_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	c, _, _ := newTestClient(t, handler, time.Second)

	_, err := c.Request(context.Background(), http.MethodGet, "/students", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_Request_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	c, _, _ := newTestClient(t, handler, 50*time.Millisecond)

	_, err := c.Request(context.Background(), http.MethodGet, "/students", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Request_ServerErrorMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"student already exists"}`))
	})

	c, _, _ := newTestClient(t, handler, time.Second)

	_, err := c.Request(context.Background(), http.MethodPost, "/students", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "student already exists", httpErr.Message)
}

func TestClient_Request_StatusFallbackMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	})

	c, _, _ := newTestClient(t, handler, time.Second)

	_, err := c.Request(context.Background(), http.MethodGet, "/students", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "HTTP 500", httpErr.Message)
}

func TestClient_Request_WrapsTextBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("pong"))
	})

	c, _, _ := newTestClient(t, handler, time.Second)

	data, err := c.Request(context.Background(), http.MethodGet, "/health", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"pong"}`, string(data))
}

func TestClient_Request_WrapsTextErrorBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance window"))
	})

	c, _, _ := newTestClient(t, handler, time.Second)

	_, err := c.Request(context.Background(), http.MethodGet, "/students", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "maintenance window", httpErr.Message)
}

func TestClient_SetToken_PersistsAndClears(t *testing.T) {
	store := &mocks.KeyValueStore{}
	c := NewClient("http://localhost", time.Second, store, testutil.MakeNoopLogger())

	store.On("Set", model.StorageKeyToken, "tok").Return(nil)
	require.NoError(t, c.SetToken("tok"))
	assert.Equal(t, "tok", c.Token())

	store.On("Remove", model.StorageKeyToken).Return(nil)
	require.NoError(t, c.SetToken(""))
	assert.Empty(t, c.Token())

	store.AssertExpectations(t)
}

func TestClient_SetToken_IgnoresMissingEntryOnClear(t *testing.T) {
	store := &mocks.KeyValueStore{}
	c := NewClient("http://localhost", time.Second, store, testutil.MakeNoopLogger())

	store.On("Remove", model.StorageKeyToken).Return(model.ErrNotFound)
	require.NoError(t, c.SetToken(""))
}

func TestClient_SetToken_PersistError(t *testing.T) {
	store := &mocks.KeyValueStore{}
	c := NewClient("http://localhost", time.Second, store, testutil.MakeNoopLogger())

	store.On("Set", model.StorageKeyToken, "tok").Return(errors.New("disk full"))
	err := c.SetToken("tok")
	require.Error(t, err)
	// the in-memory token is still installed so requests keep working
	assert.Equal(t, "tok", c.Token())
}

func TestClient_Login_DecodesSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok","user":{"id":"u1","email":"a@b.c","role":"ADMIN","fullName":"A"}}`))
	})

	c, _, _ := newTestClient(t, handler, time.Second)

	session, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, model.RoleAdmin, session.User.Role)
}

func TestClient_Students_DecodesList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"s1","givenName":"An","classId":"TL3A"}]`))
	})

	c, _, _ := newTestClient(t, handler, time.Second)

	students, err := c.Students(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "s1", students[0].ID)
	assert.Equal(t, "TL3A", students[0].ClassID)
}

func TestClient_Ping(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	c, _, _ := newTestClient(t, handler, time.Second)
	require.NoError(t, c.Ping(context.Background()))
}

func TestClient_Ping_Unreachable(t *testing.T) {
	store := &mocks.KeyValueStore{}
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, store, testutil.MakeNoopLogger())

	err := c.Ping(context.Background())
	require.Error(t, err)
}
