package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ConfigOption) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := NewConfiguration(append([]ConfigOption{WithBaseURL(server.URL)}, opts...)...)
	client, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestNew(t *testing.T) {
	t.Run("nil configuration uses defaults", func(t *testing.T) {
		client, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.Config().BaseURL())
		assert.Equal(t, DefaultUserAgent, client.Config().UserAgent())
	})

	t.Run("empty base URL", func(t *testing.T) {
		_, err := New(NewConfiguration(WithBaseURL("")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("configuration is copied", func(t *testing.T) {
		cfg := NewConfiguration(WithAPIKey(HeaderAuthorization, "first"))
		client, err := New(cfg)
		require.NoError(t, err)

		cfg.SetAPIKey(HeaderAuthorization, "second")
		cfg.SetBaseURL("http://elsewhere")

		key, ok := client.Config().APIKeyWithPrefix(HeaderAuthorization)
		require.True(t, ok)
		assert.Equal(t, "first", key)
		assert.Equal(t, DefaultBaseURL, client.Config().BaseURL())
	})

	t.Run("unopenable debug file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "debug.log")

		_, err := New(NewConfiguration(WithDebugFile(path)))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "failed to open the debug file")
	})

	t.Run("timeout applies to default transport", func(t *testing.T) {
		client, err := New(nil, WithTimeout(5*time.Second))
		require.NoError(t, err)

		httpClient, ok := client.doer.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 5*time.Second, httpClient.Timeout)
	})

	t.Run("timeout leaves injected transport untouched", func(t *testing.T) {
		injected := &http.Client{Timeout: time.Minute}

		client, err := New(nil, WithHTTPClient(injected), WithTimeout(5*time.Second))
		require.NoError(t, err)

		assert.Same(t, injected, client.doer)
		assert.Equal(t, time.Minute, injected.Timeout)
	})
}

func TestCall_Success(t *testing.T) {
	created := time.Date(2023, 3, 14, 9, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/AABBCCDD", r.URL.Path)
		assert.Equal(t, ContentTypeJSON, r.Header.Get(HeaderAccept))
		assert.Equal(t, "mrp_token", r.Header.Get(HeaderAuthorization))

		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Header().Set(HeaderRateLimitLimit, "300")
		w.Header().Set(HeaderRateLimitRemaining, "299")
		w.Header().Set(HeaderRateLimitReset, "60")
		_ = json.NewEncoder(w).Encode(testItem{ID: "AABBCCDD", Title: "Sodium", Created: created})
	}, WithAPIKey(HeaderAuthorization, "mrp_token"))

	result, err := CallWithHTTPInfo[testItem](context.Background(), client, getItemOp, Params{
		Path: map[string]any{"id": "AABBCCDD"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "AABBCCDD", result.Value.ID)
	assert.Equal(t, "Sodium", result.Value.Title)
	assert.True(t, created.Equal(result.Value.Created))

	rl := result.RateLimit()
	assert.True(t, rl.Present)
	assert.Equal(t, 300, rl.Limit)
	assert.Equal(t, 299, rl.Remaining)
	assert.Equal(t, time.Minute, rl.Reset)
}

func TestCall_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"a", "b"}, r.URL.Query()["ids"])
		_, _ = w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	})

	items, err := Call[[]testItem](context.Background(), client, getItemsOp, Params{
		Query: map[string]any{"ids": []string{"a", "b"}},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].ID)
}

func TestCall_UnauthorizedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized","description":"Authentication Error: missing scope NOTIFICATION_READ"}`))
	})

	item, err := Call[testItem](context.Background(), client, getItemOp, Params{
		Path: map[string]any{"id": "AABBCCDD"},
	})
	require.Error(t, err)
	assert.Zero(t, item)

	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.Equal(t, KindHTTPStatus, KindOf(err))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))

	statusErr, ok := AsHTTPStatusError(err)
	require.True(t, ok)
	assert.True(t, statusErr.IsUnauthorized())
	assert.Contains(t, statusErr.Error(), "[401] Error connecting to the API")
	assert.Contains(t, string(statusErr.Body), "NOTIFICATION_READ")

	payload, ok := statusErr.Payload.(*testAuthError)
	require.True(t, ok, "payload type %T", statusErr.Payload)
	assert.Equal(t, "unauthorized", payload.Error)
	assert.Contains(t, payload.Description, "missing scope")
}

func TestCall_UnauthorizedGarbageBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`<html>nope</html>`))
	})

	_, err := Call[testItem](context.Background(), client, getItemOp, Params{
		Path: map[string]any{"id": "x"},
	})
	require.Error(t, err)

	statusErr, ok := AsHTTPStatusError(err)
	require.True(t, ok)
	assert.Nil(t, statusErr.Payload)
	assert.Equal(t, "<html>nope</html>", string(statusErr.Body))
}

func TestCall_UndeclaredStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, statusErr *HTTPStatusError)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, statusErr *HTTPStatusError) {
				assert.True(t, statusErr.IsNotFound())
			},
		},
		{
			name:   "retired endpoint",
			status: http.StatusGone,
			check: func(t *testing.T, statusErr *HTTPStatusError) {
				assert.True(t, statusErr.IsGone())
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, statusErr *HTTPStatusError) {
				assert.False(t, statusErr.IsGone())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"x","description":"y"}`))
			})

			_, err := Call[testItem](context.Background(), client, getItemOp, Params{
				Path: map[string]any{"id": "x"},
			})
			require.Error(t, err)

			statusErr, ok := AsHTTPStatusError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Nil(t, statusErr.Payload)
			tt.check(t, statusErr)
		})
	}
}

func TestCall_TransportFailure(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	client, err := New(NewConfiguration(WithBaseURL("http://" + addr)))
	require.NoError(t, err)

	_, err = Call[testItem](context.Background(), client, getItemOp, Params{
		Path: map[string]any{"id": "x"},
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Zero(t, StatusCode(err))

	_, ok := AsHTTPStatusError(err)
	assert.False(t, ok)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, getItemOp.ID, transportErr.Operation)
	assert.Equal(t, http.MethodGet, transportErr.Method)
}

func TestCall_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Call[testItem](ctx, client, getItemOp, Params{Path: map[string]any{"id": "x"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCall_VoidIgnoresPayload(t *testing.T) {
	var method string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_, _ = w.Write([]byte(`this is not json`))
	})

	result, err := CallWithHTTPInfo[NoContent](context.Background(), client, readItemOp, Params{
		Path: map[string]any{"id|username": "jai", "id": "n1"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestCall_VoidNoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	_, err := Call[NoContent](context.Background(), client, readItemOp, Params{
		Path: map[string]any{"id|username": "jai", "id": "n1"},
	})
	require.NoError(t, err)
}

func TestCall_DecodeFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"id":`},
		{"wrong shape", `["a","b"]`},
		{"empty", ``},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			item, err := Call[testItem](context.Background(), client, getItemOp, Params{
				Path: map[string]any{"id": "x"},
			})
			require.Error(t, err)
			assert.Zero(t, item)
			assert.ErrorIs(t, err, ErrDecode)
			assert.Equal(t, KindDecode, KindOf(err))
			assert.Equal(t, http.StatusOK, StatusCode(err))

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.body, string(decodeErr.Body))
		})
	}
}

func TestCall_StringAndBytes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/text":
			assert.Equal(t, ContentTypeText, r.Header.Get(HeaderAccept))
			_, _ = w.Write([]byte(`{"kept":"verbatim"}`))
		case "/raw":
			_, _ = w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
		}
	})

	text, err := Call[string](context.Background(), client, textOp, Params{})
	require.NoError(t, err)
	assert.Equal(t, `{"kept":"verbatim"}`, text)

	raw, err := Call[[]byte](context.Background(), client, rawOp, Params{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, raw)

	_, err = Call[testItem](context.Background(), client, textOp, Params{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestCallAsync_MatchesSync(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/item/missing" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized","description":"bad token"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"ok","title":"Lithium"}`))
	})

	ctx := context.Background()

	for _, id := range []string{"ok", "missing"} {
		params := Params{Path: map[string]any{"id": id}}

		syncResult, syncErr := CallWithHTTPInfo[testItem](ctx, client, getItemOp, params)

		future := CallAsync[testItem](ctx, client, getItemOp, params)
		asyncResult, asyncErr := future.WaitWithHTTPInfo(ctx)

		assert.Equal(t, syncResult.Value, asyncResult.Value, id)
		assert.Equal(t, syncResult.StatusCode, asyncResult.StatusCode, id)
		assert.Equal(t, KindOf(syncErr), KindOf(asyncErr), id)
		assert.Equal(t, StatusCode(syncErr), StatusCode(asyncErr), id)

		select {
		case <-future.Done():
		default:
			t.Fatalf("future for %s not done after Wait returned", id)
		}
	}
}

func TestCallAsync_ValidationFailsBeforeNetwork(t *testing.T) {
	doer := &failingDoer{}
	client, err := New(testConfig(), WithHTTPClient(doer))
	require.NoError(t, err)

	future := CallAsync[testItem](context.Background(), client, getItemOp, Params{})
	_, err = future.Wait(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, doer.calls)
}

func TestFuture_WaitContext(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`{"id":"late"}`))
	})
	defer close(release)

	future := CallAsync[testItem](context.Background(), client, getItemOp, Params{Path: map[string]any{"id": "x"}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := future.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestDebugSink(t *testing.T) {
	var sink bytes.Buffer

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"dbg"}`))
	}, WithDebug(&sink), WithAPIKey(HeaderAuthorization, "mrp_token"))

	_, err := Call[testItem](context.Background(), client, getItemOp, Params{Path: map[string]any{"id": "dbg"}})
	require.NoError(t, err)

	out := sink.String()
	assert.Contains(t, out, "GET /item/dbg")
	assert.Contains(t, out, `\"id\":\"dbg\"`)
	assert.Contains(t, out, getItemOp.ID)
}

func TestDebugFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"f"}`))
	}, WithDebugFile(path))

	_, err := Call[testItem](context.Background(), client, getItemOp, Params{Path: map[string]any{"id": "f"}})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("existing\n")))
	assert.Contains(t, string(data), "/item/f")
}

func TestCall_Logger(t *testing.T) {
	var logs bytes.Buffer

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x"}`))
	}))
	defer server.Close()

	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	client, err := New(NewConfiguration(WithBaseURL(server.URL)), WithLogger(logger))
	require.NoError(t, err)

	_, err = Call[testItem](context.Background(), client, getItemOp, Params{Path: map[string]any{"id": "x"}})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "API request completed")
	assert.Contains(t, logs.String(), `"status":200`)
}
