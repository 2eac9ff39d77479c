package modrinth

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/modrinth-go/openapi"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("id%03d", i)
	}
	return ids
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		size  int
		sizes []int
	}{
		{"empty", nil, 100, nil},
		{"exact", makeIDs(4), 2, []int{2, 2}},
		{"remainder", makeIDs(5), 2, []int{2, 2, 1}},
		{"single chunk", makeIDs(3), 100, []int{3}},
		{"invalid size falls back", makeIDs(150), 0, []int{100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := chunk(tt.ids, tt.size)

			var sizes []int
			for _, c := range chunks {
				sizes = append(sizes, len(c))
			}
			assert.Equal(t, tt.sizes, sizes)
			assert.Equal(t, tt.ids, slices.Concat(chunks...))
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)

		ids := r.URL.Query()["ids"]
		assert.LessOrEqual(t, len(ids), 10)

		mu.Lock()
		seen = append(seen, ids...)
		mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}, WithChunkSize(10), WithConcurrency(3))

	ids := makeIDs(35)
	require.NoError(t, client.Notifications.MarkAllRead(context.Background(), ids))

	slices.Sort(seen)
	assert.Equal(t, ids, seen)
}

func TestDeleteAll_FirstErrorReturned(t *testing.T) {
	var calls atomic.Int32

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodDelete, r.Method)

		if slices.Contains(r.URL.Query()["ids"], "id004") {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized","description":"missing scope NOTIFICATION_WRITE"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}, WithChunkSize(2), WithConcurrency(1))

	err := client.Notifications.DeleteAll(context.Background(), makeIDs(10))
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	authErr, ok := AuthErrorFrom(err)
	require.True(t, ok)
	assert.Contains(t, authErr.Description, "NOTIFICATION_WRITE")

	assert.Less(t, int(calls.Load()), 5, "chunks after the failure should be skipped")
}

func TestBatchHelpers_EmptyInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL)
	})

	ctx := context.Background()
	assert.NoError(t, client.Notifications.MarkAllRead(ctx, nil))
	assert.NoError(t, client.Notifications.DeleteAll(ctx, []string{}))

	projects, err := client.Projects.GetProjectsBatched(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, projects)

	assert.Empty(t, client.Notifications.GetNotificationsForUsers(ctx, nil))
}

func TestGetProjectsBatched(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query()["ids"]

		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprintf(`{"id":%q}`, id)
		}
		_, _ = w.Write([]byte("[" + strings.Join(parts, ",") + "]"))
	}, WithChunkSize(4), WithConcurrency(2))

	ids := makeIDs(11)
	projects, err := client.Projects.GetProjectsBatched(context.Background(), ids)
	require.NoError(t, err)

	got := make([]string, len(projects))
	for i, p := range projects {
		got[i] = p.ID
	}
	assert.Equal(t, ids, got)
}

func TestGetNotificationsForUsers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/alice/notifications":
			_, _ = w.Write([]byte(`[{"id":"a1"},{"id":"a2"}]`))
		case "/user/bob/notifications":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})

	result := client.Notifications.GetNotificationsForUsers(context.Background(), []string{"alice", "bob", "carol"})

	assert.Len(t, result["alice"], 2)
	assert.NotContains(t, result, "bob")
	assert.Contains(t, result, "carol")
	assert.Empty(t, result["carol"])
}

func TestBatchHelpers_ValidateBeforeSending(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL)
	})

	_, err := client.Projects.GetProjects(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, openapi.KindInvalidArgument, openapi.KindOf(err))
}
