package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, "test-key", 5*time.Second)
}

func TestClientList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rental_bookings", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "items", r.Header.Get("Range-Unit"))
		assert.Equal(t, "0-19", r.Header.Get("Range"))
		assert.Equal(t, "in.(confirmed,active)", r.URL.Query().Get("status"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"booking_number":"RENTAL-1"},{"booking_number":"RENTAL-2"}]`))
	}))
	defer server.Close()

	client := newTestClient(server)
	q := NewQuery().In("status", "confirmed", "active").OrderBy("created_at", true).Range(0, 20)

	var rows []map[string]any
	err := client.List(context.Background(), "rental_bookings", q, &rows)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "RENTAL-1", rows[0]["booking_number"])
}

func TestClientGet(t *testing.T) {
	t.Run("Single object", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))
			assert.Equal(t, "eq.item-1", r.URL.Query().Get("id"))
			w.Write([]byte(`{"id":"item-1","slug":"camping-tent"}`))
		}))
		defer server.Close()

		var row map[string]any
		err := newTestClient(server).Get(context.Background(), "rental_items", NewQuery().Eq("id", "item-1"), &row)
		require.NoError(t, err)
		assert.Equal(t, "camping-tent", row["slug"])
	})

	t.Run("Miss surfaces as not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotAcceptable)
			w.Write([]byte(`{"message":"JSON object requested, multiple (or no) rows returned","code":"PGRST116"}`))
		}))
		defer server.Close()

		var row map[string]any
		err := newTestClient(server).Get(context.Background(), "rental_items", NewQuery().Eq("id", "ghost"), &row)
		require.Error(t, err)

		var se *Error
		require.ErrorAs(t, err, &se)
		assert.True(t, se.NotFound())
	})
}

func TestClientCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
		assert.Equal(t, "0-0", r.Header.Get("Range"))
		w.Header().Set("Content-Range", "0-0/57")
		w.WriteHeader(http.StatusPartialContent)
		w.Write([]byte(`[{}]`))
	}))
	defer server.Close()

	total, err := newTestClient(server).Count(context.Background(), "rental_bookings", NewQuery().Eq("customer_id", "cust-1"))
	require.NoError(t, err)
	assert.Equal(t, 57, total)
}

func TestClientInsert(t *testing.T) {
	t.Run("Returns stored representation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"bk-1","booking_number":"RENTAL-1"}`))
		}))
		defer server.Close()

		var created map[string]any
		err := newTestClient(server).Insert(context.Background(), "rental_bookings",
			map[string]any{"booking_number": "RENTAL-1"}, &created)
		require.NoError(t, err)
		assert.Equal(t, "bk-1", created["id"])
	})

	t.Run("Constraint violation surfaces as conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"conflicting key value violates exclusion constraint","code":"23P01"}`))
		}))
		defer server.Close()

		var created map[string]any
		err := newTestClient(server).Insert(context.Background(), "rental_bookings", map[string]any{}, &created)
		require.Error(t, err)

		var se *Error
		require.ErrorAs(t, err, &se)
		assert.True(t, se.Conflict())
	})
}

func TestClientUpdateAndDelete(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		assert.Equal(t, "eq.RENTAL-1", r.URL.Query().Get("booking_number"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server)
	q := NewQuery().Eq("booking_number", "RENTAL-1")

	require.NoError(t, client.Update(context.Background(), "rental_bookings", q, map[string]any{"status": "cancelled"}))
	assert.Equal(t, http.MethodPatch, gotMethod)

	require.NoError(t, client.Delete(context.Background(), "rental_bookings", q))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestClientBreaker(t *testing.T) {
	t.Run("Opens after consecutive server failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom","code":"XX000"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		var rows []map[string]any
		for i := 0; i < 3; i++ {
			err := client.List(context.Background(), "rental_items", nil, &rows)
			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, http.StatusInternalServerError, se.Status)
		}

		// Fourth call fails fast without reaching the store.
		err := client.List(context.Background(), "rental_items", nil, &rows)
		require.Error(t, err)
		var se *Error
		assert.False(t, errors.As(err, &se), "open breaker short-circuits before the store is called")
	})

	t.Run("Client errors never trip the breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"no such table","code":"42P01"}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		var rows []map[string]any
		for i := 0; i < 10; i++ {
			err := client.List(context.Background(), "rental_items", nil, &rows)
			var se *Error
			require.ErrorAs(t, err, &se, "4xx responses keep surfacing directly on call %d", i)
		}
	})
}

func TestParseContentRangeTotal(t *testing.T) {
	tests := []struct {
		header  string
		total   int
		wantErr bool
	}{
		{"0-0/57", 57, false},
		{"*/0", 0, false},
		{"0-19/245", 245, false},
		{"0-0/*", 0, true},
		{"garbage", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			total, err := parseContentRangeTotal(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.total, total)
		})
	}
}
