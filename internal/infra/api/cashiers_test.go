package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cashierStoreStub imitates the cashier endpoints: list, by-id, by-name and
// update. Cashiers are provisioned up front; there is no create or delete.
type cashierStoreStub struct {
	t    *testing.T
	rows map[int64]map[string]any
}

func newCashierStore(t *testing.T) *cashierStoreStub {
	return &cashierStoreStub{t: t, rows: map[int64]map[string]any{
		1: {"id": int64(1), "name": "Ahmed", "salary": 4000},
		2: {"id": int64(2), "name": "Ana Maria", "salary": 4200},
	}}
}

func (s *cashierStoreStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/cashiers")

		switch {
		case r.Method == http.MethodGet && rest == "":
			rows := make([]map[string]any, 0, len(s.rows))
			for i := int64(1); i <= int64(len(s.rows)); i++ {
				if row, ok := s.rows[i]; ok {
					rows = append(rows, row)
				}
			}
			json.NewEncoder(w).Encode(rows)
		case r.Method == http.MethodGet && strings.HasPrefix(rest, "/name/"):
			name := strings.TrimPrefix(rest, "/name/")
			for _, row := range s.rows {
				if row["name"] == name {
					json.NewEncoder(w).Encode(row)

					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodGet:
			id, err := strconv.ParseInt(strings.TrimPrefix(rest, "/"), 10, 64)
			require.NoError(s.t, err)
			row, ok := s.rows[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)

				return
			}
			json.NewEncoder(w).Encode(row)
		case r.Method == http.MethodPut:
			id, err := strconv.ParseInt(strings.TrimPrefix(rest, "/"), 10, 64)
			require.NoError(s.t, err)
			if _, ok := s.rows[id]; !ok {
				w.WriteHeader(http.StatusNotFound)

				return
			}
			var row map[string]any
			require.NoError(s.t, json.NewDecoder(r.Body).Decode(&row))
			// The id is immutable; only name and salary are replaced.
			row["id"] = id
			s.rows[id] = row
			json.NewEncoder(w).Encode(row)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func newCashierGateway(t *testing.T) repository.CashierRepository {
	server := httptest.NewServer(newCashierStore(t).handler())
	t.Cleanup(server.Close)

	return NewCashierGateway(New(server.URL, testLogger()))
}

func TestCashierGateway_List(t *testing.T) {
	gateway := newCashierGateway(t)

	cashiers, err := gateway.List(context.Background())

	require.NoError(t, err)
	require.Len(t, cashiers, 2)
	assert.Equal(t, entity.Cashier{ID: 1, Name: "Ahmed", Salary: 4000}, cashiers[0])
	assert.Equal(t, entity.Cashier{ID: 2, Name: "Ana Maria", Salary: 4200}, cashiers[1])
}

func TestCashierGateway_FindByID(t *testing.T) {
	gateway := newCashierGateway(t)

	cashier, ok, err := gateway.FindByID(context.Background(), 1)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ahmed", cashier.Name)
	assert.Equal(t, 4000, cashier.Salary)
}

func TestCashierGateway_FindByID_Absent(t *testing.T) {
	gateway := newCashierGateway(t)

	cashier, ok, err := gateway.FindByID(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cashier)
}

func TestCashierGateway_FindByName_EscapesPath(t *testing.T) {
	// The name carries a space; the gateway must escape it on the wire and
	// the store must still match the literal name.
	gateway := newCashierGateway(t)

	cashier, ok, err := gateway.FindByName(context.Background(), "Ana Maria")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), cashier.ID)
	assert.Equal(t, "Ana Maria", cashier.Name)
	assert.Equal(t, 4200, cashier.Salary)
}

func TestCashierGateway_FindByName_Absent(t *testing.T) {
	gateway := newCashierGateway(t)

	cashier, ok, err := gateway.FindByName(context.Background(), "Nobody")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cashier)
}

func TestCashierGateway_Update(t *testing.T) {
	gateway := newCashierGateway(t)
	ctx := context.Background()

	updated, err := gateway.Update(ctx, entity.CashierUpdate{ID: 1, Name: "Ahmed K", Salary: 4500})

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Ahmed K", updated.Name)
	assert.Equal(t, 4500, updated.Salary)

	found, ok, err := gateway.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated, found)
}

func TestCashierGateway_Update_MissingID(t *testing.T) {
	gateway := newCashierGateway(t)

	_, err := gateway.Update(context.Background(), entity.CashierUpdate{ID: 99, Name: "Ghost", Salary: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
