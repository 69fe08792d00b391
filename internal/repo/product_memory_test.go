package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/dashboard/internal/models"
)

func TestReplaceAll_DiscardsPriorState(t *testing.T) {
	r := NewInMemoryProductRepository()
	r.ReplaceAll([]models.Product{{ID: "old"}})

	r.ReplaceAll([]models.Product{{ID: "a"}, {ID: "b"}})

	assert.Len(t, r.GetAll(), 2)
	_, err := r.GetByID("old")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestReplaceAll_LastWriteWinsOnDuplicateID(t *testing.T) {
	r := NewInMemoryProductRepository()

	r.ReplaceAll([]models.Product{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
	})

	require.Len(t, r.GetAll(), 1)
	p, err := r.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "second", p.Name)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.GetByID("missing")

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpsert_InsertsAndOverwrites(t *testing.T) {
	r := NewInMemoryProductRepository()

	r.Upsert(models.Product{ID: "a", Quantity: 1})
	r.Upsert(models.Product{ID: "a", Quantity: 7})

	require.Len(t, r.GetAll(), 1)
	p, err := r.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Quantity)
}

func TestRemove_IsIdempotent(t *testing.T) {
	r := NewInMemoryProductRepository()
	r.ReplaceAll([]models.Product{{ID: "a"}, {ID: "b"}})

	r.Remove("a")
	after := r.GetAll()
	r.Remove("a")

	assert.Equal(t, after, r.GetAll())
	assert.Len(t, r.GetAll(), 1)
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	r := NewInMemoryProductRepository()
	r.ReplaceAll([]models.Product{{ID: "a"}})

	r.Remove("missing")

	assert.Len(t, r.GetAll(), 1)
}

func TestGetAll_ReturnsCopy(t *testing.T) {
	r := NewInMemoryProductRepository()
	r.ReplaceAll([]models.Product{{ID: "a", Quantity: 1}})

	out := r.GetAll()
	out[0].Quantity = 99

	p, err := r.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Quantity)
}
