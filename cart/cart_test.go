package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ynot/models"
	"ynot/storage"
)

func ticket(id string, typ models.TicketType, price int64) models.CartItem {
	return models.CartItem{
		ID:    id,
		Title: "Concert " + id,
		Price: decimal.NewFromInt(price),
		Image: "https://img.ynot.fr/" + id + ".jpg",
		Type:  typ,
	}
}

func TestAddItem_MergesSameLine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AddItem(ctx, ticket("5", models.TicketVIP, 50)))
	}

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, s.Total().Equal(decimal.NewFromInt(250)))
}

func TestAddItem_KeepsExistingFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New()
	require.NoError(t, s.AddItem(ctx, ticket("5", models.TicketVIP, 50)))

	changed := ticket("5", models.TicketVIP, 80)
	changed.Title = "renamed"
	require.NoError(t, s.AddItem(ctx, changed))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Concert 5", items[0].Title)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_IgnoresIncomingQuantity(t *testing.T) {
	t.Parallel()

	s := New()
	item := ticket("1", models.TicketStandard, 10)
	item.Quantity = 9
	require.NoError(t, s.AddItem(context.Background(), item))
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestAddItem_DistinctTypes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New()
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketStandard, 45)))
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketVIP, 95)))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, models.TicketStandard, items[0].Type)
	assert.Equal(t, models.TicketVIP, items[1].Type)
	assert.True(t, s.Total().Equal(decimal.NewFromInt(140)))
}

func TestAddItem_NoDuplicateLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New()
	ids := []string{"1", "2", "1", "3", "2", "1"}
	types := []models.TicketType{models.TicketStandard, models.TicketVIP}
	for i, id := range ids {
		require.NoError(t, s.AddItem(ctx, ticket(id, types[i%2], 10)))
	}

	seen := map[string]bool{}
	qty := 0
	for _, it := range s.Items() {
		key := fmt.Sprintf("%s/%s", it.ID, it.Type)
		assert.False(t, seen[key], "duplicate line %s", key)
		seen[key] = true
		qty += it.Quantity
	}
	assert.Equal(t, len(ids), qty)
}

func TestTotal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New()
	assert.True(t, s.Total().IsZero())

	require.NoError(t, s.AddItem(ctx, ticket("a", models.TicketStandard, 50)))
	require.NoError(t, s.AddItem(ctx, ticket("a", models.TicketStandard, 50)))
	require.NoError(t, s.AddItem(ctx, ticket("b", models.TicketStandard, 30)))
	assert.True(t, s.Total().Equal(decimal.NewFromInt(130)))

	frac := ticket("c", models.TicketVIP, 0)
	frac.Price = decimal.RequireFromString("19.99")
	require.NoError(t, s.AddItem(ctx, frac))
	require.NoError(t, s.AddItem(ctx, frac))
	assert.Equal(t, "169.98", s.Total().StringFixed(2))
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New()
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketStandard, 45)))
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketVIP, 95)))

	before := s.Items()
	require.NoError(t, s.RemoveItem(ctx, "8", models.TicketVIP))
	require.NoError(t, s.RemoveItem(ctx, "7", "backstage"))
	assert.Equal(t, before, s.Items())

	require.NoError(t, s.RemoveItem(ctx, "7", models.TicketStandard))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.TicketVIP, items[0].Type)

	require.NoError(t, s.RemoveItem(ctx, "7", models.TicketStandard))
	assert.Len(t, s.Items(), 1)
}

func TestClearAndToggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New()
	assert.False(t, s.IsOpen())
	require.NoError(t, s.AddItem(ctx, ticket("1", models.TicketStandard, 10)))
	assert.True(t, s.IsOpen())

	assert.False(t, s.ToggleCart())
	assert.True(t, s.ToggleCart())

	require.NoError(t, s.ClearCart(ctx))
	assert.Zero(t, s.Len())
	assert.True(t, s.Total().IsZero())
	require.NoError(t, s.ClearCart(ctx))
}

func TestItemsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.AddItem(context.Background(), ticket("1", models.TicketStandard, 10)))
	items := s.Items()
	items[0].Quantity = 100
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestPersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	s := New(WithPersistence(kv))
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketStandard, 45)))
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketStandard, 45)))
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketVIP, 95)))

	restored := New(WithPersistence(kv))
	require.NoError(t, restored.Restore(ctx))
	want, got := s.Items(), restored.Items()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Type, got[i].Type)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.True(t, want[i].Price.Equal(got[i].Price))
	}
	assert.True(t, restored.Total().Equal(decimal.NewFromInt(185)))
	assert.False(t, restored.IsOpen())

	require.NoError(t, s.ClearCart(ctx))
	_, err := kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRestore_MergesDuplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte(`[
		{"id":"1","title":"A","price":"10","quantity":2,"type":"standard"},
		{"id":"1","title":"A","price":"10","quantity":3,"type":"standard"},
		{"id":"2","title":"B","price":"5","quantity":0,"type":"vip"}
	]`)))

	s := New(WithPersistence(kv))
	require.NoError(t, s.Restore(ctx))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestRestore_Corrupt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte("nope")))

	s := New(WithPersistence(kv))
	require.NoError(t, s.Restore(ctx))
	assert.Zero(t, s.Len())
}

func TestMarkPaidAndSettle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := storage.NewMemory()
	s := New(WithPersistence(kv))
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketVIP, 95)))
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketVIP, 95)))

	assert.Error(t, s.MarkPaid(ctx, "8", models.TicketVIP, models.PendingPayment{IntentID: "pi_1", Quantity: 1}))
	require.NoError(t, s.MarkPaid(ctx, "7", models.TicketVIP, models.PendingPayment{IntentID: "pi_1", Quantity: 2}))

	restored := New(WithPersistence(kv))
	require.NoError(t, restored.Restore(ctx))
	items := restored.Items()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Pending)
	assert.Equal(t, "pi_1", items[0].Pending.IntentID)
	assert.Equal(t, 2, items[0].Pending.Quantity)

	// a ticket added after payment stays in the cart
	require.NoError(t, s.AddItem(ctx, ticket("7", models.TicketVIP, 95)))
	require.NoError(t, s.Settle(ctx, "7", models.TicketVIP, 2))
	items = s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Nil(t, items[0].Pending)

	require.NoError(t, s.Settle(ctx, "7", models.TicketVIP, 1))
	assert.Zero(t, s.Len())
	require.NoError(t, s.Settle(ctx, "7", models.TicketVIP, 1))
}
