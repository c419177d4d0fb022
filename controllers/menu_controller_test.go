package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kendall-kelly/kendalls-kitchen/models"
	"github.com/kendall-kelly/kendalls-kitchen/services"
	"github.com/kendall-kelly/kendalls-kitchen/tests/testutil"
)

func newMenuView(t *testing.T) (*MenuController, *models.Cart, *services.ScriptedPrompter) {
	db := testutil.MustOpenTestDB(t)
	cart := models.NewCart()
	prompter := services.NewScriptedPrompter()
	return NewMenuController(services.NewCatalogService(db), cart, prompter), cart, prompter
}

func TestBrowseShowsMenu(t *testing.T) {
	mc, cart, prompter := newMenuView(t)

	// No replies: the menu is shown, then the choice prompt cancels.
	mc.Browse()

	assert.True(t, cart.IsEmpty())
	assert.Len(t, prompter.Shown, 1)
	assert.Contains(t, prompter.Shown[0], "Margherita Pizza")
	assert.Contains(t, prompter.Shown[0], "Coca-Cola")
}

func TestBrowseAddFood(t *testing.T) {
	mc, cart, prompter := newMenuView(t)
	prompter.IntReplies = []services.IntReply{
		{Value: 1, OK: true}, // choice: add food
		{Value: 1, OK: true}, // food id
		{Value: 2, OK: true}, // quantity
	}

	mc.Browse()

	assert.Equal(t, 1, cart.Len())
	item := cart.Items()[0]
	assert.Equal(t, models.ItemFood, item.Kind)
	assert.Equal(t, "Margherita Pizza", item.Name)
	assert.Equal(t, 12, item.UnitPrice, "Price should be snapshotted from the catalog")
	assert.Equal(t, 2, item.Quantity)
	assert.Contains(t, prompter.Notices, "Added: Added 2 x Margherita Pizza to cart")
}

func TestBrowseAddDrink(t *testing.T) {
	mc, cart, prompter := newMenuView(t)
	prompter.IntReplies = []services.IntReply{
		{Value: 2, OK: true}, // choice: add drink
		{Value: 5, OK: true}, // drink id
		{Value: 4, OK: true}, // quantity
	}

	mc.Browse()

	assert.Equal(t, 1, cart.Len())
	item := cart.Items()[0]
	assert.Equal(t, models.ItemDrink, item.Kind)
	assert.Equal(t, "Orange Juice", item.Name)
	assert.Equal(t, 3, item.UnitPrice)
	assert.Equal(t, 12, cart.Total())
}

func TestBrowseUnknownItem(t *testing.T) {
	mc, cart, prompter := newMenuView(t)
	prompter.IntReplies = []services.IntReply{
		{Value: 1, OK: true},
		{Value: 99, OK: true},
	}

	mc.Browse()

	assert.True(t, cart.IsEmpty())
	assert.Contains(t, prompter.Notices, "Not found: No food with id 99 on the menu.")
}

func TestBrowseQuantityOverStockCap(t *testing.T) {
	mc, cart, prompter := newMenuView(t)
	prompter.IntReplies = []services.IntReply{
		{Value: 1, OK: true},
		{Value: 1, OK: true},  // food 1, stock 20
		{Value: 25, OK: true}, // over the cap
	}

	mc.Browse()

	assert.True(t, cart.IsEmpty(), "A quantity over the available stock must not reach the cart")
	assert.Contains(t, prompter.Notices, "Invalid quantity: Quantity must be between 1 and 20.")
}

func TestBrowseDrinkQuantityOverCap(t *testing.T) {
	mc, cart, prompter := newMenuView(t)
	prompter.IntReplies = []services.IntReply{
		{Value: 2, OK: true},
		{Value: 1, OK: true},
		{Value: 21, OK: true}, // drinks cap at 20
	}

	mc.Browse()

	assert.True(t, cart.IsEmpty())
	assert.Contains(t, prompter.Notices, "Invalid quantity: Quantity must be between 1 and 20.")
}

func TestBrowseCancelQuantityAddsNothing(t *testing.T) {
	mc, cart, prompter := newMenuView(t)
	prompter.IntReplies = []services.IntReply{
		{Value: 1, OK: true},
		{Value: 1, OK: true},
		{Value: 0, OK: false}, // cancel the quantity dialog
	}

	mc.Browse()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, prompter.Notices)
}

func TestBrowseRefreshRereadsCatalog(t *testing.T) {
	mc, _, prompter := newMenuView(t)
	prompter.IntReplies = []services.IntReply{
		{Value: 3, OK: true}, // refresh
	}

	mc.Browse()

	assert.Len(t, prompter.Shown, 2, "Refresh should render the menu again")
}
