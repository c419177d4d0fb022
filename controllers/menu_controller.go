package controllers

import (
	"fmt"

	"github.com/kendall-kelly/kendalls-kitchen/models"
	"github.com/kendall-kelly/kendalls-kitchen/services"
)

// maxIDInput bounds the id prompts; ids are small but the dialog should not
// refuse a typo outright, it surfaces as a not-found notice instead.
const maxIDInput = 1 << 30

// MenuController is the Menu view: browse the catalog and add items to the
// cart. The catalog is re-read on every visit and on explicit refresh, so
// stock changes from checkout show up here.
type MenuController struct {
	catalog  *services.CatalogService
	cart     *models.Cart
	prompter services.Prompter
}

// NewMenuController creates the menu view over the given collaborators.
func NewMenuController(catalog *services.CatalogService, cart *models.Cart, prompter services.Prompter) *MenuController {
	return &MenuController{catalog: catalog, cart: cart, prompter: prompter}
}

// Browse shows the menu and loops over the add/refresh actions until the
// user goes back.
func (mc *MenuController) Browse() {
	foods, drinks, ok := mc.loadAndShow()
	if !ok {
		return
	}
	for {
		choice, ok := mc.prompter.AskInt("Menu", "1) Add food  2) Add drink  3) Refresh  0) Back", 0, 3)
		if !ok || choice == 0 {
			return
		}
		switch choice {
		case 1:
			mc.addFood(foods)
		case 2:
			mc.addDrink(drinks)
		case 3:
			foods, drinks, ok = mc.loadAndShow()
			if !ok {
				return
			}
		}
	}
}

func (mc *MenuController) loadAndShow() ([]models.Food, []models.Drink, bool) {
	foods, err := mc.catalog.ListFoods()
	if err != nil {
		mc.prompter.Notify("Error", err.Error())
		return nil, nil, false
	}
	drinks, err := mc.catalog.ListDrinks()
	if err != nil {
		mc.prompter.Notify("Error", err.Error())
		return nil, nil, false
	}
	mc.prompter.Show(renderMenu(foods, drinks))
	return foods, drinks, true
}

// addFood snapshots the chosen food's name and price into a new cart line.
// The quantity cap is the stored stock, falling back to a fixed limit when
// the stock column is absent.
func (mc *MenuController) addFood(foods []models.Food) {
	id, ok := mc.prompter.AskInt("Menu", "Food id to add", 1, maxIDInput)
	if !ok {
		return
	}
	var food *models.Food
	for i := range foods {
		if foods[i].ID == uint(id) {
			food = &foods[i]
			break
		}
	}
	if food == nil {
		mc.prompter.Notify("Not found", fmt.Sprintf("No food with id %d on the menu.", id))
		return
	}

	limit := models.FallbackFoodCap
	available := "unknown"
	if food.Quantity != nil {
		limit = *food.Quantity
		available = fmt.Sprint(*food.Quantity)
	}
	if limit < 1 {
		mc.prompter.Notify("Out of stock", fmt.Sprintf("%s is out of stock.", food.Name))
		return
	}

	qty, ok := mc.prompter.AskInt("Quantity", fmt.Sprintf("Quantity for %s (available %s)", food.Name, available), 1, limit)
	if !ok {
		return
	}
	if qty < 1 || qty > limit {
		mc.prompter.Notify("Invalid quantity", fmt.Sprintf("Quantity must be between 1 and %d.", limit))
		return
	}

	price := 0
	if food.Price != nil {
		price = *food.Price
	}
	if err := mc.cart.Add(models.ItemFood, food.ID, food.Name, price, qty); err != nil {
		mc.prompter.Notify("Error", err.Error())
		return
	}
	mc.prompter.Notify("Added", fmt.Sprintf("Added %d x %s to cart", qty, food.Name))
}

// addDrink is like addFood but drinks have no authoritative stock, only the
// fixed per-line cap.
func (mc *MenuController) addDrink(drinks []models.Drink) {
	id, ok := mc.prompter.AskInt("Menu", "Drink id to add", 1, maxIDInput)
	if !ok {
		return
	}
	var drink *models.Drink
	for i := range drinks {
		if drinks[i].ID == uint(id) {
			drink = &drinks[i]
			break
		}
	}
	if drink == nil {
		mc.prompter.Notify("Not found", fmt.Sprintf("No drink with id %d on the menu.", id))
		return
	}

	qty, ok := mc.prompter.AskInt("Quantity", fmt.Sprintf("Quantity for %s", drink.Name), 1, models.DrinkQuantityCap)
	if !ok {
		return
	}
	if qty < 1 || qty > models.DrinkQuantityCap {
		mc.prompter.Notify("Invalid quantity", fmt.Sprintf("Quantity must be between 1 and %d.", models.DrinkQuantityCap))
		return
	}

	if err := mc.cart.Add(models.ItemDrink, drink.ID, drink.Name, drink.Price, qty); err != nil {
		mc.prompter.Notify("Error", err.Error())
		return
	}
	mc.prompter.Notify("Added", fmt.Sprintf("Added %d x %s to cart", qty, drink.Name))
}
