package controllers

import (
	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/models"
	"github.com/kendall-kelly/kendalls-kitchen/services"
)

// App owns the session state (the cart) and dispatches between the three
// views: Menu, Cart and Admin. Everything is synchronous; each view runs to
// completion before the next choice is accepted.
type App struct {
	prompter services.Prompter
	cart     *models.Cart
	menu     *MenuController
	cartView *CartController
	admin    *AdminController
}

// NewApp wires the controllers over a connected store and a prompt
// provider. defaultPayMethod backs the payment prompt when the user gives
// no answer.
func NewApp(db *gorm.DB, prompter services.Prompter, defaultPayMethod string) *App {
	cart := models.NewCart()
	return &App{
		prompter: prompter,
		cart:     cart,
		menu:     NewMenuController(services.NewCatalogService(db), cart, prompter),
		cartView: NewCartController(services.NewCheckoutService(db), cart, prompter, defaultPayMethod),
		admin:    NewAdminController(services.NewAdminService(db), prompter),
	}
}

// Cart exposes the session cart, mainly for tests.
func (a *App) Cart() *models.Cart {
	return a.cart
}

// Run loops over the view chooser until the user quits or cancels.
func (a *App) Run() {
	for {
		choice, ok := a.prompter.AskInt("Food Ordering", "1) Menu  2) Cart  3) Admin  0) Quit", 0, 3)
		if !ok || choice == 0 {
			return
		}
		switch choice {
		case 1:
			a.menu.Browse()
		case 2:
			a.cartView.View()
		case 3:
			a.admin.Menu()
		}
	}
}
