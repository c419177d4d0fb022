package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kendall-kelly/kendalls-kitchen/models"
	"github.com/kendall-kelly/kendalls-kitchen/services"
)

// CartController is the Cart view: review line items, remove or clear, and
// place the order. All checkout input is gathered here through the prompt
// provider; the persistence itself lives in the checkout service.
type CartController struct {
	checkout         *services.CheckoutService
	cart             *models.Cart
	prompter         services.Prompter
	defaultPayMethod string
}

// NewCartController creates the cart view over the given collaborators.
func NewCartController(checkout *services.CheckoutService, cart *models.Cart, prompter services.Prompter, defaultPayMethod string) *CartController {
	if defaultPayMethod == "" {
		defaultPayMethod = "Cash"
	}
	return &CartController{
		checkout:         checkout,
		cart:             cart,
		prompter:         prompter,
		defaultPayMethod: defaultPayMethod,
	}
}

// View shows the cart and loops over its actions until the user goes back.
func (cc *CartController) View() {
	cc.prompter.Show(renderCart(cc.cart))
	for {
		choice, ok := cc.prompter.AskInt("Cart", "1) Remove item  2) Clear cart  3) Place order  0) Back", 0, 3)
		if !ok || choice == 0 {
			return
		}
		switch choice {
		case 1:
			cc.removeLine()
		case 2:
			cc.cart.Clear()
		case 3:
			cc.placeOrder()
		}
		cc.prompter.Show(renderCart(cc.cart))
	}
}

// removeLine removes one line item by its displayed (1-based) number.
func (cc *CartController) removeLine() {
	if cc.cart.IsEmpty() {
		cc.prompter.Notify("Empty", "Cart is empty")
		return
	}
	line, ok := cc.prompter.AskInt("Cart", "Line number to remove", 1, cc.cart.Len())
	if !ok {
		return
	}
	items := cc.cart.Items()
	if line < 1 || line > len(items) {
		return
	}
	removed := items[line-1]
	cc.cart.Remove(line - 1)
	cc.prompter.Notify("Removed", fmt.Sprintf("Removed %s from cart", removed.Name))
}

// placeOrder runs the checkout dialog sequence: resolve a customer, pick an
// optional delivery, ask the payment method, then hand off to the checkout
// service. Any abort before that hand-off leaves the store untouched.
func (cc *CartController) placeOrder() {
	if cc.cart.IsEmpty() {
		cc.prompter.Notify("Empty", "Cart is empty")
		return
	}

	customerID, ok := cc.resolveCustomer()
	if !ok {
		return
	}

	deliveryID, ok := cc.chooseDelivery()
	if !ok {
		return
	}

	payMethod, ok := cc.prompter.AskString("Payment", "Payment method (Cash/Credit Card/PayPal)")
	if !ok || payMethod == "" {
		payMethod = cc.defaultPayMethod
	}

	receipt, err := cc.checkout.PlaceOrder(cc.cart, customerID, deliveryID, payMethod)
	if err != nil {
		cc.prompter.Notify("Error", err.Error())
		return
	}
	cc.prompter.Notify("Order Placed", fmt.Sprintf("Order %d placed. Total: Rs %d", receipt.OrderID, receipt.Total))
}

// resolveCustomer asks for an existing customer id, or offers to create a
// new customer when the id prompt is cancelled. ok is false when checkout
// should abort.
func (cc *CartController) resolveCustomer() (uint, bool) {
	id, ok := cc.prompter.AskInt("Customer ID", "Enter customer ID (blank to create new)", 1, maxIDInput)
	if ok {
		customer, err := cc.checkout.FindCustomer(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrCustomerNotFound) {
				cc.prompter.Notify("Not found", "Customer ID not found.")
			} else {
				cc.prompter.Notify("Error", err.Error())
			}
			return 0, false
		}
		return customer.ID, true
	}

	if !cc.prompter.Confirm("New customer", "Create a new customer now?") {
		return 0, false
	}
	firstName, _ := cc.prompter.AskString("First name", "First name")
	lastName, _ := cc.prompter.AskString("Last name", "Last name")
	phone, _ := cc.prompter.AskString("Phone", "Phone")
	address, _ := cc.prompter.AskString("Address", "Address")

	customer, err := cc.checkout.CreateCustomer(firstName, lastName, phone, address)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			cc.prompter.Notify("Error", "All fields required to create customer.")
		} else {
			cc.prompter.Notify("Error", err.Error())
		}
		return 0, false
	}
	cc.prompter.Notify("Customer Created", fmt.Sprintf("New customer ID: %d", customer.ID))
	return customer.ID, true
}

// chooseDelivery lists the delivery options and asks for an id. With no
// options configured the delivery reference stays unset; cancelling the
// prompt aborts checkout. The chosen id is not validated against the
// listing; a bad one surfaces later as a storage error.
func (cc *CartController) chooseDelivery() (*uint, bool) {
	deliveries, err := cc.checkout.ListDeliveries()
	if err != nil {
		cc.prompter.Notify("Error", err.Error())
		return nil, false
	}
	if len(deliveries) == 0 {
		return nil, true
	}

	var sb strings.Builder
	sb.WriteString("Delivery options:\n")
	for _, d := range deliveries {
		fmt.Fprintf(&sb, "  %d: %s (Rs %d)\n", d.ID, d.Name, d.Charge)
	}
	cc.prompter.Show(strings.TrimRight(sb.String(), "\n"))

	choice, ok := cc.prompter.AskInt("Delivery", "Choose delivery id", 1, maxIDInput)
	if !ok {
		return nil, false
	}
	id := uint(choice)
	return &id, true
}
