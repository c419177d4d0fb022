package controllers

import (
	"fmt"
	"strings"

	"github.com/kendall-kelly/kendalls-kitchen/services"
)

// AdminController is the Admin view: table dumps, the manual add-food form,
// and the customer reset.
type AdminController struct {
	admin    *services.AdminService
	prompter services.Prompter
}

// NewAdminController creates the admin view over the given collaborators.
func NewAdminController(admin *services.AdminService, prompter services.Prompter) *AdminController {
	return &AdminController{admin: admin, prompter: prompter}
}

// Menu loops over the admin actions until the user goes back.
func (ac *AdminController) Menu() {
	for {
		choice, ok := ac.prompter.AskInt("Admin", "1) View table  2) Add food item  3) Reset all customers  0) Back", 0, 3)
		if !ok || choice == 0 {
			return
		}
		switch choice {
		case 1:
			ac.viewTable()
		case 2:
			ac.addFood()
		case 3:
			ac.resetCustomers()
		}
	}
}

func (ac *AdminController) viewTable() {
	name, ok := ac.prompter.AskString("Admin", "Table name ("+strings.Join(ac.admin.Tables(), ", ")+")")
	if !ok {
		return
	}
	columns, rows, err := ac.admin.DumpTable(strings.TrimSpace(name))
	if err != nil {
		ac.prompter.Notify("Error", err.Error())
		return
	}
	ac.prompter.Show(renderTable(columns, rows))
}

// addFood collects every field as free text; numeric coercion happens in
// the admin service, so a bad price loses the price, not the row.
func (ac *AdminController) addFood() {
	form := services.FoodForm{}
	fields := []struct {
		label string
		dest  *string
	}{
		{"foodid", &form.ID},
		{"foodname", &form.Name},
		{"price", &form.Price},
		{"quantity", &form.Quantity},
		{"foodavail", &form.Availability},
		{"cuisineid", &form.CuisineID},
		{"ingid", &form.IngredientID},
		{"chefid", &form.ChefID},
	}
	for _, f := range fields {
		value, _ := ac.prompter.AskString("Add Food", f.label)
		*f.dest = value
	}

	if _, err := ac.admin.AddFood(form); err != nil {
		ac.prompter.Notify("Error", err.Error())
		return
	}
	ac.prompter.Notify("Added", "Food added successfully.")
}

func (ac *AdminController) resetCustomers() {
	if !ac.prompter.Confirm("Confirm", "This will DELETE all customers permanently. Continue?") {
		return
	}
	count, err := ac.admin.ResetCustomers()
	if err != nil {
		ac.prompter.Notify("Error", err.Error())
		return
	}
	ac.prompter.Notify("Done", fmt.Sprintf("All customers deleted (%d removed).", count))
}
