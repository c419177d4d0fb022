package controllers

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kendall-kelly/kendalls-kitchen/models"
)

// Plain-text rendering for the three views. Output goes through
// Prompter.Show so tests can capture it.

func renderMenu(foods []models.Food, drinks []models.Drink) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "Foods")
	fmt.Fprintln(w, "ID\tName\tPrice\tQty\tAvailability")
	for _, f := range foods {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			f.ID, f.Name, formatIntPtr(f.Price), formatIntPtr(f.Quantity), f.Availability)
	}
	fmt.Fprintln(w, "\t\t\t\t")
	fmt.Fprintln(w, "Drinks")
	fmt.Fprintln(w, "ID\tName\tPrice\tQty\tAvailability")
	for _, d := range drinks {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", d.ID, d.Name, d.Price, d.Quantity, d.Availability)
	}
	w.Flush()
	return strings.TrimRight(sb.String(), "\n")
}

func renderCart(cart *models.Cart) string {
	if cart.IsEmpty() {
		return "Cart is empty. Total: Rs 0"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tType\tName\tUnit Price\tQty\tSubtotal")
	for i, li := range cart.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\n",
			i+1, li.Kind, li.Name, li.UnitPrice, li.Quantity, li.Subtotal())
	}
	w.Flush()
	fmt.Fprintf(&sb, "Total: Rs %d", cart.Total())
	return sb.String()
}

func renderTable(columns []string, rows [][]string) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	out := strings.TrimRight(sb.String(), "\n")
	if len(rows) == 0 {
		out += "\n(no rows)"
	}
	return out
}

func formatIntPtr(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}
