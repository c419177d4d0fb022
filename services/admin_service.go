package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/models"
	"github.com/kendall-kelly/kendalls-kitchen/utils"
)

// ErrUnknownTable is returned when a dump is requested for a table that is
// not part of the schema.
var ErrUnknownTable = errors.New("unknown table")

// knownTables is the set of table names the admin viewer may dump. The
// names are interpolated into SQL, so anything outside this set is refused.
var knownTables = map[string]bool{
	"customer":   true,
	"cuisine":    true,
	"employee":   true,
	"chef":       true,
	"ingredient": true,
	"food":       true,
	"drink":      true,
	"delivery":   true,
	"orders":     true,
	"payment":    true,
}

// FoodForm carries the admin add-food fields as raw text, exactly as the
// form collects them. Numeric fields are coerced best-effort; invalid or
// empty values become absent rather than rejecting the whole row.
type FoodForm struct {
	ID           string
	Name         string
	Price        string
	Quantity     string
	Availability string
	CuisineID    string
	IngredientID string
	ChefID       string
}

// AdminService backs the administrative viewer/editor: ad-hoc table dumps,
// the manual add-food form, and the bulk customer reset.
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates an admin service over the given store.
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Tables returns the dumpable table names.
func (s *AdminService) Tables() []string {
	return []string{
		"customer", "cuisine", "employee", "chef", "ingredient",
		"food", "drink", "delivery", "orders", "payment",
	}
}

// DumpTable returns the full contents of the named table as column names
// plus stringified rows.
func (s *AdminService) DumpTable(name string) ([]string, [][]string, error) {
	if !knownTables[name] {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}

	rows, err := s.db.Raw("SELECT * FROM " + name).Rows()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read table %s: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
	}

	var dump [][]string
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row of %s: %w", name, err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = formatCell(v)
		}
		dump = append(dump, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read table %s: %w", name, err)
	}
	return columns, dump, nil
}

// AddFood builds a food row from the raw form fields and inserts it. Field
// coercion never fails the insert; a constraint violation from the store
// is returned with its underlying message.
func (s *AdminService) AddFood(form FoodForm) (*models.Food, error) {
	food := models.Food{
		Name:         utils.CleanString(form.Name),
		Price:        utils.IntOrNil(form.Price),
		Quantity:     utils.IntOrNil(form.Quantity),
		Availability: utils.CleanString(form.Availability),
		CuisineID:    utils.UintOrNil(form.CuisineID),
		IngredientID: utils.UintOrNil(form.IngredientID),
		ChefID:       utils.UintOrNil(form.ChefID),
	}
	if id := utils.UintOrNil(form.ID); id != nil {
		food.ID = *id
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, fmt.Errorf("failed to add food: %w", err)
	}
	return &food, nil
}

// ResetCustomers irreversibly deletes every customer row and returns the
// number removed. Rows referencing a customer go with it via the cascade
// constraints. The confirmation step lives with the caller.
func (s *AdminService) ResetCustomers() (int64, error) {
	result := s.db.Exec("DELETE FROM customer")
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset customers: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
