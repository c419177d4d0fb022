package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/models"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCustomerNotFound is returned when the supplied customer id does not
	// exist in the store.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrMissingField is returned when a new customer is missing a required
	// field. No partial customer is created.
	ErrMissingField = errors.New("all fields are required to create a customer")
)

// Receipt summarises a successful checkout.
type Receipt struct {
	OrderID uint
	Total   int
}

// CheckoutService converts a cart into persisted order and payment records
// and adjusts food stock.
//
// The order -> payment -> stock-update sequence is not wrapped in a
// transaction: a failure after the order insert leaves the order row behind
// without a payment or stock adjustment. Known gap, see DESIGN.md.
type CheckoutService struct {
	db *gorm.DB
}

// NewCheckoutService creates a checkout service over the given store.
func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// FindCustomer looks up an existing customer by id.
func (s *CheckoutService) FindCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	return &customer, nil
}

// CreateCustomer creates a customer from the supplied fields. Every field
// is required; a missing one fails the call before anything is written.
func (s *CheckoutService) CreateCustomer(firstName, lastName, phone, address string) (*models.Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	if firstName == "" || lastName == "" || phone == "" || address == "" {
		return nil, ErrMissingField
	}

	customer := models.Customer{
		Name:    fmt.Sprintf("%s %s", firstName, lastName),
		Phone:   phone,
		Address: address,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// ListDeliveries returns the delivery options available for selection.
func (s *CheckoutService) ListDeliveries() ([]models.Delivery, error) {
	var deliveries []models.Delivery
	if err := s.db.Find(&deliveries).Error; err != nil {
		return nil, fmt.Errorf("failed to load deliveries: %w", err)
	}
	return deliveries, nil
}

// PlaceOrder persists the cart as one order and one payment, decrements
// food stock, and clears the cart on success.
//
// The order record keeps only the first food line's id and the first drink
// line's id; the total still covers every line item. Food stock is
// decremented per food line and clamped at zero; drinks carry no
// authoritative stock and are untouched.
func (s *CheckoutService) PlaceOrder(cart *models.Cart, customerID uint, deliveryID *uint, payMethod string) (*Receipt, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// Re-check the customer so nothing is written for a stale id.
	var count int64
	if err := s.db.Model(&models.Customer{}).Where("id = ?", customerID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to verify customer: %w", err)
	}
	if count == 0 {
		return nil, ErrCustomerNotFound
	}

	total := cart.Total()

	order := models.Order{
		TotalCost:  total,
		DeliveryID: deliveryID,
	}
	if first := cart.First(models.ItemFood); first != nil {
		id := first.ItemID
		order.FoodID = &id
	}
	if first := cart.First(models.ItemDrink); first != nil {
		id := first.ItemID
		order.DrinkID = &id
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if strings.TrimSpace(payMethod) == "" {
		payMethod = "Cash"
	}
	payment := models.Payment{
		Method:     payMethod,
		CustomerID: customerID,
		OrderID:    order.ID,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	for _, li := range cart.Items() {
		if li.Kind != models.ItemFood {
			continue
		}
		if err := s.decrementFoodStock(li.ItemID, li.Quantity); err != nil {
			return nil, err
		}
	}

	cart.Clear()
	return &Receipt{OrderID: order.ID, Total: total}, nil
}

// decrementFoodStock subtracts quantity from the food's stock, never going
// below zero. A food that no longer exists is skipped.
func (s *CheckoutService) decrementFoodStock(foodID uint, quantity int) error {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load food %d: %w", foodID, err)
	}

	current := 0
	if food.Quantity != nil {
		current = *food.Quantity
	}
	remaining := current - quantity
	if remaining < 0 {
		remaining = 0
	}
	if err := s.db.Model(&models.Food{}).Where("id = ?", foodID).Update("quantity", remaining).Error; err != nil {
		return fmt.Errorf("failed to update stock for food %d: %w", foodID, err)
	}
	return nil
}
