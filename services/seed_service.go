package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/models"
)

// Seed populates each empty table with its fixed sample rows. A table that
// already has any rows is skipped, so running this on every startup never
// duplicates data.
func Seed(db *gorm.DB) error {
	if err := seedCuisines(db); err != nil {
		return err
	}
	if err := seedEmployees(db); err != nil {
		return err
	}
	if err := seedChefs(db); err != nil {
		return err
	}
	if err := seedIngredients(db); err != nil {
		return err
	}
	if err := seedFoods(db); err != nil {
		return err
	}
	if err := seedDrinks(db); err != nil {
		return err
	}
	if err := seedDeliveries(db); err != nil {
		return err
	}
	if err := seedCustomers(db); err != nil {
		return err
	}
	return nil
}

// tableEmpty reports whether the table behind the given model has no rows.
func tableEmpty(db *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count rows: %w", err)
	}
	return count == 0, nil
}

func seedCuisines(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Cuisine{})
	if err != nil || !empty {
		return err
	}
	cuisines := []models.Cuisine{
		{ID: 1, Name: "Italian"},
		{ID: 2, Name: "Chinese"},
		{ID: 3, Name: "Mexican"},
		{ID: 4, Name: "Indian"},
		{ID: 5, Name: "Japanese"},
	}
	log.Println("Seeding cuisine table")
	return db.Create(&cuisines).Error
}

func seedEmployees(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Employee{})
	if err != nil || !empty {
		return err
	}
	employees := []models.Employee{
		{ID: 1, FirstName: "Michael", LastName: "Johnson", DOB: "1990-05-15", Email: "mike@email.com", Password: "emp_pass1", Address: "789 Oak St", Phone: "5558765", Gender: "Male", Salary: 50000},
		{ID: 2, FirstName: "Emily", LastName: "Wilson", DOB: "1985-02-20", Email: "emily@email.com", Password: "emp_pass2", Address: "567 Pine St", Phone: "5554321", Gender: "Female", Salary: 45000},
		{ID: 3, FirstName: "David", LastName: "Lee", DOB: "1988-09-10", Email: "david@email.com", Password: "emp_pass3", Address: "654 Elm St", Phone: "5557890", Gender: "Male", Salary: 48000},
		{ID: 4, FirstName: "Anna", LastName: "Garcia", DOB: "1993-03-25", Email: "anna@email.com", Password: "emp_pass4", Address: "789 Oak St", Phone: "5551234", Gender: "Female", Salary: 52000},
		{ID: 5, FirstName: "Robert", LastName: "Brown", DOB: "1987-12-12", Email: "robert@email.com", Password: "emp_pass5", Address: "101 Oak St", Phone: "5553456", Gender: "Male", Salary: 55000},
	}
	log.Println("Seeding employee table")
	return db.Create(&employees).Error
}

func seedChefs(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Chef{})
	if err != nil || !empty {
		return err
	}
	chefs := []models.Chef{
		{ID: 1, Name: "Chef Mario", Address: "123 Chef Way", Street: "Apt 2C", Phone: "555-9876", CuisineID: uintPtr(1), EmployeeID: uintPtr(1), Email: "mario@email.com", Password: "chef_pass1", Salary: 55000},
		{ID: 2, Name: "Chef Lily", Address: "456 Chef Lane", Street: "Unit 5D", Phone: "555-2345", CuisineID: uintPtr(2), EmployeeID: uintPtr(2), Email: "lily@email.com", Password: "chef_pass2", Salary: 52000},
		{ID: 3, Name: "Chef Carlos", Address: "789 Chef St", Street: "Suite 1B", Phone: "555-7890", CuisineID: uintPtr(3), EmployeeID: uintPtr(3), Email: "carlos@email.com", Password: "chef_pass3", Salary: 53000},
		{ID: 4, Name: "Chef Priya", Address: "101 Chef Rd", Street: "Apt 3A", Phone: "555-4321", CuisineID: uintPtr(4), EmployeeID: uintPtr(4), Email: "priya@email.com", Password: "chef_pass4", Salary: 51000},
		{ID: 5, Name: "Chef Kenji", Address: "456 Chef Ave", Street: "Unit 4C", Phone: "555-3456", CuisineID: uintPtr(5), EmployeeID: uintPtr(5), Email: "kenji@email.com", Password: "chef_pass5", Salary: 54000},
	}
	log.Println("Seeding chef table")
	return db.Create(&chefs).Error
}

func seedIngredients(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Ingredient{})
	if err != nil || !empty {
		return err
	}
	ingredients := []models.Ingredient{
		{ID: 1, Name: "Tomato"},
		{ID: 2, Name: "Chicken"},
		{ID: 3, Name: "Beef"},
		{ID: 4, Name: "Rice"},
		{ID: 5, Name: "Noodles"},
	}
	log.Println("Seeding ingredient table")
	return db.Create(&ingredients).Error
}

func seedFoods(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Food{})
	if err != nil || !empty {
		return err
	}
	foods := []models.Food{
		{ID: 1, Name: "Margherita Pizza", Price: intPtr(12), Quantity: intPtr(20), Availability: "Available", CuisineID: uintPtr(1), IngredientID: uintPtr(1), ChefID: uintPtr(1)},
		{ID: 2, Name: "Kung Pao Chicken", Price: intPtr(15), Quantity: intPtr(15), Availability: "Available", CuisineID: uintPtr(2), IngredientID: uintPtr(2), ChefID: uintPtr(2)},
		{ID: 3, Name: "Taco", Price: intPtr(10), Quantity: intPtr(30), Availability: "Available", CuisineID: uintPtr(3), IngredientID: uintPtr(3), ChefID: uintPtr(3)},
		{ID: 4, Name: "Chicken Biryani", Price: intPtr(14), Quantity: intPtr(25), Availability: "Available", CuisineID: uintPtr(4), IngredientID: uintPtr(4), ChefID: uintPtr(4)},
		{ID: 5, Name: "Sushi Rolls", Price: intPtr(18), Quantity: intPtr(20), Availability: "Available", CuisineID: uintPtr(5), IngredientID: uintPtr(5), ChefID: uintPtr(5)},
	}
	log.Println("Seeding food table")
	return db.Create(&foods).Error
}

func seedDrinks(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Drink{})
	if err != nil || !empty {
		return err
	}
	drinks := []models.Drink{
		{ID: 1, Name: "Coca-Cola", Price: 2, Quantity: "In Stock", Availability: "Available"},
		{ID: 2, Name: "Sprite", Price: 2, Quantity: "In Stock", Availability: "Available"},
		{ID: 3, Name: "Lemonade", Price: 2, Quantity: "In Stock", Availability: "Available"},
		{ID: 4, Name: "Iced Tea", Price: 2, Quantity: "In Stock", Availability: "Available"},
		{ID: 5, Name: "Orange Juice", Price: 3, Quantity: "In Stock", Availability: "Available"},
	}
	log.Println("Seeding drink table")
	return db.Create(&drinks).Error
}

func seedDeliveries(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Delivery{})
	if err != nil || !empty {
		return err
	}
	deliveries := []models.Delivery{
		{ID: 1, Name: "Fast Delivery", VehicleNo: "DEL123", Charge: 5, Date: "2023-10-13", Time: "12:00 PM"},
		{ID: 2, Name: "Express Delivery", VehicleNo: "DEL456", Charge: 7, Date: "2023-10-14", Time: "2:30 PM"},
		{ID: 3, Name: "Standard Delivery", VehicleNo: "DEL789", Charge: 6, Date: "2023-10-15", Time: "3:45 PM"},
		{ID: 4, Name: "Late Night Delivery", VehicleNo: "DEL987", Charge: 8, Date: "2023-10-16", Time: "9:00 PM"},
		{ID: 5, Name: "Weekend Delivery", VehicleNo: "DEL654", Charge: 7, Date: "2023-10-17", Time: "10:30 AM"},
	}
	log.Println("Seeding delivery table")
	return db.Create(&deliveries).Error
}

func seedCustomers(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Customer{})
	if err != nil || !empty {
		return err
	}
	customers := []models.Customer{
		{Name: "John Doe", Phone: "5551234", Address: "123 Main St"},
		{Name: "Alice Smith", Phone: "5555678", Address: "456 Elm St"},
		{Name: "Bob Johnson", Phone: "5559876", Address: "789 Oak St"},
		{Name: "Sarah Williams", Phone: "5554321", Address: "567 Pine St"},
		{Name: "Mike Brown", Phone: "5558765", Address: "101 Oak St"},
	}
	log.Println("Seeding customer table")
	return db.Create(&customers).Error
}

func intPtr(n int) *int {
	return &n
}

func uintPtr(n uint) *uint {
	return &n
}
