package models

// Cuisine is a static lookup entity referenced by chefs and foods.
type Cuisine struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

// TableName specifies the table name for the Cuisine model
func (Cuisine) TableName() string {
	return "cuisine"
}

// Ingredient is a static lookup entity referenced by foods.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

// TableName specifies the table name for the Ingredient model
func (Ingredient) TableName() string {
	return "ingredient"
}

// Food is a menu item with integer pricing and an integer stock quantity
// that checkout decrements. Numeric and reference columns are nullable
// because the admin add-food form coerces invalid input to absent values.
type Food struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `json:"name"`
	Price        *int        `json:"price"`
	Quantity     *int        `json:"quantity"`
	Availability string      `json:"availability"`
	CuisineID    *uint       `json:"cuisine_id"`
	Cuisine      *Cuisine    `gorm:"foreignKey:CuisineID;constraint:OnDelete:CASCADE" json:"cuisine,omitempty"`
	IngredientID *uint       `json:"ingredient_id"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
	ChefID       *uint       `json:"chef_id"`
	Chef         *Chef       `gorm:"foreignKey:ChefID;constraint:OnDelete:CASCADE" json:"chef,omitempty"`
}

// TableName specifies the table name for the Food model
func (Food) TableName() string {
	return "food"
}

// Drink is a menu item whose quantity column is free text ("In Stock") and
// is never decremented by checkout.
type Drink struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Quantity     string `json:"quantity"`
	Availability string `json:"availability"`
}

// TableName specifies the table name for the Drink model
func (Drink) TableName() string {
	return "drink"
}
