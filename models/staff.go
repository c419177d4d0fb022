package models

// Employee is a staff record. Seeded once; the ordering flows never
// mutate it.
type Employee struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Salary    int    `json:"salary"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employee"
}

// Chef is a staff record tied to an employee and a cuisine.
type Chef struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Street     string    `json:"street"`
	Phone      string    `json:"phone"`
	CuisineID  *uint     `json:"cuisine_id"`
	Cuisine    *Cuisine  `gorm:"foreignKey:CuisineID;constraint:OnDelete:CASCADE" json:"cuisine,omitempty"`
	EmployeeID *uint     `json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Salary     int       `json:"salary"`
}

// TableName specifies the table name for the Chef model
func (Chef) TableName() string {
	return "chef"
}
