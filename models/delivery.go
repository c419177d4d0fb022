package models

// Delivery is a delivery option selectable at checkout. The customer and
// employee references exist in the schema but are left unset by the
// ordering flows.
type Delivery struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	VehicleNo  string    `json:"vehicle_no"`
	Charge     int       `json:"charge"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	EmployeeID *uint     `json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

// TableName specifies the table name for the Delivery model
func (Delivery) TableName() string {
	return "delivery"
}
