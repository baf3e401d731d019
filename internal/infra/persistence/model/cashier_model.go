package model

// CashierModel mirrors the 'cashier' table.
type CashierModel struct {
	ID     int64  `gorm:"column:cashier_id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:cashier_name;type:varchar(100);unique;not null"`
	Salary int    `gorm:"column:cashier_salary;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CashierModel) TableName() string {
	return "cashier"
}
