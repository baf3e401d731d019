// Package model holds the GORM persistence models mirroring the store tables.
package model

// AppetizerModel mirrors the 'appetizers' table.
type AppetizerModel struct {
	ID        int64  `gorm:"column:appetizers_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:item_appetizers;type:varchar(255);not null"`
	Price     int    `gorm:"column:appetizers_price;not null"`
	ReceiptID *int64 `gorm:"column:receipt_id"`
}

// TableName explicitly sets the table name for GORM.
func (AppetizerModel) TableName() string {
	return "appetizers"
}

// DrinkModel mirrors the 'drinks' table.
type DrinkModel struct {
	ID        int64  `gorm:"column:drinks_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:item_drinks;type:varchar(255);not null"`
	Price     int    `gorm:"column:drinks_price;not null"`
	ReceiptID *int64 `gorm:"column:receipt_id"`
}

// TableName explicitly sets the table name for GORM.
func (DrinkModel) TableName() string {
	return "drinks"
}

// MainCourseModel mirrors the 'food' table. The legacy table name predates
// the main-course naming used everywhere else.
type MainCourseModel struct {
	ID        int64  `gorm:"column:food_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:item_food;type:varchar(255);not null"`
	Price     int    `gorm:"column:food_price;not null"`
	ReceiptID *int64 `gorm:"column:receipt_id"`
}

// TableName explicitly sets the table name for GORM.
func (MainCourseModel) TableName() string {
	return "food"
}
