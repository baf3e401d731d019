package model

// UserModel mirrors the 'users' table. The password hash never leaves the
// store process.
type UserModel struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string `gorm:"column:role;type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
