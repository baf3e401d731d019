package entity

// Cashier is an employee record held by the catalog store. Cashiers are
// provisioned out of band; the client can only read and update them.
type Cashier struct {
	ID     int64
	Name   string // unique display name
	Salary int
}

// CashierUpdate carries the target id together with the replacement name and
// salary. The store ignores any other field on update.
type CashierUpdate struct {
	ID     int64
	Name   string
	Salary int
}
