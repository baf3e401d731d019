// Package wire holds the JSON shapes the catalog store serves. Field names
// are part of the external contract and round-trip exactly as modeled; both
// the HTTP gateways and the store handlers marshal through these types so the
// two sides cannot drift apart.
package wire

import "bistro/internal/domain/entity"

// Appetizer is the wire shape for appetizer rows.
type Appetizer struct {
	AppetizersID    *int64 `json:"appetizersId"`
	ItemAppetizers  string `json:"itemAppetizers"`
	AppetizersPrice int    `json:"appetizersPrice"`
	ReceiptID       *int64 `json:"receiptId"`
}

// Drink is the wire shape for drink rows.
type Drink struct {
	DrinksID    *int64 `json:"drinksId"`
	ItemDrinks  string `json:"itemDrinks"`
	DrinksPrice int    `json:"drinksPrice"`
	ReceiptID   *int64 `json:"receiptId"`
}

// MainCourse is the wire shape for main-course rows. The store's historical
// column family is "food", hence the field names.
type MainCourse struct {
	FoodID    *int64 `json:"foodId"`
	ItemFood  string `json:"itemFood"`
	FoodPrice int    `json:"foodPrice"`
	ReceiptID *int64 `json:"receiptId"`
}

// Cashier is the wire shape for cashier rows.
type Cashier struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Salary int    `json:"salary"`
}

// User is the client-visible projection of a user record. The password hash
// is never serialized outbound.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginRequest is the credential payload sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Menu is the aggregate served by the menu endpoint.
type Menu struct {
	MainCourses []MainCourse `json:"mainCourses"`
	Appetizers  []Appetizer  `json:"appetizers"`
	Drinks      []Drink      `json:"drinks"`
	TotalItems  int          `json:"totalItems"`
}

// Health is the liveness payload.
type Health struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Service   string `json:"service"`
}

// DBStatus is the database connectivity payload.
type DBStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

func (a Appetizer) Entity() entity.MenuItem {
	return entity.MenuItem{
		ID:        a.AppetizersID,
		Kind:      entity.KindAppetizer,
		Name:      a.ItemAppetizers,
		Price:     a.AppetizersPrice,
		ReceiptID: a.ReceiptID,
	}
}

func AppetizerFromEntity(m entity.MenuItem) Appetizer {
	return Appetizer{
		AppetizersID:    m.ID,
		ItemAppetizers:  m.Name,
		AppetizersPrice: m.Price,
		ReceiptID:       m.ReceiptID,
	}
}

func (d Drink) Entity() entity.MenuItem {
	return entity.MenuItem{
		ID:        d.DrinksID,
		Kind:      entity.KindDrink,
		Name:      d.ItemDrinks,
		Price:     d.DrinksPrice,
		ReceiptID: d.ReceiptID,
	}
}

func DrinkFromEntity(m entity.MenuItem) Drink {
	return Drink{
		DrinksID:    m.ID,
		ItemDrinks:  m.Name,
		DrinksPrice: m.Price,
		ReceiptID:   m.ReceiptID,
	}
}

func (mc MainCourse) Entity() entity.MenuItem {
	return entity.MenuItem{
		ID:        mc.FoodID,
		Kind:      entity.KindMainCourse,
		Name:      mc.ItemFood,
		Price:     mc.FoodPrice,
		ReceiptID: mc.ReceiptID,
	}
}

func MainCourseFromEntity(m entity.MenuItem) MainCourse {
	return MainCourse{
		FoodID:    m.ID,
		ItemFood:  m.Name,
		FoodPrice: m.Price,
		ReceiptID: m.ReceiptID,
	}
}

func (c Cashier) Entity() entity.Cashier {
	return entity.Cashier{ID: c.ID, Name: c.Name, Salary: c.Salary}
}

func CashierFromEntity(c entity.Cashier) Cashier {
	return Cashier{ID: c.ID, Name: c.Name, Salary: c.Salary}
}

func (u User) Entity() entity.User {
	return entity.User{Username: u.Username, Role: u.Role}
}

func (m Menu) Entity() entity.Menu {
	out := entity.Menu{
		MainCourses: make([]entity.MenuItem, 0, len(m.MainCourses)),
		Appetizers:  make([]entity.MenuItem, 0, len(m.Appetizers)),
		Drinks:      make([]entity.MenuItem, 0, len(m.Drinks)),
		TotalItems:  m.TotalItems,
	}
	for _, mc := range m.MainCourses {
		out.MainCourses = append(out.MainCourses, mc.Entity())
	}
	for _, a := range m.Appetizers {
		out.Appetizers = append(out.Appetizers, a.Entity())
	}
	for _, d := range m.Drinks {
		out.Drinks = append(out.Drinks, d.Entity())
	}

	return out
}
