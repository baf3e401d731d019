package entity

// Menu is the aggregate view the store serves in a single request: every
// item of every kind plus the combined count.
type Menu struct {
	MainCourses []MenuItem
	Appetizers  []MenuItem
	Drinks      []MenuItem
	TotalItems  int
}

// ServiceHealth is the store's liveness report.
type ServiceHealth struct {
	Status    string
	Timestamp int64
	Service   string
}

// StoreHealth is the store's database connectivity report.
type StoreHealth struct {
	Status   string
	Database string
}
