package employee

// Employee is the record shape persisted under the "employees" key.
type Employee struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}
