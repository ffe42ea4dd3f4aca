package lead

// Lead is the record shape persisted inside the "leads" mapping.
// Entries written before ids existed have an empty ID.
type Lead struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	City     string `json:"city"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Hour     int    `json:"hour"`
}

// Table maps an employee id, as a decimal string, to that employee's leads in entry order.
type Table map[string][]Lead
