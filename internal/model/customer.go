package model

type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type SessionInput struct {
	CustomerID int    `json:"customerId"`
	Phone      string `json:"phone"`
}
