package entities

import "time"

type OrderStatus string

const (
	OrderActive     OrderStatus = "active"
	OrderInProgress OrderStatus = "inProgress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// ClientOrder is a service request posted by a car owner; studios and
// specialists respond with a price offer.
type ClientOrder struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	ClientName    string          `json:"clientName"`
	Service       string          `json:"service"`
	City          string          `json:"city"`
	District      string          `json:"district"`
	PreferredDate string          `json:"preferredDate"`
	Budget        string          `json:"budget"`
	Description   string          `json:"description"`
	CarType       string          `json:"carType"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	Responses     []OrderResponse `json:"responses"`
}

type OrderResponse struct {
	ID            string            `json:"id"`
	OrderID       string            `json:"orderId"`
	ResponderID   string            `json:"responderId"`
	ResponderName string            `json:"responderName"`
	ResponderRole UserRole          `json:"responderRole"`
	Price         string            `json:"price"`
	Message       string            `json:"message"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}
