package entities

import "time"

type PurchaseStatus string

const (
	PurchaseActive    PurchaseStatus = "active"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// CollectivePurchase is a supplier-led group buy. CurrentVolume is always
// the sum of participant quantities; status flips to completed once the
// target volume is reached and never flips back.
type CollectivePurchase struct {
	ID            string                `json:"id"`
	SupplierID    string                `json:"supplierId"`
	SupplierName  string                `json:"supplierName"`
	Product       string                `json:"product"`
	Description   string                `json:"description"`
	TargetVolume  int                   `json:"targetVolume"`
	CurrentVolume int                   `json:"currentVolume"`
	UnitPrice     string                `json:"unitPrice"`
	RetailPrice   string                `json:"retailPrice"`
	Deadline      string                `json:"deadline"`
	Participants  []PurchaseParticipant `json:"participants"`
	Status        PurchaseStatus        `json:"status"`
}

type PurchaseParticipant struct {
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Quantity int       `json:"quantity"`
	JoinedAt time.Time `json:"joinedAt"`
}
