package entities

// Promo is a partner discount code. UsedBy holds user ids, each at most
// once; maxUses and validity are enforced by the caller, not here.
type Promo struct {
	ID          string   `json:"id"`
	CreatorID   string   `json:"creatorId"`
	CompanyName string   `json:"companyName"`
	Partner     string   `json:"partner"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Discount    string   `json:"discount"`
	Code        string   `json:"code"`
	ValidUntil  string   `json:"validUntil"`
	MaxUses     int      `json:"maxUses"`
	IsActive    bool     `json:"isActive"`
	IsExclusive bool     `json:"isExclusive"`
	UsedBy      []string `json:"usedBy"`
}
