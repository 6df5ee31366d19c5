package entities

import "time"

type UserRole string

const (
	RoleEmployer   UserRole = "employer"
	RoleSpecialist UserRole = "specialist"
	RoleClient     UserRole = "client"
	RoleSupplier   UserRole = "supplier"
)

func ToUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleEmployer, RoleSpecialist, RoleClient, RoleSupplier:
		return UserRole(s), true
	}
	return "", false
}

type SpecialistStatus string

const (
	SpecialistSearching SpecialistStatus = "searching"
	SpecialistOpen      SpecialistStatus = "open"
	SpecialistEmployed  SpecialistStatus = "employed"
)

type SubscriptionPlan string

const (
	PlanBasic   SubscriptionPlan = "basic"
	PlanPro     SubscriptionPlan = "pro"
	PlanPremium SubscriptionPlan = "premium"
)

// User is the single account record for all four roles. Role-specific
// fields stay optional on one flat record because that is the persisted
// layout; readers must only touch fields applicable to Role.
type User struct {
	ID        string    `json:"id"`
	Role      UserRole  `json:"role"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // plaintext for demo accounts
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`

	IsVerified bool `json:"isVerified"`

	// employer
	CompanyName        string           `json:"companyName,omitempty"`
	INN                string           `json:"inn,omitempty"`
	CompanyType        string           `json:"companyType,omitempty"`
	Address            string           `json:"address,omitempty"`
	District           string           `json:"district,omitempty"`
	Description        string           `json:"description,omitempty"`
	Services           []string         `json:"services,omitempty"`
	WorkingHours       string           `json:"workingHours,omitempty"`
	SubscriptionPlan   SubscriptionPlan `json:"subscriptionPlan,omitempty"`
	SubscriptionExpiry string           `json:"subscriptionExpiry,omitempty"`
	SubAccounts        []SubAccount     `json:"subAccounts,omitempty"`

	// specialist
	Specialization    string           `json:"specialization,omitempty"`
	Experience        string           `json:"experience,omitempty"`
	Skills            []string         `json:"skills,omitempty"`
	IsCertified       bool             `json:"isCertified,omitempty"`
	CertificateNumber string           `json:"certificateNumber,omitempty"`
	Status            SpecialistStatus `json:"status,omitempty"`
	Portfolio         []PortfolioItem  `json:"portfolio,omitempty"`
	ResumeText        string           `json:"resumeText,omitempty"`
	AvailableForGigs  bool             `json:"availableForGigs,omitempty"`

	// supplier
	Category string   `json:"category,omitempty"`
	Products []string `json:"products,omitempty"`
	MinOrder string   `json:"minOrder,omitempty"`
	Discount string   `json:"discount,omitempty"`

	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Avatar      string   `json:"avatar,omitempty"`
	Favorites   []string `json:"favorites"`
}

// DisplayName prefers the personal name and falls back to the company name,
// mirroring how conversations label their participants.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.CompanyName
}

type SubAccount struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	CanEditVacancies bool   `json:"canEditVacancies"`
	CanEditProfile   bool   `json:"canEditProfile"`
}

type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
