package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is a resolved account. Identity flows (login/register) live
// outside this service; handlers receive a user id and look it up.
// LoyaltyPoints only ever grows, and only through checkout settlement.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Role          Role   `json:"role"`
	Avatar        string `json:"avatar,omitempty"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

// Banner is storefront hero content, managed by the admin side.
type Banner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CTAText     string `json:"ctaText,omitempty"`
	LinkSection string `json:"linkSection,omitempty"`
	IsActive    bool   `json:"isActive"`
	EndsAt      string `json:"endsAt,omitempty"`
}

// BrandSettings carries shop identity plus the admin-editable loyalty
// tier minimums. Zero minimums mean "use the configured defaults".
type BrandSettings struct {
	LogoURL           string `json:"logoUrl,omitempty"`
	BrandName         string `json:"brandName"`
	StoreAddress      string `json:"storeAddress,omitempty"`
	ContactPhone      string `json:"contactPhone,omitempty"`
	ContactEmail      string `json:"contactEmail,omitempty"`
	LoyaltyBronzeMin  *int   `json:"loyaltyBronzeMin,omitempty"`
	LoyaltySilverMin  *int   `json:"loyaltySilverMin,omitempty"`
	LoyaltyGoldMin    *int   `json:"loyaltyGoldMin,omitempty"`
	LoyaltyDiamondMin *int   `json:"loyaltyDiamondMin,omitempty"`
}
