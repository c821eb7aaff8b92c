package templating

import (
	"time"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/pkg/utils"
)

const (
	TokenPropertyAddress     = "{PROPERTY_ADDRESS}"
	TokenPropertyCity        = "{PROPERTY_CITY}"
	TokenPropertyState       = "{PROPERTY_STATE}"
	TokenPropertyZip         = "{PROPERTY_ZIP}"
	TokenPropertyFullAddress = "{PROPERTY_FULL_ADDRESS}"
	TokenTenantName          = "{TENANT_NAME}"
	TokenTenantEmail         = "{TENANT_EMAIL}"
	TokenTenantPhone         = "{TENANT_PHONE}"
	TokenMonthlyRent         = "{MONTHLY_RENT}"
	TokenCurrentDate         = "{CURRENT_DATE}"
	TokenToday               = "{TODAY}"
	TokenLandlordName        = "{LANDLORD_NAME}"
	TokenLandlordEmail       = "{LANDLORD_EMAIL}"
)

// Placeholder text used when the request carries no tenant or the caller has no display name.
const (
	FallbackTenantName   = "[Tenant Name]"
	FallbackTenantEmail  = "[Tenant Email]"
	FallbackTenantPhone  = "[Tenant Phone]"
	FallbackLandlordName = "[Landlord Name]"
)

// Variable documents one built-in token.
type Variable struct {
	Token       string `json:"token"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// BuiltinVariables lists the built-in tokens in the order they are applied.
var BuiltinVariables = []Variable{
	{Token: TokenPropertyAddress, Description: "Street address of the property", Example: "123 Main St"},
	{Token: TokenPropertyCity, Description: "City of the property", Example: "Austin"},
	{Token: TokenPropertyState, Description: "State of the property", Example: "TX"},
	{Token: TokenPropertyZip, Description: "Zip code of the property", Example: "78701"},
	{Token: TokenPropertyFullAddress, Description: "Address, city, state and zip", Example: "123 Main St, Austin, TX 78701"},
	{Token: TokenTenantName, Description: "Tenant name", Example: "Jane Doe"},
	{Token: TokenTenantEmail, Description: "Tenant email", Example: "jane@example.com"},
	{Token: TokenTenantPhone, Description: "Tenant phone number", Example: "(512) 555-0100"},
	{Token: TokenMonthlyRent, Description: "Tenant rent, else property rent, as US currency", Example: "$2,200.00"},
	{Token: TokenCurrentDate, Description: "Date of generation", Example: "October 15, 2026"},
	{Token: TokenToday, Description: "Alias of {CURRENT_DATE}", Example: "October 15, 2026"},
	{Token: TokenLandlordName, Description: "Display name of the landlord", Example: "John Smith"},
	{Token: TokenLandlordEmail, Description: "Email of the landlord", Example: "john@example.com"},
}

// Context is the resolved data a template is filled from. Tenant may be nil.
type Context struct {
	Property *domain.Property
	Tenant   *domain.Tenant
	Landlord *domain.Identity
}

// MonthlyRent picks the tenant's rent, falling back to the property's rent, then zero.
// A zero amount counts as unset.
func (c Context) MonthlyRent() float64 {
	if c.Tenant != nil && c.Tenant.RentAmount != 0 {
		return c.Tenant.RentAmount
	}
	if c.Property != nil && c.Property.RentAmount != nil && *c.Property.RentAmount != 0 {
		return *c.Property.RentAmount
	}
	return 0
}

// builtinPairs returns old/new pairs for every built-in token, ready for strings.NewReplacer.
func builtinPairs(c Context, now time.Time) []string {
	property := c.Property
	if property == nil {
		property = &domain.Property{}
	}

	tenantName, tenantEmail, tenantPhone := FallbackTenantName, FallbackTenantEmail, FallbackTenantPhone
	if c.Tenant != nil {
		tenantName = valueOr(c.Tenant.Name, FallbackTenantName)
		tenantEmail = valueOr(c.Tenant.Email, FallbackTenantEmail)
		tenantPhone = valueOr(c.Tenant.Phone, FallbackTenantPhone)
	}

	landlordName, landlordEmail := FallbackLandlordName, ""
	if c.Landlord != nil {
		landlordName = valueOr(c.Landlord.Name, FallbackLandlordName)
		landlordEmail = c.Landlord.Email
	}

	today := utils.FormatLongDate(now)

	return []string{
		TokenPropertyAddress, property.Address,
		TokenPropertyCity, property.City,
		TokenPropertyState, property.State,
		TokenPropertyZip, property.ZipCode,
		TokenPropertyFullAddress, property.FullAddress(),
		TokenTenantName, tenantName,
		TokenTenantEmail, tenantEmail,
		TokenTenantPhone, tenantPhone,
		TokenMonthlyRent, FormatCurrency(c.MonthlyRent()),
		TokenCurrentDate, today,
		TokenToday, today,
		TokenLandlordName, landlordName,
		TokenLandlordEmail, landlordEmail,
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
