package square

// Catalog object types this service cares about. Other types returned by the
// catalog listing are ignored.
const (
	ObjectTypeItem                      = "ITEM"
	ObjectTypeImage                     = "IMAGE"
	ObjectTypeItemVariation             = "ITEM_VARIATION"
	ObjectTypeSubscriptionPlanVariation = "SUBSCRIPTION_PLAN_VARIATION"
)

// Money is a monetary amount in minor currency units (cents).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// CatalogObject is Square's tagged catalog variant. Exactly one of the *Data
// fields is populated, selected by Type; absent nesting at any level is
// represented by nil pointers.
type CatalogObject struct {
	Type              string                `json:"type"`
	ID                string                `json:"id"`
	ItemData          *CatalogItem          `json:"item_data,omitempty"`
	ImageData         *CatalogImage         `json:"image_data,omitempty"`
	ItemVariationData *CatalogItemVariation `json:"item_variation_data,omitempty"`
}

type CatalogItem struct {
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Variations  []CatalogObject `json:"variations,omitempty"`
	ImageIDs    []string        `json:"image_ids,omitempty"`
}

type CatalogImage struct {
	Name string `json:"name,omitempty"`
	// URL may be absent while the image is still processing.
	URL string `json:"url,omitempty"`
}

type CatalogItemVariation struct {
	ItemID     string `json:"item_id,omitempty"`
	Name       string `json:"name,omitempty"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

type Payment struct {
	ID            string `json:"id,omitempty"`
	Status        string `json:"status,omitempty"`
	SourceType    string `json:"source_type,omitempty"`
	AmountMoney   *Money `json:"amount_money,omitempty"`
	TotalMoney    *Money `json:"total_money,omitempty"`
	ApprovedMoney *Money `json:"approved_money,omitempty"`
	LocationID    string `json:"location_id,omitempty"`
	OrderID       string `json:"order_id,omitempty"`
	ReceiptNumber string `json:"receipt_number,omitempty"`
	ReceiptURL    string `json:"receipt_url,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type Customer struct {
	ID           string `json:"id,omitempty"`
	GivenName    string `json:"given_name,omitempty"`
	FamilyName   string `json:"family_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type Order struct {
	ID          string          `json:"id,omitempty"`
	LocationID  string          `json:"location_id,omitempty"`
	ReferenceID string          `json:"reference_id,omitempty"`
	State       string          `json:"state,omitempty"`
	LineItems   []OrderLineItem `json:"line_items,omitempty"`
}

type OrderLineItem struct {
	Quantity       string `json:"quantity,omitempty"`
	Name           string `json:"name,omitempty"`
	BasePriceMoney *Money `json:"base_price_money,omitempty"`
}

type Subscription struct {
	ID              string `json:"id,omitempty"`
	Status          string `json:"status,omitempty"`
	LocationID      string `json:"location_id,omitempty"`
	CustomerID      string `json:"customer_id,omitempty"`
	PlanVariationID string `json:"plan_variation_id,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type SubscriptionPhase struct {
	Ordinal         int64  `json:"ordinal"`
	OrderTemplateID string `json:"order_template_id,omitempty"`
}

type Location struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Currency string `json:"currency,omitempty"`
}
