package catalog

import "github.com/shopspring/decimal"

// Product is a catalog entry. InStock is derived from Stock and recomputed
// on every write; nothing else may set it.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"inStock"`
}

// DeliveryZone is a named area with a flat delivery fee.
type DeliveryZone struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Fee  decimal.Decimal `json:"fee"`
}

// Theme is the store's color palette, hex values.
type Theme struct {
	PrimaryColorHex       string `json:"primaryColorHex"`
	PrimaryTextColorHex   string `json:"primaryTextColorHex"`
	SecondaryColorHex     string `json:"secondaryColorHex"`
	SecondaryTextColorHex string `json:"secondaryTextColorHex"`
	AccentColorHex        string `json:"accentColorHex"`
	AccentTextColorHex    string `json:"accentTextColorHex"`
	BgGradientStartHex    string `json:"bgGradientStartHex"`
	BgGradientEndHex      string `json:"bgGradientEndHex"`
	TextMainHex           string `json:"textMainHex"`
	TextMutedHex          string `json:"textMutedHex"`
	CardBgHex             string `json:"cardBgHex"`
	CardForegroundHex     string `json:"cardForegroundHex"`
	InputBorderHex        string `json:"inputBorderHex"`
	RingHex               string `json:"ringHex"`
}

// Settings is the store-wide configuration record.
type Settings struct {
	StoreName          string          `json:"storeName"`
	WhatsAppNumber     string          `json:"whatsappNumber"`
	MinOrderValue      decimal.Decimal `json:"minOrderValue"`
	DefaultDeliveryFee decimal.Decimal `json:"defaultDeliveryFee"`
	DeliveryZones      []DeliveryZone  `json:"deliveryZones"`
	Theme              Theme           `json:"theme"`
}

// ProductInput is the admin-facing shape for creating or updating a product.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
}

// SettingsPatch carries only the fields an update wants to change; nil
// fields keep their current value (shallow merge).
type SettingsPatch struct {
	StoreName          *string          `json:"storeName,omitempty"`
	WhatsAppNumber     *string          `json:"whatsappNumber,omitempty"`
	MinOrderValue      *decimal.Decimal `json:"minOrderValue,omitempty"`
	DefaultDeliveryFee *decimal.Decimal `json:"defaultDeliveryFee,omitempty"`
	Theme              *Theme           `json:"theme,omitempty"`
}

// ZoneInput is the admin-facing shape for creating or updating a zone.
type ZoneInput struct {
	Name string          `json:"name"`
	Fee  decimal.Decimal `json:"fee"`
}

// Filters narrows a product listing. Search matches name or description,
// case-insensitive; empty Category (or "all") matches everything.
type Filters struct {
	Search   string
	Category string
}
