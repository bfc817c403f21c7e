package catalog

import "github.com/shopspring/decimal"

func defaultTheme() Theme {
	return Theme{
		PrimaryColorHex:       "#D32F2F",
		PrimaryTextColorHex:   "#FFFFFF",
		SecondaryColorHex:     "#1976D2",
		SecondaryTextColorHex: "#FFFFFF",
		AccentColorHex:        "#FF5252",
		AccentTextColorHex:    "#FFFFFF",
		BgGradientStartHex:    "#FFEBEE",
		BgGradientEndHex:      "#E3F2FD",
		TextMainHex:           "#212121",
		TextMutedHex:          "#757575",
		CardBgHex:             "#FFFFFF",
		CardForegroundHex:     "#212121",
		InputBorderHex:        "#BDBDBD",
		RingHex:               "#D32F2F",
	}
}

func defaultSettings() Settings {
	return Settings{
		StoreName:          "MH Delivery",
		WhatsAppNumber:     "",
		MinOrderValue:      decimal.NewFromFloat(20.00),
		DefaultDeliveryFee: decimal.NewFromFloat(7.00),
		DeliveryZones: []DeliveryZone{
			{ID: "zone1", Name: "Centro", Fee: decimal.NewFromFloat(5.00)},
			{ID: "zone2", Name: "Taquari", Fee: decimal.NewFromFloat(10.00)},
		},
		Theme: defaultTheme(),
	}
}

// seedProducts is the first-run catalog.
func seedProducts() []Product {
	ps := []Product{
		{
			ID:          "1",
			Name:        "Coca-Cola 2L",
			Description: "Refrigerante Coca-Cola Original Garrafa 2 Litros",
			Price:       decimal.NewFromFloat(8.99),
			Image:       "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?w=400",
			Category:    "Bebidas",
			Stock:       10,
		},
		{
			ID:          "2",
			Name:        "Arroz Tipo 1 5kg",
			Description: "Arroz branco tipo 1, ideal para o dia a dia",
			Price:       decimal.NewFromFloat(22.50),
			Image:       "https://images.unsplash.com/photo-1586201375822-52c6739cadf6?w=400",
			Category:    "Mercearia",
			Stock:       15,
		},
		{
			ID:          "3",
			Name:        "Pão de Forma Tradicional",
			Description: "Pão de forma macio e saboroso",
			Price:       decimal.NewFromFloat(6.75),
			Image:       "https://images.unsplash.com/photo-1598373182133-52452f7691ef?w=400",
			Category:    "Padaria",
			Stock:       0,
		},
	}
	for i := range ps {
		ps[i].InStock = ps[i].Stock > 0
	}
	return ps
}
