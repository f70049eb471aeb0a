package repository

import "github.com/matromatro/casa-pao-backend-frontend/internal/domain"

// DefaultCatalog is inserted on first startup when the products table is
// empty. Prices are in the shop currency; ids are fixed so the frontend can
// reference them directly.
var DefaultCatalog = []domain.Product{
	{
		ID:          1,
		Name:        "Pacote (10 pães) — retirada na loja — saco a vácuo",
		Price:       5.00,
		Fulfillment: domain.FulfillmentPickup,
		Active:      true,
	},
	{
		ID:          2,
		Name:        "Entrega — 20 pães (2×10) — saco a vácuo (sexta-feira)",
		Price:       14.00,
		Fulfillment: domain.FulfillmentDelivery,
		Active:      true,
	},
}
