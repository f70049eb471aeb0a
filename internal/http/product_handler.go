package http

import (
	"net/http"

	"github.com/matromatro/casa-pao-backend-frontend/internal/service"
)

type ProductHandler struct {
	svc service.OrderService
}

func NewProductHandler(svc service.OrderService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Fulfillment string  `json:"fulfillment"`
}

// GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Fulfillment: p.Fulfillment.String(),
		})
	}

	respondJSON(w, http.StatusOK, response)
}
