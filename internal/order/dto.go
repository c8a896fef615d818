package order

// AddItemRequest payload for adding a product to a pending order.
// swagger:model AddItemRequest
type AddItemRequest struct {
	ProductID string `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int    `json:"quantity"   example:"2"`
}

// UpdateStatusRequest payload for a status transition.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Shipped"`
}
