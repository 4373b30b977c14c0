package http

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	CustomerName string  `json:"customer_name"`
	Destination  string  `json:"destination"`
	Weight       float64 `json:"weight"`
}

// CreateOrderResponse acknowledges a created order.
type CreateOrderResponse struct {
	Message string `json:"message"`
	Courier string `json:"courier"`
	ID      int64  `json:"id"`
}

// Order is one element of the GET /orders response.
type Order struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	Destination  string  `json:"destination"`
	Weight       float64 `json:"weight"`
	Courier      string  `json:"courier"`
	Status       string  `json:"status"`
}

// CourierRule is one element of the GET /courier-rules response.
type CourierRule struct {
	Courier   string  `json:"courier"`
	MaxWeight float64 `json:"max_weight"`
	Region    string  `json:"region"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

const (
	orderCreatedMessage       = "Order created successfully"
	orderStatusUpdatedMessage = "Order status updated successfully"
	noSuitableCourierDetail   = "No suitable courier found for the order."
	orderNotFoundDetail       = "Order not found"
	internalErrorDetail       = "Internal server error"
)
