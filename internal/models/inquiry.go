package models

// OrderInquiry is an append-only record of a purchase or contact intent.
// There are no update or delete operations on the inquiry log.
type OrderInquiry struct {
	ID          int64  `json:"id"`
	ProductName string `json:"productName"`
	Price       string `json:"price"`
	Timestamp   string `json:"timestamp"`
	Message     string `json:"message"`
	UserAgent   string `json:"userAgent,omitempty"`
}

type CreateInquiryRequest struct {
	ProductName string `json:"productName" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Message     string `json:"message,omitempty"`
	UserAgent   string `json:"userAgent,omitempty"`
}

// InquiryResponse carries the logged inquiry plus the pre-filled
// message-compose link the visitor is sent to.
type InquiryResponse struct {
	Inquiry     *OrderInquiry `json:"inquiry"`
	ComposeLink string        `json:"composeLink"`
}
