package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Page describes the window returned by a list endpoint.
type Page struct {
	Page     int `json:"page"`
	Size     int `json:"size"`
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
	Pages    int `json:"pages"`
}

type ExchangeListResponse struct {
	Exchanges []ExchangeMetadata `json:"exchanges"`
	Page      Page               `json:"page"`
}

type QueueListResponse struct {
	Queues []QueueMetadata `json:"queues"`
	Page   Page            `json:"page"`
}

type BindingListResponse struct {
	Exchange string       `json:"exchange"`
	Bindings []BindingSet `json:"bindings"`
}

type ConsumerListResponse struct {
	Queue     string             `json:"queue"`
	Consumers []ConsumerMetadata `json:"consumers"`
}

type PurgeResponse struct {
	Message  string `json:"message"`
	Messages int    `json:"messages_deleted"`
}
