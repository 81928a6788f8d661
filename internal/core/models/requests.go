package models

type CreateExchangeRequest struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=direct fanout topic headers"`
	Durable bool   `json:"durable"`
}

type CreateQueueRequest struct {
	Name       string `json:"name" validate:"required"`
	Durable    bool   `json:"durable"`
	AutoDelete bool   `json:"autoDelete"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host,omitempty"`
	Port     string `json:"port,omitempty"`
}

// DeleteOptions map to the broker's ifUnused/ifEmpty query parameters.
type DeleteOptions struct {
	IfUnused bool `query:"ifUnused"`
	IfEmpty  bool `query:"ifEmpty"`
}

// ListQuery carries the filter and pagination parameters of list endpoints.
type ListQuery struct {
	Term   string `query:"q"`
	Column string `query:"column"`
	Page   int    `query:"page"`
	Size   int    `query:"size"`
}
