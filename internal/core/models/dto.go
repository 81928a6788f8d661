package models

// Permission maps a broker action to the user groups allowed to perform it.
type Permission struct {
	Action     string   `json:"action"`
	UserGroups []string `json:"userGroups"`
}

type ExchangeMetadata struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Durable     bool         `json:"durable"`
	Owner       string       `json:"owner,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

type QueueMetadata struct {
	Name          string       `json:"name"`
	ConsumerCount int          `json:"consumerCount"`
	Durable       bool         `json:"durable"`
	Capacity      int          `json:"capacity"`
	Size          int          `json:"size"`
	AutoDelete    bool         `json:"autoDelete"`
	Owner         string       `json:"owner,omitempty"`
	Permissions   []Permission `json:"permissions,omitempty"`
}

type TransportProperties struct {
	ConnectionID int `json:"connectionId"`
	ChannelID    int `json:"channelId"`
}

type ConsumerMetadata struct {
	ID                  int                 `json:"id"`
	ConsumerTag         string              `json:"consumerTag,omitempty"`
	IsExclusive         bool                `json:"isExclusive"`
	FlowEnabled         bool                `json:"flowEnabled"`
	TransportProperties TransportProperties `json:"transportProperties"`
}

type BoundQueue struct {
	QueueName string `json:"queueName"`
}

// BindingSet groups the queues bound to an exchange under one routing pattern.
type BindingSet struct {
	BindingPattern string       `json:"bindingPattern"`
	Bindings       []BoundQueue `json:"bindings"`
}

// PurgeResult is returned by DELETE /queues/{name}/messages.
type PurgeResult struct {
	NumberOfMessagesDeleted int `json:"numberOfMessagesDeleted"`
}
