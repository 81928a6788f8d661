package models

import "time"

// OverviewBrokerDetails reports how the console sees the broker it is connected to.
type OverviewBrokerDetails struct {
	BaseURL       string        `json:"base_url"`
	Reachable     bool          `json:"reachable"`
	Error         string        `json:"error,omitempty"`
	Latency       time.Duration `json:"latency_ns"`
	ExchangeCount int           `json:"exchanges"`
	QueueCount    int           `json:"queues"`
}

type OverviewAMQPDetails struct {
	URL       string `json:"url"`
	Enabled   bool   `json:"enabled"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
	Product   string `json:"product,omitempty"`
	Version   string `json:"version,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Locales   string `json:"locales,omitempty"`
}

type OverviewConsoleDetails struct {
	Version        string    `json:"version"`
	Username       string    `json:"username"`
	StartTime      time.Time `json:"start_time"`
	UptimeSecs     int       `json:"uptime_secs"`
	BrokerCalls    int64     `json:"broker_calls"`
	BrokerFailures int64     `json:"broker_failures"`
	CallRate       float64   `json:"call_rate"`
	Features       []string  `json:"enabled_features"` // e.g., ["metrics", "activity", "swagger"]
}

type OverviewDTO struct {
	Broker  OverviewBrokerDetails  `json:"broker"`
	AMQP    OverviewAMQPDetails    `json:"amqp"`
	Console OverviewConsoleDetails `json:"console"`
}
