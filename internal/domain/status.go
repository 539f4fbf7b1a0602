package domain

import "time"

type StoreStatusValue string

const (
	StoreConnected    StoreStatusValue = "connected"
	StoreDisconnected StoreStatusValue = "disconnected"
)

type StoreStatus struct {
	Status  StoreStatusValue `json:"status"`
	Message string           `json:"message"`
	Driver  string           `json:"driver,omitempty"`
}

type RefreshResult struct {
	Status      string    `json:"status"`
	RefreshedAt time.Time `json:"refreshed_at"`
	Degraded    []string  `json:"degraded,omitempty"`
}
