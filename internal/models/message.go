package models

import "time"

// Каналы центра связи
const (
	ChannelDispatch    = "dispatch"
	ChannelPolice      = "police"
	ChannelFire        = "fire"
	ChannelMedical     = "medical"
	ChannelMaintenance = "maintenance"
)

// Приоритеты сообщений
const (
	MessagePriorityLow    = "low"
	MessagePriorityNormal = "normal"
	MessagePriorityHigh   = "high"
)

// Типы сообщений
const (
	MessageBroadcast = "broadcast"
	MessageResponse  = "response"
	MessageRequest   = "request"
	MessageUpdate    = "update"
	MessageReport    = "report"
)

// Channel - канал связи. Неактивный канал виден, но помечается отдельно.
type Channel struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// Message - сообщение в канале центра связи
type Message struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	Sender    string    `json:"sender"`
	Content   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Priority  string    `json:"priority"`
	Type      string    `json:"type"`
}
