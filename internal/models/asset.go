package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Asset - объект инфраструктуры. ConditionScore в диапазоне 0..100.
// MonthlyScores - история оценок по месяцам, от старой к новой; может отсутствовать.
type Asset struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Location        string          `json:"location"`
	ConditionScore  int             `json:"condition_score"`
	LastInspection  time.Time       `json:"last_inspection"`
	NextMaintenance time.Time       `json:"next_maintenance"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	Coordinates     Coordinates     `json:"coordinates"`
	MonthlyScores   []int           `json:"monthly_scores,omitempty"`
}
