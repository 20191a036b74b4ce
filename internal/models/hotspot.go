package models

// Hotspot - участок дороги с заторами
type Hotspot struct {
	ID              string  `json:"id"`
	Location        string  `json:"location"`
	Severity        string  `json:"severity"`
	CongestionLevel int     `json:"congestion_level"`
	AvgDelay        float64 `json:"avg_delay"`
	AvgSpeed        int     `json:"avg_speed"`
	Volume          string  `json:"volume"`
}
