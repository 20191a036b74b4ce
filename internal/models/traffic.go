package models

import "math"

// TrafficMetric - карточка обзора панели аналитики движения
type TrafficMetric struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
	Change      string `json:"change"`
	ChangeType  string `json:"change_type"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// VolumePoint - точка суточного графика: поток и загруженность в процентах
type VolumePoint struct {
	Time       string `json:"time"`
	Volume     int    `json:"volume"`
	Congestion int    `json:"congestion"`
}

// SegmentComparison - сравнение участка сети с предыдущим периодом
type SegmentComparison struct {
	Segment            string `json:"segment"`
	CurrentVolume      int    `json:"current_volume"`
	PreviousVolume     int    `json:"previous_volume"`
	CurrentEfficiency  int    `json:"current_efficiency"`
	PreviousEfficiency int    `json:"previous_efficiency"`
	AvgSpeed           int    `json:"avg_speed"`
}

// VolumeChange - изменение потока в процентах с одним знаком
func (s SegmentComparison) VolumeChange() float64 {
	return percentChange(s.CurrentVolume, s.PreviousVolume)
}

// EfficiencyChange - изменение эффективности в процентах с одним знаком
func (s SegmentComparison) EfficiencyChange() float64 {
	return percentChange(s.CurrentEfficiency, s.PreviousEfficiency)
}

func percentChange(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round(float64(current-previous)/float64(previous)*1000) / 10
}

// TrendPoint - месячная точка истории с прогнозом
type TrendPoint struct {
	Period             string `json:"period"`
	Volume             int    `json:"volume"`
	Speed              int    `json:"speed"`
	Incidents          int    `json:"incidents"`
	Efficiency         int    `json:"efficiency"`
	VolumeForecast     int    `json:"volume_forecast"`
	SpeedForecast      int    `json:"speed_forecast"`
	IncidentsForecast  int    `json:"incidents_forecast"`
	EfficiencyForecast int    `json:"efficiency_forecast"`
}
