package presentation

// Полосы числовых значений. Пустая строка - значение вне допустимого диапазона,
// Lookup для нее вернет нейтральную тройку.

// PriorityBandOf: 1-2 срочно, 3-4 повышенный, от 5 рутина
func PriorityBandOf(priority int) string {
	switch {
	case priority < 1:
		return ""
	case priority <= 2:
		return "urgent"
	case priority <= 4:
		return "elevated"
	default:
		return "routine"
	}
}

// ConditionBandOf переводит оценку состояния 0..100 в полосу
func ConditionBandOf(score int) string {
	switch {
	case score < 0 || score > 100:
		return ""
	case score >= 80:
		return "good"
	case score >= 60:
		return "fair"
	case score >= 40:
		return "poor"
	default:
		return "critical"
	}
}

// CongestionBandOf переводит уровень загруженности в процентах в полосу
func CongestionBandOf(level int) string {
	switch {
	case level < 0 || level > 100:
		return ""
	case level >= 80:
		return "severe"
	case level >= 60:
		return "heavy"
	case level >= 40:
		return "moderate"
	default:
		return "light"
	}
}
