package service

import (
	"context"
	"fmt"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Тренды состояния объекта
const (
	TrendStable    = "stable"
	TrendDeclining = "declining"
	TrendCritical  = "critical"
)

const (
	// criticalScore - последняя оценка ниже этого значения требует немедленной работы
	criticalScore = 50
	// decliningDrop - падение средней за три месяца, начиная с которого объект деградирует
	decliningDrop = 3.0
	trendWindow   = 3
)

var projectTable = tableSpec[models.MaintenanceProject]{
	name:        "assets.schedule",
	schema:      schema.MaintenanceProject,
	filterField: "status",
	defaultSort: pipeline.SortState{Field: "start_date", Direction: pipeline.Ascending},
}

// Recommendations - подсказка матрицы состояния для каждого тренда
var Recommendations = map[string]string{
	TrendStable:    "Condition stable",
	TrendDeclining: "Schedule preventive maintenance",
	TrendCritical:  "Immediate attention required",
}

// ConditionRow - строка матрицы: оценки за выбранное окно и тренд по всей истории
type ConditionRow struct {
	AssetID        string
	Name           string
	Scores         []int
	Trend          string
	Recommendation string
}

// ProjectSchedule - график проектов и число проектов с конфликтом ресурсов
type ProjectSchedule struct {
	View      pipeline.View[models.MaintenanceProject]
	Conflicts int
}

// CostShare - статья расходов и ее доля в процентах
type CostShare struct {
	Category models.CostCategory
	Share    decimal.Decimal
}

// CostBreakdown - окупаемость проектов и распределение расходов
type CostBreakdown struct {
	ROI        []models.ProjectROI
	Categories []CostShare
	Total      decimal.Decimal
}

// ConditionTrend классифицирует историю оценок от старой к новой.
// Короткая история без критической последней оценки считается стабильной.
func ConditionTrend(scores []int) string {
	if len(scores) == 0 {
		return TrendStable
	}
	if scores[len(scores)-1] < criticalScore {
		return TrendCritical
	}
	if len(scores) < 2*trendWindow {
		return TrendStable
	}
	first := mean(scores[:trendWindow])
	last := mean(scores[len(scores)-trendWindow:])
	if first-last > decliningDrop {
		return TrendDeclining
	}
	return TrendStable
}

func mean(values []int) float64 {
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// ConditionMatrix строит матрицу для объектов с историей оценок.
// months ограничивает число последних месяцев, 0 - вся история.
func (s *assetService) ConditionMatrix(_ context.Context, months int) ([]ConditionRow, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "asset",
		"method":  "ConditionMatrix",
		"months":  months,
	})
	if months < 0 {
		log.Warn("Negative condition window")
		return nil, fmt.Errorf("service: condition window %d must not be negative", months)
	}

	rows := make([]ConditionRow, 0)
	for _, a := range s.stores.Assets.Set().Records() {
		if len(a.MonthlyScores) == 0 {
			continue
		}
		scores := a.MonthlyScores
		if months > 0 && months < len(scores) {
			scores = scores[len(scores)-months:]
		}
		trend := ConditionTrend(a.MonthlyScores)
		rows = append(rows, ConditionRow{
			AssetID:        a.ID,
			Name:           a.Name,
			Scores:         append([]int(nil), scores...),
			Trend:          trend,
			Recommendation: Recommendations[trend],
		})
	}
	log.WithField("count", len(rows)).Debug("Condition matrix built")
	return rows, nil
}

// Schedule возвращает график проектов, по умолчанию в порядке начала работ
func (s *assetService) Schedule(_ context.Context, q ViewQuery) ProjectSchedule {
	log := s.logger.WithFields(logrus.Fields{
		"service": "asset",
		"method":  "Schedule",
		"filter":  q.Filter,
	})
	set := s.stores.Projects.Set()
	return ProjectSchedule{
		View: projectTable.run(log, s.observer, set, q),
		Conflicts: set.Count(func(p models.MaintenanceProject) bool {
			return p.HasResourceConflict
		}),
	}
}

// CostBreakdown считает доли статей расходов с одним знаком после запятой
func (s *assetService) CostBreakdown(_ context.Context) CostBreakdown {
	categories := s.stores.CostCategories.Set().Records()

	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Value)
	}
	shares := make([]CostShare, len(categories))
	for i, c := range categories {
		share := decimal.Zero
		if !total.IsZero() {
			share = c.Value.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
		}
		shares[i] = CostShare{Category: c, Share: share}
	}
	return CostBreakdown{
		ROI:        s.stores.ProjectROI.Set().Records(),
		Categories: shares,
		Total:      total,
	}
}
