package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы задач обслуживания
const (
	TaskOverdue    = "overdue"
	TaskScheduled  = "scheduled"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// MaintenanceTask - задача из очереди обслуживания
type MaintenanceTask struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Location          string          `json:"location"`
	Priority          string          `json:"priority"`
	Status            string          `json:"status"`
	ScheduledDate     time.Time       `json:"scheduled_date"`
	AssignedTo        string          `json:"assigned_to"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	EstimatedDuration string          `json:"estimated_duration"`
	ResourcesRequired []string        `json:"resources_required"`
	LastInspection    time.Time       `json:"last_inspection"`
}

// BudgetLine - плановые и фактические расходы за месяц
type BudgetLine struct {
	Month    string          `json:"month"`
	Budgeted decimal.Decimal `json:"budgeted"`
	Actual   decimal.Decimal `json:"actual"`
}

// MaintenanceProject - строка графика работ (диаграмма Ганта)
type MaintenanceProject struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Location            string          `json:"location"`
	Status              string          `json:"status"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	Progress            int             `json:"progress"`
	Budget              decimal.Decimal `json:"budget"`
	TeamLead            string          `json:"team_lead"`
	HasResourceConflict bool            `json:"has_resource_conflict"`
}

// ProjectROI - окупаемость проекта в процентах
type ProjectROI struct {
	Project string  `json:"project"`
	ROI     float64 `json:"roi"`
}

// CostCategory - статья расходов
type CostCategory struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}
