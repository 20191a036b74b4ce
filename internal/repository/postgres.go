package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/shopspring/decimal"
)

// PostgresSource читает снимки коллекций из PostgreSQL. Только чтение:
// изменения, сделанные в панелях, в базу не записываются.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) service.RecordSource {
	return &PostgresSource{db: db}
}

// collect выполняет запрос и сканирует каждую строку функцией scan
func collect[T any](ctx context.Context, db *pgxpool.Pool, name, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", name, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error %s iteration: %w", name, err)
	}
	return out, nil
}

func parseMoney(column, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", column, raw, err)
	}
	return d, nil
}

func (r *PostgresSource) Incidents(ctx context.Context) ([]models.Incident, error) {
	query := `
		SELECT id, type, severity, location, status, reported_at, priority,
			response_time, assigned_units, estimated_clearance, lat, lng
		FROM incidents
		ORDER BY id;
	`
	return collect(ctx, r.db, "incidents", query, func(rows pgx.Rows) (models.Incident, error) {
		var (
			i        models.Incident
			lat, lng *float64
		)
		err := rows.Scan(&i.ID, &i.Type, &i.Severity, &i.Location, &i.Status, &i.ReportedAt, &i.Priority,
			&i.ResponseTime, &i.AssignedUnits, &i.EstimatedClearance, &lat, &lng)
		if err == nil && lat != nil && lng != nil {
			i.Coordinates = &models.Coordinates{Lat: *lat, Lng: *lng}
		}
		return i, err
	})
}

func (r *PostgresSource) Resources(ctx context.Context) ([]models.Resource, error) {
	query := `
		SELECT id, type, name, status, location, assigned_incident, eta
		FROM resources
		ORDER BY id;
	`
	return collect(ctx, r.db, "resources", query, func(rows pgx.Rows) (models.Resource, error) {
		var res models.Resource
		err := rows.Scan(&res.ID, &res.Type, &res.Name, &res.Status, &res.Location, &res.AssignedIncident, &res.ETA)
		return res, err
	})
}

func (r *PostgresSource) MaintenanceTasks(ctx context.Context) ([]models.MaintenanceTask, error) {
	query := `
		SELECT id, title, description, location, priority, status, scheduled_date, assigned_to,
			estimated_cost::text, estimated_duration, resources_required, last_inspection
		FROM maintenance_tasks
		ORDER BY id;
	`
	return collect(ctx, r.db, "maintenance tasks", query, func(rows pgx.Rows) (models.MaintenanceTask, error) {
		var (
			t    models.MaintenanceTask
			cost string
		)
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Location, &t.Priority, &t.Status, &t.ScheduledDate, &t.AssignedTo,
			&cost, &t.EstimatedDuration, &t.ResourcesRequired, &t.LastInspection)
		if err != nil {
			return t, err
		}
		t.EstimatedCost, err = parseMoney("estimated_cost", cost)
		return t, err
	})
}

func (r *PostgresSource) Assets(ctx context.Context) ([]models.Asset, error) {
	query := `
		SELECT id, name, type, location, condition_score, last_inspection, next_maintenance,
			estimated_cost::text, lat, lng, monthly_scores
		FROM assets
		ORDER BY id;
	`
	return collect(ctx, r.db, "assets", query, func(rows pgx.Rows) (models.Asset, error) {
		var (
			a    models.Asset
			cost string
		)
		err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Location, &a.ConditionScore, &a.LastInspection, &a.NextMaintenance,
			&cost, &a.Coordinates.Lat, &a.Coordinates.Lng, &a.MonthlyScores)
		if err != nil {
			return a, err
		}
		a.EstimatedCost, err = parseMoney("estimated_cost", cost)
		return a, err
	})
}

func (r *PostgresSource) NetworkIncidents(ctx context.Context) ([]models.NetworkIncident, error) {
	query := `
		SELECT id, type, severity, title, location, reported_by, timestamp, status, assigned_team,
			estimated_resolution, priority, affected_lanes, traffic_impact
		FROM network_incidents
		ORDER BY id;
	`
	return collect(ctx, r.db, "network incidents", query, func(rows pgx.Rows) (models.NetworkIncident, error) {
		var n models.NetworkIncident
		err := rows.Scan(&n.ID, &n.Type, &n.Severity, &n.Title, &n.Location, &n.ReportedBy, &n.Timestamp, &n.Status, &n.AssignedTeam,
			&n.EstimatedResolution, &n.Priority, &n.AffectedLanes, &n.TrafficImpact)
		return n, err
	})
}

func (r *PostgresSource) Alerts(ctx context.Context) ([]models.Alert, error) {
	query := `
		SELECT id, severity, type, title, location, timestamp, status, assigned_to, description, estimated_clear_time
		FROM alerts
		ORDER BY id;
	`
	return collect(ctx, r.db, "alerts", query, func(rows pgx.Rows) (models.Alert, error) {
		var a models.Alert
		err := rows.Scan(&a.ID, &a.Severity, &a.Type, &a.Title, &a.Location, &a.Timestamp, &a.Status, &a.AssignedTo,
			&a.Description, &a.EstimatedClearTime)
		return a, err
	})
}

func (r *PostgresSource) Hotspots(ctx context.Context) ([]models.Hotspot, error) {
	query := `
		SELECT id, location, severity, congestion_level, avg_delay, avg_speed, volume
		FROM hotspots
		ORDER BY id;
	`
	return collect(ctx, r.db, "hotspots", query, func(rows pgx.Rows) (models.Hotspot, error) {
		var h models.Hotspot
		err := rows.Scan(&h.ID, &h.Location, &h.Severity, &h.CongestionLevel, &h.AvgDelay, &h.AvgSpeed, &h.Volume)
		return h, err
	})
}

func (r *PostgresSource) BudgetLines(ctx context.Context) ([]models.BudgetLine, error) {
	query := `
		SELECT month, budgeted::text, actual::text
		FROM budget_lines
		ORDER BY position;
	`
	return collect(ctx, r.db, "budget lines", query, func(rows pgx.Rows) (models.BudgetLine, error) {
		var (
			b                models.BudgetLine
			budgeted, actual string
		)
		if err := rows.Scan(&b.Month, &budgeted, &actual); err != nil {
			return b, err
		}
		var err error
		if b.Budgeted, err = parseMoney("budgeted", budgeted); err != nil {
			return b, err
		}
		b.Actual, err = parseMoney("actual", actual)
		return b, err
	})
}

func (r *PostgresSource) KPIs(ctx context.Context) ([]models.KPI, error) {
	query := `
		SELECT id, title, value, unit, status, trend, trend_value, icon, description
		FROM network_kpis
		ORDER BY position;
	`
	return collect(ctx, r.db, "kpis", query, func(rows pgx.Rows) (models.KPI, error) {
		var k models.KPI
		err := rows.Scan(&k.ID, &k.Title, &k.Value, &k.Unit, &k.Status, &k.Trend, &k.TrendValue, &k.Icon, &k.Description)
		return k, err
	})
}

func (r *PostgresSource) Messages(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, channel, sender, content, timestamp, priority, type
		FROM messages
		ORDER BY timestamp, id;
	`
	return collect(ctx, r.db, "messages", query, func(rows pgx.Rows) (models.Message, error) {
		var m models.Message
		err := rows.Scan(&m.ID, &m.Channel, &m.Sender, &m.Content, &m.Timestamp, &m.Priority, &m.Type)
		return m, err
	})
}

func (r *PostgresSource) MaintenanceProjects(ctx context.Context) ([]models.MaintenanceProject, error) {
	query := `
		SELECT id, name, location, status, start_date, end_date, progress, budget::text, team_lead, has_resource_conflict
		FROM maintenance_projects
		ORDER BY id;
	`
	return collect(ctx, r.db, "maintenance projects", query, func(rows pgx.Rows) (models.MaintenanceProject, error) {
		var (
			p      models.MaintenanceProject
			budget string
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Status, &p.StartDate, &p.EndDate, &p.Progress, &budget,
			&p.TeamLead, &p.HasResourceConflict)
		if err != nil {
			return p, err
		}
		p.Budget, err = parseMoney("budget", budget)
		return p, err
	})
}

func (r *PostgresSource) ProjectROI(ctx context.Context) ([]models.ProjectROI, error) {
	query := `
		SELECT project, roi
		FROM project_roi
		ORDER BY position;
	`
	return collect(ctx, r.db, "project roi", query, func(rows pgx.Rows) (models.ProjectROI, error) {
		var p models.ProjectROI
		err := rows.Scan(&p.Project, &p.ROI)
		return p, err
	})
}

func (r *PostgresSource) CostCategories(ctx context.Context) ([]models.CostCategory, error) {
	query := `
		SELECT name, value::text
		FROM cost_categories
		ORDER BY position;
	`
	return collect(ctx, r.db, "cost categories", query, func(rows pgx.Rows) (models.CostCategory, error) {
		var (
			c     models.CostCategory
			value string
		)
		if err := rows.Scan(&c.Name, &value); err != nil {
			return c, err
		}
		var err error
		c.Value, err = parseMoney("value", value)
		return c, err
	})
}

func (r *PostgresSource) TrafficMetrics(ctx context.Context) ([]models.TrafficMetric, error) {
	query := `
		SELECT id, title, value, unit, change, change_type, icon, description
		FROM traffic_metrics
		ORDER BY position;
	`
	return collect(ctx, r.db, "traffic metrics", query, func(rows pgx.Rows) (models.TrafficMetric, error) {
		var m models.TrafficMetric
		err := rows.Scan(&m.ID, &m.Title, &m.Value, &m.Unit, &m.Change, &m.ChangeType, &m.Icon, &m.Description)
		return m, err
	})
}

func (r *PostgresSource) VolumeSeries(ctx context.Context) ([]models.VolumePoint, error) {
	query := `
		SELECT time, volume, congestion
		FROM traffic_volume
		ORDER BY time;
	`
	return collect(ctx, r.db, "traffic volume", query, func(rows pgx.Rows) (models.VolumePoint, error) {
		var p models.VolumePoint
		err := rows.Scan(&p.Time, &p.Volume, &p.Congestion)
		return p, err
	})
}

func (r *PostgresSource) SegmentComparisons(ctx context.Context) ([]models.SegmentComparison, error) {
	query := `
		SELECT segment, current_volume, previous_volume, current_efficiency, previous_efficiency, avg_speed
		FROM segment_comparisons
		ORDER BY position;
	`
	return collect(ctx, r.db, "segment comparisons", query, func(rows pgx.Rows) (models.SegmentComparison, error) {
		var c models.SegmentComparison
		err := rows.Scan(&c.Segment, &c.CurrentVolume, &c.PreviousVolume, &c.CurrentEfficiency, &c.PreviousEfficiency, &c.AvgSpeed)
		return c, err
	})
}

func (r *PostgresSource) TrendHistory(ctx context.Context) ([]models.TrendPoint, error) {
	query := `
		SELECT period, volume, speed, incidents, efficiency,
			volume_forecast, speed_forecast, incidents_forecast, efficiency_forecast
		FROM trend_history
		ORDER BY position;
	`
	return collect(ctx, r.db, "trend history", query, func(rows pgx.Rows) (models.TrendPoint, error) {
		var p models.TrendPoint
		err := rows.Scan(&p.Period, &p.Volume, &p.Speed, &p.Incidents, &p.Efficiency,
			&p.VolumeForecast, &p.SpeedForecast, &p.IncidentsForecast, &p.EfficiencyForecast)
		return p, err
	})
}
