package repository

import (
	"context"
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/shopspring/decimal"
)

// FixtureSource отдает встроенный демонстрационный набор данных.
// Время оповещений отсчитывается от clock, остальные даты фиксированы.
type FixtureSource struct {
	clock func() time.Time
}

func NewFixtureSource(clock func() time.Time) service.RecordSource {
	if clock == nil {
		clock = time.Now
	}
	return &FixtureSource{clock: clock}
}

func at(s string) time.Time {
	return pipeline.MustParseInstant(s)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ref(id string) *string {
	return &id
}

func point(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Lat: lat, Lng: lng}
}

func (f *FixtureSource) Incidents(_ context.Context) ([]models.Incident, error) {
	return []models.Incident{
		{ID: "INC-001", Type: "Multi-Vehicle Accident", Location: "Times Square, NYC", Priority: 1, Status: models.IncidentActive,
			ReportedAt: at("2025-09-01T16:08:30"), ResponseTime: "3.2 min", AssignedUnits: 3, EstimatedClearance: "45 min", Severity: models.SeverityHigh,
			Coordinates: point(40.7589, -73.9851)},
		{ID: "INC-002", Type: "Road Work Emergency", Location: "Herald Square, NYC", Priority: 2, Status: models.IncidentResponding,
			ReportedAt: at("2025-09-01T16:05:15"), ResponseTime: "6.8 min", AssignedUnits: 2, EstimatedClearance: "2 hours", Severity: models.SeverityMedium,
			Coordinates: point(40.7505, -73.9934)},
		{ID: "INC-003", Type: "Weather Related", Location: "Central Park East", Priority: 3, Status: models.IncidentMonitoring,
			ReportedAt: at("2025-09-01T16:02:45"), ResponseTime: "12.1 min", AssignedUnits: 1, EstimatedClearance: "30 min", Severity: models.SeverityLow,
			Coordinates: point(40.7614, -73.9776)},
		{ID: "INC-004", Type: "Traffic Signal Malfunction", Location: "Broadway & 42nd St", Priority: 4, Status: models.IncidentResolved,
			ReportedAt: at("2025-09-01T15:45:20"), ResponseTime: "8.5 min", AssignedUnits: 1, EstimatedClearance: "Completed", Severity: models.SeverityMedium,
			Coordinates: point(40.7557, -73.987)},
		{ID: "INC-005", Type: "Vehicle Breakdown", Location: "FDR Drive Southbound", Priority: 5, Status: models.IncidentEnRoute,
			ReportedAt: at("2025-09-01T16:10:10"), ResponseTime: "2.1 min", AssignedUnits: 1, EstimatedClearance: "20 min", Severity: models.SeverityLow,
			Coordinates: point(40.742, -73.973)},
	}, nil
}

func (f *FixtureSource) Resources(_ context.Context) ([]models.Resource, error) {
	return []models.Resource{
		{ID: "POLICE-01", Type: models.ResourcePolice, Name: "Patrol Unit 01", Status: models.ResourceOnScene, Location: "Times Square", AssignedIncident: ref("INC-001"), ETA: "On Scene"},
		{ID: "POLICE-02", Type: models.ResourcePolice, Name: "Patrol Unit 02", Status: models.ResourceAvailable, Location: "Midtown Precinct", ETA: "5 min"},
		{ID: "FIRE-03", Type: models.ResourceFire, Name: "Engine 03", Status: models.ResourceEnRoute, Location: "En Route to Times Square", AssignedIncident: ref("INC-001"), ETA: "2 min"},
		{ID: "MED-07", Type: models.ResourceMedical, Name: "Ambulance 07", Status: models.ResourceDispatched, Location: "Hospital District", AssignedIncident: ref("INC-001"), ETA: "5 min"},
		{ID: "MAINT-12", Type: models.ResourceMaintenance, Name: "Tow Truck 12", Status: models.ResourceAvailable, Location: "Depot", ETA: "10 min"},
	}, nil
}

func (f *FixtureSource) MaintenanceTasks(_ context.Context) ([]models.MaintenanceTask, error) {
	return []models.MaintenanceTask{
		{ID: "task-001", Title: "Bridge Deck Resurfacing", Description: "Complete resurfacing of the main deck structure with anti-slip coating application",
			Location: "Brooklyn Bridge", Priority: "critical", Status: models.TaskOverdue, ScheduledDate: at("2024-08-25"), AssignedTo: "Team Alpha",
			EstimatedCost: money("125000"), EstimatedDuration: "14 days", ResourcesRequired: []string{"Heavy Machinery", "Traffic Control", "Materials"}, LastInspection: at("2024-07-15")},
		{ID: "task-002", Title: "Signal Controller Upgrade", Description: "Replace outdated traffic signal controllers with smart adaptive systems",
			Location: "Traffic Signal Grid 12", Priority: "high", Status: models.TaskScheduled, ScheduledDate: at("2024-09-05"), AssignedTo: "Team Beta",
			EstimatedCost: money("35000"), EstimatedDuration: "5 days", ResourcesRequired: []string{"Electrical Team", "Software Installation", "Testing Equipment"}, LastInspection: at("2024-08-01")},
		{ID: "task-003", Title: "Pavement Crack Sealing", Description: "Seal longitudinal and transverse cracks to prevent water infiltration",
			Location: "Highway 95 Section A", Priority: "medium", Status: models.TaskInProgress, ScheduledDate: at("2024-09-01"), AssignedTo: "Team Gamma",
			EstimatedCost: money("85000"), EstimatedDuration: "10 days", ResourcesRequired: []string{"Crack Sealing Equipment", "Traffic Management", "Materials"}, LastInspection: at("2024-08-10")},
		{ID: "task-004", Title: "Ventilation System Maintenance", Description: "Comprehensive maintenance of tunnel ventilation fans and control systems",
			Location: "Lincoln Tunnel", Priority: "high", Status: models.TaskScheduled, ScheduledDate: at("2024-09-30"), AssignedTo: "Team Delta",
			EstimatedCost: money("200000"), EstimatedDuration: "21 days", ResourcesRequired: []string{"HVAC Specialists", "Electrical Team", "Safety Equipment"}, LastInspection: at("2024-08-05")},
		{ID: "task-005", Title: "Sign Replacement Program", Description: "Replace weathered road signs with new reflective materials",
			Location: "Queens Boulevard", Priority: "low", Status: models.TaskScheduled, ScheduledDate: at("2024-11-01"), AssignedTo: "Team Epsilon",
			EstimatedCost: money("15000"), EstimatedDuration: "3 days", ResourcesRequired: []string{"Sign Installation Team", "Materials", "Traffic Control"}, LastInspection: at("2024-08-20")},
		{ID: "task-006", Title: "Structural Inspection", Description: "Annual comprehensive structural integrity assessment",
			Location: "Pedestrian Overpass 3", Priority: "medium", Status: models.TaskScheduled, ScheduledDate: at("2024-10-15"), AssignedTo: "Team Zeta",
			EstimatedCost: money("95000"), EstimatedDuration: "7 days", ResourcesRequired: []string{"Structural Engineers", "Testing Equipment", "Documentation"}, LastInspection: at("2024-07-30")},
	}, nil
}

func (f *FixtureSource) Assets(_ context.Context) ([]models.Asset, error) {
	return []models.Asset{
		{ID: "asset-001", Name: "Brooklyn Bridge", Type: "Bridge", Location: "Brooklyn, NY", ConditionScore: 85,
			LastInspection: at("2024-08-15"), NextMaintenance: at("2024-10-01"), EstimatedCost: money("125000"), Coordinates: models.Coordinates{Lat: 40.7061, Lng: -73.9969},
			MonthlyScores: []int{88, 87, 85, 84, 85, 86, 85, 84, 83, 85}},
		{ID: "asset-002", Name: "Highway 95 Section A", Type: "Road", Location: "Interstate 95", ConditionScore: 72,
			LastInspection: at("2024-08-20"), NextMaintenance: at("2024-09-15"), EstimatedCost: money("85000"), Coordinates: models.Coordinates{Lat: 40.7589, Lng: -73.9851},
			MonthlyScores: []int{78, 76, 74, 72, 70, 68, 70, 72, 71, 72}},
		{ID: "asset-003", Name: "Traffic Signal Grid 12", Type: "Traffic Signal", Location: "Manhattan District", ConditionScore: 45,
			LastInspection: at("2024-08-25"), NextMaintenance: at("2024-09-05"), EstimatedCost: money("35000"), Coordinates: models.Coordinates{Lat: 40.7505, Lng: -73.9934},
			MonthlyScores: []int{65, 58, 52, 48, 45, 42, 40, 43, 45, 45}},
		{ID: "asset-004", Name: "Road Sign Cluster 8", Type: "Road Signs", Location: "Queens Boulevard", ConditionScore: 91,
			LastInspection: at("2024-08-18"), NextMaintenance: at("2024-11-01"), EstimatedCost: money("15000"), Coordinates: models.Coordinates{Lat: 40.7282, Lng: -73.7949},
			MonthlyScores: []int{89, 90, 91, 92, 91, 90, 91, 92, 91, 91}},
		{ID: "asset-005", Name: "Tunnel Ventilation System", Type: "Infrastructure", Location: "Lincoln Tunnel", ConditionScore: 68,
			LastInspection: at("2024-08-22"), NextMaintenance: at("2024-09-30"), EstimatedCost: money("200000"), Coordinates: models.Coordinates{Lat: 40.7614, Lng: -74.0055},
			MonthlyScores: []int{75, 73, 71, 69, 68, 66, 67, 68, 69, 68}},
		{ID: "asset-006", Name: "Pedestrian Overpass 3", Type: "Bridge", Location: "Central Park East", ConditionScore: 78,
			LastInspection: at("2024-08-12"), NextMaintenance: at("2024-10-15"), EstimatedCost: money("95000"), Coordinates: models.Coordinates{Lat: 40.7829, Lng: -73.9654}},
		{ID: "asset-007", Name: "Highway 278 Interchange", Type: "Road", Location: "Staten Island", ConditionScore: 52,
			LastInspection: at("2024-08-28"), NextMaintenance: at("2024-09-10"), EstimatedCost: money("150000"), Coordinates: models.Coordinates{Lat: 40.5795, Lng: -74.1502}},
		{ID: "asset-008", Name: "Smart Traffic Control Hub", Type: "Traffic Signal", Location: "Times Square", ConditionScore: 88,
			LastInspection: at("2024-08-30"), NextMaintenance: at("2024-12-01"), EstimatedCost: money("45000"), Coordinates: models.Coordinates{Lat: 40.7580, Lng: -73.9855}},
	}, nil
}

func (f *FixtureSource) NetworkIncidents(_ context.Context) ([]models.NetworkIncident, error) {
	return []models.NetworkIncident{
		{ID: "INC-2024-001", Type: "accident", Severity: models.SeverityCritical, Title: "Multi-Vehicle Collision", Location: "I-95 Northbound, Mile 42.3",
			ReportedBy: "Traffic Camera #247", Timestamp: at("2024-09-01T16:05:00"), Status: models.IncidentActive, AssignedTeam: "Emergency Response Unit 7",
			EstimatedResolution: "45 minutes", Priority: 1, AffectedLanes: 2, TrafficImpact: "Severe"},
		{ID: "INC-2024-002", Type: "maintenance", Severity: models.SeverityHigh, Title: "Emergency Pothole Repair", Location: "Main Street & 5th Avenue",
			ReportedBy: "Citizen Report #1247", Timestamp: at("2024-09-01T15:45:00"), Status: models.NetworkInProgress, AssignedTeam: "Maintenance Crew 3",
			EstimatedResolution: "2 hours", Priority: 2, AffectedLanes: 1, TrafficImpact: "Moderate"},
		{ID: "INC-2024-003", Type: "weather", Severity: models.SeverityMedium, Title: "Flooding Risk Assessment", Location: "Downtown District - Low Areas",
			ReportedBy: "Weather Station #12", Timestamp: at("2024-09-01T15:30:00"), Status: models.IncidentMonitoring, AssignedTeam: "Weather Response Team",
			EstimatedResolution: "1 hour", Priority: 3, AffectedLanes: 0, TrafficImpact: "Low"},
		{ID: "INC-2024-004", Type: "traffic", Severity: models.SeverityHigh, Title: "Unusual Congestion Pattern", Location: "Bridge District - All Approaches",
			ReportedBy: "AI Traffic Analysis", Timestamp: at("2024-09-01T15:15:00"), Status: models.NetworkInvestigating, AssignedTeam: "Traffic Control Center",
			EstimatedResolution: "90 minutes", Priority: 2, AffectedLanes: 4, TrafficImpact: "High"},
		{ID: "INC-2024-005", Type: "infrastructure", Severity: models.SeverityLow, Title: "Traffic Light Malfunction", Location: "Oak Street & Elm Avenue",
			ReportedBy: "Sensor Network", Timestamp: at("2024-09-01T14:50:00"), Status: models.IncidentResolved, AssignedTeam: "Signal Maintenance",
			EstimatedResolution: "Completed", Priority: 4, AffectedLanes: 0, TrafficImpact: "Minimal"},
	}, nil
}

// Alerts возвращает ленту, где время каждого оповещения задано смещением от текущего момента
func (f *FixtureSource) Alerts(_ context.Context) ([]models.Alert, error) {
	now := f.clock()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	return []models.Alert{
		{ID: "ALT-001", Severity: models.SeverityCritical, Type: "accident", Title: "Multi-Vehicle Accident", Location: "I-95 Northbound, Mile 42",
			Timestamp: ago(5 * time.Minute), Status: models.IncidentActive, AssignedTo: "Unit-7",
			Description: "Three-car collision blocking two lanes. Emergency services en route.", EstimatedClearTime: "45 min"},
		{ID: "ALT-002", Severity: models.SeverityHigh, Type: "construction", Title: "Emergency Road Repair", Location: "Main St & 5th Ave",
			Timestamp: ago(15 * time.Minute), Status: models.NetworkInProgress, AssignedTo: "Crew-3",
			Description: "Water main break causing road surface damage. Lane closure required.", EstimatedClearTime: "2 hours"},
		{ID: "ALT-003", Severity: models.SeverityMedium, Type: "weather", Title: "Heavy Rain Advisory", Location: "Downtown District",
			Timestamp: ago(30 * time.Minute), Status: models.IncidentMonitoring, AssignedTo: "Weather-Team",
			Description: "Reduced visibility and potential flooding in low-lying areas.", EstimatedClearTime: "1 hour"},
		{ID: "ALT-004", Severity: models.SeverityLow, Type: "maintenance", Title: "Scheduled Sensor Maintenance", Location: "Highway 101, Sensor Grid 7",
			Timestamp: ago(time.Hour), Status: models.NetworkScheduled, AssignedTo: "Tech-2",
			Description: "Routine calibration of traffic monitoring sensors.", EstimatedClearTime: "30 min"},
		{ID: "ALT-005", Severity: models.SeverityHigh, Type: "traffic", Title: "Severe Congestion", Location: "Bridge District",
			Timestamp: ago(10 * time.Minute), Status: models.IncidentActive, AssignedTo: "Traffic-Control",
			Description: "Unusual traffic buildup causing 20+ minute delays.", EstimatedClearTime: "1.5 hours"},
	}, nil
}

func (f *FixtureSource) Hotspots(_ context.Context) ([]models.Hotspot, error) {
	return []models.Hotspot{
		{ID: "1", Location: "Highway 101 & Interstate 95 Junction", Severity: models.SeverityCritical, CongestionLevel: 89, AvgDelay: 12.5, AvgSpeed: 18, Volume: "5,240 veh/hr"},
		{ID: "2", Location: "Main Street Bridge", Severity: models.SeverityHigh, CongestionLevel: 76, AvgDelay: 8.2, AvgSpeed: 25, Volume: "3,890 veh/hr"},
		{ID: "3", Location: "Broadway & Oak Street", Severity: models.SeverityHigh, CongestionLevel: 71, AvgDelay: 6.8, AvgSpeed: 28, Volume: "2,650 veh/hr"},
		{ID: "4", Location: "Route 66 Tunnel", Severity: models.SeverityMedium, CongestionLevel: 58, AvgDelay: 4.5, AvgSpeed: 35, Volume: "4,120 veh/hr"},
		{ID: "5", Location: "Industrial District Access", Severity: models.SeverityMedium, CongestionLevel: 52, AvgDelay: 3.8, AvgSpeed: 38, Volume: "1,980 veh/hr"},
	}, nil
}

func (f *FixtureSource) BudgetLines(_ context.Context) ([]models.BudgetLine, error) {
	return []models.BudgetLine{
		{Month: "Jan", Budgeted: money("500000"), Actual: money("485000")},
		{Month: "Feb", Budgeted: money("520000"), Actual: money("510000")},
		{Month: "Mar", Budgeted: money("480000"), Actual: money("495000")},
		{Month: "Apr", Budgeted: money("550000"), Actual: money("535000")},
		{Month: "May", Budgeted: money("600000"), Actual: money("580000")},
		{Month: "Jun", Budgeted: money("580000"), Actual: money("595000")},
	}, nil
}

func (f *FixtureSource) KPIs(_ context.Context) ([]models.KPI, error) {
	return []models.KPI{
		{ID: "network-health", Title: "Network Health Score", Value: "94.2", Unit: "%", Status: "excellent", Trend: "up", TrendValue: "+2.1%",
			Icon: "Activity", Description: "Overall network performance and reliability"},
		{ID: "active-incidents", Title: "Active Incidents", Value: "12", Unit: "", Status: "warning", Trend: "up", TrendValue: "+3",
			Icon: "AlertTriangle", Description: "Currently reported traffic incidents"},
		{ID: "avg-response-time", Title: "Average Response Time", Value: "4.2", Unit: "min", Status: "good", Trend: "down", TrendValue: "-0.8min",
			Icon: "Clock", Description: "Mean emergency response time"},
		{ID: "traffic-flow", Title: "Traffic Flow Index", Value: "87.5", Unit: "%", Status: "good", Trend: "up", TrendValue: "+1.3%",
			Icon: "BarChart3", Description: "Current traffic flow efficiency"},
		{ID: "road-surface", Title: "Road Surface Conditions", Value: "91.8", Unit: "%", Status: "excellent", Trend: "stable", TrendValue: "0%",
			Icon: "Road", Description: "Overall road infrastructure quality"},
		{ID: "weather-impact", Title: "Weather Impact Rating", Value: "2.1", Unit: "/10", Status: "good", Trend: "down", TrendValue: "-0.5",
			Icon: "Cloud", Description: "Current weather impact on traffic"},
	}, nil
}

// Messages возвращает стартовую ленту центра связи, время задано смещением от текущего момента
func (f *FixtureSource) Messages(_ context.Context) ([]models.Message, error) {
	now := f.clock()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	return []models.Message{
		{ID: "MSG-001", Channel: models.ChannelDispatch, Sender: "DISPATCH-01", Timestamp: ago(5 * time.Minute), Priority: models.MessagePriorityHigh, Type: models.MessageBroadcast,
			Content: "All units, we have a multi-vehicle accident at Times Square. Police and Fire units respond."},
		{ID: "MSG-002", Channel: models.ChannelPolice, Sender: "POLICE-01", Timestamp: ago(4 * time.Minute), Priority: models.MessagePriorityNormal, Type: models.MessageResponse,
			Content: "Unit POLICE-01 responding to Times Square incident, ETA 3 minutes."},
		{ID: "MSG-003", Channel: models.ChannelFire, Sender: "FIRE-03", Timestamp: ago(3 * time.Minute), Priority: models.MessagePriorityNormal, Type: models.MessageRequest,
			Content: "Engine 03 en route to Times Square, requesting traffic control for approach."},
		{ID: "MSG-004", Channel: models.ChannelDispatch, Sender: "DISPATCH-01", Timestamp: ago(2 * time.Minute), Priority: models.MessagePriorityNormal, Type: models.MessageUpdate,
			Content: "Traffic control activated for Times Square area. Diverting traffic via alternate routes."},
		{ID: "MSG-005", Channel: models.ChannelPolice, Sender: "POLICE-01", Timestamp: ago(time.Minute), Priority: models.MessagePriorityHigh, Type: models.MessageReport,
			Content: "On scene at Times Square. Two vehicles involved, requesting tow trucks and medical assistance."},
	}, nil
}

func (f *FixtureSource) MaintenanceProjects(_ context.Context) ([]models.MaintenanceProject, error) {
	return []models.MaintenanceProject{
		{ID: "project-001", Name: "Bridge Maintenance Program", Location: "Brooklyn Bridge", Status: models.TaskInProgress,
			StartDate: at("2024-09-01"), EndDate: at("2024-10-15"), Progress: 35, Budget: money("125000"), TeamLead: "John Smith"},
		{ID: "project-002", Name: "Highway Resurfacing", Location: "Highway 95", Status: models.TaskScheduled,
			StartDate: at("2024-09-15"), EndDate: at("2024-11-30"), Budget: money("85000"), TeamLead: "Sarah Johnson", HasResourceConflict: true},
		{ID: "project-003", Name: "Signal System Upgrade", Location: "Manhattan District", Status: models.TaskScheduled,
			StartDate: at("2024-10-01"), EndDate: at("2024-11-15"), Budget: money("35000"), TeamLead: "Mike Davis"},
		{ID: "project-004", Name: "Tunnel Ventilation Overhaul", Location: "Lincoln Tunnel", Status: models.TaskScheduled,
			StartDate: at("2024-11-01"), EndDate: at("2024-12-31"), Budget: money("200000"), TeamLead: "Lisa Chen", HasResourceConflict: true},
	}, nil
}

func (f *FixtureSource) ProjectROI(_ context.Context) ([]models.ProjectROI, error) {
	return []models.ProjectROI{
		{Project: "Bridge Maintenance", ROI: 15.2},
		{Project: "Highway Resurfacing", ROI: 22.8},
		{Project: "Signal Upgrade", ROI: 18.5},
		{Project: "Tunnel Overhaul", ROI: 12.3},
		{Project: "Sign Replacement", ROI: 25.1},
	}, nil
}

func (f *FixtureSource) CostCategories(_ context.Context) ([]models.CostCategory, error) {
	return []models.CostCategory{
		{Name: "Materials", Value: money("1200000")},
		{Name: "Labor", Value: money("800000")},
		{Name: "Equipment", Value: money("600000")},
		{Name: "Permits", Value: money("200000")},
		{Name: "Other", Value: money("150000")},
	}, nil
}

func (f *FixtureSource) TrafficMetrics(_ context.Context) ([]models.TrafficMetric, error) {
	return []models.TrafficMetric{
		{ID: "daily-volume", Title: "Average Daily Traffic Volume", Value: "47,832", Unit: "vehicles", Change: "+12.5%", ChangeType: "positive",
			Icon: "BarChart3", Description: "24-hour average across all monitored segments"},
		{ID: "peak-congestion", Title: "Peak Congestion Duration", Value: "2.4", Unit: "hours", Change: "-8.2%", ChangeType: "positive",
			Icon: "Clock", Description: "Daily average of high-congestion periods"},
		{ID: "network-efficiency", Title: "Network Efficiency Score", Value: "78.5", Unit: "%", Change: "+5.1%", ChangeType: "positive",
			Icon: "Gauge", Description: "Overall road network performance rating"},
		{ID: "incident-rate", Title: "Safety Incident Rate", Value: "0.23", Unit: "per 1K vehicles", Change: "-15.3%", ChangeType: "positive",
			Icon: "Shield", Description: "Incidents per thousand vehicles processed"},
	}, nil
}

func (f *FixtureSource) VolumeSeries(_ context.Context) ([]models.VolumePoint, error) {
	return []models.VolumePoint{
		{Time: "00:00", Volume: 1200, Congestion: 15},
		{Time: "02:00", Volume: 800, Congestion: 8},
		{Time: "04:00", Volume: 600, Congestion: 5},
		{Time: "06:00", Volume: 3200, Congestion: 45},
		{Time: "08:00", Volume: 5800, Congestion: 78},
		{Time: "10:00", Volume: 4200, Congestion: 52},
		{Time: "12:00", Volume: 4800, Congestion: 58},
		{Time: "14:00", Volume: 4600, Congestion: 55},
		{Time: "16:00", Volume: 5200, Congestion: 68},
		{Time: "18:00", Volume: 6100, Congestion: 82},
		{Time: "20:00", Volume: 3800, Congestion: 38},
		{Time: "22:00", Volume: 2400, Congestion: 25},
	}, nil
}

func (f *FixtureSource) SegmentComparisons(_ context.Context) ([]models.SegmentComparison, error) {
	return []models.SegmentComparison{
		{Segment: "Highway 101", CurrentVolume: 48500, PreviousVolume: 43200, CurrentEfficiency: 72, PreviousEfficiency: 68, AvgSpeed: 52},
		{Segment: "Interstate 95", CurrentVolume: 52100, PreviousVolume: 49800, CurrentEfficiency: 78, PreviousEfficiency: 75, AvgSpeed: 58},
		{Segment: "Route 66", CurrentVolume: 38900, PreviousVolume: 41200, CurrentEfficiency: 81, PreviousEfficiency: 79, AvgSpeed: 45},
		{Segment: "Main Street", CurrentVolume: 28400, PreviousVolume: 26800, CurrentEfficiency: 65, PreviousEfficiency: 62, AvgSpeed: 32},
		{Segment: "Broadway", CurrentVolume: 22100, PreviousVolume: 24500, CurrentEfficiency: 69, PreviousEfficiency: 71, AvgSpeed: 35},
	}, nil
}

func (f *FixtureSource) TrendHistory(_ context.Context) ([]models.TrendPoint, error) {
	return []models.TrendPoint{
		{Period: "Jan 2024", Volume: 42000, Speed: 48, Incidents: 23, Efficiency: 72, VolumeForecast: 44000, SpeedForecast: 50, IncidentsForecast: 20, EfficiencyForecast: 75},
		{Period: "Feb 2024", Volume: 45000, Speed: 46, Incidents: 28, Efficiency: 70, VolumeForecast: 46000, SpeedForecast: 48, IncidentsForecast: 25, EfficiencyForecast: 73},
		{Period: "Mar 2024", Volume: 48000, Speed: 44, Incidents: 31, Efficiency: 68, VolumeForecast: 49000, SpeedForecast: 46, IncidentsForecast: 28, EfficiencyForecast: 71},
		{Period: "Apr 2024", Volume: 46000, Speed: 47, Incidents: 25, Efficiency: 74, VolumeForecast: 47000, SpeedForecast: 49, IncidentsForecast: 22, EfficiencyForecast: 76},
		{Period: "May 2024", Volume: 49000, Speed: 45, Incidents: 29, Efficiency: 71, VolumeForecast: 50000, SpeedForecast: 47, IncidentsForecast: 26, EfficiencyForecast: 74},
		{Period: "Jun 2024", Volume: 51000, Speed: 43, Incidents: 33, Efficiency: 69, VolumeForecast: 52000, SpeedForecast: 45, IncidentsForecast: 30, EfficiencyForecast: 72},
		{Period: "Jul 2024", Volume: 53000, Speed: 42, Incidents: 35, Efficiency: 67, VolumeForecast: 54000, SpeedForecast: 44, IncidentsForecast: 32, EfficiencyForecast: 70},
		{Period: "Aug 2024", Volume: 50000, Speed: 44, Incidents: 30, Efficiency: 73, VolumeForecast: 51000, SpeedForecast: 46, IncidentsForecast: 27, EfficiencyForecast: 75},
		{Period: "Sep 2024", Volume: 47832, Speed: 46, Incidents: 26, Efficiency: 78, VolumeForecast: 48500, SpeedForecast: 48, IncidentsForecast: 23, EfficiencyForecast: 80},
	}, nil
}
