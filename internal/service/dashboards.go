package service

// Dashboard - элемент навигации между панелями
type Dashboard struct {
	Slug  string
	Title string
	Icon  string
	// APIPath - префикс маршрутов панели внутри /api/v1
	APIPath string
}

// Слаги панелей совпадают с путями веб-интерфейса
const (
	DashboardEmergency = "emergency-response-coordination-dashboard"
	DashboardTraffic   = "traffic-analytics-and-performance-dashboard"
	DashboardNetwork   = "real-time-network-operations-dashboard"
	DashboardAssets    = "infrastructure-asset-management-dashboard"
)

// DefaultDashboard открывается по корневому пути
const DefaultDashboard = DashboardEmergency

var dashboards = []Dashboard{
	{Slug: DashboardNetwork, Title: "Network Operations", Icon: "Activity", APIPath: "/network"},
	{Slug: DashboardTraffic, Title: "Traffic Analytics", Icon: "BarChart3", APIPath: "/traffic"},
	{Slug: DashboardAssets, Title: "Asset Management", Icon: "Settings", APIPath: "/assets"},
	{Slug: DashboardEmergency, Title: "Emergency Response", Icon: "AlertTriangle", APIPath: "/emergency"},
}

// Dashboards возвращает панели в порядке навигации
func Dashboards() []Dashboard {
	out := make([]Dashboard, len(dashboards))
	copy(out, dashboards)
	return out
}

// DashboardBySlug ищет панель. Пустой слаг означает панель по умолчанию.
func DashboardBySlug(slug string) (Dashboard, bool) {
	if slug == "" {
		slug = DefaultDashboard
	}
	for _, d := range dashboards {
		if d.Slug == slug {
			return d, true
		}
	}
	return Dashboard{}, false
}
