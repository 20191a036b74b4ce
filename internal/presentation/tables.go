package presentation

// table - единая таблица перечисление -> отображение для всех панелей
var table = map[Kind]map[string]Presentation{
	IncidentStatus: {
		"active":     {"error", "AlertCircle", "Active"},
		"responding": {"warning", "Siren", "Responding"},
		"en-route":   {"primary", "Navigation", "En Route"},
		"monitoring": {"secondary", "Eye", "Monitoring"},
		"resolved":   {"success", "CheckCircle", "Resolved"},
	},
	NetworkStatus: {
		"active":        {"error", "AlertCircle", "Active"},
		"in-progress":   {"warning", "Clock", "In Progress"},
		"monitoring":    {"primary", "Eye", "Monitoring"},
		"investigating": {"primary", "Search", "Investigating"},
		"scheduled":     {"secondary", "Calendar", "Scheduled"},
		"resolved":      {"success", "CheckCircle", "Resolved"},
	},
	Severity: {
		"critical": {"error", "AlertTriangle", "Critical"},
		"high":     {"warning", "AlertCircle", "High"},
		"medium":   {"primary", "Clock", "Medium"},
		"low":      {"success", "CheckCircle", "Low"},
	},
	TaskPriority: {
		"critical": {"error", "AlertTriangle", "Critical"},
		"high":     {"warning", "AlertCircle", "High"},
		"medium":   {"primary", "Clock", "Medium"},
		"low":      {"success", "CheckCircle", "Low"},
	},
	TaskStatus: {
		"overdue":     {"error", "AlertTriangle", "Overdue"},
		"scheduled":   {"primary", "Calendar", "Scheduled"},
		"in-progress": {"warning", "Clock", "In Progress"},
		"completed":   {"success", "CheckCircle", "Completed"},
	},
	ResourceStatus: {
		"available":  {"success", "CheckCircle", "AVAILABLE"},
		"dispatched": {"warning", "Send", "DISPATCHED"},
		"en-route":   {"primary", "Navigation", "EN ROUTE"},
		"on-scene":   {"error", "MapPin", "ON SCENE"},
	},
	ResourceType: {
		"police":      {"blue-400", "Shield", "Police"},
		"fire":        {"red-400", "Flame", "Fire"},
		"medical":     {"green-400", "Heart", "Medical"},
		"maintenance": {"yellow-400", "Wrench", "Maintenance"},
	},
	IncidentType: {
		"accident":       {"error", "Car", "Accident"},
		"construction":   {"warning", "Construction", "Construction"},
		"maintenance":    {"warning", "Settings", "Maintenance"},
		"weather":        {"primary", "Cloud", "Weather"},
		"traffic":        {"warning", "Traffic", "Traffic"},
		"infrastructure": {"secondary", "Settings", "Infrastructure"},
	},
	TrafficImpact: {
		"Severe":   {"error", "TrendingUp", "Severe"},
		"High":     {"warning", "TrendingUp", "High"},
		"Moderate": {"primary", "Minus", "Moderate"},
		"Low":      {"success", "TrendingDown", "Low"},
		"Minimal":  {"muted", "TrendingDown", "Minimal"},
	},
	AlertLevel: {
		"low":      {"success", "CheckCircle", "Low"},
		"moderate": {"warning", "AlertTriangle", "Moderate"},
		"high":     {"error", "AlertCircle", "High"},
	},
	Connection: {
		"connected":    {"success", "Wifi", "Connected"},
		"connecting":   {"warning", "Loader", "Connecting"},
		"disconnected": {"error", "WifiOff", "Disconnected"},
	},
	KPIStatus: {
		"excellent": {"success", "TrendingUp", "Excellent"},
		"good":      {"primary", "ThumbsUp", "Good"},
		"warning":   {"warning", "AlertTriangle", "Warning"},
		"critical":  {"error", "AlertCircle", "Critical"},
	},
	PriorityBand: {
		"urgent":   {"error", "AlertTriangle", "Urgent"},
		"elevated": {"warning", "AlertCircle", "Elevated"},
		"routine":  {"primary", "Info", "Routine"},
	},
	ConditionBand: {
		"good":     {"success", "CheckCircle", "Good"},
		"fair":     {"warning", "Activity", "Fair"},
		"poor":     {"error", "AlertCircle", "Poor"},
		"critical": {"error", "AlertTriangle", "Critical"},
	},
	CongestionBand: {
		"severe":   {"error", "AlertTriangle", "Severe"},
		"heavy":    {"warning", "AlertCircle", "Heavy"},
		"moderate": {"accent", "Clock", "Moderate"},
		"light":    {"success", "CheckCircle", "Light"},
	},
}
