package models

// DailyRevenue is one point of the dashboard revenue chart. Days with no
// confirmed revenue are absent from the series rather than zero-filled.
type DailyRevenue struct {
	Date    string  `bson:"_id" json:"date"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// DashboardStats is the payload of the analytics endpoint.
type DashboardStats struct {
	TotalRevenue   float64        `json:"totalRevenue"`
	WeeklyBookings int64          `json:"weeklyBookings"`
	CancelledCount int64          `json:"cancelledCount"`
	ChartData      []DailyRevenue `json:"chartData"`
}
