// file: internals/features/dashboard/dto/dashboard_dto.go
package dto

import "strings"

type DashboardStatsResponse struct {
	TodayVisitors int64 `json:"today_visitors"`
	CurrentlyIn   int64 `json:"currently_in"`
	WeekVisitors  int64 `json:"week_visitors"`
	ActiveHosts   int64 `json:"active_hosts"`
}

type CategoryStat struct {
	Name  string `json:"name"` // label kapital, mis. "Guest"
	Value int64  `json:"value"`
}

type TrendPoint struct {
	Name     string `json:"name"` // nama hari, mis. "Mon"
	Visitors int64  `json:"visitors"`
}

// CapitalizeCategory: "guest" → "Guest" (label chart)
func CapitalizeCategory(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
