package dto

// ── 报表模块 DTO ──

// MonthlyReportResponse 月度报表响应
// 聚合为空时各项为零值（不为 null）
type MonthlyReportResponse struct {
	Month            string  `json:"month"` // "2026-03"
	TotalCourses     int     `json:"total_courses"`
	OnlineSessions   int     `json:"online_sessions"`
	InPersonSessions int     `json:"in_person_sessions"`
	MinRecipes       int     `json:"min_recipes"`
	AvgRecipes       float64 `json:"avg_recipes"`
	MaxRecipes       int     `json:"max_recipes"`
}
