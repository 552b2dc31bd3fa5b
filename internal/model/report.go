package model

// MonthlyReport 月度报表聚合（只读派生，不落库）
// 统计范围：一位厨师 + 一个自然月；无匹配数据时各项归零
type MonthlyReport struct {
	TotalCourses     int     `json:"total_courses"`      // 窗口内涉及的课程数（去重）
	OnlineSessions   int     `json:"online_sessions"`    // 线上会话数
	InPersonSessions int     `json:"in_person_sessions"` // 线下会话数
	MinRecipes       int     `json:"min_recipes"`        // 线下会话菜谱数最小值
	AvgRecipes       float64 `json:"avg_recipes"`        // 线下会话菜谱数均值（无关联按 0 计）
	MaxRecipes       int     `json:"max_recipes"`        // 线下会话菜谱数最大值
}
