package model

// MaxProgressScore 进度分数上限
const MaxProgressScore = 100

// ProgressPoint 进度图表中的单个数据点
// swagger:model ProgressPoint
type ProgressPoint struct {
	Month string `json:"month"`
	Score int    `json:"score"` // 0-100
}

// DefaultProgressSeries 返回固定的 8 个月种子序列。
// 图表数据属于会话状态：每次启动重新播种，不参与持久化。
func DefaultProgressSeries() []ProgressPoint {
	return []ProgressPoint{
		{Month: "Jan", Score: 32},
		{Month: "Feb", Score: 41},
		{Month: "Mar", Score: 45},
		{Month: "Apr", Score: 53},
		{Month: "May", Score: 58},
		{Month: "Jun", Score: 64},
		{Month: "Jul", Score: 71},
		{Month: "Aug", Score: 76},
	}
}
