package dto

type EvaluatePasswordRequest struct {
	Password  string `json:"password" binding:"max=4096"`
	FirstName string `json:"first_name" binding:"max=128"`
	LastName  string `json:"last_name" binding:"max=128"`
}

type EvaluatePasswordResponse struct {
	EvaluationID string  `json:"evaluation_id"`
	Score        int     `json:"score"`
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	BarWidth     float64 `json:"bar_width"`
	ShowTips     bool    `json:"show_tips"`
}

type StatsResponse struct {
	Total   int            `json:"total"`
	ByLabel map[string]int `json:"by_label"`
}
