package domain

import "time"

type InsightQuestion struct {
	Question string `json:"question"`
}

type InsightAnswer struct {
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	AnsweredAt time.Time `json:"answered_at"`
}
