package domain

import "time"

// Insight é o resumo estratégico gerado externamente para um cliente
type Insight struct {
	ClientID    string    `json:"clientId"`
	Text        string    `json:"text"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// InsightRefresh resume uma regeneração completa do cache de insights
type InsightRefresh struct {
	Clients   int `json:"clients"`
	Generated int `json:"generated"`
	Fallbacks int `json:"fallbacks"`
}
