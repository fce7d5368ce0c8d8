package domain

import "time"

type ReportMode string

const (
	ReportModeMonthly ReportMode = "monthly"
	ReportModeYearly  ReportMode = "yearly"
)

// SalesReport é a resposta das duas visões do relatório de vendas.
// Apenas um de Products ou Months é preenchido, conforme o modo.
type SalesReport struct {
	Mode          ReportMode         `json:"mode"`
	SelectedMonth string             `json:"selected_month,omitempty"`
	Products      []ProductAggregate `json:"products,omitempty"`
	Months        []MonthAggregate   `json:"months,omitempty"`
	RefreshedAt   time.Time          `json:"refreshed_at"`
}

// RefreshResult resume uma atualização completa do corpus
type RefreshResult struct {
	RefreshID   string    `json:"refresh_id"`
	Orders      int       `json:"orders"`
	Products    int       `json:"products"`
	LineItems   int       `json:"line_items"`
	FailedLines int       `json:"failed_line_fetches"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// ExportFile é um arquivo gerado para download
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
