package domain

// AvailableMonths representa as opções do seletor de mês do relatório
type AvailableMonths struct {
	Months []string `json:"months"` // "semua" seguido dos meses YYYY-MM, do mais recente ao mais antigo
}
