package utils

import (
	"strings"
	"time"
)

const MonthLayout = "2006-01"

// layouts aceitos para tanggal_pesan, do mais específico ao mais simples
var orderDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// ParseDate converte a data de um pedido. Datas com fuso são normalizadas para UTC.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	var err error
	for _, layout := range orderDateLayouts {
		var date time.Time
		date, err = time.Parse(layout, dateStr)
		if err == nil {
			date = date.UTC()
			return &date, nil
		}
	}

	return nil, err
}

// MonthLabel extrai YYYY-MM de uma data de pedido; false quando a data não é válida
func MonthLabel(dateStr string) (string, bool) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return "", false
	}

	return date.Format(MonthLayout), true
}

// IsMonthLabel verifica se o valor está no formato YYYY-MM
func IsMonthLabel(value string) bool {
	if len(value) != len(MonthLayout) {
		return false
	}
	_, err := time.Parse(MonthLayout, value)
	return err == nil
}
