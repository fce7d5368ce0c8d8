package apotekclient

import (
	"context"
	stdjson "encoding/json"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/apotek-report-api/pkg/log"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// unwrapEnvelope aceita tanto um array puro quanto { "data": [...] }.
// Qualquer outro formato vira lista vazia.
func unwrapEnvelope(body any) []any {
	switch v := body.(type) {
	case []any:
		return v
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			return data
		}
	}
	return []any{}
}

// decodeRows converte cada linha de forma tolerante a números como texto e vice-versa.
// Linhas que não são objetos ou que falham na conversão são descartadas.
func decodeRows[T any](ctx context.Context, rows []any) []T {
	out := make([]T, 0, len(rows))

	for i, row := range rows {
		if _, ok := row.(map[string]any); !ok {
			log.ForContext(ctx).WithField("index", i).Warn("Linha ignorada: não é um objeto")
			continue
		}

		var item T
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(decimalHook, intHook(ctx)),
			Result:           &item,
		})
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao criar decodificador")
			continue
		}

		if err := decoder.Decode(row); err != nil {
			log.ForContext(ctx).WithError(err).WithField("index", i).Warn("Linha ignorada: erro ao converter campos")
			continue
		}

		out = append(out, item)
	}

	return out
}

// decimalHook converte texto ou número em decimal. Valores não numéricos viram zero.
func decimalHook(_ reflect.Type, t reflect.Type, data any) (any, error) {
	if t != decimalType {
		return data, nil
	}

	switch v := data.(type) {
	case decimal.Decimal:
		return v, nil
	case stdjson.Number:
		return parseDecimal(v.String()), nil
	case string:
		return parseDecimal(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case bool:
		if v {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Zero, nil
	}

	return decimal.Zero, nil
}

// intHook aceita quantidades inteiras escritas como "2.00" ou 2.0.
// Frações e textos não numéricos viram zero só no campo, sem descartar a linha.
func intHook(ctx context.Context) mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Int64 && t.Kind() != reflect.Int {
			return data, nil
		}

		var raw string
		switch v := data.(type) {
		case stdjson.Number:
			raw = v.String()
		case string:
			raw = strings.TrimSpace(v)
		case float64:
			raw = decimal.NewFromFloat(v).String()
		default:
			return data, nil
		}

		if raw == "" {
			return int64(0), nil
		}

		d, err := decimal.NewFromString(raw)
		if err != nil || !d.Equal(d.Truncate(0)) {
			log.ForContext(ctx).WithField("value", raw).Warn("Quantidade não inteira, considerando zero")
			return int64(0), nil
		}

		return d.IntPart(), nil
	}
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
