package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/apotek-report-api/internal/domain"
	"github.com/vfg2006/apotek-report-api/pkg/apiErrors"
	"github.com/vfg2006/apotek-report-api/pkg/log"
	"github.com/vfg2006/apotek-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// month_label aceita "semua" ou YYYY-MM
	_ = v.RegisterValidation("month_label", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == domain.AllMonths || utils.IsMonthLabel(value)
	})

	// period aceita apenas YYYY-MM
	_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		return utils.IsMonthLabel(fl.Field().String())
	})

	return v
}

// writeJSON responde com status e corpo JSON
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeValidationError traduz erros do validator em VAL_001 com os campos rejeitados
func writeValidationError(w http.ResponseWriter, err error) {
	details := map[string]any{}

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros inválidos", details)
}
