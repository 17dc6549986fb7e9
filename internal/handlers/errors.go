package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

var businessMessages = map[string]string{
	"invalid_date":             "Data inválida. Use o formato AAAA-MM-DD.",
	"invalid_time_of_day":      "Horário inválido. Use o formato HH:MM.",
	"enterprise_not_found":     "Empresa não encontrada.",
	"barber_not_found":         "Barbeiro não encontrado.",
	"service_not_found":        "Serviço não encontrado.",
	"invalid_available_hours":  "Horários de atendimento cadastrados são inválidos.",
	"invalid_weekday":          "Dia da semana inválido.",
	"invalid_window":           "O início deve ser antes do fim.",
	"overlapping_windows":      "Há horários sobrepostos no mesmo dia.",
	"invalid_service_duration": "Duração do serviço inválida.",
	"invalid_granularity":      "Intervalo entre horários inválido.",
	"invalid_buffer":           "Intervalo de preparo inválido.",
	"invalid_min_advance":      "Antecedência mínima deve ser zero ou positiva (em minutos).",
	"invalid_timezone":         "Fuso horário inválido.",
	"invalid_booking_status":   "Status de agendamento inválido.",
}

// writeError maps use-case errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		msg := businessMessages[code]
		if msg == "" {
			msg = code
		}

		switch {
		case strings.HasSuffix(code, "_not_found"):
			httperr.NotFound(c, code, msg)
		case code == "invalid_available_hours" ||
			code == "invalid_service_duration" ||
			code == "invalid_granularity":
			httperr.Unprocessable(c, code, msg)
		default:
			httperr.BadRequest(c, code, msg)
		}
		return
	}

	switch {
	case httperr.IsUniqueViolation(err):
		httperr.Conflict(c, "already_exists", "Registro já existe.")
	case httperr.IsExclusionConflict(err):
		httperr.Conflict(c, "booking_overlap", "Já existe um agendamento neste horário.")
	case httperr.IsUpstream(err):
		_ = c.Error(err)
		httperr.Unavailable(c, "upstream_unavailable", "Serviço temporariamente indisponível.")
	default:
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
