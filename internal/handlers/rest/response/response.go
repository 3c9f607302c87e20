package response

import (
	"encoding/json"
	"net/http"

	"storefront/internal/generated/dto"
)

// WriteJSON статус и тело одним вызовом, ошибка кодирования возвращается для лога.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, dto.ErrorResponse{Error: message})
}
