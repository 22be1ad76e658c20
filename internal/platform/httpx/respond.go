package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializa v como respuesta JSON con el status indicado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Message string `json:"message"`
}

// WriteError responde el error con el body estándar {"message": ...}.
// Nunca se expone texto de errores internos al cliente.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Message: msg})
}
