package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse Пишет JSON ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Тело ошибки API: title/status/detail
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// WriteProblem Пишет ошибку API с человекочитаемым detail
func WriteProblem(w http.ResponseWriter, status int, detail string) {
	WriteJSONResponse(w, status, problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
