package render

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode response failed", zap.Error(err))
	}
}

// Error writes {"message": message}.
func Error(w http.ResponseWriter, message string, statusCode int) {
	JSON(w, statusCode, map[string]string{"message": message})
}
