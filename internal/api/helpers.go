package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr != nil {
		if code >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "status", code)
		} else {
			slog.WarnContext(ctx, "api error", "error", originErr.Error(), "status", code)
		}
	}

	sendJSON(ctx, w, code, ErrorResponse{Message: msgToSend})
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
