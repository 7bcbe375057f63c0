package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/artcontest/pkg/api"
	"github.com/heartmarshall/artcontest/pkg/ctxutil"
)

// writeError writes the API error body. The request id is included so a
// rejected console action can be matched with the server log.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:     msg,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}
