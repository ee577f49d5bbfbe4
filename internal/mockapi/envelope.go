package mockapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// envelope is the API response wrapper. Business failures are reported as
// HTTP 200 with Error set; only authentication failures use 401.
type envelope struct {
	Error    bool   `json:"error"`
	Message  string `json:"message,omitempty"`
	Data     any    `json:"data,omitempty"`
	Total    *int   `json:"total,omitempty"`
	AdSpaces any    `json:"ad_spaces,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Message: message, Data: data})
}

func okList(w http.ResponseWriter, data any, total int) {
	writeJSON(w, http.StatusOK, envelope{Data: data, Total: &total})
}

func fail(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Error: true, Message: message})
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, envelope{Error: true, Message: "Unauthenticated."})
}

// decodeJSON reads a JSON body; an empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
