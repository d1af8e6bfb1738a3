// internal/app/system/respond/respond.go

// Package respond centralizes the JSON response and error conventions
// of the API: one place maps state-layer errors onto status codes so
// handlers never hand-pick them.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies. Console payloads are tiny;
// anything larger is abuse.
const maxBodyBytes = 1 << 20

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Err maps an error from the state layer to an HTTP response.
//
//	ErrNotFound      -> 404
//	ValidationError  -> 400 (with the offending field)
//	TransitionError  -> 409
//	ErrStaleWrite    -> 409
//	anything else    -> 500 (logged; detail withheld from the client)
func Err(w http.ResponseWriter, log *zap.Logger, err error) {
	var verr *adminstate.ValidationError
	var terr *adminstate.TransitionError

	switch {
	case errors.Is(err, adminstate.ErrNotFound):
		JSON(w, http.StatusNotFound, errBody{Error: "not found"})
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, errBody{Error: verr.Msg, Field: verr.Field})
	case errors.As(err, &terr):
		JSON(w, http.StatusConflict, errBody{Error: terr.Error()})
	case errors.Is(err, adminstate.ErrStaleWrite):
		JSON(w, http.StatusConflict, errBody{Error: "document changed; reload and retry"})
	default:
		log.Error("request failed", zap.Error(err))
		JSON(w, http.StatusInternalServerError, errBody{Error: "internal error"})
	}
}

// Decode reads a size-limited JSON body into v. Unknown fields are
// rejected so typos in mutation payloads fail loudly.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// BaseVersion extracts the optimistic-concurrency base from the
// If-Match header. Absent or malformed headers return zero, which the
// store treats as last-writer-wins.
func BaseVersion(r *http.Request) uint64 {
	v := r.Header.Get("If-Match")
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SetVersion advertises the committed document version so clients can
// chain If-Match requests.
func SetVersion(w http.ResponseWriter, version uint64) {
	w.Header().Set("ETag", strconv.FormatUint(version, 10))
}
