package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/render"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// decodeBody reads a JSON request body into v. It writes the error response
// itself and returns false when the body is unusable.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := render.DecodeJSON(r.Body, v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeErrorBody(w, r, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
		return false
	}
	requestError(w, r, "malformed request body")
	return false
}

// optionalInt binds an integer query parameter. A missing or malformed value
// yields nil so callers fall back to their default.
func optionalInt(q url.Values, name string) *int {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
		return nil
	}
	return v
}

// optionalDate binds a YYYY-MM-DD query parameter. A missing or empty value
// yields nil.
func optionalDate(q url.Values, name string) (*openapi_types.Date, error) {
	if strings.TrimSpace(q.Get(name)) == "" {
		return nil, nil
	}
	var v *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// multiValue collects a list parameter given as repeated keys, as a
// comma-separated value, or both: ?s=a&s=b,c yields [a b c].
func multiValue(q url.Values, name string) []string {
	var raw []string
	if err := runtime.BindQueryParameter("form", true, false, name, q, &raw); err != nil {
		raw = q[name]
	}
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}
