package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/bnema/zoo-api/internal/domain"
)

var errTrailingData = errors.New("decode json body: unexpected data after object")

// decodeCandidate reads a create body. JSON objects are decoded as-is; form
// bodies follow the extended urlencoded convention where a repeated key or a
// key ending in "[]" becomes a sequence and a single key stays a string. A
// JSON body must hold exactly one value.
func decodeCandidate(w http.ResponseWriter, r *http.Request) (domain.Candidate, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form body: %w", err)
		}
		return candidateFromForm(r.PostForm), nil
	default:
		candidate := domain.Candidate{}
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&candidate); err != nil {
			if errors.Is(err, io.EOF) {
				return candidate, nil
			}
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errTrailingData
		}
		return candidate, nil
	}
}

func candidateFromForm(form url.Values) domain.Candidate {
	type field struct {
		values   []any
		sequence bool
	}

	fields := map[string]*field{}
	for _, key := range slices.Sorted(maps.Keys(form)) {
		name := strings.TrimSuffix(key, "[]")
		f, seen := fields[name]
		if !seen {
			f = &field{}
			fields[name] = f
		}
		if seen || name != key || len(form[key]) != 1 {
			f.sequence = true
		}
		for _, value := range form[key] {
			f.values = append(f.values, value)
		}
	}

	candidate := domain.Candidate{}
	for name, f := range fields {
		if f.sequence {
			candidate[name] = f.values
			continue
		}
		candidate[name] = f.values[0]
	}

	return candidate
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}

func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}
