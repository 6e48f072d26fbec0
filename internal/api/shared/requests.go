package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// MaxRequestBytes caps the accepted request body size at 1 MiB.
const MaxRequestBytes = 1 << 20

// Request precondition errors surfaced by DecodeJSON. Handlers map these to
// the INVALID_CONTENT_TYPE and REQUEST_TOO_LARGE error codes.
var (
	ErrUnsupportedContentType = errors.New("request must have Content-Type: application/json")
	ErrRequestTooLarge        = fmt.Errorf("request too large, maximum size is %d bytes", MaxRequestBytes)
	ErrMalformedJSON          = errors.New("request body is not valid JSON")
)

// DecodeJSON enforces the JSON content type and the body size cap, then
// decodes the request body into dst. Unknown fields are tolerated; size and
// syntax problems are reported through the sentinel errors above.
func DecodeJSON(r *http.Request, dst any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return ErrUnsupportedContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return ErrUnsupportedContentType
	}

	if r.ContentLength > MaxRequestBytes {
		return ErrRequestTooLarge
	}

	body := http.MaxBytesReader(nil, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrRequestTooLarge
		}
		if strings.Contains(err.Error(), "request body too large") {
			return ErrRequestTooLarge
		}
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return nil
}
