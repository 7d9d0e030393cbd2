// Package acl is the calculator web's anti-corruption layer over the
// factorial API. It speaks the API's JSON and problem+json formats and hands
// the rest of the web service domain values and domain errors. Wire formats
// live in acl/factorialapi; shared error mapping lives here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10

// problemDetail is the part of an RFC 9457 body the web cares about.
type problemDetail struct {
	Detail string        `json:"detail"`
	Code   string        `json:"code"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-success response to a domain error.
//
// 400 and 422 become a *domain.ValidationError that keeps the problem's
// code and field messages, so callers can recognise specific rejections.
// 404 wraps domain.ErrNotFound and 5xx wraps domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return toValidationError(pd, detail)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblemDetail reads an application/problem+json body. Anything else,
// or a body that does not parse, yields the zero value.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the source prefix ("path.", "body.") from error
// locations. A problem without field errors keeps its detail under "number",
// the only input the API takes.
func toValidationError(pd problemDetail, detail string) *domain.ValidationError {
	verr := &domain.ValidationError{Code: pd.Code, Fields: make(map[string]string, len(pd.Errors))}

	for _, d := range pd.Errors {
		source, field, ok := strings.Cut(d.Location, ".")
		if !ok {
			field = d.Location
		} else if verr.Source == "" {
			verr.Source = source
		}
		verr.Fields[field] = d.Message
	}
	if len(verr.Fields) == 0 {
		verr.Fields["number"] = detail
	}
	return verr
}
