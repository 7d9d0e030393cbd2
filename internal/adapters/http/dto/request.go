package dto

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/factorial-service/internal/domain"
)

// maxFormBytes caps the calculator form body.
const maxFormBytes = 64 << 10

// CalculateForm is the calculator page's POST body.
type CalculateForm struct {
	Number string
}

// DecodeCalculateForm reads the number field of an urlencoded form. A body
// that cannot be parsed is a validation error; an empty field is left for
// the caller to reject.
func DecodeCalculateForm(w http.ResponseWriter, r *http.Request) (CalculateForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return CalculateForm{}, fmt.Errorf("reading form: %w: %w", domain.ErrValidation, err)
	}
	return CalculateForm{Number: r.PostFormValue("number")}, nil
}
