// Package view renders the calculator web's HTML pages from templates
// embedded in the binary.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jsamuelsen11/factorial-service/internal/domain/factorial"
)

//go:embed templates/*.html
var templateFS embed.FS

// Messages shown in place of a result.
const (
	MsgInvalidNumber = "Please enter a valid number."
	errorPrefix      = "Error: "
)

// Page is the data behind index.html. Exactly one of Result or Message is
// shown; an empty page shows only the form.
type Page struct {
	Number  string // echoed back into the input
	Input   string
	Result  string
	Digits  int
	Message string
}

// ResultPage shows a computed factorial.
func ResultPage(raw string, r *factorial.Result) Page {
	return Page{
		Number: raw,
		Input:  r.Input.String(),
		Result: r.Value.String(),
		Digits: r.Digits,
	}
}

// InvalidNumberPage is shown when the input is not an integer.
func InvalidNumberPage(raw string) Page {
	return Page{Number: raw, Message: MsgInvalidNumber}
}

// ErrorPage shows detail as "Error: <detail>".
func ErrorPage(raw, detail string) Page {
	return Page{Number: raw, Message: errorPrefix + detail}
}

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	index *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{index: index}, nil
}

// Index renders the calculator page to w. Output is buffered so a template
// error never leaves a half-written page.
func (r *Renderer) Index(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := r.index.Execute(&buf, p); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
