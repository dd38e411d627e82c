// Package report renders the result of one footprint run.
package report

import (
	"fmt"
	"sort"

	"github.com/kubev2v/footprint/internal/estimation"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Data is everything a renderer can draw from.
type Data struct {
	Profile       string
	Artifact      string
	ArtifactBytes int64
	State         *estimation.State
}

// Renderer turns Data into the bytes of one format.
type Renderer interface {
	SupportedFormat() Format
	Render(data *Data) ([]byte, error)
}

var renderers = map[Format]Renderer{}

func register(r Renderer) {
	renderers[r.SupportedFormat()] = r
}

func init() {
	register(NewTextRenderer())
	register(NewJSONRenderer())
	register(NewYAMLRenderer())
	register(NewXLSXRenderer())
}

// Formats lists the supported formats, sorted.
func Formats() []string {
	res := make([]string, 0, len(renderers))
	for f := range renderers {
		res = append(res, string(f))
	}
	sort.Strings(res)
	return res
}

// Render renders data in the requested format.
func Render(format Format, data *Data) ([]byte, error) {
	r, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
	if data == nil || data.State == nil {
		return nil, fmt.Errorf("no estimation to render")
	}
	return r.Render(data)
}
