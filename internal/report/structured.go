package report

import (
	"encoding/json"
	"fmt"

	"github.com/kubev2v/footprint/internal/estimation"
	"sigs.k8s.io/yaml"
)

// Document is the structured form of a run shared by the JSON and YAML renderers.
type Document struct {
	Profile       string                  `json:"profile"`
	Artifact      string                  `json:"artifact"`
	ArtifactBytes int64                   `json:"artifactBytes"`
	Inputs        []Input                 `json:"inputs"`
	Estimations   []estimation.Estimation `json:"estimations"`
}

type Input struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// NewDocument flattens data into a Document.
func NewDocument(data *Data) (*Document, error) {
	doc := &Document{
		Profile:       data.Profile,
		Artifact:      data.Artifact,
		ArtifactBytes: data.ArtifactBytes,
		Estimations:   data.State.Estimations(),
	}
	for _, p := range data.State.Inputs() {
		f, err := toFloat(p.Value)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", p.Key, err)
		}
		doc.Inputs = append(doc.Inputs, Input{Key: p.Key, Value: f})
	}
	return doc, nil
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) SupportedFormat() Format {
	return FormatJSON
}

func (r *JSONRenderer) Render(data *Data) ([]byte, error) {
	doc, err := NewDocument(data)
	if err != nil {
		return nil, err
	}
	marshalled, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling report: %w", err)
	}
	return append(marshalled, '\n'), nil
}

type YAMLRenderer struct{}

func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

func (r *YAMLRenderer) SupportedFormat() Format {
	return FormatYAML
}

func (r *YAMLRenderer) Render(data *Data) ([]byte, error) {
	doc, err := NewDocument(data)
	if err != nil {
		return nil, err
	}
	marshalled, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshalling report: %w", err)
	}
	return marshalled, nil
}
