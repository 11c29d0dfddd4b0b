package adapter

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	m "github.com/mouse-blink/respec/internal/model"
	"github.com/mouse-blink/respec/internal/syntax"
)

// ErrInvalidRuntimeData is returned when a runtime data file does not match
// the expected schema.
var ErrInvalidRuntimeData = errors.New("invalid runtime data")

//go:embed schema/runtime_data.schema.json
var runtimeDataSchema []byte

// RuntimeDataStore loads observations recorded by an instrumented test run.
type RuntimeDataStore interface {
	Load(path m.Path) (*RuntimeData, error)
}

// RuntimeData maps expressions to what was observed about their values. It
// is read-only once loaded and safe for concurrent lookups. A nil
// *RuntimeData misses every lookup.
type RuntimeData struct {
	observations map[syntax.NodeID]m.Observation
}

// NewRuntimeData wraps observations that were collected elsewhere.
func NewRuntimeData(observations map[syntax.NodeID]m.Observation) *RuntimeData {
	return &RuntimeData{observations: observations}
}

// Lookup returns the observation recorded for the expression id.
func (d *RuntimeData) Lookup(id syntax.NodeID) (m.Observation, bool) {
	if d == nil {
		return m.Observation{}, false
	}

	obs, ok := d.observations[id]

	return obs, ok
}

// Len returns the number of recorded observations.
func (d *RuntimeData) Len() int {
	if d == nil {
		return 0
	}

	return len(d.observations)
}

type runtimeDataJSON struct {
	Observations []observationJSON `json:"observations"`
}

type observationJSON struct {
	File       string `json:"file"`
	Begin      int    `json:"begin"`
	End        int    `json:"end"`
	ClassName  string `json:"class_name"`
	Enumerable bool   `json:"enumerable"`
}

// JSONRuntimeDataStore reads runtime data from JSON files.
type JSONRuntimeDataStore struct{}

// NewJSONRuntimeDataStore constructs a JSONRuntimeDataStore.
func NewJSONRuntimeDataStore() *JSONRuntimeDataStore {
	return &JSONRuntimeDataStore{}
}

// Load reads and validates the file at path. An empty path yields empty
// runtime data. Relative file names inside the data are resolved against
// the working directory, matching how sources are discovered.
func (s *JSONRuntimeDataStore) Load(path m.Path) (*RuntimeData, error) {
	data := &RuntimeData{observations: make(map[syntax.NodeID]m.Observation)}
	if path == "" {
		return data, nil
	}

	raw, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read runtime data: %w", err)
	}

	if err := validateRuntimeData(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var doc runtimeDataJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidRuntimeData, err)
	}

	for _, o := range doc.Observations {
		if o.End < o.Begin {
			return nil, fmt.Errorf("%s: %w: %s ends before it begins", path, ErrInvalidRuntimeData, o.File)
		}

		file, err := filepath.Abs(o.File)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", o.File, err)
		}

		id := syntax.NodeID{File: file, Begin: o.Begin, End: o.End}
		data.observations[id] = m.Observation{ClassName: o.ClassName, Enumerable: o.Enumerable}
	}

	return data, nil
}

func validateRuntimeData(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(runtimeDataSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRuntimeData, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, d := range result.Errors() {
		msgs = append(msgs, d.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidRuntimeData, strings.Join(msgs, "; "))
}
