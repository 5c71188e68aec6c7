package ringbuf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// fileConfig captures the subset of Options that can be expressed as data.
// Pointers distinguish an omitted key from an explicit false.
type fileConfig struct {
	Overwrite         *bool  `yaml:"overwrite"`
	WarnOnFull        *bool  `yaml:"warn_on_full"`
	NotifyOnOverwrite *bool  `yaml:"notify_on_overwrite"`
	MetricsName       string `yaml:"metrics_name"`
}

// ParseOptions decodes policy flags from a YAML (or JSON) document on top of
// DefaultOptions, so omitted keys keep their default. Unknown keys are an
// error, and so is more than one document. Sink and Metrics cannot be set from
// data and stay nil.
//
//	overwrite: true
//	notify_on_overwrite: true
//	metrics_name: ingest
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Options{}, errors.New("decode options: expected a single document")
	}

	if fc.Overwrite != nil {
		opts.Overwrite = *fc.Overwrite
	}
	if fc.WarnOnFull != nil {
		opts.WarnOnFull = *fc.WarnOnFull
	}
	if fc.NotifyOnOverwrite != nil {
		opts.NotifyOnOverwrite = *fc.NotifyOnOverwrite
	}
	opts.MetricsName = fc.MetricsName
	return opts, nil
}
