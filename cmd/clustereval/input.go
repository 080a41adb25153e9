package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/contingency"
)

var (
	errNoInput    = errors.New("input: neither labels nor counts given")
	errBothInputs = errors.New("input: labels and counts are mutually exclusive")
)

type inputFile struct {
	Labels *struct {
		A          []int `yaml:"a"`
		B          []int `yaml:"b"`
		Noise      *int  `yaml:"noise"`
		BreakNoise bool  `yaml:"break_noise"`
	} `yaml:"labels"`
	Counts [][]int `yaml:"counts"`
}

// decodeInput parses an input document into a contingency table.
func decodeInput(r io.Reader) (*contingency.Table, error) {
	var in inputFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("input: parse yaml: %w", err)
	}

	switch {
	case in.Labels != nil && in.Counts != nil:
		return nil, errBothInputs
	case in.Labels != nil:
		var opts []contingency.Option
		if in.Labels.Noise != nil {
			opts = append(opts, contingency.WithNoise(*in.Labels.Noise))
			if in.Labels.BreakNoise {
				opts = append(opts, contingency.WithBreakNoise())
			}
		}
		return contingency.FromLabels(in.Labels.A, in.Labels.B, opts...)
	case in.Counts != nil:
		return contingency.FromCounts(in.Counts)
	default:
		return nil, errNoInput
	}
}
