// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: YAML/JSON serialization of a Schedule through a sorted document form.

package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the serializable form of a Schedule: steps ascending,
// destinations and transfers in ID order.
type Document struct {
	Steps []StepDoc `yaml:"steps" json:"steps"`
}

// StepDoc is one communication step.
type StepDoc struct {
	T            int              `yaml:"t" json:"t"`
	Destinations []DestinationDoc `yaml:"destinations" json:"destinations"`
}

// DestinationDoc is one (t, u) Entry.
type DestinationDoc struct {
	Node      string        `yaml:"node" json:"node"`
	LoadU     float64       `yaml:"load_u" json:"load_u"`
	Transfers []TransferDoc `yaml:"transfers" json:"transfers"`
}

// TransferDoc is one transfer of an Entry.
type TransferDoc struct {
	From     string  `yaml:"from" json:"from"`
	Via      string  `yaml:"via" json:"via"`
	Fraction float64 `yaml:"fraction" json:"fraction"`
}

// ToDocument converts s into its deterministic document form.
func ToDocument(s Schedule) Document {
	doc := Document{Steps: make([]StepDoc, 0, len(s))}
	for _, t := range s.Steps() {
		step := StepDoc{T: int(t)}
		for _, u := range s.Destinations(t) {
			e := s[t][u]
			dd := DestinationDoc{Node: u, LoadU: e.LoadU, Transfers: make([]TransferDoc, 0, len(e.Transfers))}
			for _, k := range e.SortedKeys() {
				dd.Transfers = append(dd.Transfers, TransferDoc{From: k.From, Via: k.Via, Fraction: e.Transfers[k]})
			}
			step.Destinations = append(step.Destinations, dd)
		}
		doc.Steps = append(doc.Steps, step)
	}

	return doc
}

// FromDocument rebuilds a Schedule from doc.
func FromDocument(doc Document) Schedule {
	s := make(Schedule, len(doc.Steps))
	for _, step := range doc.Steps {
		if _, ok := s[TimeStep(step.T)]; !ok {
			s[TimeStep(step.T)] = make(map[string]Entry, len(step.Destinations))
		}
		for _, dd := range step.Destinations {
			e := Entry{LoadU: dd.LoadU, Transfers: make(map[TransferKey]float64, len(dd.Transfers))}
			for _, td := range dd.Transfers {
				e.Transfers[TransferKey{From: td.From, Via: td.Via}] = td.Fraction
			}
			s.Set(TimeStep(step.T), dd.Node, e)
		}
	}

	return s
}

// Encode writes s to w as YAML.
func Encode(w io.Writer, s Schedule) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(s)); err != nil {
		return fmt.Errorf("schedule: encode: %w", err)
	}

	return enc.Close()
}

// Decode reads a YAML schedule from r.
func Decode(r io.Reader) (Schedule, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("schedule: decode: %w", err)
	}

	return FromDocument(doc), nil
}

// WriteFile stores s in filename. Serialization to json or to yaml is
// selected based on the extension of the name; anything else is YAML.
func WriteFile(filename string, s Schedule) error {
	var (
		bytes []byte
		err   error
	)
	doc := ToDocument(s)
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		bytes, err = json.MarshalIndent(doc, "", "\t")
	default:
		bytes, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("schedule: marshal %s: %w", filename, err)
	}

	return os.WriteFile(filename, bytes, 0o644)
}

// ReadFile loads a schedule written by WriteFile.
func ReadFile(filename string) (Schedule, error) {
	dict, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var doc Document
	if strings.ToLower(path.Ext(filename)) == ".json" {
		err = json.Unmarshal(dict, &doc)
	} else {
		err = yaml.Unmarshal(dict, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("schedule: unmarshal %s: %w", filename, err)
	}

	return FromDocument(doc), nil
}
