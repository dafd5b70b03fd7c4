// Package testvectors loads transform test cases from XML key/value
// documents. A case file is a single root element whose children are
// named vectors; each vector holds one sample per line, either
// "real<TAB>imag" for complex data or a single number for real data.
package testvectors

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type document struct {
	Vectors []vector `xml:",any"`
}

type vector struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// Load reads the vectors named inTag and wantTag from an XML case file.
// Both must be present, non-empty, and of equal length.
func Load(path, inTag, wantTag string) (in, want []complex128, err error) {
	doc, err := parse(path)
	if err != nil {
		return nil, nil, err
	}
	if in, err = complexVector(doc, inTag); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if want, err = complexVector(doc, wantTag); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(in) != len(want) {
		return nil, nil, fmt.Errorf("%s: %q has %d samples, %q has %d", path, inTag, len(in), wantTag, len(want))
	}
	return in, want, nil
}

// LoadReal reads a pair of single-column vectors from an XML case file.
func LoadReal(path, inTag, wantTag string) (in, want []float64, err error) {
	doc, err := parse(path)
	if err != nil {
		return nil, nil, err
	}
	if in, err = realVector(doc, inTag); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if want, err = realVector(doc, wantTag); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(in) != len(want) {
		return nil, nil, fmt.Errorf("%s: %q has %d samples, %q has %d", path, inTag, len(in), wantTag, len(want))
	}
	return in, want, nil
}

func parse(path string) (*document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &doc, nil
}

func find(doc *document, tag string) (string, error) {
	for _, v := range doc.Vectors {
		if v.XMLName.Local == tag {
			return v.Text, nil
		}
	}
	return "", fmt.Errorf("vector %q not found", tag)
}

func complexVector(doc *document, tag string) ([]complex128, error) {
	text, err := find(doc, tag)
	if err != nil {
		return nil, err
	}
	var out []complex128
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("vector %q: want 2 numbers per line, got %q", tag, line)
		}
		re, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", tag, err)
		}
		im, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", tag, err)
		}
		out = append(out, complex(re, im))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("vector %q is empty", tag)
	}
	return out, nil
}

func realVector(doc *document, tag string) ([]float64, error) {
	text, err := find(doc, tag)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 1 {
			return nil, fmt.Errorf("vector %q: want 1 number per line, got %q", tag, line)
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", tag, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("vector %q is empty", tag)
	}
	return out, nil
}
