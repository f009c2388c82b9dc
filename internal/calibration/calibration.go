// Package calibration reads INI calibration files: k-factors and model
// settings that override the input data.
//
//	[data.weight.airframe.horizontal_tail]
//	k_factor = 1.05
//
//	[data.mission.sizing.landing]
//	flap_angle = 35 deg
//
// The section name with dots replaced by colons prefixes each key, so the
// first entry sets data:weight:airframe:horizontal_tail:k_factor. A value is
// one number or a comma separated list, optionally followed by its units.
package calibration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gofastga/internal/component"
	"gopkg.in/ini.v1"
)

// Load reads a calibration file.
func Load(path string) (component.Dataset, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	data, err := fromFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Parse reads calibration content.
func Parse(content []byte) (component.Dataset, error) {
	file, err := ini.Load(content)
	if err != nil {
		return nil, err
	}
	return fromFile(file)
}

func fromFile(file *ini.File) (component.Dataset, error) {
	data := component.Dataset{}
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		prefix := strings.ReplaceAll(section.Name(), ".", ":")
		for _, key := range section.Keys() {
			name := prefix + ":" + key.Name()
			q, err := parseValue(key.String())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			data[name] = q
		}
	}
	return data, nil
}

func parseValue(s string) (component.Quantity, error) {
	var q component.Quantity
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) == 0 {
		return q, fmt.Errorf("empty value")
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			if i == len(fields)-1 && i > 0 {
				q.Units = f
				break
			}
			return q, fmt.Errorf("%q is not a number", f)
		}
		q.Value = append(q.Value, v)
	}
	return q, nil
}
