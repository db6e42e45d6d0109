package xkblayouts

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrUnknownLayout  = errors.New("unknown keyboard layout")
	ErrUnknownVariant = errors.New("unknown layout variant")
	ErrUnknownModel   = errors.New("unknown keyboard model")
)

func Load(path string) (*XkbConfigRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func Parse(r io.Reader) (*XkbConfigRegistry, error) {
	registry := &XkbConfigRegistry{}
	if err := xml.NewDecoder(r).Decode(registry); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	return registry, nil
}

// Describe returns the human readable name of a layout, or of one of its
// variants when variant is set.
func (r *XkbConfigRegistry) Describe(layout, variant string) (string, error) {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layout {
			continue
		}
		if variant == "" {
			return l.ConfigItem.Description, nil
		}
		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Name == variant {
				return v.ConfigItem.Description, nil
			}
		}
		return "", fmt.Errorf("%w: %q for layout %q", ErrUnknownVariant, variant, layout)
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
}

// DescribeAll handles xkb's comma separated layout groups, e.g. "us,de"
// with variants ",nodeadkeys".
func (r *XkbConfigRegistry) DescribeAll(layouts, variants string) ([]string, error) {
	ls := strings.Split(layouts, ",")
	vs := strings.Split(variants, ",")

	out := make([]string, 0, len(ls))
	for i, layout := range ls {
		var variant string
		if i < len(vs) {
			variant = vs[i]
		}
		desc, err := r.Describe(strings.TrimSpace(layout), strings.TrimSpace(variant))
		if err != nil {
			return nil, err
		}
		out = append(out, desc)
	}
	return out, nil
}

func (r *XkbConfigRegistry) HasModel(model string) error {
	if model == "" {
		return nil
	}
	for _, m := range r.ModelList.Model {
		if m.ConfigItem.Name == model {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownModel, model)
}
