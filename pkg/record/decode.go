package record

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the assigned field values of obj into out, a pointer to a
// struct or map. Struct fields are matched by name, case-insensitively, or by
// their `mapstructure` tag.
func Decode(obj *Object, out any) error {
	if obj == nil {
		return errors.New("record: decode of nil object")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: out})
	if err != nil {
		return fmt.Errorf("record: decode %s: %w", obj.class.name, err)
	}
	if err := dec.Decode(obj.Values()); err != nil {
		return fmt.Errorf("record: decode %s: %w", obj.class.name, err)
	}
	return nil
}
