package options

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode converts a block into a typed value. Input is weakly typed, so a
// block loaded from HCL (where every number is a float64) still fills int
// fields. Struct fields are matched by their `mapstructure` tag, falling back
// to a case-insensitive field name match.
func Decode[T any](block Block) (T, error) {
	var out T
	if err := DecodeInto(block, &out); err != nil {
		return out, err
	}
	return out, nil
}

// DecodeInto decodes block into target, which must be a non-nil pointer.
func DecodeInto(block Block, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("failed to create option decoder: %w", err)
	}
	if err := decoder.Decode(block); err != nil {
		return fmt.Errorf("failed to decode option block: %w", err)
	}
	return nil
}
