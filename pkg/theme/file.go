package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/surreal-ui/surreal/pkg/errors"
)

// Parse decodes a YAML theme on top of the default theme, so a file only needs
// the keys it overrides. Unknown keys are rejected and the result is validated.
//
//	view_padding: {vertical: 12, horizontal: 24}
//	default_alignment: left
//	colors:
//	  primary: "#E0E0E0"
//	widgets:
//	  buttons: {roundness: 100}
func Parse(data []byte) (*Theme, error) {
	th := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(th); err != nil && err != io.EOF {
		return nil, &errors.SurrealError{
			Op:   "theme.Parse",
			Kind: errors.KindStyle,
			Err:  err,
		}
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}
	return th, nil
}

// Load reads and parses a YAML theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	th, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return th, nil
}

// Marshal encodes a theme as YAML.
func Marshal(t *Theme) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks value ranges that widgets rely on.
func (t *Theme) Validate() error {
	fail := func(field string, format string, args ...any) error {
		return &errors.SurrealError{
			Op:   "theme.Validate",
			Kind: errors.KindStyle,
			ID:   field,
			Err:  fmt.Errorf("%w: "+format, append([]any{errors.ErrOutOfRange}, args...)...),
		}
	}
	if r := t.Widgets.Buttons.Roundness; r < 0 || r > 100 {
		return fail("widgets.buttons.roundness", "%v not in [0, 100]", r)
	}
	if t.Widgets.Buttons.CircleButtonRadius == 0 {
		return fail("widgets.buttons.circle_button_radius", "must be positive")
	}
	if t.Text.Scale <= 0 {
		return fail("text.scale", "%v must be positive", t.Text.Scale)
	}
	return nil
}
