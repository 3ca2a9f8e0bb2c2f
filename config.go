package widgetlist

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/xqrs/widgetlist/viewport"
)

// Config holds the list view settings that can be kept in a TOML file:
//
//	scroll_axis = "vertical"
//	scroll_padding = 2
//	circular = true
//	scroll_bar = true
//	border = "round"
//	title = "Files"
type Config struct {
	ScrollAxis    viewport.Axis `toml:"scroll_axis"`
	ScrollPadding int           `toml:"scroll_padding"`
	Circular      bool          `toml:"circular"`
	ScrollBar     bool          `toml:"scroll_bar"`
	// One of none, plain, round, thick, double or hidden.
	Border string `toml:"border"`
	Title  string `toml:"title"`
}

// DefaultConfig returns the settings of a new list view.
func DefaultConfig() Config {
	return Config{
		ScrollAxis: viewport.Vertical,
		Circular:   true,
		Border:     "none",
	}
}

// ParseConfig decodes a TOML document. Keys missing from data keep their
// default value.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse list config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate reports settings that cannot be applied to a list view.
func (c Config) Validate() error {
	var errs []error
	if c.ScrollPadding < 0 {
		errs = append(errs, fmt.Errorf("scroll_padding must not be negative, got %d", c.ScrollPadding))
	}
	if _, _, ok := LookupBorderSet(c.Border); !ok {
		errs = append(errs, fmt.Errorf("unknown border %q", c.Border))
	}
	return errors.Join(errs...)
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal list config: %w", err)
	}
	return data, nil
}

// ApplyConfig applies the settings of config to the list view. Invalid
// settings are ignored.
func (l *ListView) ApplyConfig(config Config) *ListView {
	l.SetScrollAxis(config.ScrollAxis).
		SetScrollPadding(config.ScrollPadding).
		SetTitle(config.Title)
	l.state.SetCircular(config.Circular)

	if set, draw, ok := LookupBorderSet(config.Border); ok {
		if draw {
			l.SetBorders(BordersAll).SetBorderSet(set)
		} else {
			l.SetBorders(BordersNone)
		}
	}

	switch {
	case config.ScrollBar && l.scrollBar == nil:
		l.SetScrollBar(NewScrollBar())
	case !config.ScrollBar && l.scrollBar != nil:
		l.SetScrollBar(nil)
	}
	l.MarkDirty()
	return l
}
