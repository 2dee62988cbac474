package ink

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config is the persisted configuration of an InkView and of the legacy
// ripples it spawns. Encode it with encoding/json; absent keys decode to the
// DefaultConfig values.
type Config struct {
	InkStyle            InkStyle
	UsesLegacyRipple    bool
	// InkColor is the ripple fill. The zero Color means DefaultInkColor.
	InkColor            Color
	MaxRippleRadius     float64
	UsesCustomInkCenter bool
	CustomInkCenter     Vec2

	// Legacy ripple fields.
	Bounded            bool
	SpreadDuration     time.Duration
	EvaporateDuration  time.Duration
	UseLinearExpansion bool
}

// DefaultConfig returns the configuration of a freshly created InkView.
func DefaultConfig() Config {
	return Config{
		InkStyle:          InkStyleBounded,
		UsesLegacyRipple:  true,
		InkColor:          DefaultInkColor,
		Bounded:           true,
		SpreadDuration:    DefaultSpreadDuration,
		EvaporateDuration: DefaultEvaporateDuration,
	}
}

// LoadConfig decodes a JSON configuration.
func LoadConfig(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("ink: parse config: %w", err)
	}
	return c, nil
}

// MarshalText encodes the style as "bounded" or "unbounded".
func (s InkStyle) MarshalText() ([]byte, error) {
	switch s {
	case InkStyleBounded:
		return []byte("bounded"), nil
	case InkStyleUnbounded:
		return []byte("unbounded"), nil
	default:
		return nil, fmt.Errorf("ink: unknown ink style %d", s)
	}
}

// UnmarshalText decodes "bounded" or "unbounded".
func (s *InkStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bounded":
		*s = InkStyleBounded
	case "unbounded":
		*s = InkStyleUnbounded
	default:
		return fmt.Errorf("ink: unknown ink style %q", text)
	}
	return nil
}

func (s InkStyle) String() string {
	if s == InkStyleUnbounded {
		return "unbounded"
	}
	return "bounded"
}

// configJSON is the wire form of Config. Pointer fields tell absent keys
// apart from zero values.
type configJSON struct {
	InkStyle            *InkStyle `json:"ink-style,omitempty"`
	UsesLegacyRipple    *bool     `json:"uses-legacy-ripple,omitempty"`
	InkColor            *Color    `json:"ink-color,omitempty"`
	MaxRippleRadius     *float64  `json:"max-ripple-radius,omitempty"`
	UsesCustomInkCenter *bool     `json:"uses-custom-ink-center,omitempty"`
	CustomInkCenter     *Vec2     `json:"custom-ink-center,omitempty"`
	Bounded             *bool     `json:"bounded,omitempty"`
	SpreadDuration      *string   `json:"spread-duration,omitempty"`
	EvaporateDuration   *string   `json:"evaporate-duration,omitempty"`
	UseLinearExpansion  *bool     `json:"use-linear-expansion,omitempty"`
}

// MarshalJSON writes every field.
func (c Config) MarshalJSON() ([]byte, error) {
	spread := c.SpreadDuration.String()
	evaporate := c.EvaporateDuration.String()
	return json.Marshal(configJSON{
		InkStyle:            &c.InkStyle,
		UsesLegacyRipple:    &c.UsesLegacyRipple,
		InkColor:            &c.InkColor,
		MaxRippleRadius:     &c.MaxRippleRadius,
		UsesCustomInkCenter: &c.UsesCustomInkCenter,
		CustomInkCenter:     &c.CustomInkCenter,
		Bounded:             &c.Bounded,
		SpreadDuration:      &spread,
		EvaporateDuration:   &evaporate,
		UseLinearExpansion:  &c.UseLinearExpansion,
	})
}

// UnmarshalJSON fills c from data, using DefaultConfig for absent keys.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w configJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := DefaultConfig()
	if w.InkStyle != nil {
		out.InkStyle = *w.InkStyle
	}
	if w.UsesLegacyRipple != nil {
		out.UsesLegacyRipple = *w.UsesLegacyRipple
	}
	if w.InkColor != nil {
		out.InkColor = *w.InkColor
	}
	if w.MaxRippleRadius != nil {
		out.MaxRippleRadius = *w.MaxRippleRadius
	}
	if w.UsesCustomInkCenter != nil {
		out.UsesCustomInkCenter = *w.UsesCustomInkCenter
	}
	if w.CustomInkCenter != nil {
		out.CustomInkCenter = *w.CustomInkCenter
	}
	if w.Bounded != nil {
		out.Bounded = *w.Bounded
	}
	if w.SpreadDuration != nil {
		d, err := time.ParseDuration(*w.SpreadDuration)
		if err != nil {
			return fmt.Errorf("ink: spread-duration: %w", err)
		}
		out.SpreadDuration = d
	}
	if w.EvaporateDuration != nil {
		d, err := time.ParseDuration(*w.EvaporateDuration)
		if err != nil {
			return fmt.Errorf("ink: evaporate-duration: %w", err)
		}
		out.EvaporateDuration = d
	}
	if w.UseLinearExpansion != nil {
		out.UseLinearExpansion = *w.UseLinearExpansion
	}
	*c = out
	return nil
}
