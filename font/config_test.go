package font

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"default", func(*Config) {}, ""},
		{"bad hinting", func(c *Config) { c.Hinting = 7 }, "Hinting"},
		{"bad kerning", func(c *Config) { c.Kerning = -1 }, "Kerning"},
		{"zero dpi", func(c *Config) { c.DPI = 0 }, "DPI"},
		{"tiny atlas", func(c *Config) { c.InitialAtlasSize = 8 }, "InitialAtlasSize"},
		{"odd atlas", func(c *Config) { c.InitialAtlasSize = 100 }, "InitialAtlasSize"},
		{"odd max", func(c *Config) { c.MaxAtlasSize = 1000 }, "MaxAtlasSize"},
		{"max below initial", func(c *Config) { c.InitialAtlasSize = 256; c.MaxAtlasSize = 128 }, "MaxAtlasSize"},
		{"huge max", func(c *Config) { c.MaxAtlasSize = 32768 }, "MaxAtlasSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestOptionsApply(t *testing.T) {
	c := DefaultConfig()
	for _, opt := range []Option{
		WithHinting(HintingNone),
		WithKerning(KerningTable),
		WithDPI(96),
		WithInitialAtlasSize(64),
		WithMaxAtlasSize(512),
	} {
		opt(&c)
	}
	want := Config{Hinting: HintingNone, Kerning: KerningTable, DPI: 96, InitialAtlasSize: 64, MaxAtlasSize: 512}
	if c != want {
		t.Errorf("config = %+v, want %+v", c, want)
	}
}

func TestModeStrings(t *testing.T) {
	if HintingFull.String() != "Full" || Hinting(9).String() != "Unknown" {
		t.Error("Hinting.String mismatch")
	}
	if KerningGPOS.String() != "GPOS" || KerningMode(9).String() != "Unknown" {
		t.Error("KerningMode.String mismatch")
	}
}
