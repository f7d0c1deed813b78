package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/eircode"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, "mode: strict\nrouting_keys:\n  - d02\n  - A65\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Mode != ModeStrict {
		t.Errorf("Mode = %q, want strict", c.Mode)
	}
	if len(c.RoutingKeys) != 2 || c.RoutingKeys[0] != "D02" || c.RoutingKeys[1] != "A65" {
		t.Errorf("unexpected routing keys: %v", c.RoutingKeys)
	}
}

func TestLoadFromFile_UnknownMode(t *testing.T) {
	var c Config
	if err := c.LoadFromFile(writeConfig(t, "mode: fuzzy\n")); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestLoadFromFile_BadRoutingKey(t *testing.T) {
	for _, rk := range []string{"O65", "1AB", "D2", "D02X"} {
		var c Config
		if err := c.LoadFromFile(writeConfig(t, "routing_keys: ["+rk+"]\n")); err == nil {
			t.Errorf("expected error for routing key %q", rk)
		}
	}
}

func TestLoadFromFile_KeepsFlagMode(t *testing.T) {
	c := Config{Mode: ModeLax}
	if err := c.LoadFromFile(writeConfig(t, "routing_keys: []\n")); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Mode != ModeLax {
		t.Errorf("Mode = %q, want lax", c.Mode)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want eircode.Options
	}{
		{"zero", Config{}, eircode.Options{}},
		{"default mode", Config{Mode: ModeDefault}, eircode.Options{}},
		{"strict mode", Config{Mode: "STRICT"}, eircode.Options{Strict: true}},
		{"lax mode", Config{Mode: ModeLax}, eircode.Options{Lax: true}},
		{"flag overrides mode", Config{Mode: ModeStrict, Lax: true}, eircode.Options{Lax: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.Options()
			if err != nil {
				t.Fatalf("Options: %v", err)
			}
			if got != tc.want {
				t.Errorf("Options = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestOptions_StrictAndLax(t *testing.T) {
	c := Config{Strict: true, Lax: true}
	if _, err := c.Options(); !errors.Is(err, eircode.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestAllowsRoutingKey(t *testing.T) {
	var open Config
	if !open.AllowsRoutingKey("D02") {
		t.Error("empty allow-list should allow everything")
	}

	c := Config{RoutingKeys: []string{"D02"}}
	if !c.AllowsRoutingKey("d02") {
		t.Error("expected D02 allowed")
	}
	if c.AllowsRoutingKey("A65") {
		t.Error("expected A65 filtered")
	}
}

func TestValidate(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Error("expected error without --file")
	}

	c.FilePath = writeConfig(t, "")
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if err := c.ValidateWithDSN(); err == nil {
		t.Error("expected error without DSN")
	}

	c.Strict, c.Lax = true, true
	if err := c.Validate(); !errors.Is(err, eircode.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}
