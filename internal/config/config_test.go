package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Method != "eigen" {
		t.Errorf("expected method eigen, got %s", cfg.Method)
	}
	if cfg.MaxIter <= 0 {
		t.Error("max_iter should be positive")
	}
	if cfg.WMin >= cfg.WMax {
		t.Error("w_min should be below w_max")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := []byte("coeffs: [6, 5, 1]\nmethod: iterative\nmax_iter: 50\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Coeffs) != 3 || cfg.Coeffs[2] != 1 {
		t.Errorf("unexpected coeffs %v", cfg.Coeffs)
	}
	if cfg.Method != "iterative" || cfg.MaxIter != 50 {
		t.Errorf("unexpected method %s max_iter %d", cfg.Method, cfg.MaxIter)
	}
	// Untouched fields keep the defaults.
	if cfg.WMax != DefaultWMax {
		t.Errorf("expected default w_max, got %v", cfg.WMax)
	}
}

func TestLoadRejectsBadMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("method: newton\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestLoadRejectsNonPositiveWMin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("w_min: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for w_min 0")
	}

	if err := os.WriteFile(path, []byte("w_min: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative w_min")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Coeffs = []float64{1, 2, 3}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded.Coeffs) != 3 || loaded.Coeffs[1] != 2 {
		t.Errorf("unexpected coeffs after round trip: %v", loaded.Coeffs)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("wilkinson")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Roots) != 20 {
		t.Errorf("expected 20 roots, got %d", len(cfg.Roots))
	}
	if cfg.Method != "iterative" {
		t.Errorf("expected iterative method, got %s", cfg.Method)
	}
	// Fields the preset leaves unset come from the defaults.
	if cfg.Dt != DefaultDt {
		t.Errorf("expected default dt, got %v", cfg.Dt)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}
