package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Terrain.Generator != GeneratorDiamondSquare {
		t.Errorf("expected generator %q, got %q", GeneratorDiamondSquare, cfg.Terrain.Generator)
	}
	if cfg.Terrain.Iterations != 7 {
		t.Errorf("expected iterations 7, got %d", cfg.Terrain.Iterations)
	}
	if cfg.Terrain.ChunkSize != 33 {
		t.Errorf("expected chunk_size 33, got %d", cfg.Terrain.ChunkSize)
	}
	if cfg.Terrain.Seed != 0 {
		t.Errorf("expected time-based seed (0), got %d", cfg.Terrain.Seed)
	}

	if cfg.Render.Mode != RenderModeMultiTextured {
		t.Errorf("expected render mode %q, got %q", RenderModeMultiTextured, cfg.Render.Mode)
	}
	if cfg.Render.UVScale != 16.0 {
		t.Errorf("expected uv_scale 16, got %g", cfg.Render.UVScale)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	// Defaults must pass their own validation
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

terrain:
  generator: "perlin"
  iterations: 5
  roughness: 0.8
  max_seed_height: 16.0
  seed: 1234
  cell_size:
    x: 1.5
    y: 2.0
    z: 1.5
  chunk_size: 17
  perlin:
    width: 65
    height: 65
    scale: 24.0
    amplitude: 12.0

render:
  mode: "textured"
  uv_scale: 8.0
  wireframe: true

logging:
  level: "debug"
  log_file: "terrain.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Terrain.Generator != GeneratorPerlin {
		t.Errorf("expected generator perlin, got %q", cfg.Terrain.Generator)
	}
	if cfg.Terrain.Iterations != 5 {
		t.Errorf("expected iterations 5, got %d", cfg.Terrain.Iterations)
	}
	if cfg.Terrain.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Terrain.Seed)
	}
	if cfg.Terrain.CellSize.Y != 2.0 {
		t.Errorf("expected cell_size.y 2.0, got %g", cfg.Terrain.CellSize.Y)
	}
	if cfg.Terrain.ChunkSize != 17 {
		t.Errorf("expected chunk_size 17, got %d", cfg.Terrain.ChunkSize)
	}
	if cfg.Terrain.Perlin.Scale != 24.0 {
		t.Errorf("expected perlin scale 24, got %g", cfg.Terrain.Perlin.Scale)
	}

	if cfg.Render.Mode != RenderModeTextured {
		t.Errorf("expected render mode textured, got %q", cfg.Render.Mode)
	}
	if !cfg.Render.Wireframe {
		t.Error("expected wireframe to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("expected log file terrain.log, got %s", cfg.Logging.LogFile)
	}

	// Partial overrides keep defaults elsewhere
	if cfg.Terrain.Gaussian.SigmaX != 18.0 {
		t.Errorf("expected untouched gaussian sigma_x 18, got %g", cfg.Terrain.Gaussian.SigmaX)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"negative window height", func(c *Config) { c.Window.Height = -1 }},
		{"unknown generator", func(c *Config) { c.Terrain.Generator = "volcano" }},
		{"negative iterations", func(c *Config) { c.Terrain.Iterations = -1 }},
		{"chunk size too small", func(c *Config) { c.Terrain.ChunkSize = 1 }},
		{"zero cell size", func(c *Config) { c.Terrain.CellSize.Y = 0 }},
		{"negative cell size", func(c *Config) { c.Terrain.CellSize.X = -2 }},
		{"unknown render mode", func(c *Config) { c.Render.Mode = "shiny" }},
		{"zero uv scale", func(c *Config) { c.Render.UVScale = 0 }},
		{"gaussian single point", func(c *Config) {
			c.Terrain.Generator = GeneratorGaussian
			c.Terrain.Gaussian.Width = 1
		}},
		{"gaussian zero sigma", func(c *Config) {
			c.Terrain.Generator = GeneratorGaussian
			c.Terrain.Gaussian.SigmaY = 0
		}},
		{"gaussian zero falloff", func(c *Config) {
			c.Terrain.Generator = GeneratorGaussian
			c.Terrain.Gaussian.FalloffRadius = 0
		}},
		{"perlin zero scale", func(c *Config) {
			c.Terrain.Generator = GeneratorPerlin
			c.Terrain.Perlin.Scale = 0
		}},
		{"perlin tiny field", func(c *Config) {
			c.Terrain.Generator = GeneratorPerlin
			c.Terrain.Perlin.Height = 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "generator flag",
			setup: func() {
				*flagGenerator = "gaussian"
			},
			verify: func(cfg *Config) {
				if cfg.Terrain.Generator != GeneratorGaussian {
					t.Errorf("expected generator gaussian, got %q", cfg.Terrain.Generator)
				}
			},
			teardown: func() {
				*flagGenerator = ""
			},
		},
		{
			name: "seed flag",
			setup: func() {
				*flagSeed = 98765
			},
			verify: func(cfg *Config) {
				if cfg.Terrain.Seed != 98765 {
					t.Errorf("expected seed 98765, got %d", cfg.Terrain.Seed)
				}
			},
			teardown: func() {
				*flagSeed = 0
			},
		},
		{
			name: "iterations flag",
			setup: func() {
				*flagIterations = 4
			},
			verify: func(cfg *Config) {
				if cfg.Terrain.Iterations != 4 {
					t.Errorf("expected iterations 4, got %d", cfg.Terrain.Iterations)
				}
			},
			teardown: func() {
				*flagIterations = -1
			},
		},
		{
			name: "mode flag",
			setup: func() {
				*flagMode = "no-texture"
			},
			verify: func(cfg *Config) {
				if cfg.Render.Mode != RenderModeNoTexture {
					t.Errorf("expected render mode no-texture, got %q", cfg.Render.Mode)
				}
			},
			teardown: func() {
				*flagMode = ""
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
terrain:
  seed: 555
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, not the file
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height comes from the file since no flag overrides it
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}

	// Seed comes from the file, defaults elsewhere
	if cfg.Terrain.Seed != 555 {
		t.Errorf("expected seed 555 from file, got %d", cfg.Terrain.Seed)
	}
	if cfg.Terrain.ChunkSize != 33 {
		t.Errorf("expected default chunk_size 33, got %d", cfg.Terrain.ChunkSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
terrain:
  chunk_size: 1
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject invalid chunk_size, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Seed = 777
	cfg.Render.Mode = RenderModeNoTexture

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}

	if loaded.Terrain.Seed != 777 {
		t.Errorf("expected seed 777 after reload, got %d", loaded.Terrain.Seed)
	}
	if loaded.Render.Mode != RenderModeNoTexture {
		t.Errorf("expected render mode no-texture after reload, got %q", loaded.Render.Mode)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}
