// Package config handles viewer configuration loading and management.
package config

// Generator names accepted by the terrain config.
const (
	GeneratorDiamondSquare = "diamond-square"
	GeneratorGaussian      = "gaussian"
	GeneratorPerlin        = "perlin"
)

// Render mode names accepted by the render config.
const (
	RenderModeNoTexture     = "no-texture"
	RenderModeTextured      = "textured"
	RenderModeMultiTextured = "multitextured"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// TerrainConfig holds synthesis parameters. Seed 0 means a fresh time-based
// seed on every run; any other value reproduces the same terrain.
type TerrainConfig struct {
	Generator     string         `yaml:"generator"`
	Iterations    int            `yaml:"iterations"`
	Roughness     float32        `yaml:"roughness"`
	MaxSeedHeight float32        `yaml:"max_seed_height"`
	Seed          int64          `yaml:"seed"`
	CellSize      CellSize       `yaml:"cell_size"`
	ChunkSize     int            `yaml:"chunk_size"`
	Gaussian      GaussianConfig `yaml:"gaussian"`
	Perlin        PerlinConfig   `yaml:"perlin"`
}

// CellSize holds the world-space dimensions of one grid cell.
type CellSize struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// GaussianConfig holds parameters for the Gaussian bump generator.
// A negative center component means the grid midpoint.
type GaussianConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	SigmaX        float32 `yaml:"sigma_x"`
	SigmaY        float32 `yaml:"sigma_y"`
	Amplitude     float32 `yaml:"amplitude"`
	CenterX       float32 `yaml:"center_x"`
	CenterY       float32 `yaml:"center_y"`
	FalloffRadius float32 `yaml:"falloff_radius"`
}

// PerlinConfig holds parameters for the Perlin noise generator.
type PerlinConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Scale     float64 `yaml:"scale"`
	Amplitude float32 `yaml:"amplitude"`
}

// RenderConfig holds material settings.
type RenderConfig struct {
	Mode      string  `yaml:"mode"`
	UVScale   float32 `yaml:"uv_scale"`
	Wireframe bool    `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "Terrain",
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Generator:     GeneratorDiamondSquare,
			Iterations:    7,
			Roughness:     1.0,
			MaxSeedHeight: 24.0,
			Seed:          0,
			CellSize:      CellSize{X: 2.0, Y: 1.0, Z: 2.0},
			ChunkSize:     33,
			Gaussian: GaussianConfig{
				Width:         129,
				Height:        129,
				SigmaX:        18.0,
				SigmaY:        18.0,
				Amplitude:     40.0,
				CenterX:       -1,
				CenterY:       -1,
				FalloffRadius: 60.0,
			},
			Perlin: PerlinConfig{
				Width:     129,
				Height:    129,
				Scale:     36.0,
				Amplitude: 30.0,
			},
		},
		Render: RenderConfig{
			Mode:      RenderModeMultiTextured,
			UVScale:   16.0,
			Wireframe: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
