package config

import "fmt"

// Validate checks the config against the argument contracts of the terrain
// package and the renderer, so bad settings surface as one readable error
// at startup instead of failing deep inside generation.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Terrain.Generator {
	case GeneratorDiamondSquare, GeneratorGaussian, GeneratorPerlin:
	default:
		return fmt.Errorf("config: unknown generator %q", c.Terrain.Generator)
	}

	if c.Terrain.Iterations < 0 {
		return fmt.Errorf("config: iterations must be >= 0, got %d", c.Terrain.Iterations)
	}
	if c.Terrain.ChunkSize < 2 {
		return fmt.Errorf("config: chunk_size must be >= 2, got %d", c.Terrain.ChunkSize)
	}
	if c.Terrain.CellSize.X <= 0 || c.Terrain.CellSize.Y <= 0 || c.Terrain.CellSize.Z <= 0 {
		return fmt.Errorf("config: cell_size components must be positive, got (%g, %g, %g)",
			c.Terrain.CellSize.X, c.Terrain.CellSize.Y, c.Terrain.CellSize.Z)
	}

	if c.Terrain.Generator == GeneratorGaussian {
		g := c.Terrain.Gaussian
		if g.Width < 2 || g.Height < 2 {
			return fmt.Errorf("config: gaussian field must be at least 2x2, got %dx%d", g.Width, g.Height)
		}
		if g.SigmaX <= 0 || g.SigmaY <= 0 {
			return fmt.Errorf("config: gaussian sigma must be positive, got (%g, %g)", g.SigmaX, g.SigmaY)
		}
		if g.FalloffRadius <= 0 {
			return fmt.Errorf("config: gaussian falloff_radius must be positive, got %g", g.FalloffRadius)
		}
	}

	if c.Terrain.Generator == GeneratorPerlin {
		p := c.Terrain.Perlin
		if p.Width < 2 || p.Height < 2 {
			return fmt.Errorf("config: perlin field must be at least 2x2, got %dx%d", p.Width, p.Height)
		}
		if p.Scale <= 0 {
			return fmt.Errorf("config: perlin scale must be positive, got %g", p.Scale)
		}
	}

	switch c.Render.Mode {
	case RenderModeNoTexture, RenderModeTextured, RenderModeMultiTextured:
	default:
		return fmt.Errorf("config: unknown render mode %q", c.Render.Mode)
	}

	if c.Render.UVScale <= 0 {
		return fmt.Errorf("config: uv_scale must be positive, got %g", c.Render.UVScale)
	}

	return nil
}
