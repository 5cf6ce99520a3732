// Package config handles fixturegen configuration loading and management.
package config

import "github.com/Faultbox/fixturegen/pkg/literal"

// Config holds all tool settings.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Tangents TangentsConfig `yaml:"tangents"`
	Plot     PlotConfig     `yaml:"plot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OutputConfig holds literal formatting and output duplication settings.
type OutputConfig struct {
	Indent         string `yaml:"indent"`
	RowIndent      string `yaml:"row_indent"`
	FloatSuffix    string `yaml:"float_suffix"`
	IndicesPerLine int    `yaml:"indices_per_line"`
	VertexDecl     string `yaml:"vertex_decl"`
	IndexDecl      string `yaml:"index_decl"`
	TeeFile        string `yaml:"tee_file"` // also write output here
}

// TangentsConfig controls tangent generation for meshes without tangents.
type TangentsConfig struct {
	Generate      bool `yaml:"generate"`
	Orthogonalize bool `yaml:"orthogonalize"`
}

// PlotConfig holds diagram image settings.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := literal.DefaultOptions()
	return &Config{
		Output: OutputConfig{
			Indent:         opts.Indent,
			RowIndent:      opts.RowIndent,
			FloatSuffix:    opts.FloatSuffix,
			IndicesPerLine: opts.IndicesPerLine,
			VertexDecl:     opts.VertexDecl,
			IndexDecl:      opts.IndexDecl,
			TeeFile:        "",
		},
		Tangents: TangentsConfig{
			Generate:      false,
			Orthogonalize: true,
		},
		Plot: PlotConfig{
			Width:  600,
			Height: 600,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// LiteralOptions converts the output section to formatter options.
func (c *Config) LiteralOptions() literal.Options {
	return literal.Options{
		Indent:         c.Output.Indent,
		RowIndent:      c.Output.RowIndent,
		FloatSuffix:    c.Output.FloatSuffix,
		IndicesPerLine: c.Output.IndicesPerLine,
		VertexDecl:     c.Output.VertexDecl,
		IndexDecl:      c.Output.IndexDecl,
	}
}
