package config

import (
	"flag"
	"io"
)

// Global flags are parsed before the command name.
var (
	flagSet = flag.NewFlagSet("fixturegen", flag.ContinueOnError)

	flagConfig   = flagSet.String("config", "", "Path to config file")
	flagDebug    = flagSet.Bool("debug", false, "Enable debug logging")
	flagTee      = flagSet.String("tee", "", "Also write output to this file")
	flagPerLine  = flagSet.Int("per-line", 0, "Indices per line")
	flagSuffix   = flagSet.String("suffix", "", "Float literal suffix (use -no-suffix for none)")
	flagNoSuffix = flagSet.Bool("no-suffix", false, "Print floats without a suffix")
	flagLogFile  = flagSet.String("log-file", "", "Write logs to this file")
	flagGenerate = flagSet.Bool("gen-tangents", false, "Generate tangents from UVs when the input has none")
)

// SetOutput sets where flag parse errors and help are written.
func SetOutput(w io.Writer) {
	flagSet.SetOutput(w)
}

// ParseFlags parses the global flags in args and returns the remaining
// arguments (the command and its own arguments). Flags absent from args fall
// back to their defaults.
func ParseFlags(args []string) ([]string, error) {
	flagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	return flagSet.Args(), nil
}

// PrintDefaults writes the global flag help to w.
func PrintDefaults(w io.Writer) {
	prev := flagSet.Output()
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
	flagSet.SetOutput(prev)
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTee != "" {
		cfg.Output.TeeFile = *flagTee
	}
	if *flagPerLine > 0 {
		cfg.Output.IndicesPerLine = *flagPerLine
	}
	if *flagSuffix != "" {
		cfg.Output.FloatSuffix = *flagSuffix
	}
	if *flagNoSuffix {
		cfg.Output.FloatSuffix = ""
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagGenerate {
		cfg.Tangents.Generate = true
	}
}
