// fixturegen precomputes tangent-space data for mesh fixtures and prints it as
// aligned static-array literals for the native shape tests.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/fixturegen/internal/config"
	"github.com/Faultbox/fixturegen/internal/logger"
	"github.com/Faultbox/fixturegen/internal/sink"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env is what every command gets: the loaded config, the output sink, stdin and
// the writer for usage errors.
type env struct {
	cfg    *config.Config
	out    io.Writer
	stdin  io.Reader
	errOut io.Writer
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"table":       cmdTable,
	"bitangents":  cmdBitangents,
	"tangent":     cmdTangent,
	"vertices":    cmdVertices,
	"indices":     cmdIndices,
	"cone-uv":     cmdConeUV,
	"cone-normal": cmdConeNormal,
	"init-config": cmdInitConfig,
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config.SetOutput(stderr)
	rest, err := config.ParseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stderr)
			return 0
		}
		return 2
	}

	if len(rest) < 1 {
		printUsage(stderr)
		return 1
	}

	name := rest[0]
	switch name {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n", name)
		printUsage(stderr)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	out, err := sink.Open(stdout, cfg.Output.TeeFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer out.Close()

	logger.Debug("running command", zap.String("command", name), zap.Strings("args", rest[1:]), zap.Strings("tee", out.Paths()))

	if err := cmd(&env{cfg: cfg, out: out, stdin: stdin, errOut: stderr}, rest[1:]); err != nil {
		logger.Error("command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := out.Commit(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `fixturegen - mesh fixture precomputation and literal formatting

Usage:
  fixturegen [global flags] <command> [options] [args]

Commands:
  table <mesh.json>            Vertex and index tables with derived bitangents
  bitangents <mesh.json>       Per-vertex bitangent listing
  tangent <mesh.json>          Triangle tangent and per-vertex orthogonalized tangents
  vertices <file|->            Re-align a vertex array literal
  indices <file|->             Re-align an index array literal
  cone-uv                      Cone side UV fan points (-variant arc|sine, -out file.png)
  cone-normal                  Cone side normal (-radius, -height, -out file.png)
  init-config                  Write the effective config as YAML (-path file)

Examples:
  fixturegen table mesh.json
  fixturegen -tee expected.txt -per-line 6 indices indices.txt
  fixturegen -gen-tangents table cone.json
  fixturegen cone-uv -variant arc -out cone_uv.png
  fixturegen -per-line 6 init-config

Global flags:`)
	config.PrintDefaults(w)
}
