package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/fixturegen/internal/config"
	"github.com/Faultbox/fixturegen/internal/logger"
	"github.com/Faultbox/fixturegen/internal/plot"
	"github.com/Faultbox/fixturegen/pkg/cone"
	"github.com/Faultbox/fixturegen/pkg/formats"
	"github.com/Faultbox/fixturegen/pkg/literal"
	"github.com/Faultbox/fixturegen/pkg/math"
	"github.com/Faultbox/fixturegen/pkg/mesh"
)

// stdinPath reads the input from stdin instead of a file.
const stdinPath = "-"

func (e *env) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.errOut)
	return fs
}

// inputArg returns the single positional argument of a command.
func inputArg(fs *flag.FlagSet, usage string) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("usage: fixturegen %s", usage)
	}
	return fs.Arg(0), nil
}

func (e *env) readInput(path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func (e *env) loadMesh(path string) (*mesh.Mesh, error) {
	var (
		m     *mesh.Mesh
		warns []formats.Warning
		err   error
	)
	if path == stdinPath {
		data, rerr := e.readInput(path)
		if rerr != nil {
			return nil, rerr
		}
		m, warns, err = formats.ParseMeshJSON(data)
	} else {
		m, warns, err = formats.LoadMeshJSON(path)
	}
	if err != nil {
		return nil, err
	}
	logWarnings(warns)
	logger.Debug("mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
		zap.Bool("positiveHandedness", m.PositiveHandedness))
	return m, nil
}

func logWarnings(warns []formats.Warning) {
	for _, w := range warns {
		logger.Warn("vertex field", zap.Int("vertex", w.Vertex), zap.Stringer("field", w.Field), zap.Error(w.Err))
	}
}

// prepareTangents fills in tangents from UVs when asked to and the mesh has none.
func (e *env) prepareTangents(m *mesh.Mesh, generate bool) error {
	if !generate || m.HasTangents() {
		return nil
	}
	degenerate, err := mesh.GenerateTangents(m, e.cfg.Tangents.Orthogonalize)
	if err != nil {
		return err
	}
	if degenerate > 0 {
		logger.Warn("degenerate UVs, used fallback tangent", zap.Int("triangles", degenerate))
	}
	logger.Info("tangents generated", zap.Int("triangles", m.TriangleCount()))
	return nil
}

func cmdTable(e *env, args []string) error {
	fs := e.newFlagSet("table")
	generate := fs.Bool("gen-tangents", e.cfg.Tangents.Generate, "Generate tangents from UVs when the input has none")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := inputArg(fs, "table [-gen-tangents] <mesh.json|->")
	if err != nil {
		return err
	}

	m, err := e.loadMesh(path)
	if err != nil {
		return err
	}
	if err := e.prepareTangents(m, *generate); err != nil {
		return err
	}

	opts := e.cfg.LiteralOptions()
	opts.HeaderLead = true

	if m.HasTangents() {
		logWarnings(formats.MissingFields(m, mesh.FieldNormal, mesh.FieldTangent))
		for _, i := range mesh.DeriveBitangents(m) {
			logger.Warn("normal or tangent is empty, bitangent left zero", zap.Int("vertex", i))
		}
	} else {
		mesh.DeriveBitangents(m)
		logger.Info("mesh has no tangents, tangent and bitangent blocks are zero")
	}
	return literal.WriteTables(e.out, m.Vertices, true, m.Indices, opts)
}

func cmdBitangents(e *env, args []string) error {
	fs := e.newFlagSet("bitangents")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := inputArg(fs, "bitangents <mesh.json|->")
	if err != nil {
		return err
	}

	m, err := e.loadMesh(path)
	if err != nil {
		return err
	}
	if err := e.prepareTangents(m, e.cfg.Tangents.Generate); err != nil {
		return err
	}
	for _, i := range mesh.DeriveBitangents(m) {
		logger.Warn("normal or tangent is empty", zap.Int("vertex", i))
	}
	return literal.WriteBitangents(e.out, m, e.cfg.LiteralOptions())
}

func cmdTangent(e *env, args []string) error {
	fs := e.newFlagSet("tangent")
	triangle := fs.Int("triangle", 0, "Triangle to evaluate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := inputArg(fs, "tangent [-triangle N] <mesh.json|->")
	if err != nil {
		return err
	}

	m, err := e.loadMesh(path)
	if err != nil {
		return err
	}
	tri, err := m.Triangle(*triangle)
	if err != nil {
		return err
	}
	t, degenerate, err := m.TriangleTangentAt(*triangle)
	if err != nil {
		return err
	}
	if degenerate {
		logger.Warn("degenerate UVs, used fallback tangent", zap.Int("triangle", *triangle))
	}

	perVertex := make([]math.Vec3, 0, len(tri))
	for _, idx := range tri {
		v := &m.Vertices[idx]
		if !v.Has(mesh.FieldNormal) {
			logger.Warn("vertex has no normal", zap.Uint32("vertex", idx))
		}
		perVertex = append(perVertex, mesh.OrthogonalizeTangent(t, v.Normal))
	}
	return literal.WriteTangentReport(e.out, t, perVertex)
}

func cmdVertices(e *env, args []string) error {
	fs := e.newFlagSet("vertices")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := inputArg(fs, "vertices <file|->")
	if err != nil {
		return err
	}

	data, err := e.readInput(path)
	if err != nil {
		return err
	}
	m, err := formats.ParseVertexLiteral(string(data))
	if err != nil {
		return err
	}
	logger.Debug("vertex literal parsed", zap.Int("rows", len(m.Vertices)), zap.Bool("tangents", m.HasTangents()))
	return literal.WriteVertices(e.out, m.Vertices, m.HasTangents(), e.cfg.LiteralOptions())
}

func cmdIndices(e *env, args []string) error {
	fs := e.newFlagSet("indices")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := inputArg(fs, "indices <file|->")
	if err != nil {
		return err
	}

	data, err := e.readInput(path)
	if err != nil {
		return err
	}
	indices, err := formats.ParseIndexLiteral(string(data))
	if err != nil {
		return err
	}
	logger.Debug("index literal parsed", zap.Int("indices", len(indices)))
	return literal.WriteIndices(e.out, indices, e.cfg.LiteralOptions())
}

func cmdConeUV(e *env, args []string) error {
	fs := e.newFlagSet("cone-uv")
	variant := fs.String("variant", "sine", "UV layout: arc or sine")
	centerU := fs.Float64("center-u", 0.5, "Fan center U")
	centerV := fs.Float64("center-v", 0, "Fan center V")
	out := fs.String("out", "", "Save the plot to this PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		fn     cone.UVFunc
		angles []float64
	)
	switch *variant {
	case "arc":
		fn, angles = cone.UVArcPoint, cone.DefaultArcAngles
	case "sine":
		fn, angles = cone.UVSinePoint, cone.DefaultSineAngles
	default:
		return fmt.Errorf("unknown variant %q (want arc or sine)", *variant)
	}

	center := math.V2(*centerU, *centerV)
	path := cone.UVPath(center, angles, fn)
	for i, a := range angles {
		p := path[i+1]
		if _, err := fmt.Fprintf(e.out, "Theta = %g° -> x = %.4f, y = %.4f\n", a, p.U(), p.V()); err != nil {
			return err
		}
	}

	if *out == "" {
		return nil
	}
	fig, err := plot.ConeUV(path, e.cfg.Plot.Width, e.cfg.Plot.Height)
	if err != nil {
		return err
	}
	if err := fig.SavePNG(*out); err != nil {
		return err
	}
	logger.Info("plot saved", zap.String("path", *out))
	return nil
}

func cmdConeNormal(e *env, args []string) error {
	fs := e.newFlagSet("cone-normal")
	radius := fs.Float64("radius", 0.5, "Base radius")
	height := fs.Float64("height", 3, "Cone height")
	out := fs.String("out", "", "Save the plot to this PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := math.V3(*radius, 0, 0)
	h := math.V3(0, *height, 0)
	n := cone.SideNormal(r, h)
	if _, err := fmt.Fprintf(e.out, "Side normal = %.6f, %.6f, %.6f\n", n.X(), n.Y(), n.Z()); err != nil {
		return err
	}

	if *out == "" {
		return nil
	}
	fig, err := plot.ConeNormal(r, h, n, e.cfg.Plot.Width, e.cfg.Plot.Height)
	if err != nil {
		return err
	}
	if err := fig.SavePNG(*out); err != nil {
		return err
	}
	logger.Info("plot saved", zap.String("path", *out))
	return nil
}

func cmdInitConfig(e *env, args []string) error {
	fs := e.newFlagSet("init-config")
	path := fs.String("path", "", "Where to write the config (default: user config directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if *path == "" {
		*path = config.DefaultPath()
		err = e.cfg.Save()
	} else {
		err = e.cfg.SaveTo(*path)
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	logger.Info("config written", zap.String("path", *path))
	_, err = fmt.Fprintf(e.out, "Config written to %s\n", *path)
	return err
}
