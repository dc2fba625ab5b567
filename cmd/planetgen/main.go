// planetgen generates cube planets without a window: statistics, noise
// probes, config scaffolding and OBJ export.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeplanet/internal/config"
	"github.com/Faultbox/cubeplanet/internal/export"
	"github.com/Faultbox/cubeplanet/internal/logger"
	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/noise"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "stats":
		err = cmdStats(args)
	case "sample":
		err = cmdSample(args)
	case "init":
		err = cmdInit(args)
	case "obj", "export":
		err = cmdOBJ(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planetgen - headless cube planet generator

Usage:
  planetgen <command> [options]

Commands:
  stats  [-config f] [-res n] [-seed n] [-noise k]   Generate and print mesh statistics
  sample [-config f] <x> <y> <z>                     Print the elevation offset for a direction
  init   [path]                                      Write the default config (default planet.yaml)
  obj    [-config f] [-res n] <out.obj>              Export the mesh as Wavefront OBJ

Examples:
  planetgen stats -res 128 -noise opensimplex
  planetgen sample 0 1 0
  planetgen obj -res 64 planet.obj`)
}

// planetFlags are shared by commands that generate a planet.
type planetFlags struct {
	config  *string
	res     *int
	seed    *int64
	noise   *string
	verbose *bool
}

func newPlanetFlags(fs *flag.FlagSet) planetFlags {
	return planetFlags{
		config:  fs.String("config", "", "Config file (default: built-in planet)"),
		res:     fs.Int("res", 0, "Override vertices per face edge"),
		seed:    fs.Int64("seed", 0, "Added to every layer seed"),
		noise:   fs.String("noise", "", "Override noise kind"),
		verbose: fs.Bool("v", false, "Log generation details"),
	}
}

func (pf planetFlags) load() (planet.Config, error) {
	level := "warn"
	if *pf.verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return planet.Config{}, err
	}

	cfg := config.Default().Planet
	if *pf.config != "" {
		full, err := config.LoadFile(*pf.config)
		if err != nil {
			return planet.Config{}, err
		}
		cfg = full.Planet
	}
	if *pf.res > 0 {
		cfg.Resolution = *pf.res
	}
	if *pf.seed != 0 {
		cfg = cfg.Reseed(*pf.seed)
	}
	if *pf.noise != "" {
		cfg.Noise = noise.Kind(*pf.noise)
	}
	return cfg, nil
}

func generate(cfg planet.Config) (*planet.MeshBuffer, time.Duration, error) {
	start := time.Now()
	m, err := planet.Generate(cfg)
	took := time.Since(start)
	if err != nil {
		return nil, took, err
	}
	logger.Debug("planet generated",
		zap.Int("resolution", cfg.Resolution),
		zap.Int("vertices", len(m.Vertices)),
		zap.Duration("took", took),
	)
	return m, took, nil
}

func cmdStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	pf := newPlanetFlags(fs)
	fs.Parse(args)

	cfg, err := pf.load()
	if err != nil {
		return err
	}
	m, took, err := generate(cfg)
	if err != nil {
		return err
	}

	b := m.Bounds()
	e := m.Elevation()
	fmt.Printf("Resolution: %d\n", m.Resolution)
	fmt.Printf("Noise:      %s (%d layers)\n", cfg.Noise, len(cfg.Layers))
	fmt.Printf("Vertices:   %d\n", len(m.Vertices))
	fmt.Printf("Triangles:  %d\n", m.TriangleCount())
	fmt.Printf("Bounds:     %v .. %v\n", b.Min, b.Max)
	fmt.Printf("Elevation:  %.4f .. %.4f (radius %.2f)\n", e.Min, e.Max, cfg.Radius)
	fmt.Printf("Time:       %v\n", took.Round(time.Microsecond))
	fmt.Println()
	fmt.Printf("  %-7s %9s %9s %10s %10s\n", "face", "vertices", "indices", "elev min", "elev max")
	for _, r := range m.Faces {
		fmt.Printf("  %-7s %9d %9d %10.4f %10.4f\n", r.Face, r.VertexCount, r.IndexCount, r.Elevation.Min, r.Elevation.Max)
	}
	return nil
}

func cmdSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	pf := newPlanetFlags(fs)
	fs.Parse(args)

	if fs.NArg() != 3 {
		return fmt.Errorf("usage: planetgen sample [-config f] <x> <y> <z>")
	}
	var xyz [3]float32
	for i := range xyz {
		f, err := strconv.ParseFloat(fs.Arg(i), 32)
		if err != nil {
			return fmt.Errorf("coordinate %d: %w", i, err)
		}
		xyz[i] = float32(f)
	}

	cfg, err := pf.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := math.Vec3FromArray(xyz).Normalize()
	offset, err := noise.Sample(cfg.Noise, dir, cfg.Layers)
	if err != nil {
		return err
	}
	fmt.Printf("direction %v: offset %.6f, surface radius %.6f\n", dir.Array(), offset, cfg.Radius+offset)
	return nil
}

func cmdInit(args []string) error {
	path := config.FileName
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Default().SaveTo(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func cmdOBJ(args []string) error {
	fs := flag.NewFlagSet("obj", flag.ExitOnError)
	pf := newPlanetFlags(fs)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: planetgen obj [-config f] [-res n] <out.obj>")
	}

	cfg, err := pf.load()
	if err != nil {
		return err
	}
	m, _, err := generate(cfg)
	if err != nil {
		return err
	}

	if err := writeOBJFile(fs.Arg(0), m); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n", fs.Arg(0), len(m.Vertices), m.TriangleCount())
	return nil
}

// writeOBJFile exports m to path, including any error from closing it.
func writeOBJFile(path string, m *planet.MeshBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteOBJ(f, m); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
