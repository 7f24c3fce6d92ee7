package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/logicfill/pkg/fill"
	"github.com/dshills/logicfill/pkg/layout"
	"github.com/dshills/logicfill/pkg/locations"
	"github.com/dshills/logicfill/pkg/patch"
	"github.com/dshills/logicfill/pkg/settings"
	"github.com/dshills/logicfill/pkg/world"
	"github.com/dshills/logicfill/pkg/worldexport"
)

const version = "0.1.0"

var (
	settingsPath = flag.String("settings", "", "Path to YAML settings profile (omitted = built-in defaults)")
	plandoPath   = flag.String("plando", "", "Path to a YAML plando file (required for the plando verb)")
	outputDir    = flag.String("output", ".", "Output directory for generated files")
	seedFlag     = flag.Uint64("seed", 0, "Override the seed from the settings profile (0 = use profile seed)")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("randomizer version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	verb := flag.Arg(0)
	if verb == "" {
		fmt.Fprintln(os.Stderr, "Error: a verb is required (randomize, plando, graph-dump)")
		printUsage()
		os.Exit(1)
	}

	if err := run(verb); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(verb string) error {
	switch verb {
	case "randomize":
		return runRandomize()
	case "plando":
		return runPlando()
	case "graph-dump":
		return runGraphDump()
	default:
		return fmt.Errorf("unknown verb %q (want randomize, plando, or graph-dump)", verb)
	}
}

func loadSettings() (*settings.Settings, error) {
	var s *settings.Settings
	if *settingsPath != "" {
		if *verbose {
			fmt.Printf("Loading settings from %s\n", *settingsPath)
		}
		loaded, err := settings.LoadSettings(*settingsPath)
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		s = loaded
	} else {
		s = settings.Default()
		if s.Seed == 0 {
			s.Seed = uint32(time.Now().UnixNano())
		}
	}
	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", s.Seed, *seedFlag)
		}
		s.Seed = uint32(*seedFlag)
	}
	return s, nil
}

func runRandomize() error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", s.Seed)
		fmt.Printf("Logic mode: %s\n", s.LogicMode)
	}

	g, pool, err := locations.Build()
	if err != nil {
		return fmt.Errorf("building location table: %w", err)
	}

	start := time.Now()
	lay, resolvedSeed, err := fill.RunWithRetry(g, s, pool)
	if err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Fill completed in %v (resolved seed %d, %d checks filled)\n", elapsed, resolvedSeed, lay.Count())
	}

	// The proprietary game image is out of scope; applying a Layout to real
	// game assets is the Patcher's job. NopPatcher exercises the same
	// Descriptor+Item dispatch a real Patcher would see, then the CLI falls
	// back to writing the spoiler log as its artifact.
	if err := applyToPatcher(g, lay, patch.NopPatcher{}); err != nil {
		return err
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	spoiler := &layout.Spoiler{Seed: resolvedSeed, Settings: s, Layout: lay}
	path := filepath.Join(*outputDir, fmt.Sprintf("spoiler_%d.json", resolvedSeed))
	if err := worldexport.SaveJSONToFile(spoiler, path); err != nil {
		return fmt.Errorf("writing spoiler log: %w", err)
	}

	fmt.Printf("Successfully filled seed %d in %v; spoiler log written to %s\n", resolvedSeed, elapsed, path)
	return nil
}

// applyToPatcher walks every Check in the graph and dispatches its placed
// Item through p via patch.Apply, mirroring what a ROM-writing Patcher
// implementation would receive.
func applyToPatcher(g *world.Graph, lay *layout.Layout, p patch.Patcher) error {
	for _, li := range g.AllLocations() {
		c, ok := g.CheckAt(li)
		if !ok {
			continue
		}
		it, ok := lay.Get(li)
		if !ok {
			return fmt.Errorf("check %s has no placed item", li)
		}
		if err := patch.Apply(p, c.Patch, it); err != nil {
			return fmt.Errorf("patching %s: %w", li, err)
		}
	}
	_, err := p.Finalise()
	return err
}

func runGraphDump() error {
	g, _, err := locations.Build()
	if err != nil {
		return fmt.Errorf("building location table: %w", err)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(*outputDir, "world_graph.svg")
	opts := worldexport.DefaultSVGOptions()
	opts.Title = "World Graph"
	if err := worldexport.SaveSVGToFile(g, path, opts); err != nil {
		return fmt.Errorf("writing world graph SVG: %w", err)
	}

	if *verbose {
		fmt.Printf("Rendered %d subregions\n", len(g.Subregions()))
	}
	fmt.Printf("World graph written to %s\n", path)
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: randomizer <randomize|plando|graph-dump> [options]")
	fmt.Fprintln(os.Stderr, "Run 'randomizer -help' for detailed help")
}

func printHelp() {
	fmt.Printf("randomizer version %s\n\n", version)
	fmt.Println("A logic-aware item randomizer for a fixed-content action-adventure game.")
	fmt.Println("\nUsage:")
	fmt.Println("  randomizer randomize [-settings profile.yaml] [-seed N] [-output dir]")
	fmt.Println("  randomizer plando -plando layout.yaml [-settings profile.yaml] [-output dir]")
	fmt.Println("  randomizer graph-dump [-output dir]")
	fmt.Println("\nFlags:")
	fmt.Println("  -settings string   Path to a YAML settings profile")
	fmt.Println("  -plando string     Path to a YAML plando file (required for plando)")
	fmt.Println("  -output string     Output directory (default: current directory)")
	fmt.Println("  -seed uint         Override the settings profile's seed")
	fmt.Println("  -verbose           Enable verbose output")
	fmt.Println("  -version           Print version and exit")
	fmt.Println("  -help              Show this help message")
}
