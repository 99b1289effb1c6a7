package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	cli "github.com/urfave/cli/v2"

	"github.com/sicxe-assembler/sicxe/assemble"
	"github.com/sicxe-assembler/sicxe/browse"
	"github.com/sicxe-assembler/sicxe/config"
	"github.com/sicxe-assembler/sicxe/parser"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	app := &cli.App{
		Name:      "sicxe-asm",
		Usage:     "two-pass assembler for the SIC and SIC/XE instructional architectures",
		UsageText: "sicxe-asm [options] <source>.asm [-sic|-sicxe]",
		Version:   versionString(),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "sic", Usage: "assemble under legacy SIC addressing instead of SIC/XE"},
			&cli.BoolFlag{Name: "sicxe", Usage: "assemble under SIC/XE addressing (default)"},
			&cli.BoolFlag{Name: "verbose", Usage: "echo the pass-one trace and symbol table to stdout"},
			&cli.StringFlag{Name: "out-dir", Usage: "directory to write .obj and .lst files (default: alongside the source file)"},
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file (default: the platform config path)"},
			&cli.BoolFlag{Name: "browse", Usage: "launch the read-only listing/symbol browser instead of writing files"},
			&cli.BoolFlag{Name: "dump-config", Usage: "print the effective configuration as TOML and exit"},
		},
		Action: runAssemble,
		Commands: []*cli.Command{
			{
				Name:      "symbols",
				Usage:     "assemble a source file and print its symbol table",
				ArgsUsage: "<source>.asm",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "sic", Usage: "assemble under legacy SIC addressing instead of SIC/XE"},
				},
				Action: runSymbols,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func versionString() string {
	v := Version
	if Commit != "unknown" {
		v += " (" + Commit + ")"
	}
	if Date != "unknown" {
		v += " built " + Date
	}
	return v
}

// resolveMode decides SIC vs SIC/XE: an explicit -sic/-sicxe flag, or the
// same word as the positional argument after the source file, wins over
// the config file's assemble.mode, which in turn wins over the
// compiled-in SIC/XE default.
func resolveMode(c *cli.Context, cfg *config.Config) bool {
	if c.Bool("sic") {
		return true
	}
	if c.Bool("sicxe") {
		return false
	}
	switch c.Args().Get(1) {
	case "-sic":
		return true
	case "-sicxe":
		return false
	}
	return strings.EqualFold(cfg.Assemble.Mode, "sic")
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func runAssemble(c *cli.Context) error {
	if c.Bool("dump-config") {
		cfg, err := loadConfig(c)
		if err != nil {
			return cli.Exit(err, 1)
		}
		return dumpConfig(cfg)
	}

	if c.Args().Len() < 1 {
		return cli.Exit("expected a source file argument", 1)
	}
	sourcePath := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	sicMode := resolveMode(c, cfg)
	verbose := c.Bool("verbose") || cfg.Assemble.Verbose

	result, err := assemble.Assemble(sourcePath, sicMode, cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", sourcePath, err), 1)
	}

	if verbose {
		printTrace(sourcePath, result)
	}

	if result.Errors.HasErrors() {
		fmt.Fprint(os.Stderr, result.Errors.Error())
		return cli.Exit("assembly failed", 1)
	}

	if c.Bool("browse") {
		return browse.Run(result, cfg.Browse.ColorOutput)
	}

	return writeOutputs(sourcePath, c.String("out-dir"), result)
}

func runSymbols(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return cli.Exit("expected a source file argument", 1)
	}
	sourcePath := c.Args().First()

	cfg, err := config.Load()
	if err != nil {
		return cli.Exit(err, 1)
	}

	result, err := assemble.Assemble(sourcePath, c.Bool("sic"), cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", sourcePath, err), 1)
	}
	if result.Errors.HasErrors() {
		fmt.Fprint(os.Stderr, result.Errors.Error())
		return cli.Exit("assembly failed", 1)
	}

	fmt.Print(parser.FormatSymbols(result.Symbols))
	return nil
}

// printTrace echoes the pass-one trace (each parsed line, in source
// order) and the resolved symbol table, gated behind -verbose per
// spec.md §6: this output is not a stable interface.
func printTrace(sourcePath string, result *assemble.Result) {
	fmt.Printf("assembling %s\n", sourcePath)
	if lines, _, err := parser.ReadSource(sourcePath); err == nil {
		fmt.Println("pass one:")
		for _, l := range lines {
			fmt.Printf("%10s%10s%10s\n", l.Label, l.Mnemonic, l.Operand.String())
		}
	}
	if result.State != nil {
		fmt.Printf("  start=%04X entry=%04X length=%04X\n",
			result.State.StartAddr, result.State.EntryAddr, result.State.ProgramLength)
	}
	if result.Symbols != nil {
		fmt.Println("symbol table:")
		fmt.Print(parser.FormatSymbols(result.Symbols))
	}
}

// writeOutputs writes the object program (.obj) and listing (.lst) next
// to the source file, or under -out-dir when given.
func writeOutputs(sourcePath, outDir string, result *assemble.Result) error {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	dir := filepath.Dir(sourcePath)
	if outDir != "" {
		dir = outDir
		if err := os.MkdirAll(dir, 0750); err != nil {
			return cli.Exit(fmt.Sprintf("creating %s: %v", dir, err), 1)
		}
	}

	objPath := filepath.Join(dir, base+".obj")
	if err := os.WriteFile(objPath, []byte(result.Program.String()+"\n"), 0644); err != nil { // #nosec G306 -- assembler output, not sensitive
		return cli.Exit(fmt.Sprintf("writing %s: %v", objPath, err), 1)
	}

	lstPath := filepath.Join(dir, base+".lst")
	if err := os.WriteFile(lstPath, []byte(result.Listing), 0644); err != nil { // #nosec G306 -- assembler output, not sensitive
		return cli.Exit(fmt.Sprintf("writing %s: %v", lstPath, err), 1)
	}

	fmt.Printf("wrote %s and %s\n", objPath, lstPath)
	return nil
}

// dumpConfig serializes the effective configuration to TOML on stdout,
// the same encoding Config.Save()/SaveTo() write to disk.
func dumpConfig(cfg *config.Config) error {
	encoder := toml.NewEncoder(os.Stdout)
	return encoder.Encode(cfg)
}
