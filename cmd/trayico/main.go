// Package main generates the tray icons. It's the CLI entrypoint.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/icedream/trayico"
)

// Build information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// variantsFlag collects repeated -variant flags.
type variantsFlag []trayico.Variant

func (f *variantsFlag) String() string {
	names := make([]string, len(*f))
	for i, v := range *f {
		names[i] = v.Name
	}
	return strings.Join(names, ",")
}

func (f *variantsFlag) Set(s string) error {
	v, err := trayico.ParseVariant(s)
	if err != nil {
		return err
	}
	*f = append(*f, v)
	return nil
}

// mergeVariants returns the built-in variants with extra ones replacing
// same-named entries or appended after them.
func mergeVariants(extra []trayico.Variant) []trayico.Variant {
	merged := append([]trayico.Variant(nil), trayico.Variants...)
outer:
	for _, v := range extra {
		for i := range merged {
			if merged[i].Name == v.Name {
				merged[i] = v
				continue outer
			}
		}
		merged = append(merged, v)
	}
	return merged
}

func main() {
	// Handle version flag before flag.Parse processes it
	for _, arg := range os.Args {
		if arg == "-V" {
			fmt.Printf("trayico version %s, commit %s, built at %s\n", version, commit, date)
			os.Exit(0)
		}
	}

	var extra variantsFlag
	outDir := flag.String("o", "res", "output directory")
	preview := flag.Bool("preview", false, "also write a BMP preview per variant and size")
	sysoName := flag.String("syso", "", "write a Windows resource embedding the default icon to this file")
	arch := flag.String("arch", "amd64", "target architecture of the resource file")
	fileVersion := flag.String("version", "", "file version of the resource (default from git tags)")
	flag.Var(&extra, "variant", "additional variant as name=RRGGBB:RRGGBB (repeatable)")
	flag.Parse()

	gen := trayico.NewGenerator(*outDir)
	gen.Variants = mergeVariants(extra)
	gen.Preview = *preview

	if _, err := gen.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if *sysoName == "" {
		return
	}

	if *fileVersion == "" {
		*fileVersion = trayico.GitVersion()
	}
	fmt.Fprintf(os.Stderr, "Generating Windows resource file with version: %s\n", *fileVersion)

	err := trayico.WriteSyso(gen.DefaultPath(), *sysoName, *arch, trayico.ResourceInfo{
		Product:     "claudeusage",
		Description: "Claude usage tray monitor",
		Version:     *fileVersion,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running goversioninfo: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Successfully generated Windows resource file")
}
