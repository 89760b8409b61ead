// Command autolink reads an HTML document, decorates its headings with
// self-referencing anchor links, and writes the result.
//
// Usage:
//
//	autolink [-config config.yaml] [-o out.html] [in.html]
//
// Without an input file the document is read from stdin; without -o the
// result goes to stdout. The configuration file is the YAML form
// understood by autolink.ParseConfig; without one the default
// configuration applies (prepend an icon-marker link).
package main

import (
	"flag"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/chrisweb/autolink"
	"github.com/chrisweb/autolink/dom/htmladapter"
)

func main() {
	configPath := flag.String("config", "", "YAML transform configuration")
	outPath := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if err := run(*configPath, *outPath, flag.Arg(0)); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "autolink: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, outPath, inPath string) error {
	cfg := autolink.Config{}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return err
		}
		if cfg, err = autolink.ParseConfig(data); err != nil {
			return err
		}
	}
	transform, err := autolink.New(cfg)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	root, err := htmladapter.Parse(in)
	if err != nil {
		return err
	}
	if err := transform(root); err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return htmladapter.Render(out, root)
}
