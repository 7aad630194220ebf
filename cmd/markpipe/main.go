// Command markpipe renders the lists described by a YAML document as HTML.
//
// Usage:
//
//	markpipe [document.yaml]
//
// The document defaults to markpipe.yaml. Values can be overridden with
// MARKPIPE_ environment variables, e.g. MARKPIPE_OUTPUT=index.html.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/KasperOmsK/markpipe/internal/config"
	"github.com/KasperOmsK/markpipe/internal/logger"
	"github.com/KasperOmsK/markpipe/internal/render"
	"github.com/KasperOmsK/markpipe/markup"
)

const defaultDocument = "markpipe.yaml"

func main() {
	path := defaultDocument
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(path); err != nil {
		log := logger.NewWithWriter(logger.Config{Format: logger.FormatConsole}, os.Stderr)
		log.Fatal().Err(err).Str("document", path).Msg("markpipe failed")
	}
}

func run(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().Str("document", path).Int("lists", len(cfg.Lists)).Msg("rendering")

	root, err := render.Document(cfg, log)
	if err != nil {
		return err
	}

	if err := write(cfg.Output, root, log); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	return nil
}

func write(output string, root markup.Node, log zerolog.Logger) error {
	var w io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := markup.Render(bw, root); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	log.Info().Str("output", output).Msg("done")
	return nil
}
