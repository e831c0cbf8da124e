package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-cards/internal/cards"
	"github.com/jonathan/resume-cards/internal/observability"
	"github.com/jonathan/resume-cards/internal/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <document.json> [more.json ...]",
	Short: "Classify JSON resume documents into section cards",
	Long: "Classify one or more extracted resume JSON documents into ordered section cards. " +
		"A single document prints to stdout unless --out-dir is given; multiple documents are classified concurrently and written next to their inputs.",
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

var (
	classifyOutDir      string
	classifyPretty      bool
	classifyCheckSchema bool
	classifyWorkers     int
)

func init() {
	classifyCmd.Flags().StringVar(&classifyOutDir, "out-dir", "", "Directory to write <name>.cards.json files to")
	classifyCmd.Flags().BoolVar(&classifyPretty, "pretty", false, "Print cards as formatted boxes instead of JSON")
	classifyCmd.Flags().BoolVar(&classifyCheckSchema, "check-schema", false, "Validate the produced cards against the section cards schema")
	classifyCmd.Flags().IntVar(&classifyWorkers, "workers", 4, "Maximum concurrent classifications")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, args []string) error {
	if len(args) == 1 && classifyOutDir == "" {
		return classifyToStdout(args[0])
	}

	if classifyOutDir != "" {
		if err := os.MkdirAll(classifyOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var g errgroup.Group
	g.SetLimit(max(classifyWorkers, 1))
	for _, path := range args {
		g.Go(func() error {
			outPath, err := classifyToFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(os.Stdout, "%s -> %s\n", path, outPath)
			return nil
		})
	}
	return g.Wait()
}

func classifyFile(path string) ([]cards.Card, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}

	built, err := cards.Classify(raw)
	if err != nil {
		return nil, nil, err
	}
	if built == nil {
		built = []cards.Card{}
	}

	cardsJSON, err := json.MarshalIndent(built, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal cards: %w", err)
	}

	if classifyCheckSchema {
		if err := schemas.ValidateCards(cardsJSON); err != nil {
			return nil, nil, fmt.Errorf("cards failed schema validation: %w", err)
		}
	}
	return built, cardsJSON, nil
}

func classifyToStdout(path string) error {
	built, cardsJSON, err := classifyFile(path)
	if err != nil {
		return err
	}

	if classifyPretty {
		observability.NewPrinter(os.Stdout).PrintCards(built)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(cardsJSON))
	return nil
}

func classifyToFile(path string) (string, error) {
	_, cardsJSON, err := classifyFile(path)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".cards.json"
	dir := classifyOutDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	outPath := filepath.Join(dir, name)

	if err := os.WriteFile(outPath, cardsJSON, 0o644); err != nil {
		return "", fmt.Errorf("failed to write cards: %w", err)
	}
	return outPath, nil
}
