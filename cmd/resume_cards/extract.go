package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-cards/internal/extraction"
	"github.com/jonathan/resume-cards/internal/ingestion"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a JSON resume document from raw resume text or HTML",
	Long:  "Extract a structured JSON resume document from a plain text or HTML resume using the configured model. The output can then be fed to classify.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractAPIKey     string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume text or HTML file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output document JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	raw, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text := string(raw)
	if ingestion.IsHTML(text) {
		text, err = ingestion.ExtractHTMLText(text)
		if err != nil {
			return fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}
	text = ingestion.CleanText(text)
	if text == "" {
		return fmt.Errorf("no usable text in input file")
	}

	document, err := extraction.ExtractDocument(context.Background(), text, apiKey)
	if err != nil {
		return fmt.Errorf("failed to extract document: %w", err)
	}

	out := pretty.Pretty(document)
	if extractOutputFile == "" {
		_, _ = os.Stdout.Write(out)
		return nil
	}
	if err := os.WriteFile(extractOutputFile, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully extracted document\nOutput: %s\n", extractOutputFile)
	return nil
}
