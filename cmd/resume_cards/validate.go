package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-cards/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <cards.json>",
	Short: "Validate a cards file against the section cards schema",
	Long:  "Validate a classified cards JSON file against the built-in section cards schema, or against an explicit schema file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchemaFile string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to a schema file (default: built-in section cards schema)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	if validateSchemaFile != "" {
		if err := schemas.ValidateJSON(validateSchemaFile, args[0]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s is valid against %s\n", args[0], validateSchemaFile)
		return nil
	}

	cardsJSON, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read cards file: %w", err)
	}
	if err := schemas.ValidateCards(cardsJSON); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", args[0])
	return nil
}
