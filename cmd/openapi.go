package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/modrinth-go/modrinth"
	"github.com/s0up4200/modrinth-go/openapi"
)

var openapiOutput string

// openapiCmd exports the operations this client knows as an OpenAPI document
var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI 3.1 document of the supported operations",
	RunE:  runOpenAPI,
}

func init() {
	rootCmd.AddCommand(openapiCmd)

	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "", "write to a file instead of stdout")
}

func runOpenAPI(cmd *cobra.Command, args []string) error {
	doc, err := openapi.Document(openapi.DocumentInfo{
		Title:       "Labrinth",
		Version:     "v2",
		Description: "The Modrinth API, as covered by modrinth-go " + version,
		ServerURL:   openapi.DefaultBaseURL,
	}, modrinth.Operations())
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	if openapiOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		return err
	}

	if err := os.WriteFile(openapiOutput, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", openapiOutput, err)
	}

	fmt.Printf("Wrote %d operations to %s\n", len(modrinth.Operations()), openapiOutput)
	return nil
}
