package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptdex/internal/extract"
	"promptdex/internal/logging"
)

var flagGetInstructionOnly bool

// getCmd fetches one registry document by slug and prints it, optionally
// reduced to its instruction payload.
var getCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Fetch one registry file by slug",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client := newRegistryClient(cfg, logging.New(cfg.LogLevel))

	doc, err := client.FetchDocument(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if flagGetInstructionOnly {
		if payload, ok := extract.Instruction(doc); ok {
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "note: no instruction section found, printing the full file")
	}

	fmt.Fprint(cmd.OutOrStdout(), doc)
	return nil
}

func init() {
	getCmd.Flags().BoolVar(&flagGetInstructionOnly, "instruction-only", false, "Print only the instruction payload")
	rootCmd.AddCommand(getCmd)
}
