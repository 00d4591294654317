package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casperakos/kubesail-sub001/internal/types"
	"github.com/casperakos/kubesail-sub001/internal/wireblob"
)

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [base64-blob]",
		Short: "Decode a workflow argument blob",
		Long: `Run the argument-blob decoder on a base64 payload and print the
recovered identifiers. Reads from stdin when no argument is given.

Extraction is best-effort: fields whose byte patterns don't match are
simply absent from the output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDecode,
	}
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	var value string
	if len(args) == 1 {
		value = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		value = strings.TrimSpace(string(data))
	}

	decoded, diags := wireblob.Decode([]types.Parameter{
		{Name: "base64", Value: value},
	})
	if decoded == nil {
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "decode failed: %s %s\n", d.Reason, d.Detail)
		}
		return fmt.Errorf("no data recovered")
	}

	return outputResult(decoded, outputFmt)
}
