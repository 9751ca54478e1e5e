package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/config"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/logging"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/statement"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/textenc"
)

func newParseCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a bank statement export and print the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runParse(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")

	return cmd
}

func runParse(root, file string) error {
	log := logging.Setup()

	cfg, err := config.Load(filepath.Join(root, "tms.yaml"))
	if err != nil {
		return err
	}

	outcome, err := parseStatementFile(cfg, file)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":    file,
		"total":   outcome.TotalRows,
		"parsed":  outcome.SuccessRows,
		"failed":  len(outcome.Errors),
		"skipped": outcome.SkippedRows(),
	}).Info("statement parsed")

	for _, txn := range outcome.Transactions {
		ref := txn.InvoiceNumber
		if ref == "" {
			ref = "-"
		}
		fmt.Printf("%4d  %-10s  %-4s %10s %s  ref=%s  %s\n",
			txn.Row, txn.Date, txn.DebitCredit, txn.Amount, txn.Currency, ref, txn.PartnerName)
	}
	for _, re := range outcome.Errors {
		fmt.Printf("%4d  ERROR %s\n", re.Row, re.Message)
	}
	return nil
}

// parseStatementFile decodes a statement export with the configured
// candidate encodings and runs the configured dialect parser over it.
func parseStatementFile(cfg *config.Config, file string) (model.ParseOutcome, error) {
	parser := statement.DefaultRegistry().Get(cfg.Statement.Format)
	if parser == nil {
		return model.ParseOutcome{}, fmt.Errorf("unknown statement format %q", cfg.Statement.Format)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return model.ParseOutcome{}, fmt.Errorf("reading statement: %w", err)
	}

	text, err := textenc.Decode(raw, cfg.Statement.Encodings)
	if err != nil {
		return model.ParseOutcome{}, fmt.Errorf("decoding statement: %w", err)
	}

	return parser.Parse(text), nil
}
