package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/auditlog"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/config"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/gitops"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/invoices"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/review"
)

func newConfirmCommand() *cobra.Command {
	var repoDir string
	var operator string
	var invoiceID int
	var reject bool
	var notes string

	cmd := &cobra.Command{
		Use:   "confirm <session> <row>",
		Short: "Record an operator decision on a review-session row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[1], err)
			}
			return runConfirm(absDir, args[0], row, operator, invoiceID, reject, notes)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&operator, "operator", "", "operator name (required)")
	_ = cmd.MarkFlagRequired("operator")
	cmd.Flags().IntVar(&invoiceID, "invoice", 0, "override: confirm against this invoice instead")
	cmd.Flags().BoolVar(&reject, "reject", false, "reject the proposed match")
	cmd.Flags().StringVar(&notes, "notes", "", "decision notes")

	return cmd
}

func runConfirm(root, sessionID string, row int, operator string, invoiceID int, reject bool, notes string) error {
	cfg, err := config.Load(filepath.Join(root, "tms.yaml"))
	if err != nil {
		return err
	}

	decision := review.Decision{
		Row:      row,
		Status:   model.DecisionConfirmed,
		Operator: operator,
		Notes:    notes,
	}
	action := "confirm"
	switch {
	case reject:
		decision.Status = model.DecisionRejected
		action = "reject"
	case invoiceID != 0:
		repo, err := invoices.Load(root)
		if err != nil {
			return err
		}
		if !repo.Exists(invoiceID) {
			return fmt.Errorf("unknown invoice %d", invoiceID)
		}
		decision.Status = model.DecisionOverridden
		decision.ChosenID = invoiceID
		action = "override"
	}

	svc := review.NewService(root)
	if err := svc.Decide(sessionID, decision); err != nil {
		return err
	}

	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Operator:  operator,
		Action:    action,
		SessionID: sessionID,
		Row:       row,
		InvoiceID: invoiceID,
		Details:   notes,
	}
	if err := auditlog.Append(root, []auditlog.Entry{entry}); err != nil {
		return err
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(root) {
		msg := fmt.Sprintf("%s: session %s row %d", action, sessionID, row)
		if _, err := gitops.CommitAll(root, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("committing decision: %w", err)
		}
	}

	fmt.Printf("Recorded %s for session %s row %d\n", action, sessionID, row)
	return nil
}
