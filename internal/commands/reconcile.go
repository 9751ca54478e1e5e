package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/auditlog"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/config"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/gitops"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/invoices"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/logging"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/matcher"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/review"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/statement"
)

func newReconcileCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile pending statement exports into review sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runReconcile(absDir)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")

	return cmd
}

func runReconcile(root string) error {
	log := logging.Setup()

	cfg, err := config.Load(filepath.Join(root, "tms.yaml"))
	if err != nil {
		return err
	}

	repo, err := invoices.Load(root)
	if err != nil {
		return err
	}

	files, err := statement.Scan(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No statement exports to reconcile.")
		return nil
	}

	svc := review.NewService(root)
	now := time.Now()

	for _, file := range files {
		outcome, err := parseStatementFile(cfg, file.Path)
		if err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}

		results := matcher.MatchAll(outcome.Transactions, repo.Sales(), repo.Purchases())
		items := buildReviewItems(cfg, outcome.Transactions, results)

		sessionID, err := svc.Create(now.Year(), int(now.Month()), items)
		if err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}

		matched := 0
		for _, r := range results {
			if r.Matched() {
				matched++
			}
		}
		log.WithFields(logrus.Fields{
			"file":    file.Name,
			"session": sessionID,
			"parsed":  outcome.SuccessRows,
			"failed":  len(outcome.Errors),
			"matched": matched,
		}).Info("statement reconciled")

		entry := auditlog.Entry{
			Timestamp: now,
			Operator:  "tms",
			Action:    "reconcile",
			SessionID: sessionID,
			Details:   fmt.Sprintf("%s: %d/%d transactions matched", file.Name, matched, outcome.SuccessRows),
		}
		if err := auditlog.Append(root, []auditlog.Entry{entry}); err != nil {
			return err
		}

		if err := statement.MarkProcessed(root, file.Name); err != nil {
			return err
		}

		fmt.Printf("Session %s: %d transactions, %d matched (%s)\n",
			sessionID, outcome.SuccessRows, matched, file.Name)
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(root) {
		if _, err := gitops.CommitAll(root, "reconcile: new review sessions", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("committing sessions: %w", err)
		}
	}
	return nil
}

// buildReviewItems pairs each transaction with its match result. Matches
// at or above the auto-confirm threshold start out confirmed; everything
// else starts pending, with low-confidence matches flagged in the notes.
func buildReviewItems(cfg *config.Config, txns []model.Transaction, results []model.MatchResult) []model.ReviewItem {
	autoConfirm := decimal.NewFromFloat(cfg.Thresholds.AutoConfirm)
	reviewFlag := decimal.NewFromFloat(cfg.Thresholds.ReviewFlag)

	items := make([]model.ReviewItem, len(txns))
	for i, txn := range txns {
		res := results[i]
		item := model.ReviewItem{
			Row:         txn.Row,
			Date:        txn.Date,
			Description: txn.Description,
			PartnerName: txn.PartnerName,
			Amount:      txn.Amount,
			Currency:    txn.Currency,
			InvoiceID:   res.InvoiceID,
			Confidence:  res.Confidence,
			Category:    res.Category,
			Decision:    model.DecisionPending,
		}
		if res.Matched() && res.Confidence.GreaterThanOrEqual(autoConfirm) {
			item.Decision = model.DecisionConfirmed
			item.DecidedBy = "auto"
		} else if res.Matched() && res.Confidence.LessThan(reviewFlag) {
			item.Notes = "low-confidence match"
		}
		items[i] = item
	}
	return items
}
