package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/auditlog"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/review"
)

const salesCSV = `id,reference_number,partner_name,total_amount,payment_state
101,INV-2024-001,Transnorda UAB,150.00,not_paid
`

const purchasesCSV = `id,reference_number,partner_name,total_amount,payment_state
202,BSI-7788,"Baltijos Statyba, UAB",320.50,not_paid
205,PIR-9900,Tiekejas UAB,99.90,not_paid
`

// setupWorkspace initializes a workspace with invoices and one pending
// statement export.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	out, err := runTMS(t, "init", dir, "--name", "Transnorda UAB")
	require.NoError(t, err, out)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoices", "sales.csv"), []byte(salesCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoices", "purchases.csv"), []byte(purchasesCSV), 0o644))

	stmt, err := os.ReadFile("../../testdata/swedbank_statement.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "statements", "export.csv"), stmt, 0o644))

	return dir
}

func findSession(t *testing.T, dir string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "sessions", "*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	return strings.TrimSuffix(filepath.Base(matches[0]), ".csv")
}

func TestReconcile_EndToEnd(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := runTMS(t, "reconcile", "--repo", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "2 matched")

	sessionID := findSession(t, dir)
	items, err := review.NewService(dir).Load(sessionID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Full number+amount+partner match auto-confirms at the threshold.
	assert.Equal(t, 101, items[0].InvoiceID)
	assert.Equal(t, "1", items[0].Confidence.String())
	assert.Equal(t, model.CategorySales, items[0].Category)
	assert.Equal(t, model.DecisionConfirmed, items[0].Decision)
	assert.Equal(t, "auto", items[0].DecidedBy)

	assert.Equal(t, 202, items[1].InvoiceID)
	assert.Equal(t, model.CategoryPurchase, items[1].Category)

	// The export is moved out of the inbox.
	_, err = os.Stat(filepath.Join(dir, "statements", "export.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "statements", "processed", "export.csv"))
	assert.NoError(t, err)

	// The run is in the audit trail.
	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "reconcile", entries[0].Action)
	assert.Equal(t, sessionID, entries[0].SessionID)
}

func TestReconcile_NothingPending(t *testing.T) {
	dir := t.TempDir()
	out, err := runTMS(t, "init", dir, "--name", "Transnorda UAB")
	require.NoError(t, err, out)

	out, err = runTMS(t, "reconcile", "--repo", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "No statement exports")
}

func TestConfirm_Override(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := runTMS(t, "reconcile", "--repo", dir)
	require.NoError(t, err, out)
	sessionID := findSession(t, dir)

	out, err = runTMS(t, "confirm", sessionID, "4",
		"--repo", dir, "--operator", "tomas", "--invoice", "205", "--notes", "wrong supplier")
	require.NoError(t, err, out)

	items, err := review.NewService(dir).Load(sessionID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.DecisionOverridden, items[1].Decision)
	assert.Equal(t, 205, items[1].ChosenID)
	assert.Equal(t, "tomas", items[1].DecidedBy)

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "override", entries[1].Action)
	assert.Equal(t, 4, entries[1].Row)
}

func TestConfirm_UnknownInvoice(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := runTMS(t, "reconcile", "--repo", dir)
	require.NoError(t, err, out)
	sessionID := findSession(t, dir)

	out, err = runTMS(t, "confirm", sessionID, "4",
		"--repo", dir, "--operator", "tomas", "--invoice", "999")
	require.Error(t, err)
	assert.Contains(t, out, "unknown invoice")
}
