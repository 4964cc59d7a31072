package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"equipment-tracker/core/reconcile"
	"equipment-tracker/core/server"
	"equipment-tracker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	repairLedger bool
	purgeLedger  bool
	dryRunLedger bool
	yesConfirm   bool
)

// auditCmd reports ledger drift and optionally repairs it.
var auditCmd = &cobra.Command{
	Use:   "audit [equipment-id]",
	Short: "Audit equipment counters against the checkout ledger",
	Long: `Compares every item's counters with the outstanding balance of its checkouts.

Reports condition mix drift, availability above the loanable ceiling, stale
derived flags, over-returned checkouts and checkouts of deleted items.
Optionally repair the repairable counters, or purge orphaned checkouts.

Examples:
  # Report only
  audit

  # Audit a single item
  audit 1b4e28ba-2fa1-11d2-883f-0016d3cca427

  # Repair with interactive confirmation
  audit --repair

  # Repair and purge, non-interactive
  audit --repair --purge --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&repairLedger, "repair", false, "Repair availability and derived flags from the ledger")
	auditCmd.Flags().BoolVar(&purgeLedger, "purge", false, "Delete checkouts whose equipment no longer exists")
	auditCmd.Flags().BoolVar(&dryRunLedger, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	auditCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := loadDeps()
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	// Storage is not touched by the ledger audit.
	svc := integrity.NewService(rt.db, nil, rt.cfg.Storage, rt.logger)

	if len(args) == 1 {
		result, err := svc.AuditItem(ctx, server.RoleMaster, args[0])
		if err != nil {
			return err
		}
		printResult(rt.logger, *result)
		return nil
	}

	opts := reconcile.ReconcileOptions{
		DoRepair: repairLedger,
		DoPurge:  purgeLedger,
		DryRun:   dryRunLedger,
	}

	rt.logger.Info("Planning ledger audit...")
	report, err := svc.AuditLedger(ctx, server.RoleMaster, opts)
	if err != nil {
		return fmt.Errorf("failed to plan audit: %w", err)
	}
	printAuditReport(rt.logger, report.ReconcilePlan)

	if !repairLedger && !purgeLedger {
		rt.logger.Info("No actions requested. Use --repair to fix counters or --purge to delete orphaned checkouts.")
		return nil
	}
	if dryRunLedger {
		rt.logger.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(report.Actions) == 0 {
		rt.logger.Info("No actions required based on current flags.")
		return nil
	}

	if !confirmDestructiveAction() {
		rt.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	rt.logger.Info("Applying actions...")
	report, err = svc.AuditLedger(ctx, server.RoleMaster, opts)
	if err != nil {
		return fmt.Errorf("failed to apply audit: %w", err)
	}
	rt.logger.Info("Successfully executed actions", zap.Int("count", report.Executed))
	return nil
}

func printAuditReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Ledger audit report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("drifted", s.Drifted),
		zap.Int("unrepairable", s.Unrepairable),
		zap.Int("orphans", s.Orphans),
	)

	for _, r := range plan.Results {
		if r.Drifted() {
			printResult(l, r)
		}
	}

	if len(plan.Actions) > 0 {
		l.Info("Planned actions",
			zap.Int("repair_actions", s.RepairActions),
			zap.Int("purge_actions", s.PurgeActions),
			zap.Int("total_actions", len(plan.Actions)),
		)

		maxShow := min(5, len(plan.Actions))
		for _, action := range plan.Actions[:maxShow] {
			l.Info("Sample action",
				zap.String("type", string(action.Type)),
				zap.String("key", action.Key),
				zap.String("reason", action.Reason),
			)
		}
		if len(plan.Actions) > maxShow {
			l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
		}
	}
}

func printResult(l *zap.Logger, r reconcile.ReconcileResult) {
	findings := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		findings = append(findings, f.String())
	}
	l.Info("Item",
		zap.String("id", r.ID),
		zap.String("name", r.Name),
		zap.Bool("orphan", r.Orphan()),
		zap.Strings("findings", findings),
		zap.Any("metadata", r.Metadata),
	)
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
