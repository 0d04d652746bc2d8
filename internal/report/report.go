// Package report renders a reconciliation report as human-readable text
// for CLI output.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/iho/bankmatch/internal/domain"
)

const unmatchedMark = "-"

// Render formats a reconciliation report as plain text.
func Render(r *domain.ReconciliationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reconciliation run %s (%s)\n\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	b.WriteString("Transactions\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tAMOUNT\tATTACHMENT")
	for _, m := range r.TransactionMatches {
		attID := unmatchedMark
		if m.Attachment != nil {
			attID = m.Attachment.ID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.Transaction.ID,
			m.Transaction.Date.Format("2006-01-02"),
			m.Transaction.Amount.StringFixed(2),
			attID,
		)
	}
	tw.Flush()

	b.WriteString("\nAttachments\n")
	tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tAMOUNT\tTRANSACTION")
	for _, m := range r.AttachmentMatches {
		txID := unmatchedMark
		if m.Transaction != nil {
			txID = m.Transaction.ID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.Attachment.ID,
			m.Attachment.Kind,
			m.Attachment.Amount.StringFixed(2),
			txID,
		)
	}
	tw.Flush()

	if len(r.Expectations) > 0 {
		b.WriteString("\nExpectations\n")
		tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TRANSACTION\tEXPECTED\tACTUAL\tRESULT")
		for _, e := range r.Expectations {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				e.Expected.TransactionID,
				orMark(e.Expected.AttachmentID),
				orMark(e.ActualID),
				passMark(e.Passed),
			)
		}
		tw.Flush()
	}

	b.WriteString("\nSummary\n")
	fmt.Fprintf(&b, "  transactions: %d total, %d matched, %d unmatched\n",
		r.Summary.TotalTransactions, r.Summary.MatchedTransactions, r.Summary.UnmatchedTransactions)
	fmt.Fprintf(&b, "  attachments:  %d total, %d matched, %d unmatched\n",
		r.Summary.TotalAttachments, r.Summary.MatchedAttachments, r.Summary.UnmatchedAttachments)
	if r.Summary.ExpectationsEvaluated > 0 {
		fmt.Fprintf(&b, "  expectations: %d evaluated, %d passed, %d failed\n",
			r.Summary.ExpectationsEvaluated, r.Summary.ExpectationsPassed, r.Summary.ExpectationsFailed)
	}

	return b.String()
}

func orMark(id string) string {
	if id == "" {
		return unmatchedMark
	}
	return id
}

func passMark(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
