package domain

import "time"

// TransactionMatch is the outcome of matching one transaction against the
// attachment collection. Attachment is nil when no confident match exists.
type TransactionMatch struct {
	Transaction Transaction
	Attachment  *Attachment
}

// AttachmentMatch is the outcome of matching one attachment against the
// transaction collection. Transaction is nil when no confident match exists.
type AttachmentMatch struct {
	Attachment  Attachment
	Transaction *Transaction
}

// ExpectedPair is one entry of the expected-pairs fixture. An empty
// AttachmentID means the transaction is expected to stay unmatched.
type ExpectedPair struct {
	TransactionID string
	AttachmentID  string
}

// ExpectationResult records how one expected pair fared against the actual
// matching outcome.
type ExpectationResult struct {
	Expected ExpectedPair
	ActualID string // attachment id actually chosen, "" for no match
	Passed   bool
}

// ReconciliationSummary aggregates counts over one reconciliation run.
type ReconciliationSummary struct {
	TotalTransactions     int
	TotalAttachments      int
	MatchedTransactions   int
	MatchedAttachments    int
	UnmatchedTransactions int
	UnmatchedAttachments  int
	ExpectationsPassed    int
	ExpectationsFailed    int
	ExpectationsEvaluated int
}

// ReconciliationReport is the full result of reconciling both collections
// in both directions.
type ReconciliationReport struct {
	RunID              string
	GeneratedAt        time.Time
	TransactionMatches []TransactionMatch
	AttachmentMatches  []AttachmentMatch
	Expectations       []ExpectationResult
	Summary            ReconciliationSummary
}
