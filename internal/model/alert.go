package model

// AlertSeverity ranks a finding. Errors block posting; warnings and
// info are advisory.
type AlertSeverity string

const (
	SeverityError   AlertSeverity = "error"
	SeverityWarning AlertSeverity = "warning"
	SeverityInfo    AlertSeverity = "info"
)

// Alert codes, stable across releases.
const (
	AlertNoLines        = "NO_LINES"
	AlertNoAmounts      = "NO_AMOUNTS"
	AlertImbalanced     = "IMBALANCED"
	AlertMissingAccount = "MISSING_ACCOUNT"
	AlertInvalidAmount  = "INVALID_AMOUNT"
	AlertFutureDate     = "FUTURE_DATE"
	AlertNoDesc         = "NO_DESC"
	AlertRevenueDebit   = "REV_DEBIT"
	AlertExpenseCredit  = "EXP_CREDIT"
	AlertLargeVsAssets  = "LARGE_VS_ASSETS"
	AlertLargeVsCash    = "LARGE_VS_CASH"
	AlertRoundNumbers   = "ROUND_NUMBERS"
	AlertPossibleDup    = "POSSIBLE_DUP"
)

// Alert is one finding from evaluating a journal entry. Alerts carry no
// identity and are never persisted; they are recomputed on demand.
type Alert struct {
	Severity AlertSeverity
	Code     string
	Message  string
}

// IsError reports whether the alert blocks posting.
func (a Alert) IsError() bool {
	return a.Severity == SeverityError
}
