package consts

const (
	ClientsCollection   = "Clients"
	LoansCollection     = "Loans"
	PaymentsCollection  = "Payments"
	SequencesCollection = "Sequences"

	// Sequences document reserved for loan display numbers
	LoanNumberSequence = "loanNumber"
)

const (
	EventLoanCreated     = "loan.created"
	EventPaymentRecorded = "payment.recorded"

	NotificationLoanApproved    = "LOAN_APPROVED"
	NotificationLoanDenied      = "LOAN_DENIED"
	NotificationPaymentReceived = "PAYMENT_RECEIVED"
	NotificationPaymentMissed   = "PAYMENT_MISSED"
)

const (
	ReportFileNameDateFormat = "20060102"
)

// Accepted request datetime layouts, most specific first. The second
// form ("2019-05-09 03:18Z") is what the historic API consumers send.
var RequestDateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
}
