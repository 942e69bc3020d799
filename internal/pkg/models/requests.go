package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateClientRequest struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	CPF       string `json:"cpf"`
}

type CreateClientResponse struct {
	ClientId string `json:"client_id"`
}

type ClientResponse struct {
	ClientId   string `json:"client_id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	CPF        string `json:"cpf"`
	IsIndebted bool   `json:"is_indebted"`
}

type CreateLoanRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Term     int             `json:"term"`
	Rate     decimal.Decimal `json:"rate"`
	Date     string          `json:"date"`
	ClientId string          `json:"client_id"`
}

type CreateLoanResponse struct {
	LoanId      string          `json:"loan_id"`
	Installment decimal.Decimal `json:"installment"`
}

type CreatePaymentRequest struct {
	Payment string          `json:"payment"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date"`
}

type CreatePaymentResponse struct {
	Payment        string          `json:"payment"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// LedgerEvent is the Kafka payload published after a loan origination or
// a ledger append.
type LedgerEvent struct {
	EventId    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	LoanId     string          `json:"loanId"`
	LoanNumber string          `json:"loanNumber"`
	ClientId   string          `json:"clientId"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// ClientNotification is the Pub/Sub payload the notification service
// sends after an origination decision or a recorded payment.
type ClientNotification struct {
	ClientId   string          `json:"clientId"`
	Event      string          `json:"event"`
	LoanNumber string          `json:"loanNumber"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}
