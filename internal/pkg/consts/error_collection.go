package consts

import "github.com/cesarbruschetta/api-fintech/internal/pkg/models"

var (
	ErrorInvalidAmount = &models.CustomError{
		Code:    "FINTECH_VALIDATION_AMOUNT_NOT_POSITIVE",
		Message: "Amount must be greater than zero",
	}
	ErrorInvalidTerm = &models.CustomError{
		Code:    "FINTECH_VALIDATION_TERM_NOT_POSITIVE",
		Message: "Term must be a positive number of periods",
	}
	ErrorInvalidRate = &models.CustomError{
		Code:    "FINTECH_VALIDATION_RATE_NOT_POSITIVE",
		Message: "Rate must be greater than zero",
	}
	ErrorInvalidPeriodicRate = &models.CustomError{
		Code:    "FINTECH_VALIDATION_PERIODIC_RATE_OUT_OF_RANGE",
		Message: "Adjusted periodic rate out of range",
	}
	ErrorPaymentBeforeLoan = &models.CustomError{
		Code:    "FINTECH_VALIDATION_PAYMENT_DATE_BEFORE_LOAN",
		Message: "Date of a payment before the creation date of its loan.",
	}
	ErrorPaymentOverBalance = &models.CustomError{
		Code:    "FINTECH_VALIDATION_PAYMENT_OVER_BALANCE",
		Message: "Payment amount higher than its loan balance.",
	}
	ErrorInvalidPaymentStatus = &models.CustomError{
		Code:    "FINTECH_VALIDATION_PAYMENT_STATUS_INVALID",
		Message: "Payment status must be 'made' or 'missed'",
	}
	ErrorInvalidDateFormat = &models.CustomError{
		Code:    "FINTECH_VALIDATION_DATE_FORMAT_INVALID",
		Message: "Date not in a supported format",
	}
	ErrorMissingRequiredFields = &models.CustomError{
		Code:    "FINTECH_VALIDATION_MISSING_REQUIRED_FIELDS",
		Message: "Missing required fields",
	}
	ErrorDuplicateCPF = &models.CustomError{
		Code:    "FINTECH_VALIDATION_CPF_ALREADY_REGISTERED",
		Message: "CPF already registered",
	}
	ErrorAdmissionDenied = &models.CustomError{
		Code:    "FINTECH_ADMISSION_CLIENT_INDEBTED",
		Message: "Denied loan request",
	}
	ErrorClientNotFound = &models.CustomError{
		Code:    "FINTECH_CLIENT_NOT_FOUND",
		Message: "Client not found",
	}
	ErrorLoanNotFound = &models.CustomError{
		Code:    "FINTECH_LOAN_NOT_FOUND",
		Message: "Loan not found",
	}
	ErrorPaymentInProgress = &models.CustomError{
		Code:    "FINTECH_VALIDATION_PAYMENT_IN_PROGRESS",
		Message: "Another payment for this loan is being processed",
	}
	ErrorSequenceUnavailable = &models.CustomError{
		Code:    "FINTECH_INTERNAL_ERROR_SEQUENCE_UNAVAILABLE",
		Message: "Could not reserve a loan number",
	}
)
