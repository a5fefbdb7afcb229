package domain

import "time"

// StatusPhase is the phase of a user-visible action status.
type StatusPhase string

const (
	StatusPending StatusPhase = "pending"
	StatusSuccess StatusPhase = "success"
	StatusError   StatusPhase = "error"
)

// TransactionStatus is the transient feedback for the single in-flight user action.
type TransactionStatus struct {
	Phase     StatusPhase `json:"phase"`
	Message   string      `json:"message"`
	Visible   bool        `json:"visible"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func PendingStatus(message string) TransactionStatus {
	return TransactionStatus{Phase: StatusPending, Message: message, Visible: true}
}

func SuccessStatus(message string) TransactionStatus {
	return TransactionStatus{Phase: StatusSuccess, Message: message, Visible: true}
}

func ErrorStatus(message string) TransactionStatus {
	return TransactionStatus{Phase: StatusError, Message: message, Visible: true}
}

// HiddenStatus is the empty slot.
func HiddenStatus() TransactionStatus {
	return TransactionStatus{Phase: StatusPending}
}
