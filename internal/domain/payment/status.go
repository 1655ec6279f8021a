package payment

// ===============================
// Payment Status / Method
// ===============================

type Status string

const (
	StatusPaid     Status = "PAID"
	StatusCanceled Status = "CANCELED"
)

type Method string

const (
	MethodCash       Method = "CASH"
	MethodCreditCard Method = "CREDIT_CARD"
	MethodDebitCard  Method = "DEBIT_CARD"
	MethodPix        Method = "PIX"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodPix:
		return true
	}
	return false
}
