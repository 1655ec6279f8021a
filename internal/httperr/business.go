package httperr

import "errors"

// Kind classifica as falhas de regra de negócio detectadas pelos use cases.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindSchedulingConflict Kind = "scheduling_conflict"
	KindValidation         Kind = "validation"
	KindIntegrity          Kind = "integrity"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrSchedulingConflict(message string) error {
	return BusinessError{Kind: KindSchedulingConflict, Code: "scheduling_conflict", Message: message}
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrIntegrity(code, message string) error {
	return BusinessError{Kind: KindIntegrity, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
