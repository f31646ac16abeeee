package httperr

import "errors"

// BusinessError carrega um código de regra de negócio
// ("item_already_assigned", "already_returned", ...) das camadas de
// use case até o handler, que o traduz em status HTTP e mensagem em
// português.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
