package bittrex

import "fmt"

// HTTPError возвращается, когда биржа ответила статусом вне 2xx.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Неуспешный статус: %s", e.Status)
}
