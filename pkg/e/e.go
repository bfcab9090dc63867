package e

import "fmt"

var (
	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownCartBackend   = fmt.Errorf("unknown cart backend")

	// Ошибки каталога
	ErrCatalogUnavailable = fmt.Errorf("catalog is unavailable")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrProductIDRequired   = fmt.Errorf("product id is required")
	ErrInvalidDeliveryMode = fmt.Errorf("invalid delivery mode")

	// 404 Not Found
	ErrCartNotFound = fmt.Errorf("cart not found")

	// 409 Conflict
	ErrEmptyCart = fmt.Errorf("cart is empty")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
