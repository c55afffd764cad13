package domain

import "errors"

// Domain errors - закрытый набор категорий, каждая транслируется в HTTP-ответ
var (
	// ErrDivideByZero - целочисленное деление на ноль (500)
	ErrDivideByZero = errors.New("division by zero")

	// ErrRouteNotFound - запрошенный маршрут не зарегистрирован (404)
	ErrRouteNotFound = errors.New("no handler found")

	// ErrNumberFormat - строку не удалось преобразовать в число (500)
	ErrNumberFormat = errors.New("invalid number format")

	// ErrUserNotFound - пользователь отсутствует в справочнике (500)
	ErrUserNotFound = errors.New("Error: User does not exists")

	// ErrNilReference - обращение по nil-ссылке (500)
	ErrNilReference = errors.New("nil reference")

	// ErrNotWritable - ответ не удалось сериализовать (500)
	ErrNotWritable = errors.New("response not writable")
)

// Label is the category text placed in the "error" field of the response body.
type Label string

const (
	LabelDivisionByZero Label = "Division by zero"
	LabelAPINotFound    Label = "Api Rest Not Found"
	LabelNumberFormat   Label = "Number Format not valid"
	LabelUserNotFound   Label = "User or role not found"
)

// CategoryError attaches one of the category sentinels to a concrete cause.
// errors.Is dispatches on the sentinel while the client still sees the cause
// text as the error message.
type CategoryError struct {
	Category error
	Cause    error
}

// Categorize wraps cause with the given category sentinel.
func Categorize(category, cause error) *CategoryError {
	return &CategoryError{Category: category, Cause: cause}
}

func (e *CategoryError) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Category.Error()
}

func (e *CategoryError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Category}
	}
	return []error{e.Category, e.Cause}
}

func GetErrorLabel(err error) Label {
	switch {
	case errors.Is(err, ErrDivideByZero):
		return LabelDivisionByZero
	case errors.Is(err, ErrRouteNotFound):
		return LabelAPINotFound
	case errors.Is(err, ErrNumberFormat):
		return LabelNumberFormat
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNilReference),
		errors.Is(err, ErrNotWritable):
		return LabelUserNotFound
	default:
		return LabelUserNotFound
	}
}

func GetHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRouteNotFound):
		return 404
	default:
		return 500
	}
}
