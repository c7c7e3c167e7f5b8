// Package apperror описывает классы ошибок приложения и их отображение
// в HTTP-статус и текст для клиента.
//
// Слой хранилища и сервисы возвращают сентинел-ошибки или *Error,
// а Classify сводит любую ошибку к Result с явным видом Kind.
package apperror

import (
	"errors"
	"net/http"
	"strings"
)

// Kind обозначает вид ошибки.
type Kind int

// Виды ошибок в порядке проверки в Classify.
const (
	KindUnclassified Kind = iota
	KindMalformedID
	KindNotFound
	KindDuplicateKey
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindMalformedID:
		return "malformed_id"
	case KindNotFound:
		return "not_found"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindValidation:
		return "validation"
	default:
		return "unclassified"
	}
}

// Сообщения, которые видит клиент.
const (
	MsgNotFound     = "Resource not found"
	MsgDuplicateKey = "Duplicate field value entered"
	MsgServerError  = "Server error"
)

var (
	// ErrNotFound: запись с таким идентификатором отсутствует.
	ErrNotFound = errors.New("resource not found")
	// ErrMalformedID: идентификатор не удалось привести к типу ключа.
	ErrMalformedID = errors.New("malformed identifier")
	// ErrDuplicateKey: нарушено ограничение уникальности.
	ErrDuplicateKey = errors.New("duplicate key")
)

// FieldError описывает нарушение ограничения одного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors содержит нарушения ограничений полей.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// Error описывает ошибку с явно заданным HTTP-статусом и сообщением для клиента.
type Error struct {
	Status  int
	Message string
	Err     error
}

// New создаёт ошибку с заданным статусом и сообщением.
func New(status int, msg string) *Error {
	return &Error{Status: status, Message: msg}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result содержит итог классификации ошибки.
type Result struct {
	Kind    Kind
	Status  int
	Message string
}

// Classify сопоставляет ошибке вид, HTTP-статус и сообщение.
// Внутренние подробности необработанных ошибок в сообщение не попадают.
func Classify(err error) Result {
	var verrs ValidationErrors
	var appErr *Error

	switch {
	case errors.Is(err, ErrMalformedID):
		return Result{Kind: KindMalformedID, Status: http.StatusNotFound, Message: MsgNotFound}
	case errors.Is(err, ErrNotFound):
		return Result{Kind: KindNotFound, Status: http.StatusNotFound, Message: MsgNotFound}
	case errors.Is(err, ErrDuplicateKey):
		return Result{Kind: KindDuplicateKey, Status: http.StatusBadRequest, Message: MsgDuplicateKey}
	case errors.As(err, &verrs):
		return Result{Kind: KindValidation, Status: http.StatusBadRequest, Message: verrs.Error()}
	case errors.As(err, &appErr):
		res := Result{Kind: KindUnclassified, Status: appErr.Status, Message: appErr.Message}
		if res.Status == 0 {
			res.Status = http.StatusInternalServerError
		}
		if res.Message == "" {
			res.Message = MsgServerError
		}
		return res
	default:
		return Result{Kind: KindUnclassified, Status: http.StatusInternalServerError, Message: MsgServerError}
	}
}
