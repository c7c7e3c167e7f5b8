// Package validation проверяет входные данные по тегам validate
// и формирует список нарушений apperror.ValidationErrors с человекочитаемыми сообщениями.
//
// Текущее время передаётся явно через Clock, чтобы правило "дата начала не в будущем"
// было детерминированным в тестах.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
)

// Clock возвращает текущее время.
type Clock func() time.Time

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// messages содержит сообщения для пар "Структура.Поле:тег".
var messages = map[string]string{
	"RegisterUserRequest.Name:required":     "User name is required",
	"RegisterUserRequest.Name:min":          "User name must be at least 2 characters",
	"RegisterUserRequest.Name:max":          "User name must be at most 50 characters",
	"RegisterUserRequest.Email:required":    "User email is required",
	"RegisterUserRequest.Email:basicemail":  "Please fill a valid email address",
	"RegisterUserRequest.Password:required": "User password is required",
	"RegisterUserRequest.Password:min":      "Password must be at least 6 characters",

	"CreateSubscriptionRequest.Name:required":          "Subscription name is required",
	"CreateSubscriptionRequest.Name:min":               "Subscription name must be at least 2 characters",
	"CreateSubscriptionRequest.Name:max":               "Subscription name must be at most 100 characters",
	"CreateSubscriptionRequest.Price:required":         "Subscription price is required",
	"CreateSubscriptionRequest.Price:gte":              "Price must be greater than 0",
	"CreateSubscriptionRequest.Currency:oneof":         "Currency must be one of USD, EUR, GBP, VND",
	"CreateSubscriptionRequest.Frequency:oneof":        "Frequency must be one of daily, weekly, monthly, yearly",
	"CreateSubscriptionRequest.Category:required":      "Subscription category is required",
	"CreateSubscriptionRequest.Category:oneof":         "Category is not supported",
	"CreateSubscriptionRequest.PaymentMethod:required": "Payment method is required",
	"CreateSubscriptionRequest.Status:oneof":           "Status must be one of active, cancelled, expired",
	"CreateSubscriptionRequest.StartDate:required":     "Start date is required",
	"CreateSubscriptionRequest.StartDate:notfuture":    "Start date must be in the past",
	"CreateSubscriptionRequest.RenewalDate:gtfield":    "Renewal date must be after the start day",
	"CreateSubscriptionRequest.UserID:required":        "Subscription user is required",
	"CreateSubscriptionRequest.UserID:uuid":            "Subscription user must be a valid identifier",
}

// Validator оборачивает validator.Validate с зарегистрированными правилами приложения.
type Validator struct {
	validate *validator.Validate
	now      Clock
}

// New создаёт Validator. Если now равен nil, используется time.Now.
func New(now Clock) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{
		validate: validator.New(),
		now:      now,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Ошибки регистрации возможны только при пустом имени тега.
	_ = v.validate.RegisterValidation("notfuture", v.notFuture)
	_ = v.validate.RegisterValidation("basicemail", basicEmail)

	return v
}

// Struct проверяет структуру и возвращает apperror.ValidationErrors
// со всеми нарушениями или nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation.Struct: %w", err)
	}

	res := make(apperror.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		res = append(res, apperror.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return res
}

func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(v.now())
}

func basicEmail(fl validator.FieldLevel) bool {
	return emailRe.MatchString(fl.Field().String())
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructNamespace()+":"+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", fe.Field())
	case "min":
		return fmt.Sprintf("field %s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("field %s can contain only uuid", fe.Field())
	default:
		return fmt.Sprintf("field %s is not a valid", fe.Field())
	}
}
