package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return v
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))

	for i, f := range e.Fields {
		msgs[i] = f.Message
	}

	return strings.Join(msgs, "; ")
}

type ApplicationInput struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Company    string `json:"company" validate:"required,min=2,max=150"`
	Motivation string `json:"motivation" validate:"required,min=50,max=1000"`
}

type MemberInput struct {
	InviteToken string   `json:"inviteToken" validate:"required"`
	Phone       string   `json:"phone"`
	Position    string   `json:"position"`
	Bio         string   `json:"bio" validate:"omitempty,max=500"`
	Expertise   []string `json:"expertise" validate:"required,min=1,dive,required"`
}

type ReviewInput struct {
	ReviewedBy string `json:"reviewedBy" validate:"required"`
}

type ListQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Page   int    `json:"page" validate:"min=1"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
}

// Check validates a schema struct and translates every violation into a
// field-level message. Values are never clamped or dropped.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	res := &Error{}

	for _, fe := range errs {
		res.Fields = append(res.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}

	return res
}

// ParseListQuery coerces textual query parameters, applying the documented
// defaults before validation. Non-numeric input is an error, not a default.
func ParseListQuery(status, page, limit string) (*ListQuery, error) {
	q := &ListQuery{Status: status, Page: 1, Limit: 20}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return nil, &Error{Fields: []FieldError{{Field: "page", Message: "page deve ser um número"}}}
		}

		q.Page = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return nil, &Error{Fields: []FieldError{{Field: "limit", Message: "limit deve ser um número"}}}
		}

		q.Limit = n
	}

	if err := Check(q); err != nil {
		return nil, err
	}

	return q, nil
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		switch fe.Tag() {
		case "min":
			return "Nome deve ter no mínimo 2 caracteres"
		case "max":
			return "Nome deve ter no máximo 100 caracteres"
		}
		return "Nome é obrigatório"
	case "email":
		if fe.Tag() == "required" {
			return "Email é obrigatório"
		}
		return "Email inválido"
	case "company":
		switch fe.Tag() {
		case "min":
			return "Empresa deve ter no mínimo 2 caracteres"
		case "max":
			return "Empresa deve ter no máximo 150 caracteres"
		}
		return "Empresa é obrigatória"
	case "motivation":
		switch fe.Tag() {
		case "min":
			return "Motivação deve ter no mínimo 50 caracteres"
		case "max":
			return "Motivação deve ter no máximo 1000 caracteres"
		}
		return "Motivação é obrigatória"
	case "inviteToken":
		return "Token de convite é obrigatório"
	case "bio":
		return "Bio deve ter no máximo 500 caracteres"
	case "expertise":
		return "Selecione ao menos uma área de expertise"
	case "reviewedBy":
		return "Nome do revisor é obrigatório"
	case "status":
		return "status deve ser PENDING, APPROVED ou REJECTED"
	case "page":
		return "page deve ser no mínimo 1"
	case "limit":
		return "limit deve estar entre 1 e 100"
	}

	return fmt.Sprintf("%s inválido", fe.Field())
}
