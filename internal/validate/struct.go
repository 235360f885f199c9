package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldTag names the struct tag that carries a field's form name. Untagged
// fields report their Go name.
const FieldTag = "form"

type clockKey struct{}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// sentinels maps a custom tag to the error reported for it.
var sentinels = map[string]error{
	"name":     ErrInvalidName,
	"phone":    ErrInvalidPhone,
	"contact":  ErrInvalidContact,
	"notpast":  ErrInvalidDate,
	"timeslot": ErrInvalidTimeSlot,
}

// fieldSentinels covers the built-in tags, whose meaning depends on the field.
var fieldSentinels = map[string]error{
	"guests": ErrInvalidGuests,
	"items":  ErrEmptyCart,
	"plan":   ErrInvalidPlan,
}

func validatorEngine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get(FieldTag), ",")
			if name == "" {
				return f.Name
			}
			return name
		})

		stringRule := func(tag string, ok func(string) bool) {
			if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return ok(fl.Field().String())
			}); err != nil {
				panic(fmt.Sprintf("validate: register %s: %v", tag, err))
			}
		}
		stringRule("name", Name)
		stringRule("phone", Phone)
		stringRule("contact", Contact)
		stringRule("timeslot", TimeSlot)

		if err := v.RegisterValidationCtx("notpast", func(ctx context.Context, fl validator.FieldLevel) bool {
			return Date(fl.Field().String(), clockFrom(ctx))
		}); err != nil {
			panic(fmt.Sprintf("validate: register notpast: %v", err))
		}

		engine = v
	})
	return engine
}

func clockFrom(ctx context.Context) time.Time {
	if now, ok := ctx.Value(clockKey{}).(time.Time); ok {
		return now
	}
	return time.Now()
}

// Struct runs the validate tags of v and reports failures under each field's
// form name, in declaration order.
func Struct(v any) Errors {
	return StructAt(v, time.Now())
}

// StructAt is Struct with notpast dates judged as of now.
func StructAt(v any, now time.Time) Errors {
	ctx := context.WithValue(context.Background(), clockKey{}, now)
	err := validatorEngine().StructCtx(ctx, v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "form", Err: err}}
	}

	errs := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{Field: fe.Field(), Err: sentinelFor(fe)})
	}
	return errs
}

func sentinelFor(fe validator.FieldError) error {
	if err, ok := sentinels[fe.Tag()]; ok {
		return err
	}
	if err, ok := fieldSentinels[fe.Field()]; ok {
		return err
	}
	return fmt.Errorf("failed %s", fe.Tag())
}
