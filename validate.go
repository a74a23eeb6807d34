package hydrus

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateOptions checks the validate tags of an options struct. Anything that
// is not a struct is left to the remote to judge.
func validateOptions(op string, opts any) error {
	if opts == nil {
		return nil
	}
	v := reflect.ValueOf(opts)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(v.Interface()); err != nil {
		return &InvalidArgumentError{Op: op, Err: err}
	}
	return nil
}

// requireOne returns an InvalidArgumentError unless exactly one of the named
// selectors is set.
func requireOne(op string, names string, set ...bool) error {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	if n == 1 {
		return nil
	}
	return &InvalidArgumentError{Op: op, Reason: "exactly one of " + names + " must be set"}
}
