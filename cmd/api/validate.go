package main

import (
	"reflect"
	"strings"

	"github.com/farxc/cesla-billing/internal/store"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// falsy text fails required like an empty string
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if t, ok := field.Interface().(store.Text); ok {
			return t.OrEmpty()
		}
		return nil
	}, store.Text{})

	return v
}

func missingFields(err error) []string {
	var fields []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}
