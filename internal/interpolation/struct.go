package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InterpolateStruct applies Expand to fields tagged with `env_interpolation:"yes"`. The struct
// is modified in place. Tagged string, []string and map[string]string fields are expanded;
// nested structs and struct pointers are walked whether tagged or not.
func InterpolateStruct(v any, lookup LookupFunc) error {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct || !val.CanSet() {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}

	return interpolateValue(val, lookup)
}

func interpolateValue(val reflect.Value, lookup LookupFunc) error {
	typ := val.Type()
	var errs []error

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.Struct:
			if err := interpolateValue(field, lookup); err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
			}
			continue
		case reflect.Ptr:
			if field.Type().Elem().Kind() == reflect.Struct && !field.IsNil() {
				if err := interpolateValue(field.Elem(), lookup); err != nil {
					errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
				}
			}
			continue
		}

		if strings.ToLower(fieldType.Tag.Get("env_interpolation")) != "yes" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			expanded, err := Expand(field.String(), lookup)
			if err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
				continue
			}
			field.SetString(expanded)

		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := 0; j < field.Len(); j++ {
				elem := field.Index(j)
				expanded, err := Expand(elem.String(), lookup)
				if err != nil {
					errs = append(errs, fmt.Errorf("field %s[%d]: %w", fieldType.Name, j, err))
					continue
				}
				elem.SetString(expanded)
			}

		case reflect.Map:
			if field.Type().Key().Kind() != reflect.String ||
				field.Type().Elem().Kind() != reflect.String ||
				field.IsNil() {
				continue
			}
			for _, key := range field.MapKeys() {
				expanded, err := Expand(field.MapIndex(key).String(), lookup)
				if err != nil {
					errs = append(errs, fmt.Errorf("field %s[%s]: %w", fieldType.Name, key.String(), err))
					continue
				}
				field.SetMapIndex(key, reflect.ValueOf(expanded).Convert(field.Type().Elem()))
			}
		}
	}

	return errors.Join(errs...)
}
