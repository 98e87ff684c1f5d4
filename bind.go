package settings

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/galaplate/settings/conferr"
)

var validate = validator.New()

// Bind populates dst, a pointer to struct, from settings named by
// `setting` field tags, then runs struct validation against the fields'
// `validate` tags. Untagged fields use the lower-cased field name; a tag
// of "-" skips the field. Keys are prefixed with prefix plus a dot.
//
// Absent settings leave the field's current value alone, so defaults are
// expressed by pre-filling the struct before binding. Nested structs bind
// under their own key prefix; time.Time and time.Duration fields parse
// the way GetTime and GetDuration do.
func (a *Accessor) Bind(prefix string, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return conferr.Invalid("bind target must be a non-nil pointer to struct, got %T", dst)
	}

	if err := a.bindStruct(prefix, rv.Elem()); err != nil {
		return err
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			messages := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				messages = append(messages, fmt.Sprintf("field validation for %q failed on the %q tag", fe.Field(), fe.Tag()))
			}
			return conferr.Invalid("settings validation failed: %s", strings.Join(messages, "; "))
		}
		return err
	}

	return nil
}

func (a *Accessor) bindStruct(prefix string, sv reflect.Value) error {
	st := sv.Type()

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("setting")
		if tag == "-" {
			continue
		}

		name := tag
		if name == "" {
			name = strings.ToLower(field.Name)
		}

		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		fv := sv.Field(i)

		if fv.Kind() == reflect.Struct && field.Type != reflect.TypeOf(time.Time{}) {
			if err := a.bindStruct(key, fv); err != nil {
				return err
			}
			continue
		}

		if err := a.bindField(key, fv); err != nil {
			return err
		}
	}

	return nil
}

func (a *Accessor) bindField(key string, fv reflect.Value) error {
	// Duration is Kind int64 and Time is Kind struct; both need their own
	// parse before the kind switch.
	switch fv.Interface().(type) {
	case time.Duration:
		value, err := a.GetDuration(key, time.Duration(fv.Int()))
		if err != nil {
			return err
		}
		fv.SetInt(int64(value))
		return nil
	case time.Time:
		value, err := a.GetTime(key, fv.Interface().(time.Time))
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(value))
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(a.GetDefault(key, fv.String()))
	case reflect.Bool:
		value, err := a.GetBool(key, fv.Bool())
		if err != nil {
			return err
		}
		fv.SetBool(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err := a.GetInt64(key, fv.Int())
		if err != nil {
			return err
		}
		if fv.OverflowInt(value) {
			return conferr.Parse("setting %q overflows %s", key, fv.Type())
		}
		fv.SetInt(value)
	case reflect.Float32, reflect.Float64:
		value, err := a.GetFloat64(key, fv.Float())
		if err != nil {
			return err
		}
		fv.SetFloat(value)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return conferr.Invalid("unsupported bind type %s for setting %q", fv.Type(), key)
		}
		if _, found, _ := a.resolve(key, true); !found {
			return nil
		}
		value, err := a.GetSlice(key)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(value))
	default:
		return conferr.Invalid("unsupported bind type %s for setting %q", fv.Type(), key)
	}

	return nil
}
