// Package structs derives a configuration schema from a Go struct definition
// via reflection, replacing the compile-time codegen a source language with
// attribute macros would use. Field metadata rides on struct tags:
//
//	type Server struct {
//		// `config` overrides the externally visible key; "-" skips the field.
//		Address string `config:"listenAddress" doc:"Interface to bind."`
//		Port    int    `doc:"TCP port for the embedded server."`
//	}
//
// Natural identifiers are the snake_case form of the Go field name, so
// definition-level case conversion rules compose the same way serde's
// rename_all does. Defaults come from the prototype value the caller passes
// to FromValue, the Go analog of a per-field default function.
package structs

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-configdocs/pkg/format"
	"github.com/goliatone/go-configdocs/pkg/naming"
	"github.com/goliatone/go-configdocs/pkg/schema"
)

// NamingStyler is implemented by configuration structs that declare a case
// conversion rule for their own fields, mirroring a struct-level rename_all
// attribute. Nested structs declare their own rule independently.
type NamingStyler interface {
	NamingStyle() naming.Style
}

// Options configures schema extraction.
type Options struct {
	// Format stringifies scalar defaults. Required by FromValue, unused by
	// FromType.
	Format format.Format
	// RenameAll is the fallback case conversion for structs that do not
	// implement NamingStyler. Empty means keep natural identifiers.
	RenameAll naming.Style
}

// FromValue extracts a schema from a prototype value whose field contents are
// the declared defaults. definition must be a struct or pointer to struct.
func FromValue(definition any, opts Options) (schema.Schema, error) {
	if opts.Format == nil {
		return schema.Schema{}, fmt.Errorf("structs: format strategy is required to stringify defaults")
	}
	return extract(definition, opts, true)
}

// FromType extracts a schema from a struct definition without declaring any
// defaults. The argument's field values are ignored.
func FromType(definition any, opts Options) (schema.Schema, error) {
	return extract(definition, opts, false)
}

func extract(definition any, opts Options, withDefaults bool) (schema.Schema, error) {
	v := reflect.ValueOf(definition)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return schema.Schema{}, fmt.Errorf("structs: nil definition")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return schema.Schema{}, fmt.Errorf("structs: definition must be a struct, got %s", v.Kind())
	}

	fields, err := fieldsOf(v, opts, withDefaults)
	if err != nil {
		return schema.Schema{}, err
	}

	builder := schema.NewBuilder()
	for _, field := range fields {
		builder.AddField(field)
	}
	return builder.Build(), nil
}

func fieldsOf(v reflect.Value, opts Options, withDefaults bool) ([]schema.Field, error) {
	t := v.Type()
	style := styleOf(v, opts.RenameAll)

	var fields []schema.Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}

		rename, skip := parseConfigTag(sf.Tag.Get("config"))
		if skip {
			continue
		}

		name := rename
		if name == "" {
			name = naming.Apply(style, naming.ToSnake(sf.Name))
		}

		fv := v.Field(i)
		ft := sf.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
			if fv.Kind() == reflect.Pointer && !fv.IsNil() {
				fv = fv.Elem()
			} else if fv.Kind() == reflect.Pointer {
				fv = reflect.New(ft).Elem()
			}
		}

		field := schema.NewField(name).WithType(typeLabel(ft))
		if doc := sf.Tag.Get("doc"); doc != "" {
			field = field.WithDoc(doc)
		}

		switch ft.Kind() {
		case reflect.Struct:
			children, err := fieldsOf(fv, opts, withDefaults)
			if err != nil {
				return nil, err
			}
			field = field.WithNested(children...)

		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
			if withDefaults {
				literal, err := opts.Format.FormatScalar(scalarValue(fv))
				if err != nil {
					return nil, fmt.Errorf("structs: default for %s.%s: %w", t.Name(), sf.Name, err)
				}
				field = field.WithDefault(literal)
			}

		default:
			return nil, fmt.Errorf("structs: field %s.%s has unsupported kind %s", t.Name(), sf.Name, ft.Kind())
		}

		fields = append(fields, field)
	}
	return fields, nil
}

// parseConfigTag splits the `config` tag into its rename value. Only the
// leading token is meaningful today; trailing comma options are reserved.
func parseConfigTag(tag string) (rename string, skip bool) {
	if tag == "-" {
		return "", true
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i], false
		}
	}
	return tag, false
}

// scalarValue lowers defined types to their underlying kind so a custom
// string or integer type stringifies like its base type.
func scalarValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	default:
		return v.Interface()
	}
}

func styleOf(v reflect.Value, fallback naming.Style) naming.Style {
	if v.IsValid() && v.CanInterface() {
		if styler, ok := v.Interface().(NamingStyler); ok {
			return styler.NamingStyle()
		}
	}
	if v.CanAddr() && v.Addr().CanInterface() {
		if styler, ok := v.Addr().Interface().(NamingStyler); ok {
			return styler.NamingStyle()
		}
	}
	return fallback
}

func typeLabel(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.Kind().String()
}
