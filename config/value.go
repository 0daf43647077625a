package config

import (
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// check validates a value after it was converted to the field's type.
type check func(v any) error

func oneOf(options ...string) check {
	return func(v any) error {
		if s, ok := v.(string); ok && !lo.Contains(options, s) {
			return fmt.Errorf("%q is not one of %s", s, strings.Join(options, ", "))
		}
		return nil
	}
}

func between(min, max int) check {
	return func(v any) error {
		if n, ok := v.(int); ok && (n < min || n > max) {
			return fmt.Errorf("%d is out of range [%d, %d]", n, min, max)
		}
		return nil
	}
}

// Parse converts command line values to the type of the field's default
// and validates the result.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: no value given", f.Key)
	}

	var (
		v   any
		err error
	)
	switch f.Value.(type) {
	case string:
		v = values[0]
	case int:
		v, err = strconv.Atoi(values[0])
	case bool:
		v, err = strconv.ParseBool(values[0])
	case []string:
		v = values
	default:
		err = fmt.Errorf("unsupported type %s", f.typeName())
	}
	if err != nil {
		return nil, fmt.Errorf("%s: invalid %s value %q", f.Key, f.typeName(), values[0])
	}

	for _, c := range f.checks {
		if err := c(v); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Key, err)
		}
	}

	return v, nil
}

// UnknownKeyError is returned by Lookup for keys that are not registered.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	if f, ok := Default[k]; ok {
		return f, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, &UnknownKeyError{Key: k, Closest: closest}
}
