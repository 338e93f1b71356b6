package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

func MapPtr[TIn any, TOut any](v *TIn, mapping func(TIn) TOut) *TOut {
	if v == nil {
		return nil
	}

	return Ptr(mapping(*v))
}

// NilIfBlank maps nil and whitespace-only strings to nil.
func NilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
