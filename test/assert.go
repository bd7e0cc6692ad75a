package test

import (
	"strings"
	"testing"
)

func Equal[T comparable](t *testing.T, expected, actual T) {
	t.Helper()

	if expected != actual {
		t.Errorf(""+
			"Not equal: \n"+
			"Expected: %v\n"+
			"Actual: %v", expected, actual)
	}
}

func True(t *testing.T, condition bool, msg string) {
	t.Helper()

	if !condition {
		t.Error(msg)
	}
}

func Contains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Errorf(""+
			"Not contained: \n"+
			"Looking for: %s\n"+
			"In: %s", needle, haystack)
	}
}
