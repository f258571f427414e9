package hamlet

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// Specifications gives a pair of assertion helpers for a test, the first
// expecting claims to hold and the second expecting them not to.
//
//	must, wont := hamlet.Specifications(t)
//	must.Equal(42, answer)
//	wont.Nil(result)
func Specifications(t *testing.T) (*Spec, *Spec) {
	return &Spec{t, true}, &Spec{t, false}
}

type Spec struct {
	t      *testing.T
	expect bool
}

func (it *Spec) True(value bool) {
	it.t.Helper()
	if value != it.expect {
		it.t.Errorf("Expected %v, got %v", it.expect, value)
	}
}

func (it *Spec) Nil(value interface{}) {
	it.t.Helper()
	if isNil(value) != it.expect {
		if it.expect {
			it.t.Errorf("Expected nil, got %#v", value)
		} else {
			it.t.Errorf("Expected not nil, got %#v", value)
		}
	}
}

func (it *Spec) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.expect {
		if it.expect {
			it.t.Errorf("Expected %#v, got %#v", expected, actual)
		} else {
			it.t.Errorf("Did not expect %#v", actual)
		}
	}
}

// Text compares the %v rendering of actual against expected.
func (it *Spec) Text(expected string, actual interface{}) {
	it.t.Helper()
	it.Equal(expected, fmt.Sprintf("%v", actual))
}

func (it *Spec) Contain(fragment string, actual string) {
	it.t.Helper()
	if strings.Contains(actual, fragment) != it.expect {
		if it.expect {
			it.t.Errorf("Expected %q to contain %q", actual, fragment)
		} else {
			it.t.Errorf("Expected %q to not contain %q", actual, fragment)
		}
	}
}

func (it *Spec) Panic(todo func()) {
	it.t.Helper()
	defer func() {
		it.t.Helper()
		caught := recover() != nil
		if caught != it.expect {
			if it.expect {
				it.t.Errorf("Expected panic, got none")
			} else {
				it.t.Errorf("Expected no panic, got one")
			}
		}
	}()
	todo()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}
