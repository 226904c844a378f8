package throwback

import (
	"reflect"
	"runtime"
	"strings"
)

// record appends one assertion record, attributing the call to the line the
// test method invoked the primitive from.
func (u *Unit) record(kind string, passed bool) bool {
	_, _, line, ok := runtime.Caller(2)
	if !ok {
		line = 0
	}
	u.rec.add(kind, passed, line)
	return passed
}

// AssertEmpty records whether value is empty: nil, an empty string or
// collection, numeric zero, or false.
func (u *Unit) AssertEmpty(value any) bool {
	return u.record("assertEmpty", isEmpty(value))
}

// AssertNotEmpty records the negation of AssertEmpty.
func (u *Unit) AssertNotEmpty(value any) bool {
	return u.record("assertNotEmpty", !isEmpty(value))
}

// AssertEquals records whether expected and actual are identical under
// strict equality: same dynamic type and same value. Values of different
// types never compare equal.
func (u *Unit) AssertEquals(expected, actual any) bool {
	return u.record("assertEquals", strictEqual(expected, actual))
}

// AssertNotEquals records the negation of strict equality.
func (u *Unit) AssertNotEquals(expected, actual any) bool {
	return u.record("assertNotEquals", !strictEqual(expected, actual))
}

// AssertTrue records whether value is exactly boolean true.
func (u *Unit) AssertTrue(value any) bool {
	b, ok := value.(bool)
	return u.record("assertTrue", ok && b)
}

// AssertFalse records whether value is exactly boolean false.
func (u *Unit) AssertFalse(value any) bool {
	b, ok := value.(bool)
	return u.record("assertFalse", ok && !b)
}

// AssertContains records whether haystack contains needle as a substring.
func (u *Unit) AssertContains(haystack, needle string) bool {
	return u.record("assertContains", strings.Contains(haystack, needle))
}

func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
