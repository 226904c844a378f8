package throwback

import "testing"

func newBoundUnit() *Unit {
	u := &Unit{}
	u.bind(&Config{}, "SampleCase", 0)
	u.beginTest("testSample")
	return u
}

func TestAssertEquals(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"same ints", 4, 2 + 2, true},
		{"different ints", 5, 2 + 2, false},
		{"same strings", "go", "go", true},
		{"int vs float", 4, 4.0, false},
		{"int vs string", 4, "4", false},
		{"both nil", nil, nil, true},
		{"nil vs zero", nil, 0, false},
		{"equal slices", []int{1, 2}, []int{1, 2}, true},
		{"unequal slices", []int{1, 2}, []int{2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newBoundUnit()
			if got := u.AssertEquals(tt.expected, tt.actual); got != tt.want {
				t.Errorf("AssertEquals(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
			records := u.Assertions()
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Passed != tt.want {
				t.Errorf("record.Passed = %v, want %v", records[0].Passed, tt.want)
			}
			if records[0].Kind != "assertEquals" {
				t.Errorf("record.Kind = %q, want %q", records[0].Kind, "assertEquals")
			}
		})
	}
}

func TestAssertNotEquals(t *testing.T) {
	u := newBoundUnit()
	if !u.AssertNotEquals(4, 5) {
		t.Error("expected 4 != 5 to pass")
	}
	if u.AssertNotEquals(4, 4) {
		t.Error("expected 4 != 4 to fail")
	}
	if !u.AssertNotEquals(4, 4.0) {
		t.Error("expected values of different types to be unequal")
	}
}

func TestAssertEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"zero int", 0, true},
		{"zero float", 0.0, true},
		{"false", false, true},
		{"empty slice", []string{}, true},
		{"empty map", map[string]int{}, true},
		{"non-empty string", "x", false},
		{"non-zero int", 1, false},
		{"true", true, false},
		{"non-empty slice", []string{"a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newBoundUnit()
			if got := u.AssertEmpty(tt.value); got != tt.want {
				t.Errorf("AssertEmpty(%v) = %v, want %v", tt.value, got, tt.want)
			}
			u2 := newBoundUnit()
			if got := u2.AssertNotEmpty(tt.value); got == tt.want {
				t.Errorf("AssertNotEmpty(%v) = %v, want %v", tt.value, got, !tt.want)
			}
		})
	}
}

func TestAssertTrueFalse(t *testing.T) {
	u := newBoundUnit()
	if !u.AssertTrue(true) {
		t.Error("AssertTrue(true) should pass")
	}
	if u.AssertTrue(1) {
		t.Error("AssertTrue(1) should fail, value is not a bool")
	}
	if u.AssertTrue(false) {
		t.Error("AssertTrue(false) should fail")
	}
	if !u.AssertFalse(false) {
		t.Error("AssertFalse(false) should pass")
	}
	if u.AssertFalse(0) {
		t.Error("AssertFalse(0) should fail, value is not a bool")
	}
}

func TestAssertContains(t *testing.T) {
	u := newBoundUnit()
	if !u.AssertContains("hello world", "wor") {
		t.Error(`expected "hello world" to contain "wor"`)
	}
	if u.AssertContains("hello", "zzz") {
		t.Error(`expected "hello" not to contain "zzz"`)
	}
}

func TestRecordAttribution(t *testing.T) {
	u := newBoundUnit()
	u.AssertTrue(true)

	records := u.Assertions()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Class != "SampleCase" {
		t.Errorf("record.Class = %q, want %q", r.Class, "SampleCase")
	}
	if r.Method != "testSample" {
		t.Errorf("record.Method = %q, want %q", r.Method, "testSample")
	}
	if r.Line <= 0 {
		t.Errorf("record.Line = %d, want a positive call-site line", r.Line)
	}
}

func TestRecordsAccumulateInCallOrder(t *testing.T) {
	u := newBoundUnit()
	u.AssertTrue(true)
	u.AssertEquals(1, 2)
	u.AssertContains("abc", "b")

	records := u.Assertions()
	kinds := []string{"assertTrue", "assertEquals", "assertContains"}
	if len(records) != len(kinds) {
		t.Fatalf("expected %d records, got %d", len(kinds), len(records))
	}
	for i, kind := range kinds {
		if records[i].Kind != kind {
			t.Errorf("records[%d].Kind = %q, want %q", i, records[i].Kind, kind)
		}
	}
}
