package throwback

// Record is the outcome of a single assertion call. It is created once per
// call and never modified afterwards.
type Record struct {
	Passed bool
	Kind   string // assertion name, e.g. "assertEquals"
	Class  string // test case type name
	Method string // test method that made the call
	Line   int    // line of the assertion call inside the test method
}

// recorder accumulates assertion records for one test case instance. The
// runner sets the class once and the method before each test procedure.
type recorder struct {
	class   string
	method  string
	records []Record
}

func (r *recorder) add(kind string, passed bool, line int) {
	r.records = append(r.records, Record{
		Passed: passed,
		Kind:   kind,
		Class:  r.class,
		Method: r.method,
		Line:   line,
	})
}
