// Package trx reads the TRX (Visual Studio Test Results) files that
// `dotnet test --logger trx` writes. Only the run-level counters are
// consumed; individual test entries are ignored.
package trx

import (
	"encoding/xml"
	"os"
)

// Namespace is the TRX schema namespace dotnet test emits.
const Namespace = "http://microsoft.com/schemas/VisualStudio/TeamTest/2010"

// Summary holds the counters of a single TRX file.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// Total returns the number of tests the TRX file accounts for.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// TRX counters carry many more attributes (total, executed, aborted,
// timeout, ...); only the three the report needs are mapped. Absent
// attributes stay zero.
type counters struct {
	Passed      int `xml:"passed,attr"`
	Failed      int `xml:"failed,attr"`
	NotExecuted int `xml:"notExecuted,attr"`
}

type resultSummary struct {
	Counters counters `xml:"http://microsoft.com/schemas/VisualStudio/TeamTest/2010 Counters"`
}

type testRun struct {
	XMLName       xml.Name      `xml:"http://microsoft.com/schemas/VisualStudio/TeamTest/2010 TestRun"`
	ResultSummary resultSummary `xml:"http://microsoft.com/schemas/VisualStudio/TeamTest/2010 ResultSummary"`
}

// ReadSummary parses the TRX file at path. A missing file, malformed
// XML, or a document without the namespaced ResultSummary counters all
// yield the zero Summary; per-group problems never surface as errors,
// the group simply reports 0/0.
func ReadSummary(path string) Summary {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}
	}
	var run testRun
	if err := xml.Unmarshal(data, &run); err != nil {
		return Summary{}
	}
	c := run.ResultSummary.Counters
	return Summary{
		Passed:  c.Passed,
		Failed:  c.Failed,
		Skipped: c.NotExecuted,
	}
}
