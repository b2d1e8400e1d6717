package junitreport

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Document shape of the serialized report. Attribute and element order
// follows the JUnit schema: suite attributes, then properties, test cases
// and holistic output; per case the result element precedes the captured
// output. encoding/xml handles escaping of text and attribute values.

type xmlReport struct {
	XMLName xml.Name   `xml:"testsuites"`
	Suites  []xmlSuite `xml:"testsuite"`
}

type xmlSuite struct {
	ID         int            `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Package    string         `xml:"package,attr"`
	Tests      int            `xml:"tests,attr"`
	Errors     int            `xml:"errors,attr"`
	Failures   int            `xml:"failures,attr"`
	Skipped    int            `xml:"skipped,attr"`
	Hostname   string         `xml:"hostname,attr"`
	Timestamp  string         `xml:"timestamp,attr,omitempty"`
	Time       string         `xml:"time,attr"`
	Properties *xmlProperties `xml:"properties"`
	Cases      []xmlCase      `xml:"testcase"`
	SystemOut  *xmlOutput     `xml:"system-out"`
	SystemErr  *xmlOutput     `xml:"system-err"`
}

type xmlProperties struct {
	Properties []xmlProperty `xml:"property"`
}

type xmlProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlCase struct {
	Name      string           `xml:"name,attr"`
	Classname string           `xml:"classname,attr,omitempty"`
	File      string           `xml:"file,attr,omitempty"`
	Time      string           `xml:"time,attr"`
	Skipped   *xmlSkipped      `xml:"skipped"`
	Error     *xmlResultDetail `xml:"error"`
	Failure   *xmlResultDetail `xml:"failure"`
	SystemOut *xmlOutput       `xml:"system-out"`
	SystemErr *xmlOutput       `xml:"system-err"`
}

type xmlSkipped struct{}

type xmlResultDetail struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Trace   string `xml:",chardata"`
}

type xmlOutput struct {
	Content string `xml:",chardata"`
}

// WriteXML serializes the report to w as a UTF-8 JUnit XML document.
// Serialization is a single stateless traversal: the same report always
// produces byte-identical output. A sink write failure is returned wrapped.
func (r Report) WriteXML(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write junit report: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(r.document()); err != nil {
		return fmt.Errorf("write junit report: %w", err)
	}
	return nil
}

func (r Report) document() xmlReport {
	doc := xmlReport{}
	for _, ts := range r.suites {
		doc.Suites = append(doc.Suites, suiteElement(ts))
	}
	return doc
}

func suiteElement(ts TestSuite) xmlSuite {
	el := xmlSuite{
		ID:        ts.id,
		Name:      ts.name,
		Package:   "testsuite/" + ts.name,
		Tests:     ts.tests,
		Errors:    ts.errors,
		Failures:  ts.failures,
		Skipped:   ts.skipped,
		Hostname:  "localhost",
		Time:      formatSeconds(ts.time),
		SystemOut: outputElement(ts.systemOut),
		SystemErr: outputElement(ts.systemErr),
	}
	if !ts.timestamp.IsZero() {
		el.Timestamp = ts.timestamp.Format(time.RFC3339)
	}
	if len(ts.properties) > 0 {
		props := &xmlProperties{}
		for _, p := range ts.properties {
			props.Properties = append(props.Properties, xmlProperty{Name: p.Name, Value: p.Value})
		}
		el.Properties = props
	}
	for _, tc := range ts.cases {
		el.Cases = append(el.Cases, caseElement(tc))
	}
	return el
}

func caseElement(tc TestCase) xmlCase {
	el := xmlCase{
		Name:      tc.name,
		Classname: tc.classname,
		File:      tc.filepath,
		Time:      formatSeconds(tc.duration),
		SystemOut: outputElement(tc.systemOut),
		SystemErr: outputElement(tc.systemErr),
	}
	switch tc.result.Kind {
	case ResultError:
		el.Error = &xmlResultDetail{Type: tc.result.Type, Message: tc.result.Message, Trace: tc.result.Trace}
	case ResultFailure:
		el.Failure = &xmlResultDetail{Type: tc.result.Type, Message: tc.result.Message, Trace: tc.result.Trace}
	case ResultSkipped:
		el.Skipped = &xmlSkipped{}
	}
	return el
}

func outputElement(content string) *xmlOutput {
	if content == "" {
		return nil
	}
	return &xmlOutput{Content: content}
}

// formatSeconds renders a duration as decimal seconds using the shortest
// representation that round-trips, so sub-second precision survives.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
