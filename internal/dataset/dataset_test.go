package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleDataset() *Dataset {
	return New([]Row{
		RowFromFields([]string{"CERT-001", "Welding", "Jane Doe", "R-22", "6 months", "ABC College"}),
		RowFromFields([]string{"CERT-002", "Plumbing", "John Roe", "R-23", "3 months", "XYZ Institute"}),
	})
}

func TestFind_MatchesIgnoringCaseAndWhitespace(t *testing.T) {
	ds := sampleDataset()

	for _, query := range []string{"CERT-001", " cert-001 ", "\tCeRt-001\n"} {
		row, err := ds.Find(query)
		if err != nil {
			t.Fatalf("Find(%q) returned error: %v", query, err)
		}
		want := Record{
			CertificateNo:  "CERT-001",
			TrainingName:   "Welding",
			StudentName:    "Jane Doe",
			BoardRollNo:    "R-22",
			TrainingPeriod: "6 months",
			CollegeName:    "ABC College",
		}
		if diff := cmp.Diff(want, row.Record()); diff != "" {
			t.Fatalf("Find(%q) record mismatch (-want +got):\n%s", query, diff)
		}
	}
}

func TestFind_NotFoundMentionsQuery(t *testing.T) {
	_, err := sampleDataset().Find("CERT-999")

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Find error = %v, want *NotFoundError", err)
	}
	if nf.Query != "CERT-999" {
		t.Fatalf("NotFoundError.Query = %q, want CERT-999", nf.Query)
	}
	if !strings.Contains(err.Error(), "CERT-999") {
		t.Fatalf("error %q does not mention the query", err.Error())
	}
}

func TestFind_BlankQueryRejected(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		if _, err := sampleDataset().Find(query); !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("Find(%q) error = %v, want ErrEmptyQuery", query, err)
		}
	}
}

func TestFind_BlankQueryRejectedBeforeDatasetCheck(t *testing.T) {
	var ds *Dataset
	if _, err := ds.Find(" "); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("Find on nil dataset error = %v, want ErrEmptyQuery", err)
	}
}

func TestFind_EmptyDatasetNotLoaded(t *testing.T) {
	for name, ds := range map[string]*Dataset{"nil": nil, "empty": New(nil)} {
		if _, err := ds.Find("CERT-001"); !errors.Is(err, ErrNotLoaded) {
			t.Fatalf("%s: Find error = %v, want ErrNotLoaded", name, err)
		}
	}
}

func TestFind_FirstMatchWins(t *testing.T) {
	ds := New([]Row{
		RowFromFields([]string{"dup", "first"}),
		RowFromFields([]string{"DUP", "second"}),
	})
	row, err := ds.Find("Dup")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if row.TrainingName != "first" {
		t.Fatalf("TrainingName = %q, want first", row.TrainingName)
	}
}

func TestFind_RowsWithoutCertificateNeverMatch(t *testing.T) {
	ds := New([]Row{
		RowFromFields([]string{"", "orphan"}),
		RowFromFields([]string{"   ", "blank"}),
	})
	var nf *NotFoundError
	if _, err := ds.Find("x"); !errors.As(err, &nf) {
		t.Fatalf("Find error = %v, want *NotFoundError", err)
	}
}

func TestNew_CopiesRows(t *testing.T) {
	rows := []Row{RowFromFields([]string{"A-1"})}
	ds := New(rows)
	rows[0].CertificateNo = "mutated"

	got, ok := ds.Row(0)
	if !ok || got.CertificateNo != "A-1" {
		t.Fatalf("Row(0) = %#v, %v; want A-1 unaffected by caller mutation", got, ok)
	}
	if _, ok := ds.Row(1); ok {
		t.Fatalf("Row(1) ok = true, want false")
	}
}

func TestRecord_PlaceholderForEmptyFields(t *testing.T) {
	rec := RowFromFields([]string{"CERT-7", "", "Ann"}).Record()

	want := []Field{
		{Label: "Certificate Number", Value: "CERT-7"},
		{Label: "Training Name", Value: Placeholder},
		{Label: "Student Name", Value: "Ann"},
		{Label: "Board Roll No.", Value: Placeholder},
		{Label: "Training Periods", Value: Placeholder},
		{Label: "College Name", Value: Placeholder},
	}
	if diff := cmp.Diff(want, rec.Fields()); diff != "" {
		t.Fatalf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestRowFromFields_DropsExtraValues(t *testing.T) {
	row := RowFromFields([]string{"1", "2", "3", "4", "5", "6", "7", "8"})
	want := [Columns]string{"1", "2", "3", "4", "5", "6"}
	if row.Fields() != want {
		t.Fatalf("Fields = %v, want %v", row.Fields(), want)
	}
}
