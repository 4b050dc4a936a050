package dataset

// Placeholder replaces empty fields when a row is shown to the user.
const Placeholder = "N/A"

// Columns is the number of positional fields in a row.
const Columns = 6

// columnNames is the implicit header of the headerless source file. Order
// matches the column positions.
var columnNames = []string{
	"certificate_no",
	"training_name",
	"student_name",
	"board_roll_no",
	"training_period",
	"college_name",
}

var fieldLabels = [Columns]string{
	"Certificate Number",
	"Training Name",
	"Student Name",
	"Board Roll No.",
	"Training Periods",
	"College Name",
}

// Row is one record of the dataset, addressed by column position.
type Row struct {
	CertificateNo  string `csv:"certificate_no"`
	TrainingName   string `csv:"training_name"`
	StudentName    string `csv:"student_name"`
	BoardRollNo    string `csv:"board_roll_no"`
	TrainingPeriod string `csv:"training_period"`
	CollegeName    string `csv:"college_name"`
}

// RowFromFields builds a Row from positional values. Missing trailing values
// stay empty and extra values are dropped.
func RowFromFields(fields []string) Row {
	var v [Columns]string
	copy(v[:], fields)
	return Row{
		CertificateNo:  v[0],
		TrainingName:   v[1],
		StudentName:    v[2],
		BoardRollNo:    v[3],
		TrainingPeriod: v[4],
		CollegeName:    v[5],
	}
}

// Fields returns the row's values in column order.
func (r Row) Fields() [Columns]string {
	return [Columns]string{
		r.CertificateNo,
		r.TrainingName,
		r.StudentName,
		r.BoardRollNo,
		r.TrainingPeriod,
		r.CollegeName,
	}
}

// Field is a labeled value ready for display.
type Field struct {
	Label string
	Value string
}

// Record is a matched row with placeholders applied to empty fields.
type Record struct {
	CertificateNo  string
	TrainingName   string
	StudentName    string
	BoardRollNo    string
	TrainingPeriod string
	CollegeName    string
}

// Record maps the row to its display form.
func (r Row) Record() Record {
	return Record{
		CertificateNo:  orPlaceholder(r.CertificateNo),
		TrainingName:   orPlaceholder(r.TrainingName),
		StudentName:    orPlaceholder(r.StudentName),
		BoardRollNo:    orPlaceholder(r.BoardRollNo),
		TrainingPeriod: orPlaceholder(r.TrainingPeriod),
		CollegeName:    orPlaceholder(r.CollegeName),
	}
}

// Fields returns the labeled fields in display order.
func (rec Record) Fields() []Field {
	values := [Columns]string{
		rec.CertificateNo,
		rec.TrainingName,
		rec.StudentName,
		rec.BoardRollNo,
		rec.TrainingPeriod,
		rec.CollegeName,
	}
	out := make([]Field, 0, Columns)
	for i, value := range values {
		out = append(out, Field{Label: fieldLabels[i], Value: value})
	}
	return out
}

func orPlaceholder(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}
