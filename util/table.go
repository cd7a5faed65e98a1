package util

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strconv"
)

// Table is one section of an HTML report.
// Every data set in Data must have len(RowHeaders) rows of len(ColHeaders) values.
type Table struct {
	Title                  string
	Notes                  []string
	ColHeaders, RowHeaders []string
	Data                   map[string][][]float64
}

// CurveTable builds a two column (x, y) table from sampled points.
// xs and ys must have the same length.
func CurveTable(title, dataTitle string, xs, ys []float64, notes ...string) (Table, error) {
	if len(xs) != len(ys) {
		return Table{}, fmt.Errorf("curve %q: %d abscissae but %d values", title, len(xs), len(ys))
	}
	rows := MakeRectangular(uint(len(xs)), 2)
	headers := make([]string, len(xs))
	for i := range xs {
		rows[i][0], rows[i][1] = xs[i], ys[i]
		headers[i] = strconv.Itoa(i)
	}
	return Table{
		Title:      title,
		Notes:      notes,
		ColHeaders: []string{"x", "y(x)"},
		RowHeaders: headers,
		Data:       map[string][][]float64{dataTitle: rows},
	}, nil
}

// WriteTablesFile renders tables into a newly created file at filePath.
func WriteTablesFile(tables []Table, filePath string) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("opening table file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteTables(tables, file)
}

func tableSanityCheck(table *Table) error {
	if table == nil {
		return errors.New("nil data table")
	}

	cols := len(table.ColHeaders)
	rows := len(table.RowHeaders)

	for _, dataSet := range table.Data {
		if actualRows := len(dataSet); actualRows != rows {
			return fmt.Errorf("inconsistent row counts: %v headers, %v rows", rows, actualRows)
		}
		for _, row := range dataSet {
			if len(row) != cols {
				return errors.New("inconsistent col counts")
			}
		}
	}

	return nil
}

const document = `
<!DOCTYPE html>
<html>
<head>
    <style type="text/css">
        .results
        {
            font-family:"Trebuchet MS", Arial, Helvetica, sans-serif;
            border-collapse:collapse;
        }
        .results td, .results th
        {
            border:1px solid #98bf21;
            padding:3px 7px 2px 7px;
        }
        .results th
        {
            text-align:left;
            background-color:#A7C942;
            color:#ffffff;
        }
        .results tr.alt td
        {
            background-color:#EAF2D3;
        }
        .notes
        {
            font-family:monospace;
        }
    </style>
</head>
<body>
{{range $table := .}}
	<h2>{{.Title}}</h2>
	{{if .Notes}}<ul class="notes">{{range .Notes}}<li>{{.}}</li>{{end}}</ul>{{end}}
	{{range $dataTitle, $data := $table.Data}}
	<table class="results">
	  <caption>{{$dataTitle}}</caption>
	  <tr>
	  	<th></th>
		{{range $table.ColHeaders}}<th>{{.}}</th>{{end}}
	  </tr>
	  {{range $index, $element := $data}}
	  <tr {{if eq (mod $index 2) 1}}class="alt"{{end}}>
		<th>{{index $table.RowHeaders $index}}</th>
		{{range $element}}<td>{{num .}}</td>{{end}}
	  </tr>
	  {{end}}
	</table>
	{{end}}
{{end}}
</body>
</html>
`

var tDocument = template.Must(template.New("document").Funcs(template.FuncMap{
	"mod": func(a, b int) int { return a % b },
	"num": func(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) },
}).Parse(document))

// WriteTables renders tables as a single HTML document.
func WriteTables(tables []Table, output io.Writer) (err error) {
	for t := range tables {
		err = tableSanityCheck(&tables[t])
		if err != nil {
			return
		}
	}

	if err = tDocument.Execute(output, tables); err != nil {
		return fmt.Errorf("executing table template: %w", err)
	}
	return nil
}
