////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"bytes"
	"go/format"
	"sort"
	"strconv"
	"text/template"
)

// sourceTemplate is the generated file layout. The output must stay in sync
// with what the catalog package expects: a single messierCommonNames map.
const sourceTemplate = `////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Code generated by mcatalog. DO NOT EDIT.

package catalog

// messierCommonNames maps catalog numbers to common names, for the objects
// that have one.
var messierCommonNames = map[int]string{
{{- range .}}
	{{.Number}}: {{.Name}},
{{- end}}
}
`

// row is one rendered map entry.
type row struct {
	Number int
	Name   string
}

// generate renders the name table to gofmt-formatted Go source.
func generate(names map[int]string) ([]byte, error) {
	rows := make([]row, 0, len(names))
	for n, name := range names {
		rows = append(rows, row{Number: n, Name: strconv.Quote(name)})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Number < rows[j].Number
	})

	tmpl, err := template.New("messierNames").Parse(sourceTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, rows); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}
