// SPDX-License-Identifier: MIT

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/glassocr/matrix"
)

func (s *session) shapesAction(c *cli.Context) error {
	cfg := config(c)
	if err := cfg.Validate(); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "File", "Shape", "Tokens"})
	total := 0
	for i, f := range cfg.Files() {
		t.AppendRow(table.Row{i, f.Name, matrix.Size{Rows: f.Rows, Cols: f.Cols}, f.Tokens()})
		total += f.Tokens()
	}
	t.AppendFooter(table.Row{"", "", "Total", total})
	s.printf("%s\n", t.Render())

	return nil
}
