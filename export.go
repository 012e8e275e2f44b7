package morphotrie

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Морфологический анализ"

// excelHeaders defines the spreadsheet columns, one row per analyzed
// word occurrence.
var excelHeaders = []string{
	"№",
	"Слово",
	"Лемма",
	"Часть речи",
	"Морфологические характеристики",
	"Значение омонима",
	"Слоги",
	"Пунктуация",
	"Предшествующее слово 1",
	"Предшествующее слово 2",
	"Предшествующее слово 3",
	"Следующее слово 1",
	"Следующее слово 2",
	"Следующее слово 3",
}

// ExportExcel writes the per-word analysis table as an .xlsx workbook.
// Context columns count outward from the word: "Предшествующее слово 1"
// is the token immediately before it.
func (ta *TextAnalysis) ExportExcel(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, 1, headerCells()); err != nil {
		return err
	}
	for i, wa := range ta.Words {
		if err := setRow(f, i+2, wordCells(i+1, wa)); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func headerCells() []any {
	cells := make([]any, len(excelHeaders))
	for i, h := range excelHeaders {
		cells[i] = h
	}
	return cells
}

func wordCells(position int, wa WordAnalysis) []any {
	return []any{
		position,
		wa.Record.GetString(KeyWord),
		wa.Record.GetString(KeyLemma),
		posName(wa.Record.GetString(KeyPOS)),
		FormatTags(wa.Record.Tags()),
		wa.Record.GetString(KeySense),
		strings.Join(wa.Syllables, "-"),
		wa.Record.GetString(KeyPunctuation),
		nthBack(wa.Prev, 1),
		nthBack(wa.Prev, 2),
		nthBack(wa.Prev, 3),
		nthForward(wa.Next, 1),
		nthForward(wa.Next, 2),
		nthForward(wa.Next, 3),
	}
}

// nthBack returns the n-th token counting backwards from the word, or
// "" when the context is shorter than n.
func nthBack(prev []string, n int) string {
	i := len(prev) - n
	if i < 0 {
		return ""
	}
	return prev[i]
}

func nthForward(next []string, n int) string {
	if n > len(next) {
		return ""
	}
	return next[n-1]
}

func setRow(f *excelize.File, row int, cells []any) error {
	for col, v := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
