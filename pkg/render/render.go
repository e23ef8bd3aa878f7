// Package render 终端网格表格渲染。
package render

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Grid 以 +---+ 边框渲染表格，列宽取表头与单元格的最大显示宽度
func Grid(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	var b strings.Builder
	writeBorder(&b, widths)
	writeRow(&b, headers, widths)
	writeBorder(&b, widths)
	for _, row := range rows {
		writeRow(&b, row, widths)
		writeBorder(&b, widths)
	}
	return b.String()
}

func writeBorder(b *strings.Builder, widths []int) {
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)+1))
	}
	b.WriteString("|\n")
}

// Int 整数单元格
func Int(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Float 浮点单元格，去掉多余的尾零
func Float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// NullableInt 可空整数单元格，空值显示为空串
func NullableInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
