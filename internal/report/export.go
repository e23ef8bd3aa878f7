package report

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"
)

var ErrUnknownTable = errors.New("unknown table")

// 可导出的表名白名单，表名拼进 SQL 前必须命中
var exportableTables = map[string]bool{
	"customers": true,
	"employees": true,
	"orders":    true,
}

// ExportCSV 全表导出：首行为列名，之后每行一条记录，NULL 写为空串。
// 目标文件存在则覆盖。返回数据行数（不含表头）。
func ExportCSV(ctx context.Context, db *gorm.DB, table, path string) (int, error) {
	if !exportableTables[table] {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	rows, err := db.WithContext(ctx).Table(table).Select("*").Rows()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return 0, err
	}

	values := make([]sql.NullString, len(cols))
	scan := make([]interface{}, len(cols))
	for i := range values {
		scan[i] = &values[i]
	}

	n := 0
	record := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return n, err
		}
		for i, v := range values {
			record[i] = v.String
		}
		if err := w.Write(record); err != nil {
			return n, err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, err
	}

	w.Flush()
	return n, w.Error()
}
