package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// 仓储层的完整性哨兵错误
var (
	ErrCustomerMissing  = errors.New("customer does not exist")
	ErrCustomerExists   = errors.New("customer id already exists")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// isForeignKeyViolation 约束分类优先看 gorm 的翻译结果，
// 旧版 sqlite 方言不翻译外键错误，所以退回到 sqlite 扩展错误码
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		se.ExtendedCode == sqlite3.ErrConstraintUnique
}
