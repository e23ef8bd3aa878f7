package model

// Customer 客户模型
// ID 一般由库自增分配；下单补录客户时会携带显式 ID 写入
type Customer struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"type:text;not null"`
	Address     string `gorm:"type:text;not null"`
	PhoneNumber string `gorm:"type:text;not null"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
