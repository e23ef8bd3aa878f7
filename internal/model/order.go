package model

// Order 订单模型
type Order struct {
	ID          int64  `gorm:"primaryKey"`
	CustomerID  int64  `gorm:"index:idx_order_customer"`
	ClerkID     int64  `gorm:"index:idx_order_clerk"`
	DeliveryID  *int64
	Description string  `gorm:"type:text;not null"`
	Date        string  `gorm:"type:text;not null"` // YYYY-MM-DD HH:MM:SS，文本存储以支持按日期前缀统计
	TotalAmount float64 `gorm:"not null"`
	Status      string  `gorm:"type:text;default:'Incomplete';index:idx_order_status"`

	// 外键关联（仅用于建表约束，写入时跳过级联）
	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Clerk    *Employee `gorm:"foreignKey:ClerkID"`
	Delivery *Employee `gorm:"foreignKey:DeliveryID"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// 订单状态常量，正常流转为 Incomplete → Assigned → Completed
const (
	StatusIncomplete = "Incomplete"
	StatusAssigned   = "Assigned"
	StatusCompleted  = "Completed"
)

// DateLayout 订单时间的文本格式
const DateLayout = "2006-01-02 15:04:05"
