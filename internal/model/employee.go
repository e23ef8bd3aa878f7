package model

// Employee 员工模型（首次启动时一次性播种，之后不再变更）
type Employee struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"type:text;not null;index:idx_employee_username"`
	Password string `gorm:"type:text;not null"` // 明文存储，登录时按原样比较
	Role     string `gorm:"type:text;not null"`
}

// TableName 指定表名
func (Employee) TableName() string {
	return "employees"
}

// 员工角色常量
const (
	RoleClerk    = "clerk"
	RoleDelivery = "delivery"
	RoleManager  = "manager"
)
