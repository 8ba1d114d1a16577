package entity

import "time"

// Order 订单持久化模型
type Order struct {
	ID              string      `gorm:"column:id;primaryKey;type:varchar(36)"`
	CustomerName    string      `gorm:"column:customer_name;type:varchar(255);not null"`
	CustomerEmail   string      `gorm:"column:customer_email;type:varchar(255);not null"`
	CustomerPhone   string      `gorm:"column:customer_phone;type:varchar(32)"`
	Status          string      `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_status"`
	TotalAmount     float64     `gorm:"column:total_amount;type:decimal(10,2);not null;default:0"`
	ShippingAddress string      `gorm:"column:shipping_address;type:varchar(512)"`
	Notes           string      `gorm:"column:notes;type:text"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt       time.Time   `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细持久化模型（随订单级联删除）
type OrderItem struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	OrderID     string    `gorm:"column:order_id;type:varchar(36);not null;index:idx_order_id"`
	ProductID   string    `gorm:"column:product_id;type:varchar(64);not null"`
	ProductName string    `gorm:"column:product_name;type:varchar(255);not null"`
	UnitPrice   float64   `gorm:"column:unit_price;type:decimal(10,2);not null"`
	Quantity    int       `gorm:"column:quantity;not null"`
	Subtotal    float64   `gorm:"column:subtotal;type:decimal(10,2);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
