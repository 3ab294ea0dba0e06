package migrations

import (
	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/pkg/migration"
)

func init() {
	migration.Register("20250101000004_create_orders_table", &CreateOrdersTable{})
	migration.Register("20250101000005_create_order_items_table", &CreateOrderItemsTable{})
	migration.Register("20250101000006_create_contact_messages_table", &CreateContactMessagesTable{})
}

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

type CreateOrderItemsTable struct{}

func (m *CreateOrderItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderItem{})
}

func (m *CreateOrderItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items")
}

type CreateContactMessagesTable struct{}

func (m *CreateContactMessagesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ContactMessage{})
}

func (m *CreateContactMessagesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("contact_messages")
}
