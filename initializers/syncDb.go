package initializers

import (
	"log"

	"littlelemon-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// The three groups must exist before anyone can be assigned to them.
	for _, name := range []string{models.RoleCustomer, models.RoleManager, models.RoleDeliveryCrew} {
		role := models.Role{Name: name}
		if err := DB.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			log.Fatalf("Failed to seed role %q: %v", name, err)
		}
	}

	log.Println("Database synced successfully.")
}
