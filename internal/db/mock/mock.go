package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "cocina/internal/log"
	"cocina/models"
)

// New returns an in-memory sqlite database seeded with an admin tenant owning
// the starter-pack templates and a regular kitchen account.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:cocina-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Ingredient{},
		&models.Material{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeMaterial{},
		&models.Order{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte("brigade"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Cocina Templates",
		Email:        "templates@cocina.app",
		PasswordHash: string(password),
		Role:         models.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}

	baker := &models.User{
		Name:         "Marta Baker",
		Email:        "marta@cocina.app",
		PasswordHash: string(password),
		PlanType:     "Pro",
		Role:         models.RoleUser,
	}
	if err := db.WithContext(ctx).Create(baker).Error; err != nil {
		return err
	}

	mill := models.Supplier{
		OwnerID: admin.ID,
		Name:    "Valley Mill Co.",
		Email:   "orders@valleymill.example",
		Notes:   "Weekly flour and sugar deliveries.",
	}
	if err := db.WithContext(ctx).Create(&mill).Error; err != nil {
		return err
	}

	flour := models.Ingredient{
		OwnerID:        admin.ID,
		Name:           "All-Purpose Flour",
		Category:       "Dry Goods",
		Quantity:       25000,
		Unit:           "g",
		PurchaseAmount: 32.50,
		PricePerGram:   0.0013,
		SupplierID:     &mill.ID,
	}

	sugar := models.Ingredient{
		OwnerID:        admin.ID,
		Name:           "Caster Sugar",
		Category:       "Dry Goods",
		Quantity:       10000,
		Unit:           "g",
		PurchaseAmount: 18.00,
		PricePerGram:   0.0018,
		SupplierID:     &mill.ID,
	}

	eggs := models.Ingredient{
		OwnerID:               admin.ID,
		Name:                  "Eggs",
		Category:              "Chilled",
		Quantity:              1650, // 30 pieces at 55 g
		Unit:                  "g",
		PurchaseAmount:        9.90,
		PricePerGram:          0.006,
		IsCountBased:          true,
		PurchaseUnit:          "tray",
		PiecesPerPurchaseUnit: 30,
		WeightPerPiece:        55,
	}

	ingredients := []*models.Ingredient{&flour, &sugar, &eggs}
	for _, ingredient := range ingredients {
		if err := db.WithContext(ctx).Create(ingredient).Error; err != nil {
			return err
		}
	}

	cakeBox := models.Material{
		OwnerID:        admin.ID,
		Name:           "Cake Box 10in",
		Category:       "Packaging",
		Quantity:       50,
		Unit:           "pc",
		PricePerUnit:   0.45,
		PurchaseAmount: 22.50,
	}

	ribbon := models.Material{
		OwnerID:        admin.ID,
		Name:           "Satin Ribbon",
		Category:       "Packaging",
		Quantity:       100,
		Unit:           "m",
		PricePerUnit:   0.12,
		PurchaseAmount: 12.00,
	}

	materials := []*models.Material{&cakeBox, &ribbon}
	for _, material := range materials {
		if err := db.WithContext(ctx).Create(material).Error; err != nil {
			return err
		}
	}

	sponge := models.Recipe{
		OwnerID:               admin.ID,
		Name:                  "Classic Vanilla Sponge",
		Description:           "Starter template for a 10 inch celebration cake.",
		Category:              "Cakes",
		Servings:              12,
		BatchYield:            1,
		TargetMarginPercent:   60,
		TargetFoodCostPercent: 30,
		LaborCost:             8,
		IsFreeRecipe:          true,
		IsVisible:             true,
		AccessType:            models.AccessTypeAll,
	}
	if err := db.WithContext(ctx).Create(&sponge).Error; err != nil {
		return err
	}

	lines := []models.RecipeIngredient{
		{RecipeID: sponge.ID, IngredientID: flour.ID, Quantity: 500, Unit: "g", GroupLabel: "Batter", Position: 1},
		{RecipeID: sponge.ID, IngredientID: sugar.ID, Quantity: 400, Unit: "g", GroupLabel: "Batter", Position: 2},
		{RecipeID: sponge.ID, IngredientID: eggs.ID, Quantity: 330, Unit: "g", GroupLabel: "Batter", Position: 3},
	}
	for i := range lines {
		if err := db.WithContext(ctx).Create(&lines[i]).Error; err != nil {
			return err
		}
	}

	packaging := []models.RecipeMaterial{
		{RecipeID: sponge.ID, MaterialID: cakeBox.ID, Quantity: 1},
		{RecipeID: sponge.ID, MaterialID: ribbon.ID, Quantity: 2},
	}
	for i := range packaging {
		if err := db.WithContext(ctx).Create(&packaging[i]).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded",
		"ingredients", len(ingredients),
		"materials", len(materials),
	)
	return nil
}
