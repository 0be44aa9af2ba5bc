package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Inactive rows must persist as inactive: a column default on a bool
// would make gorm skip the zero value on insert and store true instead.
func TestInactiveFlagsRoundTrip(t *testing.T) {
	dsn := fmt.Sprintf("file:flags_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&Location{}, &Category{}, &Product{}, &Role{}, &User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	loc := &Location{Name: "Closed branch", Address: "nowhere", IsActive: false}
	if err := db.Create(loc).Error; err != nil {
		t.Fatalf("create location: %v", err)
	}
	cat := &Category{LocationID: loc.ID, Name: "Archived", IsActive: false}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	price, err := NewMoneyFromString("100")
	if err != nil {
		t.Fatalf("parse price: %v", err)
	}
	prod := &Product{
		LocationID:  loc.ID,
		CategoryID:  cat.ID,
		Name:        "Retired roll",
		Price:       price,
		IsAvailable: false,
	}
	if err := db.Create(prod).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	user := &User{Email: "gone@test.local", PasswordHash: "x", FirstName: "Former", LastName: "Staffer", IsActive: false}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	var gotLoc Location
	if err := db.First(&gotLoc, "id = ?", loc.ID).Error; err != nil {
		t.Fatalf("load location: %v", err)
	}
	if gotLoc.IsActive {
		t.Fatal("inactive location persisted as active")
	}
	var gotCat Category
	if err := db.First(&gotCat, "id = ?", cat.ID).Error; err != nil {
		t.Fatalf("load category: %v", err)
	}
	if gotCat.IsActive {
		t.Fatal("inactive category persisted as active")
	}
	var gotProd Product
	if err := db.First(&gotProd, "id = ?", prod.ID).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	if gotProd.IsAvailable {
		t.Fatal("unavailable product persisted as available")
	}
	var gotUser User
	if err := db.First(&gotUser, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if gotUser.IsActive {
		t.Fatal("disabled user persisted as active")
	}
}
