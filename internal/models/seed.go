package models

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/logger"
)

type statusSeed struct {
	Name        string
	DisplayName string
	Description string
	SortOrder   int
}

var orderStatusSeeds = []statusSeed{
	{constants.OrderStatusPending, "В обработке", "Заказ принят и ожидает обработки", 1},
	{constants.OrderStatusConfirmed, "Подтвержден", "Заказ подтвержден менеджером точки", 2},
	{constants.OrderStatusPreparing, "Готовится", "Заказ находится в процессе приготовления", 3},
	{constants.OrderStatusReady, "Готов к сборке", "Блюда приготовлены, ожидает упаковки", 4},
	{constants.OrderStatusAssembled, "Собран", "Заказ собран, ожидает курьера", 5},
	{constants.OrderStatusPickedUp, "Забран курьером", "Курьер забрал заказ", 6},
	{constants.OrderStatusDelivered, "Доставлен", "Заказ успешно доставлен", 7},
	{constants.OrderStatusCancelled, "Отменен", "Заказ отменен", 8},
}

var itemStatusSeeds = []statusSeed{
	{constants.ItemStatusPending, "В ожидании", "Позиция ожидает приготовления", 1},
	{constants.ItemStatusPreparing, "Готовится", "Позиция в процессе приготовления", 2},
	{constants.ItemStatusPrepared, "Приготовлена", "Позиция приготовлена, ожидает сборки", 3},
	{constants.ItemStatusAssembled, "Упакована", "Позиция упакована в заказ", 4},
	{constants.ItemStatusDelivered, "Доставлена", "Позиция доставлена", 5},
	{constants.ItemStatusCancelled, "Отменена", "Позиция отменена", 6},
}

var roleSeeds = []Role{
	{Name: constants.RoleHR, Description: "Сотрудник отдела кадров"},
	{Name: constants.RoleManager, Description: "Менеджер точки"},
	{Name: constants.RoleSushiChef, Description: "Сушист"},
	{Name: constants.RolePacker, Description: "Упаковщик"},
	{Name: constants.RoleCourier, Description: "Курьер"},
}

// SeedLookups inserts missing status vocabulary rows and roles.
// Idempotent: existing rows are left untouched, so re-running on a
// populated database is safe.
func SeedLookups() error {
	for _, s := range orderStatusSeeds {
		var count int64
		if err := DB.Model(&OrderStatus{}).Where("name = ?", s.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := OrderStatus{Name: s.Name, DisplayName: s.DisplayName, Description: s.Description, SortOrder: s.SortOrder, IsActive: true}
		if err := DB.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, s := range itemStatusSeeds {
		var count int64
		if err := DB.Model(&OrderItemStatus{}).Where("name = ?", s.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := OrderItemStatus{Name: s.Name, DisplayName: s.DisplayName, Description: s.Description, SortOrder: s.SortOrder, IsActive: true}
		if err := DB.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, r := range roleSeeds {
		var count int64
		if err := DB.Model(&Role{}).Where("name = ?", r.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := Role{Name: r.Name, Description: r.Description}
		if err := DB.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// InitDefaultUser creates the initial HR account when the users table
// is empty, so a fresh deployment has a way in.
func InitDefaultUser(email, password string) error {
	var count int64
	DB.Model(&User{}).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "hr@makimora.local"
	}
	if password == "" {
		password = "makimora"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var hrRole Role
	if err := DB.Where("name = ?", constants.RoleHR).First(&hrRole).Error; err != nil {
		return err
	}

	user := User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Default",
		LastName:     "HR",
		IsActive:     true,
		Roles:        []Role{hrRole},
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	if password == "makimora" {
		logger.Warnw("default_user_created_with_default_password", "email", email)
		logger.Warnw("default_user_password_change_required", "email", email)
	} else {
		logger.Warnw("default_user_created", "email", email, "password_hidden", true)
	}
	return nil
}
