package main

import (
	"context"
	"log"

	"gin-boutique/infra"
	"gin-boutique/models"
	"gin-boutique/services"
)

func main() {
	infra.Initialize()
	cfg := infra.LoadConfig()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		panic("Failed to migrate database")
	}

	// トークンブラックリスト用のSQLiteデータベースのマイグレーション
	tokenDB := infra.SetupTokenDB()
	if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		panic("Failed to migrate token blacklist database")
	}

	created, err := services.SeedAdminAccount(context.Background(), db, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		panic("Failed to seed admin account: " + err.Error())
	}
	log.Printf("Migration finished (admin created: %t)", created)
}
