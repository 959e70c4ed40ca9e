package infra

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func SetupDB() *gorm.DB {
	dbName := os.Getenv("DB_NAME")
	env := os.Getenv("ENV")

	// DB_NAMEが設定されている場合はPostgreSQLを使用
	if dbName != "" {
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			dbName,
			os.Getenv("DB_PORT"),
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("Connection string (without password): host=%s, user=%s, dbname=%s, port=%s",
				os.Getenv("DB_HOST"), os.Getenv("DB_USER"), dbName, os.Getenv("DB_PORT"))
			panic(fmt.Sprintf("Failed to connect to database: %v", err))
		}
		log.Printf("Setup postgres database: %s", dbName)
		return db
	}

	// デフォルトはSQLiteのファイルDB（ローカル実行用）
	db, err := gorm.Open(sqlite.Open(getEnv("SQLITE_PATH", "boutique.db")), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database")
	}
	log.Println("Setup sqlite database")
	return db
}

// SetupTokenDB トークンブラックリスト用のSQLiteデータベース接続を設定
func SetupTokenDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("token_blacklist.db"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to token blacklist database")
	}
	log.Println("Setup token blacklist SQLite database")
	return db
}

// SetupTestDB 各テストごとに独立したインメモリSQLiteを返す
func SetupTestDB(name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to open test database: %v", err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(fmt.Sprintf("Failed to open test database: %v", err))
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}
