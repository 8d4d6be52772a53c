package database

import (
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _db *gorm.DB
var mutex sync.Mutex

// Setup opens the postgres connection used by the optional roster store. An
// empty dsn falls back to DATABASE_URL.
func Setup(dsn string) error {
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}

	var err error
	_db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	return nil
}

func GetDB() *gorm.DB {
	mutex.Lock()
	return _db
}

func ReleaseDB() {
	mutex.Unlock()
}
