package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection. The URL carries host/port/dbname;
// user and password come as separate settings and the password may be blank.
func InitDB(url, user, password string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s user=%s", url, user)
	if password != "" {
		dsn += fmt.Sprintf(" password=%s", password)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
