package usermeta

import (
	"time"

	"gorm.io/gorm/schema"
)

// User mirrors the columns of the WordPress users table the dashboard reads.
type User struct {
	ID          uint      `gorm:"column:ID;primaryKey"`
	Login       string    `gorm:"column:user_login;size:60;uniqueIndex"`
	Email       string    `gorm:"column:user_email;size:100"`
	DisplayName string    `gorm:"column:display_name;size:250"`
	Registered  time.Time `gorm:"column:user_registered"`
}

// TableName keeps the WordPress table name under the configured prefix.
func (User) TableName(namer schema.Namer) string {
	return prefixed(namer, "users")
}

// Meta is one row of the WordPress usermeta table.
type Meta struct {
	ID     uint   `gorm:"column:umeta_id;primaryKey"`
	UserID uint   `gorm:"column:user_id;index"`
	Key    string `gorm:"column:meta_key;size:255;index"`
	Value  string `gorm:"column:meta_value;type:longtext"`
}

func (Meta) TableName(namer schema.Namer) string {
	return prefixed(namer, "usermeta")
}

// AppliedMigration records a data migration that has run.
type AppliedMigration struct {
	Version   int       `gorm:"column:version;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;size:191"`
	AppliedAt time.Time `gorm:"column:applied_at"`
}

func (AppliedMigration) TableName(namer schema.Namer) string {
	return prefixed(namer, "athlete_migrations")
}

// Models lists every table the package owns, for schema migration and checks.
func Models() []any {
	return []any{&User{}, &Meta{}, &AppliedMigration{}}
}

func prefixed(namer schema.Namer, table string) string {
	switch ns := namer.(type) {
	case schema.NamingStrategy:
		return ns.TablePrefix + table
	case *schema.NamingStrategy:
		return ns.TablePrefix + table
	default:
		return table
	}
}
