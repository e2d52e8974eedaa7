package db

// DB is the database port repositories are built from. Conn exposes the
// driver handle (a *gorm.DB for the gormdb adapter).
type DB interface {
	Conn() any
	Migrate(models ...any) error
	Close() error
}
