package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type PoupixContext string

const (
	DBContextURL PoupixContext = "poupix-backend-url"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}
}

// Connect opens the SQLite database at dsn, migrates it and configures the connection pool.
func Connect(dsn string) error {
	// Migrate with foreign keys disabled since sqlite copies
	// tables when altering columns
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return setup(db)
}

// ConnectPostgres opens the PostgreSQL database described by dsn and migrates it.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return setup(db)
}

// setup registers the error translating callbacks and sets DB.
func setup(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "poupix:after_query", queryCallback},
		{db.Callback().Query().After("*"), "poupix:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "poupix:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "poupix:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "poupix:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "poupix:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "poupix:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name tells which resource was not found
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraints maps unique constraints to the error returned when they are violated.
// The key is the SQLite constraint description, the value holds the PostgreSQL index name.
var uniqueConstraints = map[string]struct {
	index string
	err   error
}{
	"users.email":   {"user_email", ErrUserEmailNotUnique},
	"achievements.": {"achievement_milestone", ErrAchievementNotUnique},
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError
	isPg := errors.As(db.Error, &pgErr) && pgErr.Code == "23505"

	for sqliteName, c := range uniqueConstraints {
		if isPg && pgErr.ConstraintName == c.index {
			db.Error = c.err
			return
		}

		if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: "+sqliteName) {
			db.Error = c.err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	db.Error = generalError(db.Error)
}

// generalError logs database errors and replaces them with ErrGeneral.
// All other errors are returned unchanged.
func generalError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(err, &pgErr) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// transaction runs fn in a transaction on DB. Errors from starting or
// committing the transaction do not pass the callbacks and are translated here.
func transaction(fn func(tx *gorm.DB) error) error {
	return generalError(DB.Transaction(fn))
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		User{},
		Goal{},
		Challenge{},
		Deposit{},
		Achievement{},
		Acknowledgement{},
		SavingSuggestion{},
		SuggestionRule{},
		Income{},
		Debt{},
		Installment{},
		Expense{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
