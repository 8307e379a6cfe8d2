package database

import (
	"log"
	"os"
	"time"

	"circleup/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
		// The core translates unique-constraint violations into domain
		// errors, so it needs gorm.ErrDuplicatedKey from the driver.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Migrate runs the schema migrations, including the unique indexes the core
// relies on to close check-then-insert races under concurrent requests.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Post{},
		&models.Movie{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	// One friendship row per unordered user pair, whichever direction the
	// request was sent in.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_friendship_pair ON friendships (
		(CASE WHEN sender_id < receiver_id THEN sender_id ELSE receiver_id END),
		(CASE WHEN sender_id < receiver_id THEN receiver_id ELSE sender_id END))`).Error
	if err != nil {
		return err
	}

	// One live top-level comment per (user, commentable).
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_top_level_comment ON comments
		(user_id, commentable_type, commentable_id)
		WHERE parent_id IS NULL AND deleted_at IS NULL`).Error
}
