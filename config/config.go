package config

import (
	"log"
	"time"

	"natheme-api/models"

	"github.com/glebarez/sqlite"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config is loaded once at startup and injected into the services that
// need it; business logic never reads the process environment directly.
type Config struct {
	Port        string `envconfig:"PORT" default:"5050"`
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"natheme.db"`

	// JWT — no default secret: deployments must set one
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"`

	// The single highest-privilege account, established out-of-band
	OwnerEmail string `envconfig:"OWNER_EMAIL"`

	// Contact-form pipeline
	ContactReceiver string `envconfig:"CONTACT_RECEIVER_EMAIL"`
	SMTPHost        string `envconfig:"SMTP_HOST"`
	SMTPPort        int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser        string `envconfig:"SMTP_USER"`
	SMTPPassword    string `envconfig:"SMTP_PASS"`

	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

// C holds the active configuration after Load.
var C *Config

var DB *gorm.DB

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	C = &cfg
	return &cfg, nil
}

func InitDB(dsn string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Catalog{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// EnsureOwner promotes the configured owner account if it already exists.
// Owner status is never granted through the API itself.
func EnsureOwner(ownerEmail string) {
	if ownerEmail == "" {
		return
	}
	var user models.User
	if err := DB.Where("email = ?", ownerEmail).First(&user).Error; err != nil {
		return
	}
	if user.Role == models.RoleOwner {
		return
	}
	if err := DB.Model(&user).Update("role", models.RoleOwner).Error; err != nil {
		log.Println("Failed to seed owner account:", err)
		return
	}
	log.Printf("Owner role ensured for %s", ownerEmail)
}
