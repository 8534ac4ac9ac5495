package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool

	Port      string
	JWTSecret string

	// database: "sqlite" (default) or "mysql"
	DBDriver string
	DBPath   string // sqlite file
	DBDSN    string // mysql dsn

	// admin notification mail; sending is disabled unless both
	// SMTPHost and AdminEmail are set
	AdminEmail   string
	MailFrom     string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	// contact form throttling
	RateLimitWindowSeconds int
	RateLimitCapacity      int
	DuplicateWindowSeconds int
	StatsCacheTTLSeconds   int
)

func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")

	// do not load .env file in production
	if AppEnv == "production" {
		return
	}

	// .env is optional outside production (tests, CI)
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
}

func init() {
	loadAppEnv()

	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "development"
	}
	IsProduction = AppEnv == "production"

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	if IsProduction && JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}
	if JWTSecret == "" {
		JWTSecret = "dev-only-secret"
	}

	DBDriver = os.Getenv("DB_DRIVER")
	if DBDriver == "" {
		DBDriver = "sqlite"
	}
	DBPath = os.Getenv("DB_PATH")
	if DBPath == "" {
		DBPath = "portfolio.db"
	}
	DBDSN = os.Getenv("DB_DSN")
	if IsProduction && DBDriver == "mysql" && DBDSN == "" {
		log.Fatal("DB_DSN must be set when DB_DRIVER=mysql in production")
	}

	AdminEmail = os.Getenv("ADMIN_EMAIL")
	MailFrom = os.Getenv("MAIL_FROM")
	if MailFrom == "" {
		MailFrom = "Portfolio <no-reply@localhost>"
	}
	SMTPHost = os.Getenv("SMTP_HOST")
	SMTPPort = atoiOr(os.Getenv("SMTP_PORT"), 587)
	SMTPUser = os.Getenv("SMTP_USER")
	SMTPPassword = os.Getenv("SMTP_PASSWORD")

	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 60)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)
	DuplicateWindowSeconds = atoiOr(os.Getenv("DUPLICATE_WINDOW_SECONDS"), 45)
	StatsCacheTTLSeconds = atoiOr(os.Getenv("STATS_CACHE_TTL_SECONDS"), 30)

	log.Printf("[config] AppEnv=%s DBDriver=%s Port=%s", AppEnv, DBDriver, Port)
	log.Printf("[config] MailEnabled=%v AdminEmailPresent=%v", SMTPHost != "" && AdminEmail != "", AdminEmail != "")
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
