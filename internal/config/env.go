package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env is read once at startup and never mutated afterwards.
type Env struct {
	AppEnv  string
	AppAddr string
	GinMode string

	DBDSN          string
	DBMaxOpenConns int

	JWTSecret         string
	AdminUsername     string
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string

	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	EmailProvider string
	EmailFrom     string
	EmailFromName string
	OperatorEmail string
	BrevoAPIKey   string
	AWSRegion     string

	StorageDriver string
	UploadDir     string
	PublicBaseURL string
	S3Bucket      string

	EventsSink    string
	KafkaBrokers  []string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
	SQSQueueURL   string

	CORSOrigins []string
}

const (
	defaultJWTSecret = "your-secret-key-change-in-production"
)

// LoadEnv reads the given .env files (missing files are ignored) and then the process environment.
func LoadEnv(files ...string) Env {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	env := Env{
		AppEnv:  getEnv("APP_ENV", "development"),
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBDSN:          dsnFromEnv(),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),

		JWTSecret:         getEnv("JWT_SECRET", defaultJWTSecret),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@rescueandrehab.org"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),

		RazorpayKeyID:     strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		RazorpayKeySecret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),
		Currency:          strings.ToUpper(getEnv("PAYMENT_CURRENCY", "INR")),

		EmailProvider: strings.ToLower(getEnv("EMAIL_PROVIDER", "log")),
		EmailFrom:     getEnv("EMAIL_FROM", "info@rescueandrehab.org"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Rescue and Rehab Foundation"),
		OperatorEmail: strings.TrimSpace(os.Getenv("OPERATOR_EMAIL")),
		BrevoAPIKey:   strings.TrimSpace(os.Getenv("BREVO_API_KEY")),
		AWSRegion:     getEnv("AWS_REGION", "ap-south-1"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
		UploadDir:     getEnv("UPLOAD_DIR", "public/images"),
		PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		S3Bucket:      strings.TrimSpace(os.Getenv("S3_BUCKET")),

		EventsSink:    strings.ToLower(getEnv("DONATION_EVENTS_SINK", "none")),
		KafkaBrokers:  splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "donations"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
		SQSQueueURL:   strings.TrimSpace(os.Getenv("SQS_QUEUE_URL")),

		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
	if env.OperatorEmail == "" {
		env.OperatorEmail = env.EmailFrom
	}
	if len(env.CORSOrigins) == 0 {
		env.CORSOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
	}
	return env
}

func (e Env) IsProduction() bool {
	return e.AppEnv == "production"
}

// Validate rejects configurations that would run production with placeholder secrets.
func (e Env) Validate() error {
	if !e.IsProduction() {
		return nil
	}
	if e.JWTSecret == "" || e.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if e.RazorpayKeyID == "" || e.RazorpayKeySecret == "" {
		return fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required in production")
	}
	if e.AdminPasswordHash == "" && e.AdminPassword == "admin123" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH or a non-default ADMIN_PASSWORD is required in production")
	}
	switch e.StorageDriver {
	case "s3":
		if e.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for STORAGE_DRIVER=s3")
		}
	}
	return nil
}

func dsnFromEnv() string {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_HOST", "127.0.0.1:3306"),
		getEnv("DB_NAME", "rescue_rehab"),
	)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
