package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Assets   AssetsConfig   `yaml:"assets"`
	Site     SiteConfig     `yaml:"site"`
	Invoice  InvoiceConfig  `yaml:"invoice"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	GinMode         string        `yaml:"gin_mode"         env:"GIN_MODE"                env-default:"release"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig selects the zap level and where logs go ("stdout" or a file path).
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Sink  string `yaml:"sink"  env:"LOG_SINK"  env-default:"stdout"`
}

// AuthConfig holds session-cookie verification settings.
// JWTSecret has no default.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  env-required:"true"`
	CookieName string        `yaml:"cookie_name" env:"AUTH_COOKIE_NAME" env-default:"client_token"`
	Leeway     time.Duration `yaml:"leeway"      env:"AUTH_LEEWAY"      env-default:"30s"`
}

// DynamoDBConfig holds the inquiry store settings.
type DynamoDBConfig struct {
	Region          string `yaml:"region"            env:"AWS_REGION"            env-default:"us-east-1"`
	Endpoint        string `yaml:"endpoint"          env:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id"     env:"AWS_ACCESS_KEY_ID"     env-default:"local"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	InquiriesTable  string `yaml:"inquiries_table"   env:"INQUIRIES_TABLE"       env-default:"inquiries"`
	ClientIDIndex   string `yaml:"client_id_index"   env:"INQUIRIES_CLIENT_INDEX" env-default:"clientId-index"`
}

// AssetsConfig holds the payment-proof image host settings.
type AssetsConfig struct {
	Bucket         string `yaml:"bucket"           env:"ASSETS_BUCKET"           env-default:"mediamind-assets"`
	Region         string `yaml:"region"           env:"ASSETS_REGION"           env-default:"us-east-1"`
	Endpoint       string `yaml:"endpoint"         env:"ASSETS_ENDPOINT"`
	UsePathStyle   bool   `yaml:"use_path_style"   env:"ASSETS_USE_PATH_STYLE"   env-default:"false"`
	PublicBaseURL  string `yaml:"public_base_url"  env:"ASSETS_PUBLIC_BASE_URL"  env-default:"https://mediamind-assets.s3.amazonaws.com"`
	KeyPrefix      string `yaml:"key_prefix"       env:"ASSETS_KEY_PREFIX"       env-default:"payment-proofs"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"ASSETS_MAX_UPLOAD_BYTES" env-default:"5242880"`
}

// SiteConfig is the server-delivered marketing copy.
type SiteConfig struct {
	Title     string `yaml:"title"     env:"SITE_TITLE"     env-default:"Why Brands Trust MediaMind for Social Growth"`
	Subtitle  string `yaml:"subtitle"  env:"SITE_SUBTITLE"  env-default:"Real results, authentic engagement, and proven strategies that scale"`
	Tagline   string `yaml:"tagline"   env:"SITE_TAGLINE"   env-default:"Grow your social media presence with authentic followers, engagement, and results."`
	Copyright string `yaml:"copyright" env:"SITE_COPYRIGHT" env-default:"© 2025 MediaMind. All rights reserved."`
}

// InvoiceConfig is the static branding printed on invoices.
type InvoiceConfig struct {
	BrandName   string `yaml:"brand_name"   env:"INVOICE_BRAND_NAME"   env-default:"MEDIAMIND"`
	ThankYou    string `yaml:"thank_you"    env:"INVOICE_THANK_YOU"    env-default:"Thank you for choosing MediaMind!"`
	ContactLine string `yaml:"contact_line" env:"INVOICE_CONTACT_LINE" env-default:"Visit us at: www.mediamind.com | WhatsApp: +880 1401-658685"`
}
