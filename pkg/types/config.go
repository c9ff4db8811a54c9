package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Admin dashboard session
	AdminPassword    string `envconfig:"ADMIN_PASSWORD"`
	CookieName       string `envconfig:"SESSION_COOKIE_NAME" default:"admin_session"`
	SessionMaxAgeSec int    `envconfig:"SESSION_MAX_AGE_SEC" default:"86400"` // 1 day

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Payment provider
	StripeAPIKey string `envconfig:"STRIPE_API_KEY"`

	// Published read-only snapshot
	SnapshotBucket string `envconfig:"SNAPSHOT_BUCKET" default:"dreamworld-public"`

	// Pending-reconciliation retry cadence, cron spec format
	ReconcileSchedule string `envconfig:"RECONCILE_SCHEDULE" default:"@every 1m"`
}
