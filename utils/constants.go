package utils

// Application constants
const (
	// Application name
	AppName = "PayBridge"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "paybridge"

	// Default database user
	DefaultDBUser = "postgres"

	// Header carrying the gateway's webhook signature
	SignatureHeader = "X-Razorpay-Signature"

	// Upper bound of the micro slab in paise (inclusive)
	DefaultSlabMicroMax = 9900

	// Upper bound of the standard slab in paise (inclusive)
	DefaultSlabStandardMax = 150000
)

// Slab names
const (
	SlabMicro    = "micro"
	SlabStandard = "standard"
)

// Error messages
const (
	ErrInvalidSignature = "Invalid webhook signature"
	ErrMissingSignature = "Missing webhook signature"
	ErrUnauthorized     = "Unauthorized access"
	ErrRecordNotFound   = "Record not found"
	ErrDBConnection     = "Database connection error"
	ErrInternalServer   = "Internal server error"
)

// Success messages
const (
	MsgWebhookReceived = "Webhook received"
	MsgWebhookActive   = "Razorpay webhook active"
)
