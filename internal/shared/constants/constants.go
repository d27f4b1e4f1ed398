package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
	ContextKeyUploads   = "uploaded_files"

	// Database table names
	TableInterventions = "interventions"
	TableAttachments   = "pieces_jointes"
	TableUsers         = "users"
	TableCommunes      = "communes"
	TableThemes        = "themes"
	TableArchives      = "archives"

	// Error messages
	ErrMsgInternalServerError = "Erreur interne du serveur"
)
