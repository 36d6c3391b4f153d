package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldUser      = "user"
	FieldMonthKey  = "month_key"
	FieldTxID      = "transaction_id"
	FieldItem      = "item"
	FieldAmount    = "amount"
	FieldTag       = "tag"
	FieldWindow    = "window"
	FieldFilter    = "filter"
	FieldBackend   = "backend"
	FieldKey       = "key"
	FieldAffected  = "affected"
	FieldFilename  = "filename"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentSession = "session"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentPorting = "porting"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpSelect   = "select"
	OpRename   = "rename"
	OpExport   = "export"
	OpImport   = "import"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
