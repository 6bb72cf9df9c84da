package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyAdminEmail contextKey = "admin_email"
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeySessionID  contextKey = "session_id"
)

const (
	RequestParamPage   = "page"
	RequestParamLimit  = "limit"
	RequestParamStatus = "status"
	RequestParamSearch = "search"
	RequestParamEmail  = "email"
)

const (
	RequestParamID        = "id"
	RequestParamReference = "reference"
	RequestParamBookingID = "bookingId"
	RequestParamStartDate = "startDate"
	RequestParamEndDate   = "endDate"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 100
)

const (
	// StatusAll is the client-only filter value meaning "no status filter".
	StatusAll = "all"
)

const (
	StorageKeyAuthToken          = "authToken"
	StorageKeyAdminAuthenticated = "admin_authenticated"
	StorageKeyAdminEmail         = "admin_email"
	StorageKeyQuickBooking       = "quickBookingData"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelConsoleScopeName  = "console"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
	RequestHeaderSessionID     = "X-Session-ID"
	RequestHeaderForwardProto  = "X-Forwarded-Proto"
	AuthorizationBearerPrefix  = "Bearer "
)

const (
	ContentTypeJSON = "application/json"
)

const (
	SessionCookieName = "homestay_admin_session"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
	ResponseErrorUnexpected      = "An unexpected error occurred"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
