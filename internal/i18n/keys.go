package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidQuery indicates query parameters that could not be decoded.
	ErrKeyInvalidQuery = "error.invalid_query"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyServiceUnavailable indicates a backing store is not reachable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeySettingsNotFound indicates no delivery settings version is active.
	ErrKeySettingsNotFound = "error.settings_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Validation message translation keys, one per request field.
const (
	ErrKeyValidationPostcode              = "error.validation.postcode"
	ErrKeyValidationSubtotal              = "error.validation.subtotal"
	ErrKeyValidationWeightKg              = "error.validation.weight_kg"
	ErrKeyValidationFreeDeliveryThreshold = "error.validation.free_delivery_threshold"
)

// ValidationKeys maps a request field name to its validation message key.
var ValidationKeys = map[string]string{
	"postcode":                ErrKeyValidationPostcode,
	"subtotal":                ErrKeyValidationSubtotal,
	"weight_kg":               ErrKeyValidationWeightKg,
	"free_delivery_threshold": ErrKeyValidationFreeDeliveryThreshold,
}
