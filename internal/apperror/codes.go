package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	// General validation
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// External service errors
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Engine-specific error codes
const (
	// Input validation
	CodeInvalidAmount     Code = "INVALID_AMOUNT"
	CodeInvalidPercentage Code = "INVALID_PERCENTAGE"
	CodeInvalidBps        Code = "INVALID_BPS"
	CodeInvalidTickRange  Code = "INVALID_TICK_RANGE"
	CodeInvalidPositionID Code = "INVALID_POSITION_ID"

	// Unsupported configuration
	CodeUnsupportedVersion Code = "UNSUPPORTED_VERSION"
	CodeUnsupportedFeeTier Code = "UNSUPPORTED_FEE_TIER"

	// Encoding (internal invariant violations - fail loudly)
	CodeEncodingFailed Code = "ENCODING_FAILED"
	CodeValueOverflow  Code = "VALUE_OVERFLOW"

	// Quote computation
	CodeQuoteFailed           Code = "QUOTE_FAILED"
	CodeInsufficientLiquidity Code = "INSUFFICIENT_LIQUIDITY"

	// Blockchain/Ethereum errors (snapshot provider)
	CodeEthereumConnectionFailed Code = "ETHEREUM_CONNECTION_FAILED"
	CodeEthereumRPCError         Code = "ETHEREUM_RPC_ERROR"
	CodeContractCallFailed       Code = "CONTRACT_CALL_FAILED"
	CodePoolNotFound             Code = "POOL_NOT_FOUND"
	CodePoolNotInitialized       Code = "POOL_NOT_INITIALIZED"

	// Circuit breaker errors
	CodeCircuitOpen     Code = "CIRCUIT_OPEN"
	CodeCircuitHalfOpen Code = "CIRCUIT_HALF_OPEN"
)
