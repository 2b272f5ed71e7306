package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeInvalidState:    "Invalid state for this operation",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal server error",
	CodeUnknownError:  "An unknown error occurred",

	// Input validation
	CodeInvalidAmount:     "Amount failed integer parsing",
	CodeInvalidPercentage: "Percentage outside [0, 100]",
	CodeInvalidBps:        "Basis points outside [0, 10000]",
	CodeInvalidTickRange:  "Tick range is invalid",
	CodeInvalidPositionID: "Position identifier is malformed",

	// Unsupported configuration
	CodeUnsupportedVersion: "Unsupported protocol version",
	CodeUnsupportedFeeTier: "Fee tier has no known tick spacing",

	// Encoding
	CodeEncodingFailed: "Calldata encoding failed",
	CodeValueOverflow:  "Value exceeds target ABI field width",

	// Quote computation
	CodeQuoteFailed:           "Failed to compute quote",
	CodeInsufficientLiquidity: "Insufficient liquidity for trade size",

	// Blockchain/Ethereum errors
	CodeEthereumConnectionFailed: "Failed to connect to Ethereum node",
	CodeEthereumRPCError:         "Ethereum RPC call failed",
	CodeContractCallFailed:       "Smart contract call failed",
	CodePoolNotFound:             "Pool not found",
	CodePoolNotInitialized:       "Pool exists but is not initialized",

	// Circuit breaker errors
	CodeCircuitOpen:     "Circuit breaker is open",
	CodeCircuitHalfOpen: "Circuit breaker is half-open",
}
