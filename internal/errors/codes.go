package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound     ErrorCode = "CATEGORY_001"
	CategoryNameRequired ErrorCode = "CATEGORY_002"
	CategoryInUse        ErrorCode = "CATEGORY_003"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound         ErrorCode = "EXPENSE_001"
	ExpenseValidationFailed ErrorCode = "EXPENSE_002"
	ExpenseExportFailed     ErrorCode = "EXPENSE_003"
)

// Recording error codes (RECORDING_*)
const (
	RecordingPermissionDenied ErrorCode = "RECORDING_001"
	RecordingDeviceNotFound   ErrorCode = "RECORDING_002"
	RecordingConstraintError  ErrorCode = "RECORDING_003"
	RecordingProcessingFailed ErrorCode = "RECORDING_004"
	RecordingUploadFailed     ErrorCode = "RECORDING_005"
	RecordingSessionBusy      ErrorCode = "RECORDING_006"
	RecordingUnknown          ErrorCode = "RECORDING_007"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidAmount: "Amount must be a positive decimal",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",

	// Category errors
	CategoryNotFound:     "Category not found",
	CategoryNameRequired: "Category name must not be empty",
	CategoryInUse:        "Category still has expense records and cannot be deleted",

	// Expense errors
	ExpenseNotFound:         "Expense record not found",
	ExpenseValidationFailed: "Amount, title and category are required",
	ExpenseExportFailed:     "Failed to build the export file",

	// Recording errors
	RecordingPermissionDenied: "Microphone access was denied",
	RecordingDeviceNotFound:   "No usable capture device was found",
	RecordingConstraintError:  "Capture device configuration is not supported",
	RecordingProcessingFailed: "Failed to process the recorded audio",
	RecordingUploadFailed:     "Failed to upload the recording",
	RecordingSessionBusy:      "A recording session is already in progress",
	RecordingUnknown:          "Recording failed for an unknown reason",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
