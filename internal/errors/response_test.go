package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(CategoryInUse, s.traceID)

	s.NotNil(response)
	s.Equal("CATEGORY_003", response.Error.Code)
	s.Equal("Category still has expense records and cannot be deleted", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"amount: is required", "title: is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests creating error response with custom message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "该分类下还有支出记录，请先删除相关记录"
	response := NewErrorResponse(CategoryInUse, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("CATEGORY_003", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewValidationError tests building a field-error response
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"amount": "must be greater than 0",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Equal("amount: must be greater than 0", response.Error.Details[0])
}

// TestWrapSystemError tests wrapping an internal error
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("snapshot write failed: disk full")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(s.traceID, response.Error.TraceID)
	s.NotContains(response.Error.Message, "disk full")
	s.Equal(internal, err)
}

// TestGetHTTPStatus tests the code-to-status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidAmount, http.StatusBadRequest},
		{CategoryNameRequired, http.StatusBadRequest},
		{ExpenseValidationFailed, http.StatusBadRequest},
		{CategoryNotFound, http.StatusNotFound},
		{ExpenseNotFound, http.StatusNotFound},
		{CategoryInUse, http.StatusConflict},
		{RecordingSessionBusy, http.StatusConflict},
		{RecordingDeviceNotFound, http.StatusUnprocessableEntity},
		{RecordingPermissionDenied, http.StatusUnprocessableEntity},
		{RecordingUploadFailed, http.StatusBadGateway},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestErrorResponse_ClientServerClassification tests the 4xx/5xx helpers
func (s *ResponseTestSuite) TestErrorResponse_ClientServerClassification() {
	clientErr := NewErrorResponse(CategoryNotFound, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}

// TestErrorResponse_ToJSON tests serialization round trip
func (s *ResponseTestSuite) TestErrorResponse_ToJSON() {
	response := NewErrorResponse(RecordingUploadFailed, s.traceID, WithDetails("sink rejected artifact"))

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal(response.Error.Code, decoded.Error.Code)
	s.Equal(response.Error.Details, decoded.Error.Details)
}

// TestErrorResponse_String tests the string representation
func (s *ResponseTestSuite) TestErrorResponse_String() {
	response := NewErrorResponse(CategoryNotFound, s.traceID)
	s.Contains(response.String(), "CATEGORY_001")
	s.Contains(response.String(), s.traceID)
}
