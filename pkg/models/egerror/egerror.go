package egerror

import (
	"errors"
	"fmt"
)

const (
	EGKV_UNEXPECTED            = "EGKVU"
	EGKV_ENTITY_GROUP_MISMATCH = "EGKVW"
	EGKV_UNKNOWN_SCANNER       = "EGKVS"
	EGKV_OUT_OF_ORDER_SCANNER  = "EGKVQ"
	EGKV_CONFLICTING_ACCESS    = "EGKVC"
	EGKV_DIRECTORY_UNAVAILABLE = "EGKVD"
	EGKV_TRANSPORT             = "EGKVT"
	EGKV_TIMEOUT               = "EGKVO"
	EGKV_ENTITY_GROUP_ERROR    = "EGKVE"
	EGKV_NO_ENTITY_GROUP       = "EGKVN"
	EGKV_INVALID_REQUEST       = "EGKVI"
	EGKV_METADATA_CORRUPTION   = "EGKVM"
)

var existingErrorCodeMap = map[string]string{
	EGKV_ENTITY_GROUP_MISMATCH: "EntityGroupMismatch",
	EGKV_UNKNOWN_SCANNER:       "UnknownScanner",
	EGKV_OUT_OF_ORDER_SCANNER:  "OutOfOrderScannerCall",
	EGKV_CONFLICTING_ACCESS:    "ConflictingAccess",
	EGKV_DIRECTORY_UNAVAILABLE: "DirectoryUnavailable",
	EGKV_TRANSPORT:             "Transport",
	EGKV_TIMEOUT:               "Timeout",
	EGKV_ENTITY_GROUP_ERROR:    "EntityGroupError",
	EGKV_NO_ENTITY_GROUP:       "NoEntityGroup",
	EGKV_INVALID_REQUEST:       "InvalidRequest",
	EGKV_METADATA_CORRUPTION:   "MetadataCorruption",
}

// retryableCodes lists every code a caller may resend after. Codes absent
// from the table are terminal for the call that produced them.
var retryableCodes = map[string]bool{
	EGKV_ENTITY_GROUP_MISMATCH: true,
	EGKV_DIRECTORY_UNAVAILABLE: true,
	EGKV_TRANSPORT:             true,
	EGKV_TIMEOUT:               true,
}

func GetMessageByCode(errorCode string) string {
	rep, ok := existingErrorCodeMap[errorCode]
	if ok {
		return rep
	}
	return "Unexpected error"
}

var _ error = &EgkvError{}

type EgkvError struct {
	Err error

	ErrorCode string
	ErrHint   string
}

// New creates a new EgkvError with the given error code and message.
func New(errorCode string, errorMsg string) *EgkvError {
	return &EgkvError{
		Err:       errors.New(errorMsg),
		ErrorCode: errorCode,
	}
}

// Newf creates a new EgkvError with the given error code and formatted message.
func Newf(errorCode string, format string, a ...any) *EgkvError {
	return &EgkvError{
		Err:       fmt.Errorf(format, a...),
		ErrorCode: errorCode,
	}
}

// NewByCode creates an EgkvError whose message is the name of the code.
func NewByCode(errorCode string) *EgkvError {
	return New(errorCode, GetMessageByCode(errorCode))
}

// Wrap keeps err reachable through errors.Is / errors.As.
func Wrap(errorCode string, err error) *EgkvError {
	return &EgkvError{
		Err:       err,
		ErrorCode: errorCode,
	}
}

func (er *EgkvError) Error() string {
	return fmt.Sprintf("Code: %s. Name: %s. Description: %s.",
		er.ErrorCode, GetMessageByCode(er.ErrorCode), er.Err)
}

func (er *EgkvError) Unwrap() error {
	return er.Err
}

// Code returns the code of the first EgkvError in err's chain, or an
// empty string when there is none.
func Code(err error) string {
	var er *EgkvError
	if errors.As(err, &er) {
		return er.ErrorCode
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, errorCode string) bool {
	return err != nil && Code(err) == errorCode
}

func IsRetryableCode(errorCode string) bool {
	return retryableCodes[errorCode]
}

// Retryable reports whether the condition carried by err may be retried.
func Retryable(err error) bool {
	return IsRetryableCode(Code(err))
}
