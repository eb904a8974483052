package egerror

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain tags the errdetails.ErrorInfo attached to every egkv status.
const ErrorDomain = "egkv"

var codeToGRPC = map[string]codes.Code{
	EGKV_UNEXPECTED:            codes.Internal,
	EGKV_ENTITY_GROUP_MISMATCH: codes.FailedPrecondition,
	EGKV_UNKNOWN_SCANNER:       codes.NotFound,
	EGKV_OUT_OF_ORDER_SCANNER:  codes.OutOfRange,
	EGKV_CONFLICTING_ACCESS:    codes.Aborted,
	EGKV_DIRECTORY_UNAVAILABLE: codes.Unavailable,
	EGKV_TRANSPORT:             codes.Unavailable,
	EGKV_TIMEOUT:               codes.DeadlineExceeded,
	EGKV_ENTITY_GROUP_ERROR:    codes.FailedPrecondition,
	EGKV_NO_ENTITY_GROUP:       codes.NotFound,
	EGKV_INVALID_REQUEST:       codes.InvalidArgument,
	EGKV_METADATA_CORRUPTION:   codes.DataLoss,
}

// ToStatus converts err into a gRPC status error carrying its code. Errors
// that are not EgkvError travel as EGKV_UNEXPECTED.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var er *EgkvError
	if !errors.As(err, &er) {
		er = Wrap(EGKV_UNEXPECTED, err)
	}

	c, ok := codeToGRPC[er.ErrorCode]
	if !ok {
		c = codes.Unknown
	}
	msg := ""
	if er.Err != nil {
		msg = er.Err.Error()
	}
	info := &errdetails.ErrorInfo{
		Domain: ErrorDomain,
		Reason: er.ErrorCode,
	}
	if er.ErrHint != "" {
		info.Metadata = map[string]string{"hint": er.ErrHint}
	}

	st, derr := status.New(c, msg).WithDetails(info)
	if derr != nil {
		return status.Error(c, msg)
	}
	return st.Err()
}

// FromGRPC restores the EgkvError a server sent. Transport level failures
// without egkv details are classified as EGKV_TRANSPORT or EGKV_TIMEOUT.
func FromGRPC(err error) error {
	if err == nil {
		return nil
	}
	if Code(err) != "" {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(EGKV_TIMEOUT, err)
	}

	st, ok := status.FromError(err)
	if !ok {
		return Wrap(EGKV_TRANSPORT, err)
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		return &EgkvError{
			Err:       errors.New(st.Message()),
			ErrorCode: info.GetReason(),
			ErrHint:   info.GetMetadata()["hint"],
		}
	}

	switch st.Code() {
	case codes.DeadlineExceeded:
		return Wrap(EGKV_TIMEOUT, err)
	case codes.Unavailable, codes.Canceled:
		return Wrap(EGKV_TRANSPORT, err)
	default:
		return Wrap(EGKV_UNEXPECTED, err)
	}
}
