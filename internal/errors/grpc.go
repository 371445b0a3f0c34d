package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies this service in google.rpc.ErrorInfo details
const ErrorDomain = "rpgsheet"

// ToGRPCError converts an error to a gRPC status error.
//
// The status carries a google.rpc.ErrorInfo with the code as reason and the
// metadata stringified, plus a google.rpc.BadRequest when the error came
// from a ValidationBuilder.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	info := &errdetails.ErrorInfo{
		Reason: string(customErr.Code),
		Domain: ErrorDomain,
	}
	var badRequest *errdetails.BadRequest
	for key, value := range customErr.Meta {
		if fields, ok := value.(map[string][]string); ok && key == MetaValidationErrors {
			badRequest = fieldViolations(fields)
			continue
		}
		if info.Metadata == nil {
			info.Metadata = make(map[string]string)
		}
		info.Metadata[key] = fmt.Sprint(value)
	}

	withDetails, detailErr := st.WithDetails(info)
	if detailErr == nil && badRequest != nil {
		withDetails, detailErr = withDetails.WithDetails(badRequest)
	}
	if detailErr == nil {
		st = withDetails
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error back into an *Error, restoring
// metadata and field violations from the status details
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			fields := make(map[string][]string)
			for _, v := range d.GetFieldViolations() {
				fields[v.GetField()] = append(fields[v.GetField()], v.GetDescription())
			}
			customErr.WithMeta(MetaValidationErrors, fields)
		}
	}

	return customErr
}

func fieldViolations(fields map[string][]string) *errdetails.BadRequest {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	br := &errdetails.BadRequest{}
	for _, name := range names {
		for _, msg := range fields[name] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       name,
				Description: msg,
			})
		}
	}
	return br
}
