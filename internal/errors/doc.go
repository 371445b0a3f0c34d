// Package errors provides coded errors for rpg-sheet.
//
// Every layer returns *Error values carrying a Code, a user-facing message,
// an optional cause and metadata:
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
// Wrap keeps the code of a wrapped *Error, so a repository NotFound stays
// NotFound when the orchestrator adds context:
//
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to get character")
//	}
//
// Validation errors are accumulated with ValidationBuilder and surface as
// InvalidArgument with the per-field messages under MetaValidationErrors:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("id", input.ID, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Handlers convert with ToGRPCError, which attaches google.rpc.ErrorInfo and,
// for validation failures, google.rpc.BadRequest details. Clients reverse
// this with FromGRPCError.
package errors
