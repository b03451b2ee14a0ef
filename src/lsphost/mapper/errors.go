package mapper

import (
	"encoding/json"
	"errors"

	"go.lsp.dev/jsonrpc2"
)

// ToJSONRPCError translates service domain errors into errors that carry a JSON-RPC code on the wire.
func ToJSONRPCError(e error) error {
	if e == nil {
		return nil
	}

	var wire *jsonrpc2.Error
	if errors.As(e, &wire) {
		return wire
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(e, &syntaxErr) || errors.As(e, &typeErr) {
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, e.Error())
	}

	return jsonrpc2.NewError(jsonrpc2.InternalError, e.Error())
}
