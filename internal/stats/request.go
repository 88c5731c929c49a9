package stats

import (
	"encoding/json"

	wcerrors "wordcounter/internal/errors"
)

// Request is a decoded count request. Fields other than file_path are
// ignored.
type Request struct {
	FilePath string `json:"file_path"`
}

// DecodeRequest parses one JSON request object. Failures are InvalidInput
// errors whose message is one of wcerrors.MsgInvalidJSON,
// wcerrors.MsgMissingPath or wcerrors.MsgPathNotString.
func DecodeRequest(data []byte) (Request, error) {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return Request{}, wcerrors.NewWcError(wcerrors.InvalidInput, wcerrors.MsgInvalidJSON, err)
	}

	obj, ok := value.(map[string]interface{})
	if !ok {
		return Request{}, wcerrors.NewInvalidInputError(wcerrors.MsgMissingPath)
	}

	raw, ok := obj["file_path"]
	if !ok {
		return Request{}, wcerrors.NewInvalidInputError(wcerrors.MsgMissingPath)
	}

	path, ok := raw.(string)
	if !ok {
		return Request{}, wcerrors.NewInvalidInputError(wcerrors.MsgPathNotString)
	}

	return Request{FilePath: path}, nil
}
