package providers

import (
	"strconv"

	"github.com/GriffinCanCode/explorer/internal/providers/filesystem"
	"github.com/GriffinCanCode/explorer/internal/types"
)

func success(message string, data map[string]interface{}) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Message: message,
		Data:    data,
	}, nil
}

// failure reports an operation error in the result; the Go error stays nil
// because the call itself completed.
func failure(kind filesystem.ErrorKind, message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{
		Success: false,
		Code:    string(kind),
		Error:   &errMsg,
	}, nil
}

func stringParam(params map[string]interface{}, key string) string {
	switch v := params[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// boolParam accepts booleans and their string spellings ("true", "1", ...).
func boolParam(params map[string]interface{}, key string) bool {
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	default:
		return false
	}
}
