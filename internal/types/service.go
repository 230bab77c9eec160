package types

// Category represents service categories
type Category string

const (
	CategoryFilesystem Category = "filesystem"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Result represents a service execution result.
// Code carries the error kind of a failed operation.
type Result struct {
	Success bool                   `json:"success" yaml:"success" toml:"success"`
	Message string                 `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
	Code    string                 `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
	Error   *string                `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// ErrorMessage returns the failure message, or "" for a successful result.
func (r *Result) ErrorMessage() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return *r.Error
}
