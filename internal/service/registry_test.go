package service

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/explorer/internal/types"
	"github.com/stretchr/testify/mock"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryFilesystem,
		Capabilities: []string{"list"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success", "tool": toolID},
	}, nil
}

// recordingProvider captures calls with testify's mock.
type recordingProvider struct {
	mock.Mock
}

func (m *recordingProvider) Definition() types.Service {
	return types.Service{ID: "rec", Category: types.CategoryFilesystem}
}

func (m *recordingProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	args := m.Called(ctx, toolID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}
}

func TestRegisterRejectsDuplicatesAndEmptyIDs(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&mockProvider{id: ""}); err == nil {
		t.Error("Empty service ID should be rejected")
	}

	if err := r.Register(&mockProvider{id: "dup"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(&mockProvider{id: "dup"}); err == nil {
		t.Error("Duplicate service ID should be rejected")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "zeta"})
	r.Register(&mockProvider{id: "alpha"})

	services := r.List()
	if len(services) != 2 {
		t.Fatalf("Expected 2 services, got %d", len(services))
	}
	if services[0].ID != "alpha" || services[1].ID != "zeta" {
		t.Errorf("Services should be ordered by ID, got %s, %s", services[0].ID, services[1].ID)
	}

	tools := r.Tools()
	if len(tools) != 2 || tools[0].ID != "alpha.test" {
		t.Errorf("Unexpected tools: %+v", tools)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	result, err := r.Execute(context.Background(), "test.test", nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !result.Success {
		t.Error("Execute should succeed")
	}
	if result.Data["tool"] != "test.test" {
		t.Errorf("Expected tool ID to be forwarded, got %v", result.Data["tool"])
	}
}

func TestExecuteForwardsParams(t *testing.T) {
	r := NewRegistry()
	p := new(recordingProvider)
	r.Register(p)

	params := map[string]interface{}{"path": "docs"}
	p.On("Execute", mock.Anything, "rec.stat", params).
		Return(&types.Result{Success: true}, nil).
		Once()

	result, err := r.Execute(context.Background(), "rec.stat", params)
	if err != nil || !result.Success {
		t.Fatalf("Execute failed: %v", err)
	}
	p.AssertExpectations(t)
}

func TestExecuteInvalidToolID(t *testing.T) {
	r := NewRegistry()

	for _, id := range []string{"invalid", ".tool", "svc."} {
		result, err := r.Execute(context.Background(), id, nil)
		if err == nil {
			t.Errorf("%q: expected error for invalid tool ID", id)
		}
		if result == nil || result.Success {
			t.Errorf("%q: result should report failure", id)
		}
	}
}

func TestExecuteUnknownService(t *testing.T) {
	r := NewRegistry()

	result, err := r.Execute(context.Background(), "nonexistent.tool", nil)
	if err == nil {
		t.Error("Expected error for unknown service")
	}
	if result.ErrorMessage() != "service not found: nonexistent" {
		t.Errorf("Unexpected message: %q", result.ErrorMessage())
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	if stats.Services != 2 {
		t.Errorf("Expected 2 services, got %d", stats.Services)
	}
	if stats.Tools != 2 {
		t.Errorf("Expected 2 tools, got %d", stats.Tools)
	}
	if stats.Categories[string(types.CategoryFilesystem)] != 2 {
		t.Errorf("Expected 2 filesystem services, got %v", stats.Categories)
	}
}
