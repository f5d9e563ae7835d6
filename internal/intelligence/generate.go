package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/devterm/internal/llm"
	"github.com/alexanderramin/devterm/internal/schema"
)

// flowDeps is what every flow needs to reach the provider.
type flowDeps struct {
	client llm.Client
	gate   Gate
}

// validateInput checks a flow's input before any cooldown or network cost.
func validateInput(shape schema.Shape, input any) error {
	if err := schema.ValidateStruct(shape, input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// generate runs the shared gate → client → extract → validate pipeline and
// decodes the result into T. Cooldown errors are returned unwrapped.
func generate[T any](ctx context.Context, d flowDeps, category string, req llm.GenerateRequest, out schema.Shape) (T, error) {
	var zero T

	if err := d.gate.Enforce(ctx, category); err != nil {
		return zero, err
	}

	resp, err := d.client.Generate(ctx, req)
	if err != nil {
		return zero, err
	}

	result, err := llm.DecodeJSON[T](resp.Text, out)
	if err != nil {
		return zero, fmt.Errorf("%s flow: %w", category, err)
	}
	return result, nil
}
