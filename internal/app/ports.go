package app

import "context"

// PlanUseCase answers whether the work fits before the submission date and
// how to spread it.
type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}
