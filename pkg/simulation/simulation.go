// Package simulation defines the contract depsync-provisioned native
// simulation modules expose to demo drivers: construct, initialize, step
// until complete, report the final step count.
package simulation

import (
	"context"
	"fmt"
)

type Simulation interface {
	Initialize() error
	Step() error
	IsComplete() bool
	CurrentStep() int
}

type Result struct {
	Steps int
}

// RunLoop drives a simulation to completion. Cancellation stops the loop
// between steps; the simulation itself is never rolled back.
func RunLoop(ctx context.Context, sim Simulation) (Result, error) {
	if err := sim.Initialize(); err != nil {
		return Result{}, fmt.Errorf("initialize simulation: %w", err)
	}
	for !sim.IsComplete() {
		if err := ctx.Err(); err != nil {
			return Result{Steps: sim.CurrentStep()}, err
		}
		if err := sim.Step(); err != nil {
			return Result{Steps: sim.CurrentStep()}, fmt.Errorf("step %d: %w", sim.CurrentStep(), err)
		}
	}
	return Result{Steps: sim.CurrentStep()}, nil
}
