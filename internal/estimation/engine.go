package estimation

import "fmt"

// Engine orchestrates Calculator objects and chains their results
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to participate in the estimation.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() or the same Key() is already
// registered, as a duplicate key would silently shadow an earlier result.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("estimation: calculator %q already registered", c.Name()))
		}
		if existing.Key() == c.Key() {
			panic(fmt.Sprintf("estimation: key %q already produced by calculator %q", c.Key(), existing.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Calculators returns the registered calculators in execution order.
func (e *Engine) Calculators() []Calculator {
	res := make([]Calculator, len(e.calculators))
	copy(res, e.calculators)
	return res
}

// Run executes all registered calculators against the provided params.
// Each result is published as a Param under the calculator's Key before the next
// calculator runs. The first failing calculator aborts the run and no State is returned.
func (e *Engine) Run(inputs []Param) (*State, error) {
	// Convert slice to map for lookups by Calculators
	paramMap := make(map[string]Param)
	for _, p := range inputs {
		paramMap[p.Key] = p
	}

	state := newState(inputs)
	for _, calc := range e.calculators {
		for _, k := range calc.Keys() {
			if _, ok := paramMap[k]; !ok {
				return nil, fmt.Errorf("calculator %q: missing %s", calc.Name(), k)
			}
		}

		est, err := calc.Calculate(paramMap)
		if err != nil {
			return nil, fmt.Errorf("calculator %q: %w", calc.Name(), err)
		}
		if est.Key == "" {
			est.Key = calc.Key()
		}

		paramMap[est.Key] = Param{Key: est.Key, Value: est.Value}
		state.add(est)
	}
	return state, nil
}
