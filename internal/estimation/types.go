package estimation

// Calculator encapsulates one step of the estimation (e.g. "chip area", "cache area").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used in errors and logs.
	Name() string
	// Key returns the Param key under which the result is published to later calculators.
	Key() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate runs the estimation using the provided params and returns an Estimation or an error.
	Calculate(params map[string]Param) (Estimation, error)
}

// Param represents an input for a Calculator (either a profile constant, a measured value
// or the result of an earlier calculator)
type Param struct {
	Key   string      // Unique identifier (e.g., "chip_area_mm2")
	Value interface{} // The actual value (e.g., 351.5625, int64(1000))
}

// Estimation the result of a Calculator calculation
type Estimation struct {
	Key    string  `json:"key"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

// State is the ordered record of one run: the inputs it started from and every
// estimation in the order it was computed. It is append-only while the Engine runs
// and read-only afterwards.
type State struct {
	inputs      []Param
	estimations []Estimation
	index       map[string]int
}

func newState(inputs []Param) *State {
	s := &State{
		inputs: make([]Param, len(inputs)),
		index:  make(map[string]int),
	}
	copy(s.inputs, inputs)
	return s
}

func (s *State) add(est Estimation) {
	s.index[est.Key] = len(s.estimations)
	s.estimations = append(s.estimations, est)
}

// Get returns the estimation published under key.
func (s *State) Get(key string) (Estimation, bool) {
	i, ok := s.index[key]
	if !ok {
		return Estimation{}, false
	}
	return s.estimations[i], true
}

// Input returns the input param with the given key.
func (s *State) Input(key string) (Param, bool) {
	for _, p := range s.inputs {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

// Inputs returns a copy of the params the run started from.
func (s *State) Inputs() []Param {
	res := make([]Param, len(s.inputs))
	copy(res, s.inputs)
	return res
}

// Estimations returns a copy of the estimations in computation order.
func (s *State) Estimations() []Estimation {
	res := make([]Estimation, len(s.estimations))
	copy(res, s.estimations)
	return res
}
