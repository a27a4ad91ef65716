package optim

import "github.com/regviz-ml/regviz/internal/scalar"

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent along consistent directions and dampens
// oscillation across steep valleys.
type SGD struct {
	params     []*scalar.Value
	lr         float64
	momentum   float64
	velocities map[*scalar.Value]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*scalar.Value]float64),
	}
}

// Step performs a single optimization step, updating parameters in place.
// Parameters with no gradient in the map are skipped.
func (s *SGD) Step(grads map[*scalar.Value]float64) {
	for _, param := range s.params {
		grad, ok := grads[param]
		if !ok {
			// Parameter didn't participate in the forward pass, skip.
			continue
		}

		if s.momentum == 0 {
			param.Set(param.Data() - s.lr*grad)
			continue
		}

		v := s.momentum*s.velocities[param] + grad
		s.velocities[param] = v
		param.Set(param.Data() - s.lr*v)
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 { return s.lr }

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
