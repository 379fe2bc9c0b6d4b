package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// LinearModel scores a linear regression artifact: a bias plus one weight
// per schema field, stored as JSON. It is the lightweight alternative to the
// tree ensembles, mainly used for smoke deployments and tests.
type LinearModel struct {
	weights *mat.VecDense
	bias    float64
}

type linearFile struct {
	Bias    float64   `json:"bias"`
	Weights []float64 `json:"weights"`
}

// LoadLinearModel reads a linear model artifact from path.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	var f linearFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	if len(f.Weights) == 0 {
		return nil, fmt.Errorf("model %s: no weights", path)
	}
	return &LinearModel{weights: mat.NewVecDense(len(f.Weights), f.Weights), bias: f.Bias}, nil
}

// NewLinearModel builds a model directly from coefficients.
func NewLinearModel(bias float64, weights []float64) *LinearModel {
	cp := make([]float64, len(weights))
	copy(cp, weights)
	return &LinearModel{weights: mat.NewVecDense(len(cp), cp), bias: bias}
}

// Predict returns bias + weights · features.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != m.weights.Len() {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), m.weights.Len())
	}
	v := mat.NewVecDense(len(features), features)
	return m.bias + mat.Dot(m.weights, v), nil
}
