package predictor

// Predictor scores one feature vector. The vector layout must match the
// Schema the model was trained against; implementations must be safe for
// concurrent use once loaded.
type Predictor interface {
	Predict(features []float64) (float64, error)
}
