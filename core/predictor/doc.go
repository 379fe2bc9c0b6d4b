// Package predictor defines the scoring interface the simulation relies on.
// The three regression models (arrivals, queue size, wait time) are trained
// and persisted outside this repository; the core treats each as an opaque
// scorer over a fixed-layout numeric feature vector.
package predictor
