package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
)

// XGBoostModel scores a gradient-boosted tree ensemble persisted with
// XGBoost's JSON save format (Booster.save_model("*.json")). Only the
// gbtree booster with a single output group is supported, which covers the
// regression artifacts this service consumes. The model is read-only after
// load and safe for concurrent use.
type XGBoostModel struct {
	trees      []xgbTree
	baseScore  float64
	numFeature int
}

type xgbTree struct {
	LeftChildren    []int     `json:"left_children"`
	RightChildren   []int     `json:"right_children"`
	SplitIndices    []int     `json:"split_indices"`
	SplitConditions []float64 `json:"split_conditions"`
	DefaultLeft     []int     `json:"default_left"`
}

type xgbFile struct {
	Learner struct {
		LearnerModelParam struct {
			BaseScore  string `json:"base_score"`
			NumFeature string `json:"num_feature"`
		} `json:"learner_model_param"`
		GradientBooster struct {
			Name  string `json:"name"`
			Model struct {
				Trees []xgbTree `json:"trees"`
			} `json:"model"`
		} `json:"gradient_booster"`
	} `json:"learner"`
}

// LoadXGBoostModel reads an XGBoost JSON model artifact from path.
func LoadXGBoostModel(path string) (*XGBoostModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	var f xgbFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	if name := f.Learner.GradientBooster.Name; name != "" && name != "gbtree" {
		return nil, fmt.Errorf("model %s: unsupported booster %q", path, name)
	}
	if len(f.Learner.GradientBooster.Model.Trees) == 0 {
		return nil, fmt.Errorf("model %s: no trees", path)
	}
	m := &XGBoostModel{trees: f.Learner.GradientBooster.Model.Trees}
	if s := f.Learner.LearnerModelParam.BaseScore; s != "" {
		if m.baseScore, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("model %s: base_score %q: %w", path, s, err)
		}
	}
	if s := f.Learner.LearnerModelParam.NumFeature; s != "" {
		if m.numFeature, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("model %s: num_feature %q: %w", path, s, err)
		}
	}
	for i, t := range m.trees {
		n := len(t.LeftChildren)
		if len(t.RightChildren) != n || len(t.SplitIndices) != n ||
			len(t.SplitConditions) != n || len(t.DefaultLeft) != n {
			return nil, fmt.Errorf("model %s: tree %d has inconsistent node arrays", path, i)
		}
	}
	return m, nil
}

// Predict sums the leaf outputs of every tree plus the base score.
func (m *XGBoostModel) Predict(features []float64) (float64, error) {
	if m.numFeature > 0 && len(features) < m.numFeature {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), m.numFeature)
	}
	sum := m.baseScore
	for i := range m.trees {
		leaf, err := m.trees[i].walk(features)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		sum += leaf
	}
	return sum, nil
}

// walk descends from the root to a leaf. Leaf nodes store their output in
// split_conditions, matching the serialised format.
func (t *xgbTree) walk(features []float64) (float64, error) {
	node := 0
	for steps := 0; steps <= len(t.LeftChildren); steps++ {
		if t.LeftChildren[node] == -1 {
			return t.SplitConditions[node], nil
		}
		idx := t.SplitIndices[node]
		if idx >= len(features) {
			return 0, fmt.Errorf("split index %d out of range", idx)
		}
		v := features[idx]
		switch {
		case math.IsNaN(v):
			if t.DefaultLeft[node] != 0 {
				node = t.LeftChildren[node]
			} else {
				node = t.RightChildren[node]
			}
		case v < t.SplitConditions[node]:
			node = t.LeftChildren[node]
		default:
			node = t.RightChildren[node]
		}
		if node < 0 || node >= len(t.LeftChildren) {
			return 0, fmt.Errorf("child index %d out of range", node)
		}
	}
	return 0, fmt.Errorf("cycle detected in tree")
}
