package predictor

import (
	"os"
	"path/filepath"
	"testing"
)

// One depth-1 tree: feature 0 < 10 → leaf 1.5, else leaf 4.5. Plus a second
// stump on feature 1. Leaf values live in split_conditions, matching the
// serialised format.
const xgbFixture = `{
  "learner": {
    "learner_model_param": {"base_score": "5E-1", "num_feature": "2"},
    "gradient_booster": {
      "name": "gbtree",
      "model": {
        "trees": [
          {
            "left_children": [1, -1, -1],
            "right_children": [2, -1, -1],
            "split_indices": [0, 0, 0],
            "split_conditions": [10, 1.5, 4.5],
            "default_left": [1, 0, 0]
          },
          {
            "left_children": [1, -1, -1],
            "right_children": [2, -1, -1],
            "split_indices": [1, 0, 0],
            "split_conditions": [2, -1, 1],
            "default_left": [0, 0, 0]
          }
        ]
      }
    }
  }
}`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestXGBoost_Predict(t *testing.T) {
	m, err := LoadXGBoostModel(writeFixture(t, "model.json", xgbFixture))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cases := []struct {
		features []float64
		want     float64
	}{
		{[]float64{5, 1}, 0.5 + 1.5 - 1},  // left, left
		{[]float64{5, 3}, 0.5 + 1.5 + 1},  // left, right
		{[]float64{12, 1}, 0.5 + 4.5 - 1}, // right, left
		{[]float64{12, 3}, 0.5 + 4.5 + 1}, // right, right
	}
	for _, c := range cases {
		got, err := m.Predict(c.features)
		if err != nil {
			t.Fatalf("predict %v: %v", c.features, err)
		}
		if got != c.want {
			t.Fatalf("predict %v = %v, want %v", c.features, got, c.want)
		}
	}
}

func TestXGBoost_ShortVector(t *testing.T) {
	m, err := LoadXGBoostModel(writeFixture(t, "model.json", xgbFixture))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := m.Predict([]float64{1}); err == nil {
		t.Fatalf("expected error for too-short vector")
	}
}

func TestXGBoost_UnsupportedBooster(t *testing.T) {
	fixture := `{"learner": {"gradient_booster": {"name": "gblinear", "model": {"trees": []}}}}`
	if _, err := LoadXGBoostModel(writeFixture(t, "model.json", fixture)); err == nil {
		t.Fatalf("expected error for gblinear booster")
	}
}

func TestXGBoost_NoTrees(t *testing.T) {
	fixture := `{"learner": {"gradient_booster": {"name": "gbtree", "model": {"trees": []}}}}`
	if _, err := LoadXGBoostModel(writeFixture(t, "model.json", fixture)); err == nil {
		t.Fatalf("expected error for empty ensemble")
	}
}

func TestXGBoost_InconsistentTree(t *testing.T) {
	fixture := `{
	  "learner": {
	    "gradient_booster": {
	      "name": "gbtree",
	      "model": {"trees": [{
	        "left_children": [1, -1, -1],
	        "right_children": [2, -1],
	        "split_indices": [0, 0, 0],
	        "split_conditions": [1, 2, 3],
	        "default_left": [0, 0, 0]
	      }]}
	    }
	  }
	}`
	if _, err := LoadXGBoostModel(writeFixture(t, "model.json", fixture)); err == nil {
		t.Fatalf("expected error for inconsistent node arrays")
	}
}
