package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlref/pkg/errors"
)

const tolerance = 1e-10

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// vec は空スライスも扱えるテスト用のベクトル生成ヘルパー
func vec(data []float64) *mat.VecDense {
	if len(data) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(data), data)
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3, 4},
			yPred: []float64{1, 2, 3, 4},
			want:  0.0,
		},
		{
			name:  "constant offset",
			yTrue: []float64{1, 2, 3, 4},
			yPred: []float64{2, 3, 4, 5},
			want:  1.0,
		},
		{
			name:  "mixed signs",
			yTrue: []float64{1, -1, 2},
			yPred: []float64{0, 1, 0},
			want:  (1.0 + 2.0 + 2.0) / 3.0,
		},
		{
			name:    "empty vectors",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1, 2},
			yPred:   []float64{1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(vec(tt.yTrue), vec(tt.yPred))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("MAE = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMSEAndRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	yPred := mat.NewVecDense(4, []float64{1, 2, 3, 6})

	mse, err := MSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(mse, 1.0) { // (0+0+0+4)/4
		t.Errorf("MSE = %v, want 1.0", mse)
	}

	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(rmse, 1.0) {
		t.Errorf("RMSE = %v, want 1.0", rmse)
	}

	// RMSEはMSEの平方根であること
	yPred2 := mat.NewVecDense(4, []float64{2, 3, 4, 5})
	mse2, _ := MSE(yTrue, yPred2)
	rmse2, _ := RMSE(yTrue, yPred2)
	if !almostEqual(rmse2, math.Sqrt(mse2)) {
		t.Errorf("RMSE = %v, want sqrt(MSE) = %v", rmse2, math.Sqrt(mse2))
	}
}

func TestRSquared(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3, 4},
			yPred: []float64{1, 2, 3, 4},
			want:  1.0,
		},
		{
			name:  "mean prediction",
			yTrue: []float64{1, 2, 3, 4},
			yPred: []float64{2.5, 2.5, 2.5, 2.5},
			want:  0.0,
		},
		{
			name:  "typical case",
			yTrue: []float64{3, -0.5, 2, 7},
			yPred: []float64{2.5, 0.0, 2, 8},
			want:  0.9486081370449679,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RSquared(
				mat.NewVecDense(len(tt.yTrue), tt.yTrue),
				mat.NewVecDense(len(tt.yPred), tt.yPred),
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("RSquared = %v, want %v", got, tt.want)
			}
		})
	}
}

// yTrueが定数の場合は警告を発行して0を返すこと
func TestRSquaredConstantTruth(t *testing.T) {
	var warned []error
	errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	defer errors.SetWarningHandler(nil)

	got, err := RSquared(
		mat.NewVecDense(3, []float64{2, 2, 2}),
		mat.NewVecDense(3, []float64{1, 2, 3}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("RSquared = %v, want 0", got)
	}
	if len(warned) != 1 {
		t.Fatalf("captured %d warnings, want 1", len(warned))
	}
	var umw *errors.UndefinedMetricWarning
	if !errors.As(warned[0], &umw) {
		t.Fatalf("warning type = %T, want *errors.UndefinedMetricWarning", warned[0])
	}
}

func TestMAPE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{100, 200, 300, 400})
	yPred := mat.NewVecDense(4, []float64{110, 180, 300, 440})

	got, err := MAPE(yTrue, yPred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (0.10 + 0.10 + 0.0 + 0.10) / 4.0
	if !almostEqual(got, want) {
		t.Errorf("MAPE = %v, want %v", got, want)
	}
}

func TestMAPEZeroTruth(t *testing.T) {
	_, err := MAPE(
		mat.NewVecDense(3, []float64{1, 0, 3}),
		mat.NewVecDense(3, []float64{1, 1, 3}),
	)
	if err == nil {
		t.Fatal("expected an error for zero values in y_true")
	}
	var ve *errors.ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *errors.ValueError", err)
	}
}

func BenchmarkMSE(b *testing.B) {
	n := 10000
	data := make([]float64, n)
	pred := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
		pred[i] = float64(i) + 0.5
	}
	yTrue := mat.NewVecDense(n, data)
	yPred := mat.NewVecDense(n, pred)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MSE(yTrue, yPred); err != nil {
			b.Fatal(err)
		}
	}
}
