package twosided

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPenaltyMatrixCoefficients(t *testing.T) {
	lambda := 2.0
	a, err := PenaltyMatrix(lambda, 6)
	if err != nil {
		t.Fatalf("Failed to build penalty matrix: %v", err)
	}

	expected := [][]float64{
		{3, -4, 2, 0, 0, 0},
		{-4, 11, -8, 2, 0, 0},
		{2, -8, 13, -8, 2, 0},
		{0, 2, -8, 13, -8, 2},
		{0, 0, 2, -8, 11, -4},
		{0, 0, 0, 2, -4, 3},
	}

	for i := range expected {
		for j := range expected[i] {
			if math.Abs(a.At(i, j)-expected[i][j]) > 1e-12 {
				t.Errorf("A[%d][%d]: expected %f, got %f", i, j, expected[i][j], a.At(i, j))
			}
		}
	}
}

func TestPenaltyMatrixIdentityAtZeroLambda(t *testing.T) {
	a, err := PenaltyMatrix(0, 8)
	if err != nil {
		t.Fatalf("Failed to build penalty matrix: %v", err)
	}

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if a.At(i, j) != want {
				t.Errorf("A[%d][%d]: expected %f, got %f", i, j, want, a.At(i, j))
			}
		}
	}
}

func TestPenaltyMatrixSymmetric(t *testing.T) {
	a, err := PenaltyMatrix(1600, 20)
	if err != nil {
		t.Fatalf("Failed to build penalty matrix: %v", err)
	}

	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			if a.At(i, j) != a.At(j, i) {
				t.Errorf("Asymmetry at (%d,%d): %f vs %f", i, j, a.At(i, j), a.At(j, i))
			}
		}
	}
}

func TestPenaltyMatrixBandStructure(t *testing.T) {
	a, err := PenaltyMatrix(10, 12)
	if err != nil {
		t.Fatalf("Failed to build penalty matrix: %v", err)
	}

	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if j > i+2 || i > j+2 {
				if a.At(i, j) != 0 {
					t.Errorf("Expected zero outside band at (%d,%d), got %f", i, j, a.At(i, j))
				}
			}
		}
	}
}

func TestPenaltyMatrixPositiveDefinite(t *testing.T) {
	for _, lambda := range []float64{0, 1, 1600, 129600} {
		for _, n := range []int{4, 10, 50} {
			a, err := PenaltyMatrix(lambda, n)
			if err != nil {
				t.Fatalf("lambda=%v n=%d: %v", lambda, n, err)
			}

			var chol mat.BandCholesky
			if ok := chol.Factorize(a); !ok {
				t.Errorf("lambda=%v n=%d: matrix not positive definite", lambda, n)
			}
		}
	}
}

func TestPenaltyMatrixErrors(t *testing.T) {
	if _, err := PenaltyMatrix(1600, 3); err == nil {
		t.Error("Expected error for n < 4, got nil")
	}
	if _, err := PenaltyMatrix(-1, 10); err == nil {
		t.Error("Expected error for negative lambda, got nil")
	}
	if _, err := PenaltyMatrix(math.NaN(), 10); err == nil {
		t.Error("Expected error for NaN lambda, got nil")
	}
}
