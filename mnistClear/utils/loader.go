package utils

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Load_file load at most nsamples lines of fname into a slice of strings, nsamples <= 0 reads every line
func Load_file(fname string, nsamples int) ([]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	output := make([]string, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		output = append(output, line)
		if nsamples > 0 && len(output) >= nsamples {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return output, nil
}

// String_to_float convert slice of string to slice of float
func String_to_float(a []string) ([]float64, error) {
	c := make([]float64, len(a))
	for i := 0; i < len(a); i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(a[i]), 64)
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	return c, nil
}

// Convert_X_mnist converts "label,p0,...,p(nfeatures-1)" rows into a nfeatures x nsamples
// matrix (one sample per column) and the label slice
func Convert_X_mnist(rows []string, nfeatures int) (*mat.Dense, []float64, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no samples", ErrShapeMismatch)
	}

	X := mat.NewDense(nfeatures, len(rows), nil)
	y := make([]float64, len(rows))
	for j, row := range rows {
		fields := strings.Split(row, ",")
		if len(fields) != nfeatures+1 {
			return nil, nil, fmt.Errorf("%w: row %d has %d fields, expected %d", ErrShapeMismatch, j, len(fields), nfeatures+1)
		}
		values, err := String_to_float(fields)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %v", j, err)
		}
		y[j] = values[0]
		X.SetCol(j, values[1:])
	}
	return X, y, nil
}

// Normalize divides every entry of X by its global maximum and returns that maximum.
// X is left untouched when its maximum is not positive.
func Normalize(X *mat.Dense) float64 {
	max := mat.Max(X)
	if max > 0 {
		X.Scale(1/max, X)
	}
	return max
}
