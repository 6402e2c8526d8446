package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TrevorS/kmeans"
)

var errMissingInput = errors.New("missing input")

// dataset is the input document. JSON documents parse as YAML.
// Threshold is nil when the document does not set it.
type dataset struct {
	Threshold     *float64    `yaml:"threshold,omitempty"`
	MaxIterations int         `yaml:"max_iterations,omitempty"`
	Centroids     [][]float64 `yaml:"centroids"`
	Instances     [][]float64 `yaml:"instances"`
}

// report is the output document.
type report struct {
	Centroids   [][]float64 `yaml:"centroids" json:"centroids"`
	Assignment  []int       `yaml:"assignment" json:"assignment"`
	Distortions []float64   `yaml:"distortions" json:"distortions"`
	Sizes       []int       `yaml:"sizes" json:"sizes"`
	Iterations  int         `yaml:"iterations" json:"iterations"`
	Repairs     int         `yaml:"repairs" json:"repairs"`
	Converged   bool        `yaml:"converged" json:"converged"`
}

func newReport(r *kmeans.Result) report {
	return report{
		Centroids:   r.Centroids,
		Assignment:  r.Assignment,
		Distortions: r.Distortions,
		Sizes:       r.Sizes,
		Iterations:  r.Iterations,
		Repairs:     r.Repairs,
		Converged:   r.Converged,
	}
}

// loadDataset reads a dataset document from path, or from stdin when path is "-".
func loadDataset(path string, stdin io.Reader) (*dataset, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		return nil, fmt.Errorf("%w: --input is required", errMissingInput)
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return &ds, nil
}
