// SPDX-License-Identifier: MIT

package csc

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Fixture is a small hand-written matrix plus named integer vectors
// (expected trees, postorders, counts, patterns) decoded from YAML:
//
//	- name: case0
//	  dense:
//	    - [1, 0, 1]
//	    - [0, 1, 0]
//	    - [0, 0, 1]
//	  ints:
//	    parent: [2, -1, -1]
type Fixture struct {
	Name  string           `yaml:"name"`
	Dense [][]float64      `yaml:"dense"`
	Ints  map[string][]int `yaml:"ints"`
}

// LoadFixtures decodes a YAML sequence of fixtures.
func LoadFixtures(r io.Reader) ([]Fixture, error) {
	var out []Fixture
	if err := yaml.NewDecoder(r).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, cscErrorf(opFixture, err)
	}

	return out, nil
}

// Matrix converts the dense grid into CSC, storing every non-zero entry.
// Ragged rows fail with ErrDimensionMismatch.
func (f Fixture) Matrix() (*Matrix, error) {
	rows := len(f.Dense)
	cols := 0
	if rows > 0 {
		cols = len(f.Dense[0])
	}
	for i, row := range f.Dense {
		if len(row) != cols {
			return nil, cscErrorf(opFixture, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				f.Name, i, len(row), cols, ErrDimensionMismatch))
		}
	}

	m := MustNew(rows, cols, 0)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if f.Dense[i][j] == 0 {
				continue
			}
			if err := m.Set(i, j, f.Dense[i][j]); err != nil {
				return nil, cscErrorf(opFixture, err)
			}
		}
	}

	return m, nil
}
