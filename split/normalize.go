// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"math"

	"cogentcore.org/core/tensor/table"
)

// NormSuffix is appended to column names by [TernaryNormalize].
const NormSuffix = "_norm"

// TernaryNormalize appends, for each of exactly three numeric columns, a
// new float64 column named after it with [NormSuffix] added, holding
// 100 · value / (row sum of the three columns). Rows whose three values
// sum to zero get NaN. The source columns are never modified; the only
// mutation is the three added columns.
func TernaryNormalize(dt *table.Table, columns ...string) error {
	if len(columns) != 3 {
		return fmt.Errorf("split.TernaryNormalize: need exactly 3 columns, got %d", len(columns))
	}
	for _, name := range columns {
		if _, err := dt.ColumnIndex(name); err != nil {
			return err
		}
	}
	for _, name := range columns {
		dt.AddFloat64Column(name + NormSuffix)
	}
	for row := 0; row < dt.Rows; row++ {
		var sum float64
		for _, name := range columns {
			sum += dt.Float(name, row)
		}
		for _, name := range columns {
			v := math.NaN()
			if sum != 0 {
				v = 100 * dt.Float(name, row) / sum
			}
			dt.SetFloat(name+NormSuffix, row, v)
		}
	}
	return nil
}
