// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import "github.com/cpmech/gosl/io"

// Sprint formats one generational progress line in the style of the
// teacher's Report accumulation: a training-front size, an optional
// validation-front size, and an optional overfitting metric. Optimizer.Run
// appends the result of this call to Report after every generation.
func Sprint(generation, trainingFrontSize, validationFrontSize int, overfit float64, hasOverfit bool) string {
	if hasOverfit {
		return io.Sf("generation=%d training_front=%d validation_front=%d overfit=%.4f\n",
			generation, trainingFrontSize, validationFrontSize, overfit)
	}
	return io.Sf("generation=%d training_front=%d\n", generation, trainingFrontSize)
}
