// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

// ConfigError reports a problem in the optimizer's configuration, detected
// before any generation runs: bad population size, a zero-width dimension,
// an inconsistent objective count. Fatal; the caller must fix the
// configuration and retry.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "unsga3: configuration error: " + e.Msg }

// ContractError reports a violation of the fitness-evaluator contract:
// a non-iterable return value, or a fitness vector whose arity does not
// match the declared objective count. Raised when fitnesses are assigned.
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string { return "unsga3: fitness contract violation: " + e.Msg }
