// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set.
// Cost matrices are always finite, so the policy is on unless a caller
// explicitly builds a Dense with NewDenseWithPolicy(r, c, false).
const DefaultValidateNaNInf = true
