// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for djrun.
//
// ActionableError carries operation/resource context plus fix suggestions and
// is the error type surfaced at CLI boundaries. The issue registry holds
// markdown help cards for well-known failure modes (missing manage.py,
// missing interpreter, missing virtualenv) rendered with glamour.
package issue
