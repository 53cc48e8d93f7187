// SPDX-License-Identifier: MPL-2.0

// Package project locates and describes the Django project djrun operates on.
//
// Discovery walks up from the working directory until it finds the management
// script (manage.py by default) and resolves the project layout from there:
// virtualenv directory, requirements file, and the Python interpreter to use.
// Interpreter resolution prefers an explicit config override, then the project
// virtualenv, then python3/python from PATH.
package project
