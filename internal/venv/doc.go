// Package venv detects a local Python virtual environment directory and
// activates it by mutating an environment abstraction: VIRTUAL_ENV is set to
// the absolute directory path and the executables directory is prepended to
// PATH. Activation never fails; the only two outcomes are "activated" and
// "not found".
package venv
