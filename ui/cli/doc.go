// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for caesarcipher using
// Cobra. It wires configuration, logging and localisation, reads the message,
// and delegates every transformation to the `core/cipher` engine. CLI code
// should remain thin.
package cli
