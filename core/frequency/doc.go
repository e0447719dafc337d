// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package frequency holds the English letter frequency model and the scorers
// the cracker uses to rank decode candidates. Everything here is read-only
// and safe for concurrent use.
package frequency
