// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cipher implements the Caesar shift cipher: encoding and decoding
// with a known offset over the default Latin alphabet or a custom ordered
// alphabet, and cracking ciphertext without the offset by ranking every
// candidate shift against English letter frequencies.
//
// A Cipher is immutable once built. Operations take the offset explicitly and
// return it alongside the text, so a randomly drawn or cracked offset is
// always visible to the caller.
//
// Never use this for real secrets; the cracker in this package breaks it.
package cipher
