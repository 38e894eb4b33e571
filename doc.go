// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package casestr provides a case-insensitive string type that keeps
// the original casing of its text.
//
// Equality, ordering, and hashing are defined over the Unicode case
// folded form of the text (full case folding, so "Straße" equals
// "STRASSE"); display and conversion always return the text exactly as
// it was stored.
package casestr

// BUG(cvieth): Case folding is not locale aware: the Turkic
// dotted/dotless i mappings are not applied
// (see: https://pkg.go.dev/golang.org/x/text/cases#Fold).
