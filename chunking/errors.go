//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package chunking

import "errors"

var (
	// ErrNilDocument indicates that a nil document was provided.
	ErrNilDocument = errors.New("document cannot be nil")

	// ErrInvalidCeiling indicates a non-positive token ceiling.
	ErrInvalidCeiling = errors.New("token ceiling must be greater than 0")

	// ErrInvalidFloor indicates a negative or too-large token floor.
	ErrInvalidFloor = errors.New("token floor must be non-negative and below the ceiling")

	// ErrInvalidHardCeiling indicates a hard ceiling below the soft one.
	ErrInvalidHardCeiling = errors.New("hard ceiling must be at least the soft ceiling")

	// ErrInvalidOverlap indicates a negative overlap base.
	ErrInvalidOverlap = errors.New("overlap base must be non-negative")

	// ErrUnsupportedFormat indicates an unknown source format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
