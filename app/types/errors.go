// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import "errors"

// Storage errors. Repositories return these instead of driver specific
// errors; see storage/core.TranslateError.
var (
	ErrNotFound                = errors.New("not found")
	ErrDuplicateKey            = errors.New("duplicate key")
	ErrForeignKeyViolation     = errors.New("foreign key violation")
	ErrCheckConstraintViolated = errors.New("check constraint violated")
	ErrInvalidTransaction      = errors.New("invalid transaction")
	ErrMissingWhereClause      = errors.New("missing where clause")
	ErrPrimaryKeyRequired      = errors.New("primary key required")
	ErrInvalidData             = errors.New("invalid data")
	ErrInvalidDB               = errors.New("invalid database")
)

// ErrInvalidInput is returned by the domain layer when a request carries
// values it cannot use, e.g. a non-numeric score.
var ErrInvalidInput = errors.New("invalid input")
