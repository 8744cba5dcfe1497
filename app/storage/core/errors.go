// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cloudzero/pacman/app/types"
)

// TranslateError converts gorm errors to the storage errors of the types
// package, so callers can test with errors.Is(err, types.ErrNotFound) without
// depending on gorm. Unknown errors are returned unchanged.
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return types.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return types.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return types.ErrForeignKeyViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return types.ErrCheckConstraintViolated
	case errors.Is(err, gorm.ErrInvalidTransaction):
		return types.ErrInvalidTransaction
	case errors.Is(err, gorm.ErrMissingWhereClause):
		return types.ErrMissingWhereClause
	case errors.Is(err, gorm.ErrPrimaryKeyRequired):
		return types.ErrPrimaryKeyRequired
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidValue):
		return types.ErrInvalidData
	case errors.Is(err, gorm.ErrInvalidDB):
		return types.ErrInvalidDB
	}
	return err
}
