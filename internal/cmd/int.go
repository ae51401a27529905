// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strconv"
)

// LimitedIntValue is a [flag.Value] for integers within the inclusive range
// from Lower to Upper.
type LimitedIntValue struct {
	Value        *int
	Lower, Upper int
}

func (v *LimitedIntValue) String() string {
	if v.Value == nil {
		return "0"
	}

	return strconv.Itoa(*v.Value)
}

func (v *LimitedIntValue) Set(s string) error {
	value, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if value < v.Lower {
		return fmt.Errorf("%d < %d: %w", value, v.Lower, ErrValueOutOfRange)
	}

	if value > v.Upper {
		return fmt.Errorf("%d > %d: %w", value, v.Upper, ErrValueOutOfRange)
	}

	*v.Value = value

	return nil
}
