// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbattle/engine/rational"
)

func TestOutput_TraceLengthMatchesMutationCount(t *testing.T) {
	out := rational.NewOutput(rational.Whole(100))

	rational.MulFraction(out, rational.New(3, 2), "stab")
	rational.MulFraction(out, rational.New(1, 2), "burn")
	rational.AddFraction(out, rational.Whole(0), "screens: no effect")

	assert.Len(t, out.Trace, 3)
	assert.True(t, out.Value.Equal(rational.New(75, 1)))
	assert.Equal(t, "stab", out.Trace[0].Reason)
	assert.Equal(t, "burn", out.Trace[1].Reason)
}

func TestOutput_EqualityIgnoresTrace(t *testing.T) {
	a := rational.NewOutput(rational.Whole(10))
	b := rational.NewOutput(rational.Whole(10))
	rational.MulFraction(b, rational.Whole(1), "noop")

	assert.True(t, a.Value.Equal(b.Value))
	assert.Len(t, a.Trace, 0)
	assert.Len(t, b.Trace, 1)
}
