// SPDX-License-Identifier: MPL-2.0

package jmh

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestUsage(t *testing.T) {
	t.Parallel()

	g := goldie.New(t)
	g.Assert(t, "usage", []byte(Usage("build/jmh-output.txt")))
}
