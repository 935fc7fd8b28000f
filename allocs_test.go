// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swcase_test

import (
	"testing"

	"code.hybscloud.com/swcase"
)

func TestQueryAllocations(t *testing.T) {
	s := swcase.New(1, false)
	even := func(v int) bool { return v%2 == 0 }
	allocs := testing.AllocsPerRun(100, func() {
		_ = s.Case(2)
		_ = s.Case(3, swcase.Fall)
		_ = s.Call(even)
	})
	if allocs > 0 {
		t.Errorf("unmatched queries allocs = %v; want 0", allocs)
	}
}
