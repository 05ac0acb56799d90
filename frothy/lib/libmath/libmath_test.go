package libmath_test

import (
	"testing"

	"github.com/cameronp98/frothy/frothy"
	"github.com/cameronp98/frothy/frothy/lib/libmath"
	"github.com/cameronp98/frothy/frothytest"
	"github.com/stretchr/testify/assert"
)

func TestLibrary(t *testing.T) {
	r := frothytest.Runner{
		Configs: []frothy.Config{frothy.WithLibrary(libmath.LoadLibrary)},
	}
	r.RunTestSuite(t, frothytest.TestSuite{
		{"constants", frothytest.TestSequence{
			{"E", "2.718281828459045", ""},
			{"INF", "inf", ""},
			{"INF -1 *", "-inf", ""},
		}},
		{"sqrt", frothytest.TestSequence{
			{"sqrt", "<builtin-fn:sqrt>", ""},
			{"sqrt call", "undefined variable 'sqrt_arg'", ""},
			{"sqrt_arg 16 = sqrt call", "Nil 4", ""},
			{"sqrt_arg -1 = sqrt call", "Nil NaN", ""},
			{"sqrt_arg true = sqrt call", "Nil Nil", ""},
		}},
		{"rounding", frothytest.TestSequence{
			{"floor_arg 2.5 = floor call", "Nil 2", ""},
			{"floor_arg -2.5 = floor call", "Nil -3", ""},
			{"ceil_arg 2.25 = ceil call", "Nil 3", ""},
			{"ceil_arg {1} fn = ceil call", "Nil Nil", ""},
		}},
		{"abs", frothytest.TestSequence{
			{"abs_arg -7.5 = abs call 1 +", "Nil 8.5", ""},
			{"abs_arg Nil = abs call", "Nil Nil", ""},
		}},
		{"composition", frothytest.TestSequence{
			{"hyp { sqrt_arg a a * b b * + = sqrt call } fn =", "Nil", ""},
			{"a 3 = b 4 = hyp call", "Nil Nil 5", ""},
		}},
	})
}

func TestArgName(t *testing.T) {
	assert.Equal(t, "sqrt_arg", libmath.ArgName("sqrt"))
	assert.True(t, frothy.ValidName(libmath.ArgName("floor")))
}
