package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_readExtraParams(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		pairs      []string
		params     map[string]string
		errWrapped error
		errMessage string
	}{
		"unset": {
			pairs: nil,
		},
		"single_pair": {
			pairs:  []string{"system=dyndns"},
			params: map[string]string{"system": "dyndns"},
		},
		"multiple_pairs": {
			pairs:  []string{"proxied=false", "ttl=120"},
			params: map[string]string{"proxied": "false", "ttl": "120"},
		},
		"empty_value": {
			pairs:  []string{"wildcard="},
			params: map[string]string{"wildcard": ""},
		},
		"value_with_equals": {
			pairs:  []string{"query=a=b"},
			params: map[string]string{"query": "a=b"},
		},
		"missing_equals": {
			pairs:      []string{"nonsense"},
			errWrapped: ErrExtraParamNotValid,
			errMessage: `extra parameter is not valid: "nonsense" is not ` +
				`formatted as key=value`,
		},
		"missing_key": {
			pairs:      []string{"=value"},
			errWrapped: ErrExtraParamNotValid,
			errMessage: `extra parameter is not valid: "=value" is not ` +
				`formatted as key=value`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			params, err := readExtraParams(testCase.pairs)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.Equal(t, testCase.params, params)
		})
	}
}
