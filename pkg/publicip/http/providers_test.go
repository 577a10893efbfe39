package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ddnsc/pkg/publicip/ipversion"
)

func Test_ValidateProvider(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		provider   Provider
		version    ipversion.IPVersion
		errWrapped error
		errMessage string
	}{
		"known_provider": {
			provider: Icanhazip,
			version:  ipversion.IP4,
		},
		"custom_https_url": {
			provider: Provider("url:https://ip.example.com"),
			version:  ipversion.IP6,
		},
		"unknown_provider": {
			provider:   Provider("nonsense"),
			version:    ipversion.IP4,
			errWrapped: ErrUnknownProvider,
			errMessage: "unknown public IP echo HTTP provider: nonsense",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateProvider(testCase.provider, testCase.version)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_ListProvidersForVersion(t *testing.T) {
	t.Parallel()

	for _, version := range []ipversion.IPVersion{ipversion.IP4, ipversion.IP6} {
		providers := ListProvidersForVersion(version)
		assert.Equal(t, ListProviders(), providers)
		for _, provider := range providers {
			url, ok := provider.url(version)
			assert.True(t, ok)
			assert.NotEmpty(t, url)
		}
	}
}
