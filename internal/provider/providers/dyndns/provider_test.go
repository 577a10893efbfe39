package dyndns

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddnsc/internal/provider/errors"
)

func Test_validateSettings(t *testing.T) {
	t.Parallel()

	endpointURL, err := url.Parse("https://updates.example.com/nic/update")
	require.NoError(t, err)
	httpURL, err := url.Parse("http://updates.example.com/nic/update")
	require.NoError(t, err)

	testCases := map[string]struct {
		settings   Settings
		errWrapped error
		errMessage string
	}{
		"missing_endpoint": {
			settings: Settings{
				Method:   http.MethodGet,
				Username: "user",
				Password: "secret",
				Hostname: "sub.example.com",
			},
			errWrapped: errors.ErrEndpointNotSet,
			errMessage: "endpoint URL is not set",
		},
		"http_endpoint": {
			settings: Settings{
				Endpoint: httpURL,
				Method:   http.MethodGet,
				Username: "user",
				Password: "secret",
				Hostname: "sub.example.com",
			},
			errWrapped: errors.ErrEndpointNotHTTPS,
			errMessage: `endpoint URL is not https: scheme "http"`,
		},
		"missing_username": {
			settings: Settings{
				Endpoint: endpointURL,
				Method:   http.MethodGet,
				Password: "secret",
				Hostname: "sub.example.com",
			},
			errWrapped: errors.ErrUsernameNotSet,
			errMessage: "username is not set",
		},
		"missing_password": {
			settings: Settings{
				Endpoint: endpointURL,
				Method:   http.MethodGet,
				Username: "user",
				Hostname: "sub.example.com",
			},
			errWrapped: errors.ErrPasswordNotSet,
			errMessage: "password is not set",
		},
		"missing_hostname": {
			settings: Settings{
				Endpoint: endpointURL,
				Method:   http.MethodGet,
				Username: "user",
				Password: "secret",
			},
			errWrapped: errors.ErrHostnameNotSet,
			errMessage: "hostname is not set",
		},
		"bad_method": {
			settings: Settings{
				Endpoint: endpointURL,
				Method:   http.MethodDelete,
				Username: "user",
				Password: "secret",
				Hostname: "sub.example.com",
			},
			errWrapped: errors.ErrMethodNotValid,
			errMessage: `HTTP method is not valid: "DELETE" must be GET or POST`,
		},
		"bad_hostname": {
			settings: Settings{
				Endpoint: endpointURL,
				Method:   http.MethodGet,
				Username: "user",
				Password: "secret",
				Hostname: "sub..example.com",
			},
			errWrapped: errors.ErrHostnameNotValid,
			errMessage: `hostname is not valid: hostname label is empty: ` +
				`in hostname "sub..example.com"`,
		},
		"valid_get": {
			settings: Settings{
				Endpoint: endpointURL,
				Method:   http.MethodGet,
				Username: "user",
				Password: "secret",
				Hostname: "sub.example.com",
			},
		},
		"valid_post": {
			settings: Settings{
				Endpoint: endpointURL,
				Method:   http.MethodPost,
				Username: "user",
				Password: "secret",
				Hostname: "sub.example.com",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := validateSettings(testCase.settings)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Provider_Update(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		method         string
		ip             netip.Addr
		responseStatus int
		responseBody   string
		expectedMyIP   string
		expectMyIPSet  bool
		errWrapped     error
		errMessage     string
	}{
		"good_response": {
			method:         http.MethodGet,
			ip:             netip.MustParseAddr("203.0.113.9"),
			responseStatus: http.StatusOK,
			responseBody:   "good 203.0.113.9\n",
			expectedMyIP:   "203.0.113.9",
			expectMyIPSet:  true,
		},
		"nochg_response": {
			method:         http.MethodGet,
			ip:             netip.MustParseAddr("203.0.113.9"),
			responseStatus: http.StatusOK,
			responseBody:   "nochg 203.0.113.9",
			expectedMyIP:   "203.0.113.9",
			expectMyIPSet:  true,
		},
		"good_without_trailer_is_unknown": {
			method:         http.MethodGet,
			ip:             netip.MustParseAddr("203.0.113.9"),
			responseStatus: http.StatusOK,
			responseBody:   "good",
			expectedMyIP:   "203.0.113.9",
			expectMyIPSet:  true,
			errWrapped:     errors.ErrUnknownResponse,
			errMessage:     "unknown response received: good",
		},
		"badauth_response": {
			method:         http.MethodGet,
			ip:             netip.MustParseAddr("203.0.113.9"),
			responseStatus: http.StatusOK,
			responseBody:   "badauth",
			expectedMyIP:   "203.0.113.9",
			expectMyIPSet:  true,
			errWrapped:     errors.ErrUnknownResponse,
			errMessage:     "unknown response received: badauth",
		},
		"unauthorized_status": {
			method:         http.MethodGet,
			ip:             netip.MustParseAddr("203.0.113.9"),
			responseStatus: http.StatusUnauthorized,
			responseBody:   "badauth",
			expectedMyIP:   "203.0.113.9",
			expectMyIPSet:  true,
			errWrapped:     errors.ErrHTTPStatusNotValid,
			errMessage:     "HTTP status is not valid: 401: badauth",
		},
		"provider_detects_address": {
			method:         http.MethodGet,
			ip:             netip.Addr{},
			responseStatus: http.StatusOK,
			responseBody:   "good 203.0.113.9",
			expectMyIPSet:  false,
		},
		"post_form": {
			method:         http.MethodPost,
			ip:             netip.MustParseAddr("2001:db8::1"),
			responseStatus: http.StatusOK,
			responseBody:   "good 2001:db8::1",
			expectedMyIP:   "2001:db8::1",
			expectMyIPSet:  true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, testCase.method, r.Method)

					username, password, ok := r.BasicAuth()
					assert.True(t, ok)
					assert.Equal(t, "user", username)
					assert.Equal(t, "secret", password)

					err := r.ParseForm()
					require.NoError(t, err)
					assert.Equal(t, "sub.example.com", r.Form.Get("hostname"))
					assert.Equal(t, "1", r.Form.Get("system"))
					if testCase.expectMyIPSet {
						assert.Equal(t, testCase.expectedMyIP, r.Form.Get("myip"))
					} else {
						assert.False(t, r.Form.Has("myip"))
					}

					w.WriteHeader(testCase.responseStatus)
					_, err = w.Write([]byte(testCase.responseBody))
					require.NoError(t, err)
				}))
			t.Cleanup(server.Close)

			endpointURL, err := url.Parse(server.URL)
			require.NoError(t, err)

			provider := &Provider{
				endpoint:    endpointURL,
				method:      testCase.method,
				username:    "user",
				password:    "secret",
				hostname:    "sub.example.com",
				extraParams: url.Values{"system": []string{"1"}},
			}

			err = provider.Update(context.Background(), server.Client(), testCase.ip)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Provider_Update_endpointQueryKept(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "fixed", query.Get("preset"))
			assert.Equal(t, "sub.example.com", query.Get("hostname"))
			_, err := w.Write([]byte("good 203.0.113.9"))
			require.NoError(t, err)
		}))
	t.Cleanup(server.Close)

	endpointURL, err := url.Parse(server.URL + "/update?preset=fixed")
	require.NoError(t, err)

	provider := &Provider{
		endpoint: endpointURL,
		method:   http.MethodGet,
		username: "user",
		password: "secret",
		hostname: "sub.example.com",
	}

	err = provider.Update(context.Background(), server.Client(),
		netip.MustParseAddr("203.0.113.9"))
	assert.NoError(t, err)
}
