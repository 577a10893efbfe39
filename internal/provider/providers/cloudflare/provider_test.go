package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddnsc/internal/provider/errors"
)

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		errWrapped error
		errMessage string
	}{
		"missing_hostname": {
			settings: Settings{
				Token: "token",
			},
			errWrapped: errors.ErrHostnameNotSet,
			errMessage: "hostname is not set",
		},
		"missing_token": {
			settings: Settings{
				Hostname: "sub.example.com",
			},
			errWrapped: errors.ErrTokenNotSet,
			errMessage: "token is not set",
		},
		"bad_hostname": {
			settings: Settings{
				Hostname: "-sub.example.com",
				Token:    "token",
			},
			errWrapped: errors.ErrHostnameNotValid,
			errMessage: `hostname is not valid: hostname label starts or ends ` +
				`with a hyphen: "-sub": in hostname "-sub.example.com"`,
		},
		"valid": {
			settings: Settings{
				Hostname: "sub.example.com",
				Token:    "token",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			provider, err := New(testCase.settings)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.NotNil(t, provider)
		})
	}
}

type zonesResponse struct {
	Success bool       `json:"success"`
	Errors  []apiError `json:"errors"`
	Result  []struct {
		ID string `json:"id"`
	} `json:"result"`
}

func resultIDs(ids ...string) (result []struct {
	ID string `json:"id"`
}) {
	for _, id := range ids {
		result = append(result, struct {
			ID string `json:"id"`
		}{ID: id})
	}
	return result
}

func Test_Provider_getZoneID(t *testing.T) {
	t.Parallel()

	t.Run("walks_suffixes_longest_first", func(t *testing.T) {
		t.Parallel()

		var queriedNames []string
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/zones", r.URL.Path)
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

				name := r.URL.Query().Get("name")
				queriedNames = append(queriedNames, name)

				response := zonesResponse{Success: true}
				if name == "example.com" {
					response.Result = resultIDs("zone123")
				}
				err := json.NewEncoder(w).Encode(response)
				require.NoError(t, err)
			}))
		t.Cleanup(server.Close)

		provider := newTestProvider(t, server.URL, "a.b.example.com")

		zoneID, err := provider.getZoneID(context.Background(), server.Client())

		require.NoError(t, err)
		assert.Equal(t, "zone123", zoneID)
		assert.Equal(t, []string{"a.b.example.com", "b.example.com", "example.com"},
			queriedNames)
	})

	t.Run("stops_before_single_label", func(t *testing.T) {
		t.Parallel()

		var queriedNames []string
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				queriedNames = append(queriedNames, r.URL.Query().Get("name"))
				err := json.NewEncoder(w).Encode(zonesResponse{Success: true})
				require.NoError(t, err)
			}))
		t.Cleanup(server.Close)

		provider := newTestProvider(t, server.URL, "sub.example.com")

		_, err := provider.getZoneID(context.Background(), server.Client())

		assert.ErrorIs(t, err, errors.ErrZoneNotFound)
		assert.EqualError(t, err, "no unique zone found: for hostname sub.example.com")
		assert.Equal(t, []string{"sub.example.com", "example.com"}, queriedNames)
	})
}

func Test_Provider_Update(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		ip            netip.Addr
		recordType    string
		recordIDs     []string
		patchStatus   int
		patchResponse string
		errWrapped    error
		errMessage    string
	}{
		"success_ipv4": {
			ip:            netip.MustParseAddr("203.0.113.9"),
			recordType:    "A",
			recordIDs:     []string{"record456"},
			patchStatus:   http.StatusOK,
			patchResponse: `{"success": true}`,
		},
		"success_ipv6": {
			ip:            netip.MustParseAddr("2001:db8::1"),
			recordType:    "AAAA",
			recordIDs:     []string{"record456"},
			patchStatus:   http.StatusOK,
			patchResponse: `{"success": true}`,
		},
		"no_record_match": {
			ip:         netip.MustParseAddr("203.0.113.9"),
			recordType: "A",
			recordIDs:  nil,
			errWrapped: errors.ErrResultsCountReceived,
			errMessage: "resolving record: wrong number of results received: " +
				"0 A records for sub.example.com instead of 1",
		},
		"multiple_record_matches": {
			ip:         netip.MustParseAddr("203.0.113.9"),
			recordType: "A",
			recordIDs:  []string{"record1", "record2"},
			errWrapped: errors.ErrResultsCountReceived,
			errMessage: "resolving record: wrong number of results received: " +
				"2 A records for sub.example.com instead of 1",
		},
		"patch_unsuccessful": {
			ip:          netip.MustParseAddr("203.0.113.9"),
			recordType:  "A",
			recordIDs:   []string{"record456"},
			patchStatus: http.StatusOK,
			patchResponse: `{"success": false, ` +
				`"errors": [{"code": 9109, "message": "Invalid access token"}]}`,
			errWrapped: errors.ErrUnsuccessful,
			errMessage: "patching record: API response is unsuccessful: " +
				"error 9109: Invalid access token",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					switch {
					case r.Method == http.MethodGet && r.URL.Path == "/zones":
						response := zonesResponse{Success: true}
						if r.URL.Query().Get("name") == "example.com" {
							response.Result = resultIDs("zone123")
						}
						err := json.NewEncoder(w).Encode(response)
						require.NoError(t, err)
					case r.Method == http.MethodGet &&
						r.URL.Path == "/zones/zone123/dns_records":
						query := r.URL.Query()
						assert.Equal(t, "all", query.Get("match"))
						assert.Equal(t, "sub.example.com", query.Get("name"))
						assert.Equal(t, testCase.recordType, query.Get("type"))
						err := json.NewEncoder(w).Encode(zonesResponse{
							Success: true,
							Result:  resultIDs(testCase.recordIDs...),
						})
						require.NoError(t, err)
					case r.Method == http.MethodPatch &&
						r.URL.Path == "/zones/zone123/dns_records/record456":
						var body map[string]string
						err := json.NewDecoder(r.Body).Decode(&body)
						require.NoError(t, err)
						assert.Equal(t, map[string]string{
							"name":    "sub.example.com",
							"type":    testCase.recordType,
							"content": testCase.ip.String(),
							"proxied": "false",
						}, body)

						w.WriteHeader(testCase.patchStatus)
						_, err = fmt.Fprint(w, testCase.patchResponse)
						require.NoError(t, err)
					default:
						t.Errorf("unexpected request: %s %s", r.Method, r.URL)
					}
				}))
			t.Cleanup(server.Close)

			provider := newTestProvider(t, server.URL, "sub.example.com")

			err := provider.Update(context.Background(), server.Client(), testCase.ip)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Provider_Update_autoDetectUnsupported(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t, "https://api.example.com", "sub.example.com")

	err := provider.Update(context.Background(), &http.Client{}, netip.Addr{})

	assert.ErrorIs(t, err, errors.ErrAutoDetectUnsupported)
}

func newTestProvider(t *testing.T, baseURL, hostname string) *Provider {
	t.Helper()
	parsedBaseURL, err := url.Parse(baseURL)
	require.NoError(t, err)

	provider, err := New(Settings{
		Hostname:    hostname,
		Token:       "token",
		ExtraFields: map[string]string{"proxied": "false"},
		BaseURL:     parsedBaseURL,
	})
	require.NoError(t, err)
	return provider
}
