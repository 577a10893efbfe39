package lookup

import (
	"context"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"

	"ddnsc/internal/lookup/mock_lookup"
	"ddnsc/pkg/publicip/ipversion"
)

func Test_Resolver_Published(t *testing.T) {
	t.Parallel()

	const hostname = "sub.example.com"
	const nameserver = "1.1.1.1:53"

	errExchange := assert.AnError

	testCases := map[string]struct {
		version      ipversion.IPVersion
		questionType uint16
		response     *dns.Msg
		exchangeErr  error
		addr         netip.Addr
		errWrapped   error
		errMessage   string
	}{
		"a_record": {
			version:      ipversion.IP4,
			questionType: dns.TypeA,
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.A{
						Hdr: dns.RR_Header{Name: "sub.example.com.",
							Rrtype: dns.TypeA, Class: dns.ClassINET},
						A: net.IPv4(203, 0, 113, 9),
					},
				},
			},
			addr: netip.MustParseAddr("203.0.113.9"),
		},
		"aaaa_record": {
			version:      ipversion.IP6,
			questionType: dns.TypeAAAA,
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.AAAA{
						Hdr: dns.RR_Header{Name: "sub.example.com.",
							Rrtype: dns.TypeAAAA, Class: dns.ClassINET},
						AAAA: net.ParseIP("2001:db8::1"),
					},
				},
			},
			addr: netip.MustParseAddr("2001:db8::1"),
		},
		"cname_then_a": {
			version:      ipversion.IP4,
			questionType: dns.TypeA,
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.CNAME{
						Hdr: dns.RR_Header{Name: "sub.example.com.",
							Rrtype: dns.TypeCNAME, Class: dns.ClassINET},
						Target: "other.example.com.",
					},
					&dns.A{
						Hdr: dns.RR_Header{Name: "other.example.com.",
							Rrtype: dns.TypeA, Class: dns.ClassINET},
						A: net.IPv4(203, 0, 113, 9),
					},
				},
			},
			addr: netip.MustParseAddr("203.0.113.9"),
		},
		"nxdomain": {
			version:      ipversion.IP4,
			questionType: dns.TypeA,
			response:     &dns.Msg{MsgHdr: dns.MsgHdr{Rcode: dns.RcodeNameError}},
			errWrapped:   ErrRcodeNotSuccess,
			errMessage: "response code is not successful: " +
				"NXDOMAIN for sub.example.com A",
		},
		"no_answer_for_type": {
			version:      ipversion.IP6,
			questionType: dns.TypeAAAA,
			response:     &dns.Msg{},
			errWrapped:   ErrNoAnswerForType,
			errMessage: "no answer found for record type: " +
				"AAAA for sub.example.com",
		},
		"exchange_error": {
			version:      ipversion.IP4,
			questionType: dns.TypeA,
			exchangeErr:  errExchange,
			errWrapped:   errExchange,
			errMessage:   "exchanging DNS message: " + errExchange.Error(),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()

			client := mock_lookup.NewMockClient(ctrl)
			client.EXPECT().
				ExchangeContext(ctx, gomock.Any(), nameserver).
				DoAndReturn(func(_ context.Context, message *dns.Msg, _ string) (
					*dns.Msg, time.Duration, error) {
					assert.Len(t, message.Question, 1)
					assert.Equal(t, "sub.example.com.", message.Question[0].Name)
					assert.Equal(t, testCase.questionType, message.Question[0].Qtype)
					return testCase.response, 0, testCase.exchangeErr
				})

			resolver := &Resolver{
				client:     client,
				nameserver: nameserver,
			}

			addr, err := resolver.Published(ctx, hostname, testCase.version)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.Equal(t, testCase.addr, addr)
		})
	}
}

func Test_Settings_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		errWrapped error
	}{
		"missing_port": {
			settings: Settings{
				Nameserver: ptrTo("1.1.1.1"),
				Timeout:    time.Second,
			},
			errWrapped: ErrNameserverNotValid,
		},
		"timeout_too_low": {
			settings: Settings{
				Nameserver: ptrTo("1.1.1.1:53"),
				Timeout:    time.Millisecond,
			},
			errWrapped: ErrTimeoutTooLow,
		},
		"valid": {
			settings: Settings{
				Nameserver: ptrTo("1.1.1.1:53"),
				Timeout:    time.Second,
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := testCase.settings.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func ptrTo[T any](value T) *T { return &value }
