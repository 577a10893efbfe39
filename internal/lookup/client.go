package lookup

import (
	"context"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_lookup/client.go -package=mock_lookup ddnsc/internal/lookup Client

// Client matches the ExchangeContext method of *dns.Client.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}
