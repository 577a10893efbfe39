package settings

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"

	"ddnsc/internal/provider/utils"
)

// API selector values.
const (
	APIDyn        = "dyndns"
	APIHE         = "he"
	APICloudflare = "cloudflare"
)

type Provider struct {
	// API selects the provider protocol adapter, one of
	// dyndns, he or cloudflare.
	API string
	// Endpoint is the update URL, only for the dyndns API.
	Endpoint *string
	// Method is GET or POST, only for the dyndns API.
	Method   string
	Hostname string
	Username *string
	// Password is the account password for the dyn protocol family
	// and the API token for cloudflare.
	Password *string
	// ExtraParams are provider specific key=value parameters merged
	// into update requests.
	ExtraParams map[string]string
}

func (p *Provider) setDefaults() {
	p.API = gosettings.DefaultString(p.API, APIDyn)
	p.Endpoint = gosettings.DefaultPointer(p.Endpoint, "")
	p.Method = gosettings.DefaultString(p.Method, "GET")
	p.Username = gosettings.DefaultPointer(p.Username, "")
	p.Password = gosettings.DefaultPointer(p.Password, "")
	if p.ExtraParams == nil {
		p.ExtraParams = map[string]string{}
	}
}

func (p Provider) mergeWith(other Provider) (merged Provider) {
	merged.API = gosettings.MergeWithString(p.API, other.API)
	merged.Endpoint = gosettings.MergeWithPointer(p.Endpoint, other.Endpoint)
	merged.Method = gosettings.MergeWithString(p.Method, other.Method)
	merged.Hostname = gosettings.MergeWithString(p.Hostname, other.Hostname)
	merged.Username = gosettings.MergeWithPointer(p.Username, other.Username)
	merged.Password = gosettings.MergeWithPointer(p.Password, other.Password)
	merged.ExtraParams = p.ExtraParams
	if merged.ExtraParams == nil {
		merged.ExtraParams = other.ExtraParams
	}
	return merged
}

var (
	ErrAPIUnknown         = errors.New("unknown API selected")
	ErrHostnameNotSet     = errors.New("hostname is not set")
	ErrHostnameNotValid   = errors.New("hostname is not valid")
	ErrMethodNotValid     = errors.New("update method is not valid")
	ErrEndpointNotSet     = errors.New("endpoint URL is not set")
	ErrEndpointNotValid   = errors.New("endpoint URL is not valid")
	ErrEndpointNotAllowed = errors.New("endpoint URL is only supported by the dyndns API")
	ErrUsernameNotSet     = errors.New("username is not set")
	ErrPasswordNotSet     = errors.New("password is not set")
)

func (p Provider) Validate() (err error) {
	switch p.API {
	case APIDyn, APIHE, APICloudflare:
	default:
		return fmt.Errorf("%w: %q must be one of %s, %s or %s",
			ErrAPIUnknown, p.API, APIDyn, APIHE, APICloudflare)
	}

	if p.Hostname == "" {
		return fmt.Errorf("%w", ErrHostnameNotSet)
	}
	err = utils.CheckHostname(p.Hostname)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHostnameNotValid, err)
	}

	if p.Method != "GET" && p.Method != "POST" {
		return fmt.Errorf("%w: %q must be GET or POST", ErrMethodNotValid, p.Method)
	}

	if *p.Endpoint != "" {
		if p.API != APIDyn {
			return fmt.Errorf("%w: for API %s", ErrEndpointNotAllowed, p.API)
		}
		_, err = url.Parse(*p.Endpoint)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEndpointNotValid, err)
		}
	}

	switch p.API {
	case APIDyn:
		switch {
		case *p.Endpoint == "":
			return fmt.Errorf("%w: for API %s", ErrEndpointNotSet, p.API)
		case *p.Username == "":
			return fmt.Errorf("%w: for API %s", ErrUsernameNotSet, p.API)
		case *p.Password == "":
			return fmt.Errorf("%w: for API %s", ErrPasswordNotSet, p.API)
		}
	case APIHE, APICloudflare:
		if *p.Password == "" {
			return fmt.Errorf("%w: for API %s", ErrPasswordNotSet, p.API)
		}
	}

	return nil
}

// AutoDetectCapable reports whether the selected API can detect the
// caller's address itself, which only the dyn protocol family can.
func (p Provider) AutoDetectCapable() bool {
	return p.API != APICloudflare
}

func (p Provider) String() string {
	return p.toLinesNode().String()
}

func (p Provider) toLinesNode() *gotree.Node {
	node := gotree.New("Provider")
	node.Appendf("API: %s", p.API)
	node.Appendf("Hostname: %s", p.Hostname)
	if *p.Endpoint != "" {
		node.Appendf("Endpoint: %s", *p.Endpoint)
		node.Appendf("Method: %s", p.Method)
	}
	if *p.Username != "" {
		node.Appendf("Username: %s", *p.Username)
	}
	node.Appendf("Password or token: %s", setOrNotSet(*p.Password))
	if len(p.ExtraParams) > 0 {
		childNode := node.Appendf("Extra parameters")
		for key, value := range p.ExtraParams {
			childNode.Appendf("%s=%s", key, value)
		}
	}
	return node
}

// Credentials never appear in settings summaries.
func setOrNotSet(secret string) string {
	if secret == "" {
		return "[not set]"
	}
	return "[set]"
}
