package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ddnsc/internal/provider/errors"
	"ddnsc/internal/provider/utils"
)

// getZoneID finds the zone owning the hostname by querying the zones
// endpoint for each label suffix of the hostname, longest first,
// until exactly one zone is returned. A failing or ambiguous suffix
// is logged and skipped; exhausting all suffixes is fatal for this
// update.
func (p *Provider) getZoneID(ctx context.Context, client *http.Client) (
	zoneID string, err error) {
	suffix := p.hostname
	for {
		zoneID, err = p.queryZone(ctx, client, suffix)
		if err == nil {
			return zoneID, nil
		}
		p.logger.Infof("no zone for suffix %s: %s", suffix, err)

		dotIndex := strings.IndexByte(suffix, '.')
		if dotIndex == -1 {
			break
		}
		suffix = suffix[dotIndex+1:]
		if !strings.Contains(suffix, ".") {
			// a single label cannot be a registered zone
			break
		}
	}

	return "", fmt.Errorf("%w: for hostname %s", errors.ErrZoneNotFound, p.hostname)
}

func (p *Provider) queryZone(ctx context.Context, client *http.Client,
	name string) (zoneID string, err error) {
	u := p.endpoint("/zones")
	values := url.Values{}
	values.Set("name", name)
	u.RawQuery = values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("creating http request: %w", err)
	}
	p.setHeaders(request)

	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK ||
		response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d: %s", errors.ErrHTTPStatusNotValid,
			response.StatusCode, utils.BodyToSingleLine(response.Body))
	}

	var parsedJSON struct {
		Success bool       `json:"success"`
		Errors  []apiError `json:"errors"`
		Result  []struct {
			ID string `json:"id"`
		} `json:"result"`
	}
	err = json.NewDecoder(response.Body).Decode(&parsedJSON)
	if err != nil {
		return "", fmt.Errorf("json decoding response body: %w", err)
	}

	switch {
	case !parsedJSON.Success:
		return "", fmt.Errorf("%w: %s", errors.ErrUnsuccessful, joinAPIErrors(parsedJSON.Errors))
	case len(parsedJSON.Result) != 1:
		return "", fmt.Errorf("%w: %d zones instead of 1",
			errors.ErrResultsCountReceived, len(parsedJSON.Result))
	}

	return parsedJSON.Result[0].ID, nil
}
