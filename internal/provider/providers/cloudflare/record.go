package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"ddnsc/internal/provider/errors"
	"ddnsc/internal/provider/utils"
)

// getRecordID finds the DNS record matching the hostname and record
// type exactly within the zone. Anything but exactly one match is
// fatal for this update.
func (p *Provider) getRecordID(ctx context.Context, client *http.Client,
	zoneID, recordType string) (recordID string, err error) {
	u := p.endpoint("/zones/" + zoneID + "/dns_records")
	values := url.Values{}
	values.Set("match", "all")
	values.Set("name", p.hostname)
	values.Set("type", recordType)
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
		return "", fmt.Errorf("%w: %d %s records for %s instead of 1",
			errors.ErrResultsCountReceived, len(parsedJSON.Result), recordType, p.hostname)
	}

	return parsedJSON.Result[0].ID, nil
}
