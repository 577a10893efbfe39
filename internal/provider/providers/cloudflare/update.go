package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"

	"ddnsc/internal/provider/errors"
	"ddnsc/internal/provider/utils"
	"ddnsc/pkg/publicip/ipversion"
)

// Update patches the hostname's A or AAAA record to ip. The zone and
// record identifiers are resolved on every call and never cached, and
// the first failing step aborts the update.
func (p *Provider) Update(ctx context.Context, client *http.Client, ip netip.Addr) (err error) {
	if !ip.IsValid() {
		return fmt.Errorf("%w", errors.ErrAutoDetectUnsupported)
	}

	version := ipversion.IP4
	if ip.Is6() {
		version = ipversion.IP6
	}
	recordType := version.RecordType()

	zoneID, err := p.getZoneID(ctx, client)
	if err != nil {
		return fmt.Errorf("resolving zone: %w", err)
	}

	recordID, err := p.getRecordID(ctx, client, zoneID, recordType)
	if err != nil {
		return fmt.Errorf("resolving record: %w", err)
	}

	err = p.patchRecord(ctx, client, zoneID, recordID, recordType, ip)
	if err != nil {
		return fmt.Errorf("patching record: %w", err)
	}

	return nil
}

func (p *Provider) patchRecord(ctx context.Context, client *http.Client,
	zoneID, recordID, recordType string, ip netip.Addr) (err error) {
	u := p.endpoint("/zones/" + zoneID + "/dns_records/" + recordID)

	requestData := make(map[string]string, 3+len(p.extraFields))
	for key, value := range p.extraFields {
		requestData[key] = value
	}
	requestData["name"] = p.hostname
	requestData["type"] = recordType
	requestData["content"] = ip.String()

	buffer := bytes.NewBuffer(nil)
	err = json.NewEncoder(buffer).Encode(requestData)
	if err != nil {
		return fmt.Errorf("json encoding request data: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPatch, u.String(), buffer)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	p.setHeaders(request)

	response, err := client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK ||
		response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d: %s", errors.ErrHTTPStatusNotValid,
			response.StatusCode, utils.BodyToSingleLine(response.Body))
	}

	var parsedJSON struct {
		Success bool       `json:"success"`
		Errors  []apiError `json:"errors"`
	}
	err = json.NewDecoder(response.Body).Decode(&parsedJSON)
	if err != nil {
		return fmt.Errorf("json decoding response body: %w", err)
	}

	if !parsedJSON.Success {
		return fmt.Errorf("%w: %s", errors.ErrUnsuccessful, joinAPIErrors(parsedJSON.Errors))
	}
	return nil
}
