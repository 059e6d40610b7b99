package client

import (
	"context"
	"fmt"
	"net/http"

	"paykit/capability"
)

// Capability fetches and decodes the merchant's capability document.
func (c *Client) Capability(ctx context.Context) (*capability.Capability, error) {
	status, data, err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/capability", nil, true)
	if err != nil {
		return nil, fmt.Errorf("fetch capability: %w", err)
	}

	// parseResponse owns the status matrix; the capability decoder owns the
	// document's own integrity checks.
	var raw rawBody
	if err := parseResponse(status, data, &raw); err != nil {
		return nil, fmt.Errorf("fetch capability: %w", err)
	}

	doc, err := capability.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("fetch capability: %w", err)
	}
	return doc, nil
}

// rawBody defers decoding to a caller that needs the raw bytes while still
// letting parseResponse classify the status and body shape.
type rawBody []byte

func (b *rawBody) UnmarshalJSON(data []byte) error {
	*b = append((*b)[:0], data...)
	return nil
}
