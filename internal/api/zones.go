package api

import "context"

// GetDeliveryZones fetches the full delivery-zone list. Zone pricing is the
// backend's business; this layer only renders the options.
func (c *Client) GetDeliveryZones(ctx context.Context) ([]DeliveryZone, error) {
	return get[[]DeliveryZone](ctx, c, "/delivery-zones", nil)
}
