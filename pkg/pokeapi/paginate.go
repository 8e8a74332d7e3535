package pokeapi

import "context"

// FetchAll follows the "next" links of a paginated collection starting at
// url and returns every item in page order. Items are not deduplicated. If
// any page fails the whole call fails.
func (c *Client) FetchAll(ctx context.Context, url string) ([]NamedResource, error) {
	return c.FetchAllLimit(ctx, url, 0)
}

// FetchAllLimit is like [Client.FetchAll] but stops once limit items have
// been collected and returns at most limit items. A limit of zero or less
// means no limit.
func (c *Client) FetchAllLimit(ctx context.Context, url string, limit int) ([]NamedResource, error) {
	var items []NamedResource
	for url != "" {
		var page Page
		if err := c.FetchJSON(ctx, url, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Results...)
		if limit > 0 && len(items) >= limit {
			return items[:limit], nil
		}

		url = ""
		if page.Next != nil {
			url = *page.Next
		}
	}
	return items, nil
}
