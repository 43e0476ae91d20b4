package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RemoveObjects deletes files from a storage bucket. Missing files are not an
// error on the Supabase side; the call only fails on transport or auth issues.
func (c *Client) RemoveObjects(ctx context.Context, bucket string, paths []string) error {
	if bucket == "" {
		return fmt.Errorf("supabase: bucket is required")
	}
	if len(paths) == 0 {
		return nil
	}
	payload, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return fmt.Errorf("supabase: encode storage body: %w", err)
	}
	endpoint := c.storageURL + "/object/" + url.PathEscape(bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: remove objects: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return newAPIError(resp.StatusCode, data)
	}
	return nil
}
