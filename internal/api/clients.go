package api

import (
	"context"
	"net/http"
	"net/url"

	invoicepdf "github.com/alnah/go-invoicepdf"
)

// ClientList is the clients API list response.
type ClientList struct {
	Clients []invoicepdf.Client `json:"clients"`
	Total   int                 `json:"total"`
}

// ListClients fetches all billing clients.
func (c *Client) ListClients(ctx context.Context) (*ClientList, error) {
	var list ClientList
	if err := c.do(ctx, http.MethodGet, "/clients", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetClient fetches a single billing client by id.
func (c *Client) GetClient(ctx context.Context, id string) (*invoicepdf.Client, error) {
	var cl invoicepdf.Client
	if err := c.do(ctx, http.MethodGet, "/clients/"+url.PathEscape(id), nil, nil, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}
