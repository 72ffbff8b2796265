package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/tab/holy-grind/pkg/grind"
	"github.com/tab/holy-grind/pkg/types"
)

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}

func (c *Client) GetCatalogInfo() (*types.CatalogInfo, error) {
	ret, err := c.Get("/catalog")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get catalog info")
	}

	var info types.CatalogInfo
	if err := json.Unmarshal([]byte(ret), &info); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal catalog info")
	}
	return &info, nil
}

// Reload asks the daemon to re-read its catalog file.
func (c *Client) Reload() (string, error) {
	ret, err := c.Post("/reload", "")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to reload catalog")
	}
	var msg string
	if err := json.Unmarshal([]byte(ret), &msg); err != nil {
		return ret, nil
	}
	return msg, nil
}

func (c *Client) SearchGrinders(query string) ([]types.GrinderSummary, error) {
	path := "/grinders"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}

	ret, err := c.Get(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to search grinders")
	}

	var hits []types.GrinderSummary
	if err := json.Unmarshal([]byte(ret), &hits); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal grinders")
	}
	return hits, nil
}

func (c *Client) GetGrinder(id string) (*grind.Grinder, error) {
	ret, err := c.Get("/grinders/" + url.PathEscape(id))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get grinder %s", id)
	}

	var g grind.Grinder
	if err := json.Unmarshal([]byte(ret), &g); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal grinder %s", id)
	}
	return &g, nil
}

func (c *Client) GetRange(id string) (*grind.Range, error) {
	ret, err := c.Get("/grinders/" + url.PathEscape(id) + "/range")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get range of grinder %s", id)
	}

	var r grind.Range
	if err := json.Unmarshal([]byte(ret), &r); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal range of grinder %s", id)
	}
	return &r, nil
}

// Convert asks the daemon to convert value from one grinder to another. An
// empty lang lets the daemon use its configured language.
func (c *Client) Convert(from, to, value, lang string, swap bool) (*types.ConvertResponse, error) {
	q := url.Values{
		"from":  {from},
		"to":    {to},
		"value": {value},
	}
	if lang != "" {
		q.Set("lang", lang)
	}
	if swap {
		q.Set("swap", strconv.FormatBool(swap))
	}

	ret, err := c.Get("/convert?" + q.Encode())
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to convert %s from %s to %s", value, from, to)
	}

	var resp types.ConvertResponse
	if err := json.Unmarshal([]byte(ret), &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal conversion")
	}
	return &resp, nil
}
