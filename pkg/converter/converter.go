// Package converter answers conversion requests against a catalog. It is the
// layer shared by the daemon and the CLI's local mode: it looks grinders up,
// runs the pure engine and attaches localized notes.
package converter

import (
	"github.com/tab/holy-grind/pkg/catalog"
	"github.com/tab/holy-grind/pkg/grind"
	"github.com/tab/holy-grind/pkg/i18n"
	"github.com/tab/holy-grind/pkg/types"
)

type Service struct {
	catalog  *catalog.Catalog
	messages *i18n.Bundle
}

func New(c *catalog.Catalog, messages *i18n.Bundle) *Service {
	if messages == nil {
		messages = i18n.Default()
	}
	return &Service{
		catalog:  c,
		messages: messages,
	}
}

func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

func (s *Service) Info() types.CatalogInfo {
	return types.CatalogInfo{
		Version: s.catalog.Version,
		Source:  s.catalog.Source,
		Count:   len(s.catalog.Grinders),
	}
}

func (s *Service) Search(query string) []types.GrinderSummary {
	hits := s.catalog.Search(query)
	out := make([]types.GrinderSummary, 0, len(hits))
	for _, g := range hits {
		out = append(out, types.GrinderSummary{
			ID:      g.ID,
			Name:    g.Name,
			Numeric: g.Numeric,
		})
	}
	return out
}

// Convert converts input from one grinder to another. An empty id means the
// grinder is not chosen yet, which yields a pending response. An id that is
// not in the catalog is an error wrapping catalog.ErrGrinderNotFound.
//
// With swap set, the grinders are exchanged after converting and the result
// is converted back, like pressing the swap button on a filled-in form.
func (s *Service) Convert(fromID, toID, input, lang string, swap bool) (*types.ConvertResponse, error) {
	req, err := s.request(fromID, toID, input)
	if err != nil {
		return nil, err
	}

	out := req.Evaluate()
	if swap {
		req = req.Swapped(out)
		out = req.Evaluate()
	}

	return s.respond(req, out, lang), nil
}

func (s *Service) request(fromID, toID, input string) (grind.Request, error) {
	req := grind.Request{Input: input}

	if fromID != "" {
		g, err := s.catalog.Find(fromID)
		if err != nil {
			return req, err
		}
		req.Source = g
	}

	if toID != "" {
		g, err := s.catalog.Find(toID)
		if err != nil {
			return req, err
		}
		req.Target = g
	}

	return req, nil
}

func (s *Service) respond(req grind.Request, out grind.Outcome, lang string) *types.ConvertResponse {
	resp := &types.ConvertResponse{
		Input:  req.Input,
		Status: out.Status,
		Result: out.Result,
		Lang:   lang,
	}

	if req.Source != nil {
		resp.From = req.Source.ID
		if r, ok := grind.GetRange(req.Source); ok {
			resp.SourceRange = &r
		}
	}
	if req.Target != nil {
		resp.To = req.Target.ID
	}

	if key := out.MessageKey(); key != "" {
		resp.Message = s.messages.T(lang, key)
	}

	return resp
}
