// ABOUTME: Image resolution for extracted species records
// ABOUTME: Looks up file URLs through the imageinfo API and probes them, with bounded parallelism

package species

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"bearpage/core/domain"
	coreerrors "bearpage/core/errors"
	"bearpage/pkg/featureflags"
	"golang.org/x/sync/errgroup"
)

// imageInfoEnvelope is the subset of the imageinfo query response we read
type imageInfoEnvelope struct {
	Query *struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

// resolveImages replaces every record's ImageRef with a displayable
// reference. Each worker writes only its own slot so order is preserved.
func (l *Loader) resolveImages(ctx context.Context, records []domain.SpeciesRecord, loadID string) error {
	probe := l.cfg.ProbeImages || featureflags.IsEnabled(ctx, featureflags.ImageProbe)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.ImageConcurrency)

	for i := range records {
		i := i
		g.Go(func() error {
			records[i] = records[i].WithImage(l.resolveImage(gctx, records[i].ImageRef, probe, loadID))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// A cancelled load must not be reported as a run of placeholders
	return ctx.Err()
}

// resolveImage turns a file name or absolute URL into the URL to display
func (l *Loader) resolveImage(ctx context.Context, ref string, probe bool, loadID string) string {
	if ref == "" {
		return ""
	}

	imageURL := ref
	if !isAbsoluteURL(ref) {
		resolved, err := l.lookupImage(ctx, ref)
		if err != nil {
			l.deps.Logger.Warn("Image lookup failed, using placeholder", map[string]interface{}{
				"load_id": loadID,
				"file":    ref,
				"kind":    coreerrors.Kind(err),
				"error":   err.Error(),
			})
			return l.cfg.Placeholder
		}
		imageURL = resolved
	}

	if probe && !l.reachable(ctx, imageURL) {
		l.deps.Logger.Warn("Image unreachable, using placeholder", map[string]interface{}{
			"load_id": loadID,
			"url":     imageURL,
		})
		return l.cfg.Placeholder
	}

	return imageURL
}

// lookupImage asks the imageinfo API for the URL of a wiki file
func (l *Loader) lookupImage(ctx context.Context, fileName string) (string, error) {
	cacheKey := "image:" + fileName
	if l.deps.Cache != nil {
		if data, err := l.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			return string(data), nil
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", "File:"+fileName)
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("format", "json")
	params.Set("origin", "*")
	requestURL := l.cfg.APIBase + "?" + params.Encode()

	var envelope imageInfoEnvelope
	if err := l.getJSON(ctx, requestURL, "imageinfo", &envelope); err != nil {
		return "", err
	}

	if envelope.Error != nil {
		return "", &coreerrors.MalformedResponseError{API: "imageinfo", Reason: envelope.Error.Info}
	}
	if envelope.Query == nil || len(envelope.Query.Pages) == 0 {
		return "", &coreerrors.ResourceMissingError{Resource: fileName, Reason: "no pages in response"}
	}

	// Only one title is requested; sort keys so the pick is stable anyway
	keys := make([]string, 0, len(envelope.Query.Pages))
	for k := range envelope.Query.Pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	page := envelope.Query.Pages[keys[0]]
	if len(page.ImageInfo) == 0 || page.ImageInfo[0].URL == "" {
		return "", &coreerrors.ResourceMissingError{Resource: fileName, Reason: "no image url"}
	}

	imageURL := page.ImageInfo[0].URL
	if l.deps.Cache != nil {
		_ = l.deps.Cache.Set(ctx, cacheKey, []byte(imageURL), l.cfg.CacheTTL)
	}

	return imageURL, nil
}

// reachable reports whether a HEAD request for imageURL succeeds
func (l *Loader) reachable(ctx context.Context, imageURL string) bool {
	reqCtx, cancel := l.withTimeout(ctx)
	defer cancel()

	resp, err := l.deps.HTTPClient.Head(reqCtx, imageURL)
	if err != nil {
		return false
	}
	if body := resp.Body(); body != nil {
		body.Close()
	}

	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://")
}
