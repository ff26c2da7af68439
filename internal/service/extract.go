package service

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"

	"phonedrop/internal/model"
)

// urlFieldNames are the form/JSON field names that carry remote URL items.
var urlFieldNames = []string{"url", "urls"}

// ExtractMultipart converts a parsed multipart form into upload items.
// Every "file" part with a filename becomes an inline item in part order;
// "url"/"urls" value fields contribute remote items afterwards. Parts
// without a filename are skipped, matching what multipart clients send for
// empty file inputs. A part that cannot be read makes the whole request a
// parse error; items it would have separated from are indistinguishable
// from body corruption at that point.
func ExtractMultipart(form *multipart.Form) ([]model.UploadItem, error) {
	var items []model.UploadItem
	for _, fh := range form.File["file"] {
		if fh.Filename == "" {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %q: %w", fh.Filename, err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %q: %w", fh.Filename, err)
		}
		items = append(items, model.UploadItem{
			Kind:        model.SourceInline,
			Name:        fh.Filename,
			Content:     content,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}
	return append(items, urlItems(form.Value)...), nil
}

// ExtractForm converts url-encoded form values into remote URL items.
func ExtractForm(values url.Values) []model.UploadItem {
	return urlItems(values)
}

// ExtractJSON converts a JSON body of the shape
// {"url": "...", "urls": ["...", ...]} into remote URL items.
func ExtractJSON(body []byte) ([]model.UploadItem, error) {
	var payload struct {
		URL  string   `json:"url"`
		URLs []string `json:"urls"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode json body: %w", err)
	}

	var items []model.UploadItem
	for _, u := range splitURLs(payload.URL) {
		items = append(items, remoteItem(u))
	}
	for _, raw := range payload.URLs {
		for _, u := range splitURLs(raw) {
			items = append(items, remoteItem(u))
		}
	}
	return items, nil
}

func urlItems(values map[string][]string) []model.UploadItem {
	var items []model.UploadItem
	for _, key := range urlFieldNames {
		for _, raw := range values[key] {
			for _, u := range splitURLs(raw) {
				items = append(items, remoteItem(u))
			}
		}
	}
	return items
}

func remoteItem(u string) model.UploadItem {
	return model.UploadItem{Kind: model.SourceRemote, URL: u}
}

// splitURLs breaks a newline-delimited field value into individual URLs,
// dropping blank lines.
func splitURLs(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if u := strings.TrimSpace(line); u != "" {
			out = append(out, u)
		}
	}
	return out
}
