package gdrive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AzielCF/az-drive/config"
	domainGdrive "github.com/AzielCF/az-drive/domains/gdrive"
	pkgError "github.com/AzielCF/az-drive/pkg/error"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Client talks to the Google Docs, Sheets and Drive v3 REST APIs.
type Client struct {
	http       *http.Client
	docsBase   string
	sheetsBase string
	driveBase  string
}

var _ domainGdrive.IDriveAPI = (*Client)(nil)

func NewClient() *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if config.GdriveAccessToken != "" {
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.GdriveAccessToken})
		httpClient = oauth2.NewClient(context.Background(), source)
		httpClient.Timeout = 30 * time.Second
	} else {
		logrus.Warn("[GDRIVE] No access token configured, API calls will be unauthenticated")
	}

	return &Client{
		http:       httpClient,
		docsBase:   config.GdriveDocsBaseURL,
		sheetsBase: config.GdriveSheetsBaseURL,
		driveBase:  config.GdriveDriveBaseURL,
	}
}

func (c *Client) GetDocument(ctx context.Context, documentID string) (domainGdrive.Document, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, fmt.Sprintf("%s/v1/documents/%s", c.docsBase, url.PathEscape(documentID)), nil)
	if err != nil {
		return domainGdrive.Document{}, err
	}

	var doc docsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domainGdrive.Document{}, fmt.Errorf("decode document %s: %w", documentID, err)
	}

	return domainGdrive.Document{
		DocumentID: doc.DocumentID,
		Title:      doc.Title,
		Text:       doc.text(),
		Raw:        raw,
	}, nil
}

func (c *Client) CreateDocument(ctx context.Context, title, body string) (domainGdrive.Document, error) {
	raw, err := c.doRaw(ctx, http.MethodPost, c.docsBase+"/v1/documents", map[string]string{"title": title})
	if err != nil {
		return domainGdrive.Document{}, err
	}

	var doc docsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domainGdrive.Document{}, fmt.Errorf("decode created document: %w", err)
	}

	if body != "" {
		update := domainGdrive.DocumentUpdate{InsertText: &domainGdrive.InsertText{Text: body, Index: 1}}
		if _, err := c.BatchUpdateDocument(ctx, doc.DocumentID, []domainGdrive.DocumentUpdate{update}); err != nil {
			return domainGdrive.Document{}, err
		}
	}

	return domainGdrive.Document{DocumentID: doc.DocumentID, Title: doc.Title, Raw: raw}, nil
}

func (c *Client) BatchUpdateDocument(ctx context.Context, documentID string, updates []domainGdrive.DocumentUpdate) (int, error) {
	requests := make([]map[string]any, 0, len(updates))
	for _, update := range updates {
		switch {
		case update.ReplaceAllText != nil:
			requests = append(requests, map[string]any{
				"replaceAllText": map[string]any{
					"containsText": map[string]any{
						"text":      update.ReplaceAllText.Find,
						"matchCase": update.ReplaceAllText.MatchCase,
					},
					"replaceText": update.ReplaceAllText.Replace,
				},
			})
		case update.InsertText != nil:
			requests = append(requests, map[string]any{
				"insertText": map[string]any{
					"text":     update.InsertText.Text,
					"location": map[string]any{"index": update.InsertText.Index},
				},
			})
		}
	}

	endpoint := fmt.Sprintf("%s/v1/documents/%s:batchUpdate", c.docsBase, url.PathEscape(documentID))
	raw, err := c.doRaw(ctx, http.MethodPost, endpoint, map[string]any{"requests": requests})
	if err != nil {
		return 0, err
	}

	var out struct {
		Replies []json.RawMessage `json:"replies"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, fmt.Errorf("decode batch update reply: %w", err)
	}
	return len(out.Replies), nil
}

func (c *Client) GetValues(ctx context.Context, spreadsheetID string, ranges []string) ([]domainGdrive.ValueRange, error) {
	params := url.Values{}
	for _, r := range ranges {
		params.Add("ranges", r)
	}
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values:batchGet?%s",
		c.sheetsBase, url.PathEscape(spreadsheetID), params.Encode())

	raw, err := c.doRaw(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		ValueRanges []struct {
			Range  string  `json:"range"`
			Values [][]any `json:"values"`
		} `json:"valueRanges"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode values of %s: %w", spreadsheetID, err)
	}

	result := make([]domainGdrive.ValueRange, 0, len(out.ValueRanges))
	for _, vr := range out.ValueRanges {
		rows := make([][]string, 0, len(vr.Values))
		for _, row := range vr.Values {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				cells = append(cells, fmt.Sprint(cell))
			}
			rows = append(rows, cells)
		}
		result = append(result, domainGdrive.ValueRange{Range: vr.Range, Values: rows})
	}
	return result, nil
}

func (c *Client) AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]string) (int, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.sheetsBase, url.PathEscape(spreadsheetID), url.PathEscape(a1Range))

	raw, err := c.doRaw(ctx, http.MethodPost, endpoint, map[string]any{"values": values})
	if err != nil {
		return 0, err
	}

	var out struct {
		Updates struct {
			UpdatedCells int `json:"updatedCells"`
		} `json:"updates"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, fmt.Errorf("decode append reply: %w", err)
	}
	return out.Updates.UpdatedCells, nil
}

func (c *Client) GetFile(ctx context.Context, fileID string) (domainGdrive.FileMeta, error) {
	endpoint := fmt.Sprintf("%s/drive/v3/files/%s?fields=id,name,mimeType,size,modifiedTime",
		c.driveBase, url.PathEscape(fileID))

	raw, err := c.doRaw(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domainGdrive.FileMeta{}, err
	}

	var out struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		MimeType     string `json:"mimeType"`
		Size         string `json:"size"`
		ModifiedTime string `json:"modifiedTime"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return domainGdrive.FileMeta{}, fmt.Errorf("decode file meta %s: %w", fileID, err)
	}

	size, _ := strconv.ParseInt(out.Size, 10, 64)
	return domainGdrive.FileMeta{
		ID:           out.ID,
		Name:         out.Name,
		MimeType:     out.MimeType,
		Size:         size,
		ModifiedTime: out.ModifiedTime,
	}, nil
}

func (c *Client) DownloadFile(ctx context.Context, fileID string) (domainGdrive.FileMeta, string, error) {
	meta, err := c.GetFile(ctx, fileID)
	if err != nil {
		return domainGdrive.FileMeta{}, "", err
	}

	endpoint := fmt.Sprintf("%s/drive/v3/files/%s?alt=media", c.driveBase, url.PathEscape(fileID))
	if strings.HasPrefix(meta.MimeType, "application/vnd.google-apps.") {
		// Google-native formats have no byte stream; export as plain text.
		endpoint = fmt.Sprintf("%s/drive/v3/files/%s/export?mimeType=%s",
			c.driveBase, url.PathEscape(fileID), url.QueryEscape("text/plain"))
	}

	raw, err := c.doRaw(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domainGdrive.FileMeta{}, "", err
	}

	text, err := ExtractText(meta.MimeType, raw)
	if err != nil {
		return domainGdrive.FileMeta{}, "", err
	}
	return meta, text, nil
}

func (c *Client) ListFiles(ctx context.Context, query string, pageSize int) ([]domainGdrive.FileMeta, error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("fields", "files(id,name,mimeType,size,modifiedTime)")
	if query != "" {
		params.Set("q", query)
	}

	raw, err := c.doRaw(ctx, http.MethodGet, fmt.Sprintf("%s/drive/v3/files?%s", c.driveBase, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Files []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			MimeType     string `json:"mimeType"`
			Size         string `json:"size"`
			ModifiedTime string `json:"modifiedTime"`
		} `json:"files"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode file list: %w", err)
	}

	files := make([]domainGdrive.FileMeta, 0, len(out.Files))
	for _, f := range out.Files {
		size, _ := strconv.ParseInt(f.Size, 10, 64)
		files = append(files, domainGdrive.FileMeta{
			ID:           f.ID,
			Name:         f.Name,
			MimeType:     f.MimeType,
			Size:         size,
			ModifiedTime: f.ModifiedTime,
		})
	}
	return files, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	_, err := c.doRaw(ctx, http.MethodDelete, fmt.Sprintf("%s/drive/v3/files/%s", c.driveBase, url.PathEscape(fileID)), nil)
	return err
}

func (c *Client) doRaw(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithError(err).Errorf("[GDRIVE] %s %s failed", method, endpoint)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, pkgError.NotFoundError(fmt.Sprintf("resource not found (%s)", endpoint))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("gdrive api %s %s: status %d: %s", method, endpoint, resp.StatusCode, truncateBody(data))
	}
	return data, nil
}

func truncateBody(data []byte) string {
	const max = 300
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
