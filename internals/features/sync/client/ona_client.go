// file: internals/features/sync/client/ona_client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"anadash_backend/internals/configs"
	"anadash_backend/internals/constants"
	"anadash_backend/internals/features/sync/processor"
)

// FormSource: abstraksi fetch submission ber-paginasi untuk satu form id.
// since opsional: hanya ambil record yang berubah setelah timestamp tsb.
type FormSource interface {
	FetchFormData(ctx context.Context, formID string, since *time.Time) ([]processor.RawRecord, error)
	SubmitFormData(ctx context.Context, formID string, payload map[string]any) error
}

/* ======================================================
   TransportError
====================================================== */

type TransportError struct {
	FormID     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error form %s: status %d", e.FormID, e.StatusCode)
	}
	return fmt.Sprintf("transport error form %s: %v", e.FormID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

/* ======================================================
   OnaClient
====================================================== */

type OnaClient struct {
	BaseURL    string
	Token      string
	PageSize   int
	PageDelay  time.Duration // jeda antar halaman biar tidak menghajar API
	HTTPClient *http.Client
}

func NewOnaClient(token string) *OnaClient {
	base := configs.OnaBaseURL
	if base == "" {
		base = "https://api.ona.io/api/v1"
	}
	return &OnaClient{
		BaseURL:   base,
		Token:     token,
		PageSize:  configs.GetEnvInt("ONA_PAGE_SIZE", 1000),
		PageDelay: 500 * time.Millisecond,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ResolveFormID: override dari ENV kalau ada, lalu default per form type.
func ResolveFormID(formType string) string {
	envKey := "ONA_FORM_ID_" + normalizeEnvKey(formType)
	if v := configs.GetEnv(envKey); v != "" {
		return v
	}
	return constants.DefaultFormIDs[formType]
}

func normalizeEnvKey(formType string) string {
	out := make([]byte, 0, len(formType))
	for i := 0; i < len(formType); i++ {
		c := formType[i]
		if c == '-' {
			c = '_'
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// FetchFormData menarik semua halaman sampai halaman pendek/kosong dan
// menggabungkannya jadi satu sequence. Error transport membatalkan fetch
// form ini saja; caller yang memutuskan kelanjutan run.
func (c *OnaClient) FetchFormData(ctx context.Context, formID string, since *time.Time) ([]processor.RawRecord, error) {
	var all []processor.RawRecord
	page := 1

	for {
		records, err := c.fetchPage(ctx, formID, page, since)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			break
		}
		all = append(all, records...)
		log.Printf("[INFO] Ona form %s page %d: %d records (total %d)", formID, page, len(records), len(all))

		if len(records) < c.PageSize {
			break
		}
		page++

		if c.PageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, &TransportError{FormID: formID, Err: ctx.Err()}
			case <-time.After(c.PageDelay):
			}
		}
	}
	return all, nil
}

func (c *OnaClient) fetchPage(ctx context.Context, formID string, page int, since *time.Time) ([]processor.RawRecord, error) {
	endpoint := fmt.Sprintf("%s/data/%s", c.BaseURL, formID)

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(c.PageSize))
	if since != nil {
		query, _ := json.Marshal(map[string]any{
			"_submission_time": map[string]string{"$gt": since.UTC().Format(time.RFC3339)},
		})
		q.Set("query", string(query))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &TransportError{FormID: formID, Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{FormID: formID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &TransportError{
			FormID:     formID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("ona response: %s", string(body)),
		}
	}

	var records []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &TransportError{FormID: formID, Err: fmt.Errorf("decode response: %w", err)}
	}

	out := make([]processor.RawRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, processor.RawRecord(rec))
	}
	return out, nil
}

// SubmitFormData: push satu record ke form sumber.
func (c *OnaClient) SubmitFormData(ctx context.Context, formID string, payload map[string]any) error {
	endpoint := fmt.Sprintf("%s/data/%s", c.BaseURL, formID)

	body, err := json.Marshal(payload)
	if err != nil {
		return &TransportError{FormID: formID, Err: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{FormID: formID, Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{FormID: formID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &TransportError{
			FormID:     formID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("ona response: %s", string(respBody)),
		}
	}
	return nil
}
