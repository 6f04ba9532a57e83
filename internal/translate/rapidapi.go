package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/thiha-ko/linetrans/internal/detect"
)

// RapidAPI implements Provider against the RapidAPI Microsoft Translator
// text endpoint via direct HTTP.
type RapidAPI struct {
	apiKey   string
	endpoint string
	host     string
	timeout  time.Duration
	client   *http.Client
}

// NewRapidAPI creates a new RapidAPI translation provider. Each call is
// bounded by timeout in addition to the caller's context.
func NewRapidAPI(apiKey, endpoint, host string, timeout time.Duration) *RapidAPI {
	return &RapidAPI{
		apiKey:   apiKey,
		endpoint: endpoint,
		host:     host,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

func (p *RapidAPI) Name() string {
	return "rapidapi"
}

type rapidAPIRequest struct {
	Texts  []string `json:"texts"`
	Source string   `json:"sl"`
	Target string   `json:"tl"`
}

type rapidAPIResponse struct {
	Texts []string `json:"texts"`
}

func (p *RapidAPI) Translate(ctx context.Context, text string, source, target detect.Lang) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := json.Marshal(rapidAPIRequest{
		Texts:  []string{text},
		Source: source.String(),
		Target: target.String(),
	})
	if err != nil {
		return "", &Error{Kind: KindParse, Err: fmt.Errorf("marshalling request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Kind: KindHTTP, Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-rapidapi-key", p.apiKey)
	httpReq.Header.Set("x-rapidapi-host", p.host)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return "", &Error{Kind: KindTimeout, Err: err}
		}
		return "", &Error{Kind: KindHTTP, Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", &Error{Kind: KindParse, Err: fmt.Errorf("reading response: %w", err)}
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", &Error{
			Kind:   KindHTTP,
			Status: httpResp.StatusCode,
			Err:    fmt.Errorf("translator returned status %d: %s", httpResp.StatusCode, respBody),
		}
	}

	var apiResp rapidAPIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", &Error{Kind: KindParse, Err: fmt.Errorf("unmarshalling response: %w", err)}
	}
	if len(apiResp.Texts) == 0 || apiResp.Texts[0] == "" {
		return "", &Error{Kind: KindParse, Err: fmt.Errorf("no translation in response")}
	}

	return apiResp.Texts[0], nil
}
