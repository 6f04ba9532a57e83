package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultReplyEndpoint = "https://api.line.me/v2/bot/message/reply"

	// maxMessagesPerReply is the platform limit on messages per reply token.
	maxMessagesPerReply = 5
)

// tooLongWarning replaces any message that exceeds the configured length
// cap, since the platform rejects oversized messages outright.
const tooLongWarning = "⚠️ The reply was too long to send. Please try a shorter message."

// Replier sends text messages in answer to a single webhook event.
type Replier interface {
	Reply(ctx context.Context, replyToken string, texts ...string) error
}

// Client sends replies through the LINE Messaging API.
type Client struct {
	token     string
	maxLength int

	// Endpoint is the reply API URL, overridable in tests.
	Endpoint string

	client *http.Client
}

// NewClient creates a reply client authenticated with the channel access
// token. Messages longer than maxLength runes are substituted with a
// warning before sending.
func NewClient(token string, maxLength int) *Client {
	return &Client{
		token:     token,
		maxLength: maxLength,
		Endpoint:  defaultReplyEndpoint,
		client:    &http.Client{},
	}
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type replyErrorResponse struct {
	Message string `json:"message"`
}

// Reply sends texts as one reply. A reply token is single-use, so all
// segments must go out in the same call.
func (c *Client) Reply(ctx context.Context, replyToken string, texts ...string) error {
	if len(texts) == 0 {
		return fmt.Errorf("reply requires at least one message")
	}
	if len(texts) > maxMessagesPerReply {
		texts = texts[:maxMessagesPerReply]
	}

	messages := make([]textMessage, 0, len(texts))
	for _, text := range texts {
		if c.maxLength > 0 && len([]rune(text)) > c.maxLength {
			text = tooLongWarning
		}
		messages = append(messages, textMessage{Type: "text", Text: text})
	}

	body, err := json.Marshal(replyRequest{ReplyToken: replyToken, Messages: messages})
	if err != nil {
		return fmt.Errorf("marshalling reply: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating reply request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending reply: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(httpResp.Body)
		var apiErr replyErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("reply rejected with status %d: %s", httpResp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("reply rejected with status %d", httpResp.StatusCode)
	}

	return nil
}
