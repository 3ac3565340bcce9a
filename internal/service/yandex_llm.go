package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Morwran/yagpt"
)

// iamRefreshMargin is how long before expiry the IAM token is re-minted.
const iamRefreshMargin = 5 * time.Minute

// YandexLLM uses YandexGPT through an IAM token minted from an OAuth token.
// The token lives about 12h; it is re-minted on demand shortly before that.
type YandexLLM struct {
	ya  yagpt.YaGPTFace
	iam yagpt.IamFace
	now func() time.Time

	mu        sync.Mutex
	iamToken  string
	expiresAt time.Time
}

// NewYandexLLM mints the first IAM token from oauthToken and binds folderID.
func NewYandexLLM(oauthToken, folderID string) (*YandexLLM, error) {
	iam, err := yagpt.NewYaIam(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init yandex iam: %w", err)
	}

	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		_ = iam.Close()
		return nil, fmt.Errorf("failed to init yagpt: %w", err)
	}

	l := newYandexLLM(ya, iam, time.Now)
	if _, err := l.token(context.Background()); err != nil {
		_ = iam.Close()
		return nil, err
	}
	return l, nil
}

func newYandexLLM(ya yagpt.YaGPTFace, iam yagpt.IamFace, now func() time.Time) *YandexLLM {
	return &YandexLLM{ya: ya, iam: iam, now: now}
}

// token returns a valid IAM token, minting a new one when the current one is
// missing or about to expire.
func (l *YandexLLM) token(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.iamToken != "" && l.now().Before(l.expiresAt.Add(-iamRefreshMargin)) {
		return l.iamToken, nil
	}

	resp, err := l.iam.CreateWithCtx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create iam token: %w", err)
	}
	l.iamToken = resp.IamToken
	l.expiresAt = resp.ExpiresAt
	return l.iamToken, nil
}

// GenerateResponse sends prompt as one user message.
func (l *YandexLLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	tok, err := l.token(ctx)
	if err != nil {
		return "", err
	}

	resp, err := l.ya.CompletionWithCtx(ctx, tok, []yagpt.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", fmt.Errorf("yagpt completion failed: %w", err)
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return "", &ExtractionError{Provider: "yandex", Reason: "no alternatives"}
	}
	return resp.Alternatives[0].Message.Content, nil
}

// Close releases the IAM connection.
func (l *YandexLLM) Close() error {
	return l.iam.Close()
}
