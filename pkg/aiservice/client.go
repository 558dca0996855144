package aiservice

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/skynet2/whatsapp-finance-worker/pkg/breaker"
	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
	"github.com/skynet2/whatsapp-finance-worker/pkg/intent"
)

type Config struct {
	BaseURL    string
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
	Location   *time.Location
	Breaker    breaker.Config

	// Sleep waits between attempts. Nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

type Client struct {
	cl      *req.Client
	cfg     Config
	breaker *breaker.Breaker
}

func NewClient(
	cfg Config,
	cl *req.Client,
) *Client {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleep
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = "ai-service"
	}
	if cfg.Breaker.IsFailure == nil {
		cfg.Breaker.IsFailure = common.IsTransient
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cl:      cl,
		cfg:     cfg,
		breaker: breaker.New(cfg.Breaker),
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) request(ctx context.Context) *req.Request {
	r := c.cl.R().SetContext(ctx)
	if c.cfg.APIKey != "" {
		r.SetBearerAuthToken(c.cfg.APIKey)
	}

	return r
}

// call wraps the retrying attempt loop in the breaker, so an open breaker skips retries entirely.
func (c *Client) call(
	ctx context.Context,
	op string,
	attempt func(ctx context.Context) (*req.Response, error),
) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retry(ctx, op, func(ctx context.Context) error {
			resp, err := attempt(ctx)

			return toError(op, resp, err)
		})
	})
}

func (c *Client) retry(
	ctx context.Context,
	op string,
	fn func(ctx context.Context) error,
) error {
	delay := c.cfg.RetryDelay

	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if !common.IsTransient(err) || attempt >= c.cfg.MaxRetries {
			return err
		}

		wait := delay
		if errors.Is(err, common.ErrRateLimited) {
			wait *= 2

			var statusErr *StatusError
			if errors.As(err, &statusErr) && statusErr.RetryAfter > wait {
				wait = statusErr.RetryAfter
			}
		}

		zerolog.Ctx(ctx).Warn().Err(err).Str("op", op).Int("attempt", attempt+1).
			Dur("wait", wait).Msg("ai service call failed, retrying")

		if sleepErr := c.cfg.Sleep(ctx, wait); sleepErr != nil {
			return errors.Wrapf(sleepErr, "%s: retry aborted", op)
		}

		delay *= 2
	}
}

func toError(op string, resp *req.Response, err error) error {
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "%s request failed", op), common.ErrServiceUnavailable)
	}

	if resp.IsSuccessState() {
		return nil
	}

	statusErr := &StatusError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       resp.String(),
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		statusErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		return errors.Mark(statusErr, common.ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return errors.Mark(statusErr, common.ErrNotFound)
	case resp.StatusCode == http.StatusRequestTimeout:
		return errors.Mark(statusErr, common.ErrServiceUnavailable)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return errors.Mark(statusErr, common.ErrBadRequest)
	default:
		return errors.Mark(statusErr, common.ErrServiceUnavailable)
	}
}

func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds <= 0 {
		return 0
	}

	return min(time.Duration(seconds)*time.Second, maxRetryAfter)
}

func (c *Client) Classify(ctx context.Context, text string, phone string) (intent.Intent, error) {
	var res classifyResponse

	err := c.call(ctx, "classify", func(ctx context.Context) (*req.Response, error) {
		return c.request(ctx).
			SetBody(classifyRequest{Text: text, PhoneNumber: phone}).
			SetSuccessResult(&res).
			Post(c.cfg.BaseURL + pathClassify)
	})
	if err != nil {
		return intent.Intent{}, err
	}

	return intent.FromClassification(res.Intent, res.Confidence, res.Context), nil
}

func (c *Client) ExtractText(
	ctx context.Context,
	text string,
	phone string,
	categories []string,
) (*database.Extraction, error) {
	path := pathProcessText
	if len(categories) > 0 {
		path = pathProcessTextCategories
	}

	var res extractionResponse

	err := c.call(ctx, "process_text", func(ctx context.Context) (*req.Response, error) {
		return c.request(ctx).
			SetBody(processTextRequest{Text: text, PhoneNumber: phone, Categories: categories}).
			SetSuccessResult(&res).
			Post(c.cfg.BaseURL + path)
	})
	if err != nil {
		return nil, err
	}

	return parseExtraction(res, c.cfg.Location)
}

func (c *Client) ExtractImage(
	ctx context.Context,
	media Media,
	caption string,
	phone string,
	categories []string,
) (*database.Extraction, error) {
	path := pathProcessImage
	form := map[string]string{
		"phone_number": phone,
	}

	if caption != "" {
		form["caption"] = caption
	}

	if len(categories) > 0 {
		path = pathProcessImageCategories

		encoded, err := json.Marshal(categories)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		form["categories"] = string(encoded)
	}

	return c.extractMultipart(ctx, "process_image", path, fileName("receipt", media.MimeType), media, form)
}

func (c *Client) ExtractVoice(
	ctx context.Context,
	media Media,
	phone string,
) (*database.Extraction, error) {
	return c.extractMultipart(ctx, "process_voice", pathProcessVoice, fileName("voice", media.MimeType), media,
		map[string]string{
			"phone_number": phone,
		})
}

func (c *Client) extractMultipart(
	ctx context.Context,
	op string,
	path string,
	name string,
	media Media,
	form map[string]string,
) (*database.Extraction, error) {
	var res extractionResponse

	err := c.call(ctx, op, func(ctx context.Context) (*req.Response, error) {
		return c.request(ctx).
			SetFileBytes("file", name, media.Content).
			SetFormData(form).
			SetSuccessResult(&res).
			Post(c.cfg.BaseURL + path)
	})
	if err != nil {
		return nil, err
	}

	return parseExtraction(res, c.cfg.Location)
}

func (c *Client) Consult(ctx context.Context, message string, phone string) (string, error) {
	var res consultResponse

	err := c.call(ctx, "consult", func(ctx context.Context) (*req.Response, error) {
		return c.request(ctx).
			SetBody(consultRequest{Message: message, PhoneNumber: phone}).
			SetSuccessResult(&res).
			Post(c.cfg.BaseURL + pathConsult)
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(res.Reply), nil
}

func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	var res embedResponse

	err := c.call(ctx, "embed", func(ctx context.Context) (*req.Response, error) {
		return c.request(ctx).
			SetBody(embedRequest{Text: text}).
			SetSuccessResult(&res).
			Post(c.cfg.BaseURL + pathEmbed)
	})
	if err != nil {
		return nil, err
	}

	if len(res.Embedding) == 0 {
		return nil, errors.Mark(errors.New("embed: empty embedding in response"), common.ErrServiceUnavailable)
	}

	return res.Embedding, nil
}

// Health queries the service directly, bypassing retries and the breaker.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	var res map[string]any

	resp, err := c.request(ctx).
		SetSuccessResult(&res).
		Get(c.cfg.BaseURL + pathHealth)
	if err = toError("health", resp, err); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) Status() breaker.Status {
	return c.breaker.Status()
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"audio/ogg":  ".ogg",
	"audio/opus": ".ogg",
	"audio/mpeg": ".mp3",
	"audio/mp4":  ".m4a",
	"audio/wav":  ".wav",
}

func fileName(base string, mimeType string) string {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))

	if ext, ok := extensions[mediaType]; ok {
		return base + ext
	}

	if strings.HasPrefix(mediaType, "audio/") || (mediaType == "" && base == "voice") {
		return base + ".ogg"
	}

	return base + ".jpg"
}
