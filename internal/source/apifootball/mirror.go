package apifootball

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const mirrorUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// resolveMirror follows a mirror link to the actual API base URL. Plain HTTP
// redirects are tried first; mirror pages that redirect via JavaScript need a
// headless browser.
func resolveMirror(mirrorURL string, timeout time.Duration) (string, error) {
	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return nil // follow redirects automatically
		},
	}

	req, err := http.NewRequest(http.MethodHead, mirrorURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", mirrorUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return resolveMirrorWithJS(mirrorURL, timeout)
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()
	if finalURL != mirrorURL {
		slog.Info("Resolved mirror via HTTP redirect", "mirror", mirrorURL, "resolved", finalURL)
		return finalURL, nil
	}

	// HEAD did not redirect; if the mirror serves an HTML landing page the
	// redirect happens in JavaScript.
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return resolveMirrorWithJS(mirrorURL, timeout)
	}

	return finalURL, nil
}

// resolveMirrorWithJS loads the mirror page in a headless browser, lets its
// scripts run and reports the final location.
func resolveMirrorWithJS(mirrorURL string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(mirrorUserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	ctx, cancel = chromedp.NewContext(allocCtx)
	defer cancel()

	var finalURL string
	err := chromedp.Run(ctx,
		chromedp.Navigate(mirrorURL),
		chromedp.Sleep(2*time.Second),
		chromedp.Location(&finalURL),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp navigation: %w", err)
	}

	if finalURL == "" || finalURL == mirrorURL {
		// Give slow redirect scripts a second chance.
		err = chromedp.Run(ctx,
			chromedp.Sleep(3*time.Second),
			chromedp.Location(&finalURL),
		)
		if err != nil {
			return "", fmt.Errorf("chromedp wait: %w", err)
		}
	}

	if finalURL == "" {
		return "", fmt.Errorf("failed to resolve mirror URL: %s", mirrorURL)
	}

	if finalURL != mirrorURL {
		slog.Info("Resolved mirror via JavaScript redirect", "mirror", mirrorURL, "resolved", finalURL)
	}
	return finalURL, nil
}
