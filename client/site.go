// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thundercloud/site-audit-service/exception"
	"gopkg.in/resty.v1"
)

// SiteClient downloads published pages for URL-based audits.
type SiteClient interface {
	FetchPage(ctx context.Context, pageUrl string) (string, error)
}

const maxPageSize = 5 * 1024 * 1024

const userAgent = "site-audit-service/1.0"

func NewSiteClient(timeout time.Duration) SiteClient {
	cl := http.Client{Timeout: timeout}
	client := resty.NewWithClient(&cl)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	client.SetHeader("User-Agent", userAgent)
	return &siteClientImpl{client: client}
}

type siteClientImpl struct {
	client *resty.Client
}

func (s siteClientImpl) FetchPage(ctx context.Context, pageUrl string) (string, error) {
	if err := checkPageUrl(pageUrl); err != nil {
		return "", pageFetchError(pageUrl, err.Error())
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetDoNotParseResponse(true).
		Get(pageUrl)
	if err != nil {
		return "", pageFetchError(pageUrl, err.Error())
	}
	rawBody := resp.RawBody()
	defer func() {
		if rawBody != nil {
			_ = rawBody.Close()
		}
	}()
	if resp.StatusCode() != http.StatusOK {
		return "", pageFetchError(pageUrl, fmt.Sprintf("status code %d", resp.StatusCode()))
	}
	if ct := resp.Header().Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err == nil && mediaType != "text/html" && mediaType != "application/xhtml+xml" {
			return "", pageFetchError(pageUrl, fmt.Sprintf("unexpected content type %s", mediaType))
		}
	}
	if resp.RawResponse.ContentLength > maxPageSize {
		return "", pageFetchError(pageUrl, fmt.Sprintf("declared page size %d exceeds limit %d", resp.RawResponse.ContentLength, maxPageSize))
	}
	body, err := readPage(rawBody)
	if err != nil {
		return "", pageFetchError(pageUrl, err.Error())
	}
	log.Debugf("Fetched page %s: %d bytes in %dms", pageUrl, len(body), resp.Time().Milliseconds())
	return string(body), nil
}

// readPage stops reading one byte past maxPageSize so oversized pages are
// rejected without buffering them whole.
func readPage(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r, maxPageSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxPageSize {
		return nil, fmt.Errorf("page size exceeds limit %d", maxPageSize)
	}
	return body, nil
}

func checkPageUrl(pageUrl string) error {
	u, err := url.Parse(pageUrl)
	if err != nil {
		return err
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is empty")
	}
	return nil
}

func pageFetchError(pageUrl string, reason string) error {
	return &exception.CustomError{
		Status:  http.StatusFailedDependency,
		Code:    exception.PageFetchFailed,
		Message: exception.PageFetchFailedMsg,
		Params:  map[string]interface{}{"url": pageUrl, "reason": reason},
	}
}
