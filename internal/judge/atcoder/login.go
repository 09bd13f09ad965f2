package atcoder

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"online-judge-toolchain/internal/components/failure"
	"online-judge-toolchain/internal/judge"
	"online-judge-toolchain/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const csrfTokenSelector = `input[name="csrf_token"]`

// LoginSucceeded is how atcoder signals a successful login: the login form
// redirects away from the login page on success and renders the login page
// again (with a 200) on failure. The status code and body say nothing.
func LoginSucceeded(finalUrl *url.URL, loginPath string) bool {
	return path.Join("/", finalUrl.Path) != path.Join("/", loginPath)
}

func findCsrfToken(doc *goquery.Document) (string, error) {
	input := doc.Find(csrfTokenSelector).First()
	if input.Length() == 0 {
		return "", failure.Newf(failure.KindTokenNotFound, "find csrf token", "csrf token not found")
	}
	token, ok := input.Attr("value")
	if !ok {
		return "", failure.Newf(failure.KindTokenNotFound, "find csrf token", "csrf token value missing")
	}
	return token, nil
}

// finalUrl is the url of the last request made after following redirects.
func finalUrl(res *resty.Response) (*url.URL, error) {
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		return res.RawResponse.Request.URL, nil
	}
	return url.Parse(res.Request.URL)
}

func (a AtCoder) Login(ctx context.Context, client *resty.Client, username, password string) (judge.LoginResult, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	loginUrl := a.loginUrl()

	res, err := client.R().
		SetContext(ctx).
		Get(loginUrl.String())
	if err != nil {
		a.tel.ReportBroken(report_atcoder_login, fmt.Errorf("fetch login page: %w", err))
		span.SetStatus(codes.Error, "failed to fetch login page")
		return judge.LoginResult{}, failure.New(failure.KindNetwork, "fetch login page", err)
	}
	doc, err := htmlutil.ParseDocument(res.Body())
	if err != nil {
		a.tel.ReportBroken(report_atcoder_login, fmt.Errorf("parse login page: %w", err))
		span.SetStatus(codes.Error, "failed to parse login page")
		return judge.LoginResult{}, failure.New(failure.KindParse, "parse login page", err)
	}

	token, err := findCsrfToken(doc)
	if err != nil {
		a.tel.ReportBroken(report_atcoder_login, err)
		span.SetStatus(codes.Error, "failed to find csrf token")
		return judge.LoginResult{}, err
	}

	res, err = client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username":   username,
			"password":   password,
			"csrf_token": token,
		}).
		Post(loginUrl.String())
	if err != nil {
		a.tel.ReportBroken(report_atcoder_login, fmt.Errorf("submit login form: %w", err))
		span.SetStatus(codes.Error, "failed to submit login form")
		return judge.LoginResult{}, failure.New(failure.KindNetwork, "submit login form", err)
	}

	landed, err := finalUrl(res)
	if err != nil {
		return judge.LoginResult{}, failure.New(failure.KindParse, "read final url", err)
	}
	if !LoginSucceeded(landed, loginUrl.Path) {
		a.tel.ReportWarning(report_atcoder_login, "login form was rendered again", username)
		return judge.LoginResult{
			Success: false,
			Message: "Login failed.",
		}, nil
	}

	a.tel.ReportDebug("logged in", username, landed.Path)
	return judge.LoginResult{
		Success: true,
		Message: "Login successful!",
	}, nil
}
