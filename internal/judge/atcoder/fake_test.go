package atcoder

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"online-judge-toolchain/internal/components/fsutil"
	"online-judge-toolchain/internal/components/telemetry"

	"github.com/spf13/afero"
)

const loginPage = `<!DOCTYPE html>
<html><head><title>Login - AtCoder</title></head>
<body>
<form action="/login" method="POST">
	<input type="hidden" name="csrf_token" value="tok+en/="/>
	<input type="text" name="username"/>
	<input type="password" name="password"/>
</form>
</body></html>`

const loginPageWithoutToken = `<!DOCTYPE html>
<html><head><title>Login - AtCoder</title></head>
<body><form action="/login" method="POST"></form></body></html>`

const taskListPage = `<!DOCTYPE html>
<html><head><title>Tasks - AtCoder Beginner Contest 001</title></head>
<body>
<a href="/contests/abc001">Top</a>
<a href="/contests/abc001/tasks">Tasks</a>
<table>
<tr><td><a href="/contests/abc001/tasks/abc001_2">B</a></td><td><a href="/contests/abc001/tasks/abc001_2">Task B</a></td></tr>
<tr><td><a href="/contests/abc001/tasks/abc001_1?lang=en">A</a></td><td><a href="/contests/abc001/tasks/abc001_1">Task A</a></td></tr>
</table>
<a href="/contests/abc002/tasks/abc002_1">other contest</a>
<a href="https://example.com/">external</a>
</body></html>`

func taskPage(title string, parts ...string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html><head><title>%s</title></head>
<body><div id="task-statement">%s</div></body></html>`, title, strings.Join(parts, "\n"))
}

func samplePart(header, content string) string {
	return fmt.Sprintf(`<div class="part"><section><h3>%s<span class="btn">Copy</span></h3><pre>%s</pre></section></div>`, header, content)
}

type fakeJudge struct {
	server *httptest.Server
	posts  atomic.Int32
	pages  map[string]string
	// loginPage is served for GET /login.
	loginPage string
}

func newFakeJudge(t testing.TB) *fakeJudge {
	j := &fakeJudge{
		loginPage: loginPage,
		pages: map[string]string{
			"/contests/abc001/tasks": taskListPage,
			"/contests/abc001/tasks/abc001_1": taskPage(
				"A - Happy Birthday! - AtCoder",
				`<div class="part"><section><h3>問題文</h3><p>text</p></section></div>`,
				samplePart("入力例 1", "5 4\n"),
				samplePart("出力例 1", "Yay!\n"),
				samplePart("入力例 2", "8 8\n"),
				samplePart("出力例 2", "Yay!\n"),
			),
			"/contests/abc001/tasks/abc001_2": taskPage(
				"B - Tiny Arithmetic - AtCoder",
				samplePart("Sample Input 3", "1 2\n"),
				samplePart("Sample Output 3", "3\n"),
			),
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			j.posts.Add(1)
			if r.FormValue("csrf_token") == "tok+en/=" &&
				r.FormValue("username") == "tourist" &&
				r.FormValue("password") == "hunter2" {
				http.SetCookie(w, &http.Cookie{Name: "REVEL_SESSION", Value: "logged-in", Path: "/"})
				http.Redirect(w, r, "/home", http.StatusFound)
				return
			}
		}
		fmt.Fprint(w, j.loginPage)
	})
	mux.HandleFunc("/home", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><head><title>AtCoder</title></head></html>")
	})
	mux.HandleFunc("/contests/", func(w http.ResponseWriter, r *http.Request) {
		page, ok := j.pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, page)
	})

	j.server = httptest.NewServer(mux)
	t.Cleanup(j.server.Close)
	return j
}

func newTestService(t testing.TB, judge *fakeJudge, fs fsutil.FS) (AtCoder, *telemetry.Recorder) {
	recorder := &telemetry.Recorder{}
	service, err := New(Options{
		BaseUrl:   judge.server.URL,
		FS:        &fs,
		Telemetry: recorder,
	})
	if err != nil {
		t.Fatal(err)
	}
	return service, recorder
}

func newMemFS() fsutil.FS {
	return fsutil.New(afero.NewMemMapFs())
}
